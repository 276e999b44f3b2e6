package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"demoapps/internal/http/middleware"
	"demoapps/internal/logging"
)

func TestNewApp(t *testing.T) {
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()

	app, err := NewApp(Options{
		Name:       "test",
		Logger:     logging.NewWithWriter(&buf, "info", time.UTC),
		Registerer: reg,
	})
	require.NoError(t, err)

	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	rid := resp.Header.Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, rid)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, rid, entry["request_id"])
	assert.Equal(t, "/ping", entry["path"])

	n, err := testutil.GatherAndCount(reg, "http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	t.Run("unmatched routes use the standard error body", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), body["request_id"])
	})
}

func TestNewApp_MetricsLabels(t *testing.T) {
	reg := prometheus.NewRegistry()

	app, err := NewApp(Options{Name: "metrics", Registerer: reg})
	require.NoError(t, err)

	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	requests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{method: http.MethodGet, path: "/ping", wantStatus: http.StatusOK},
		{method: http.MethodPost, path: "/ping", wantStatus: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: "/missing", wantStatus: http.StatusNotFound},
		{method: http.MethodGet, path: "/ping", wantStatus: http.StatusOK},
	}
	for _, r := range requests {
		resp, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
		require.NoError(t, err)
		assert.Equal(t, r.wantStatus, resp.StatusCode)
	}

	want := `
# HELP http_requests_total Total number of HTTP requests processed.
# TYPE http_requests_total counter
http_requests_total{method="GET",path="/ping",status="200"} 2
http_requests_total{method="GET",path="unmatched",status="404"} 1
http_requests_total{method="POST",path="unmatched",status="405"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(want), "http_requests_total"))
}

func TestNewApp_DuplicateRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewApp(Options{Registerer: reg})
	require.NoError(t, err)

	_, err = NewApp(Options{Registerer: reg})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	app, err := NewApp(Options{Name: "run"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, app, "127.0.0.1:0", time.Second, zap.NewNop())
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_BindError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	app, err := NewApp(Options{})
	require.NoError(t, err)

	err = Run(context.Background(), app, ln.Addr().String(), time.Second, zap.NewNop())
	assert.ErrorContains(t, err, "listen")
}
