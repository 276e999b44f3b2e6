// Package server assembles a Fiber app with the middleware stack shared by
// both programs and runs it until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"demoapps/internal/http/handler"
	"demoapps/internal/http/middleware"
)

// Options configures NewApp.
type Options struct {
	// Name is reported as the Fiber app name and the server span name.
	Name string
	// Views is the template engine; nil for JSON-only apps.
	Views fiber.Views
	// Logger receives one line per request.
	Logger *zap.Logger
	// Registerer receives the request metrics; nil disables them.
	Registerer prometheus.Registerer
}

// NewApp returns a Fiber app with the standard error handler and middleware
// (request id, metrics, tracing, request log) installed, in that order.
func NewApp(opts Options) (*fiber.App, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               opts.Name,
		Views:                 opts.Views,
		ErrorHandler:          handler.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())

	if opts.Registerer != nil {
		prom, err := middleware.NewPrometheusMiddleware(opts.Registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		app.Use(prom.Handler())
	}

	app.Use(otelfiber.Middleware())
	// After otelfiber so the request span is visible to the log line.
	app.Use(middleware.Logger(opts.Logger))

	return app, nil
}

// Run serves app on addr until ctx is done, then shuts it down within timeout.
// A bind failure is returned immediately.
func Run(ctx context.Context, app *fiber.App, addr string, timeout time.Duration, log *zap.Logger) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	log.Info("server_listening", zap.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("server_shutting_down")

	err = app.ShutdownWithTimeout(timeout)
	// Unblocks Listener if shutdown raced ahead of it.
	if cerr := ln.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) && err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
