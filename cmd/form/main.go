package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"demoapps/internal/config"
	handlers "demoapps/internal/http/handler"
	"demoapps/internal/http/server"
	"demoapps/internal/logging"
	"demoapps/internal/metrics"
	"demoapps/internal/otel"
	"demoapps/internal/service"
	"demoapps/web"
)

func main() {
	cfg := config.Load()

	log := logging.New(cfg.LogLevel, cfg.Location()).With(zap.String("service", "form"))
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("form_failed", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, "demoapps-form", log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	reg := metrics.NewRegistry()

	engine := web.NewEngine()
	// Fail at startup rather than on the first request.
	if err := engine.Load(); err != nil {
		return err
	}

	app, err := server.NewApp(server.Options{
		Name:       "Form UI",
		Views:      engine,
		Logger:     log,
		Registerer: reg,
	})
	if err != nil {
		return err
	}

	handlers.RegisterFormRoutes(app, service.NewFormService(service.DefaultPageContent))

	if cfg.MetricsEnabled {
		ms := metrics.NewServer(cfg.Form.MetricsAddr(), reg, log)
		if err := ms.Start(); err != nil {
			return err
		}
		defer ms.Close(cfg.ShutdownTimeout)
	}

	return server.Run(ctx, app, cfg.Form.Addr(), cfg.ShutdownTimeout, log)
}
