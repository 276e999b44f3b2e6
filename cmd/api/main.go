package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"demoapps/docs"
	"demoapps/internal/config"
	handlers "demoapps/internal/http/handler"
	"demoapps/internal/http/server"
	"demoapps/internal/logging"
	"demoapps/internal/metrics"
	"demoapps/internal/otel"
	"demoapps/internal/service"
)

// @title FastAPI Sample
// @description Sample FastAPI application
// @version 1.0.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log := logging.New(cfg.LogLevel, cfg.Location()).With(zap.String("service", "api"))
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("api_failed", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, "demoapps-api", log)
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

	app, err := server.NewApp(server.Options{
		Name:       docs.SwaggerInfo.Title,
		Logger:     log,
		Registerer: reg,
	})
	if err != nil {
		return err
	}

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, service.NewStatusService())

	if cfg.MetricsEnabled {
		ms := metrics.NewServer(cfg.API.MetricsAddr(), reg, log)
		if err := ms.Start(); err != nil {
			return err
		}
		defer ms.Close(cfg.ShutdownTimeout)
	}

	return server.Run(ctx, app, cfg.API.Addr(), cfg.ShutdownTimeout, log)
}
