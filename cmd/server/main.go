package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sudoku-backend/internal/adapter"
	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/handler"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/server"
	"github.com/MKhiriev/go-sudoku-backend/internal/service"
	"github.com/MKhiriev/go-sudoku-backend/internal/store"
	"github.com/MKhiriev/go-sudoku-backend/internal/workers"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("sudoku-backend")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Any("build", buildInfo).Msg("starting")

	if err := run(log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}

	if err = logger.SetGlobalLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Msg("keeping default log level")
	}
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")
	if cfg.App.UsesDevelopmentSignKey() {
		log.Warn().Msg("tokens are signed with the development key; set APP_TOKEN_SIGN_KEY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	completion := adapter.NewCompletionAdapter(cfg.Adapter, log)

	services, err := service.NewServices(storages, completion, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return err
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	background := workers.NewWorkers(
		workers.NewHealthWorker(storages, handlers, cfg.Workers.HealthCheckInterval, log),
	)
	background.Run(ctx)

	err = srv.Run(ctx)
	stop()
	background.Wait()

	return err
}
