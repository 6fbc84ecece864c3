package service

import (
	"github.com/MKhiriev/go-sudoku-backend/internal/adapter"
	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/store"
	"github.com/MKhiriev/go-sudoku-backend/internal/validators"
)

type Services struct {
	AuthService    AuthService
	StatsService   StatsService
	HintService    HintService
	AppInfoService AppInfoService
}

// NewServices wires every service to the opened storages and the completion
// adapter. All services share one validator.
func NewServices(storages *store.Storages, completion adapter.CompletionAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewGameValidator()

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		StatsService:   NewStatsService(storages.UserRepository, storages.Leaderboard, validator, logger),
		HintService:    NewHintService(storages.UserRepository, completion, validator, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
