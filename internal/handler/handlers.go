package handler

import (
	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/handler/grpc"
	"github.com/MKhiriev/go-sudoku-backend/internal/handler/http"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// SetServing forwards storage liveness to the gRPC health service when it is
// enabled.
func (h *Handlers) SetServing(serving bool) {
	if h.GRPC != nil {
		h.GRPC.SetServing(serving)
	}
}
