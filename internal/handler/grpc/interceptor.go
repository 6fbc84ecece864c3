package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sudoku-backend/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDMetadataKey mirrors the X-Trace-ID header of the HTTP API.
const traceIDMetadataKey = "x-trace-id"

// UnaryLogging attaches a trace-scoped logger to the call context and writes
// one access log line per unary call.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := utils.TraceIDOrNew(incomingTraceID(ctx))

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func incomingTraceID(ctx context.Context) string {
	if values := metadata.ValueFromIncomingContext(ctx, traceIDMetadataKey); len(values) > 0 {
		return values[0]
	}
	return ""
}
