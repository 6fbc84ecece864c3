package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-sudoku-backend/internal/app"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/utils"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

const defaultLeaderboardLimit = 10

func (h *Handler) updateStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeMessageError(w, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.UpdateStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		writeMessageError(w, ErrInvalidJSON)
		return
	}

	elapsed, err := parseTimeSeconds(req.TimeSeconds)
	if err != nil {
		log.Debug().Str("time_seconds", string(req.TimeSeconds)).Msg("invalid time_seconds")
		writeMessageError(w, err)
		return
	}

	updated, err := h.services.StatsService.RecordGame(ctx, models.GameResult{UserID: userID, TimeSeconds: elapsed})
	if err != nil {
		writeMessageError(w, err)
		return
	}

	utils.WriteJSON(w, models.UpdateStatsResponse{Msg: app.MsgStatsUpdated, Stats: updated.Stats}, http.StatusOK)
}

// parseTimeSeconds accepts only a JSON integer literal. Floats, strings,
// booleans, null and a missing field are rejected rather than coerced.
// The sign is checked by the service.
func parseTimeSeconds(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, ErrInvalidTimeSeconds
	}

	elapsed, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, ErrInvalidTimeSeconds
	}

	return elapsed, nil
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeMessageError(w, ErrEmptyAuthorizationHeader)
		return
	}

	summary, err := h.services.StatsService.GetStats(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Int64("id", userID).Msg("reading stats failed")
		writeMessageError(w, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := int64(defaultLeaderboardLimit)
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil {
			writeMessageError(w, ErrInvalidLimit)
			return
		}
		limit = parsed
	}

	entries, err := h.services.StatsService.Leaderboard(ctx, limit)
	if err != nil {
		writeMessageError(w, err)
		return
	}

	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	utils.WriteJSON(w, models.LeaderboardResponse{Entries: entries}, http.StatusOK)
}
