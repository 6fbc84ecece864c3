package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/utils"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

// hint relays the board to the completion API for the admin account.
//
// An unreadable body is treated as a missing board so that authorization is
// still decided first by the service.
func (h *Handler) hint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.HintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("unreadable hint request")
		req.Board = nil
	}

	principal := utils.GetPrincipalFromContext(ctx)

	hint, err := h.services.HintService.Hint(ctx, principal, req.Board)
	if err != nil {
		log.Debug().Err(err).Bool("authenticated", principal.Authenticated).Msg("hint request failed")
		writeErrorField(w, err)
		return
	}

	utils.WriteJSON(w, models.HintResponse{Hint: hint}, http.StatusOK)
}
