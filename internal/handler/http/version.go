package http

import (
	"net/http"

	"github.com/MKhiriev/go-sudoku-backend/internal/app"
	"github.com/MKhiriev/go-sudoku-backend/internal/utils"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgAPIRunning, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}
