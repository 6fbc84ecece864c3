package http

import (
	"net/http"

	"github.com/MKhiriev/go-sudoku-backend/internal/utils"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

// writeMessageError writes err as {"msg": ...} with its mapped status.
func writeMessageError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.MessageResponse{Msg: messageFromError(err)}, statusFromError(err))
}

// writeErrorField writes err as {"error": ...}; the web client reads that key
// on /hint.
func writeErrorField(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(err)}, statusFromError(err))
}
