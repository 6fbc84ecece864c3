// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
)

// hideMethodNotAllowed is installed as the router's MethodNotAllowed handler.
// A known path requested with an unsupported method is answered exactly like
// an unknown path, so probing methods does not reveal which routes exist.
func hideMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("method not allowed")
	http.NotFound(w, r)
}
