// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux without services so the method check
// is tested in isolation.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/get_stats", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("stats"))
	})
	router.Post("/update_stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}

func TestHideMethodNotAllowed(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method         string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{http.MethodGet, "/get_stats", http.StatusOK, "stats"},
		{http.MethodPost, "/update_stats", http.StatusOK, ""},
		{http.MethodPost, "/register", http.StatusCreated, ""},

		{http.MethodPost, "/get_stats", http.StatusNotFound, "404 page not found\n"},
		{http.MethodGet, "/update_stats", http.StatusNotFound, "404 page not found\n"},
		{http.MethodDelete, "/register", http.StatusNotFound, "404 page not found\n"},
		{http.MethodPut, "/register", http.StatusNotFound, "404 page not found\n"},

		{http.MethodGet, "/nonexistent", http.StatusNotFound, "404 page not found\n"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestHideMethodNotAllowed_NoAllowHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/get_stats", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Header().Get("Allow"))
}
