package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/version", h.getServerVersion)
		r.Get("/leaderboard", h.leaderboard)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/protected", h.protected)
		r.Post("/update_stats", h.updateStats)
		r.Get("/get_stats", h.getStats)
	})

	// identity is optional, admin check happens in the service
	router.Group(func(r chi.Router) {
		r.Use(h.optionalAuth)
		r.Post("/hint", h.hint)
	})

	router.MethodNotAllowed(hideMethodNotAllowed)

	return router
}
