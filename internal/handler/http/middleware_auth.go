package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/utils"
	"github.com/MKhiriev/go-sudoku-backend/models"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// A missing, malformed, expired or badly signed token stops the request with
// 401 and a {"msg": ...} body before the handler runs. On success the user id
// is stored in the request context under [utils.UserIDCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("request rejected")
			writeMessageError(w, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			writeMessageError(w, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth resolves the caller when a valid bearer token is present and
// otherwise continues as [models.Anonymous]. It never rejects a request.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		principal := models.Anonymous

		if tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization")); err == nil {
			token, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err == nil {
				principal = models.NewPrincipal(token.UserID)
			} else {
				logger.FromRequest(r).Debug().Err(err).Msg("optional token ignored")
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(ctx, principal)))
	})
}

// getTokenFromAuthHeader extracts the token from an "Authorization: Bearer
// <token>" header value. The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
