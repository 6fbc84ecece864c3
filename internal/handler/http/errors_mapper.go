package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sudoku-backend/internal/adapter"
	"github.com/MKhiriev/go-sudoku-backend/internal/app"
	"github.com/MKhiriev/go-sudoku-backend/internal/service"
	"github.com/MKhiriev/go-sudoku-backend/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUsernameTaken:           http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrHintForbidden:           http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrInvalidJSON:        http.StatusBadRequest,
	ErrInvalidTimeSeconds: http.StatusBadRequest,
	ErrInvalidLimit:       http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrScanningRow:       http.StatusInternalServerError,
	store.ErrLeaderboardUpdate: http.StatusInternalServerError,
	store.ErrLeaderboardRead:   http.StatusInternalServerError,

	adapter.ErrUpstreamFailure: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessages is ordered: specific errors come before the families that
// wrap them.
var publicMessages = []struct {
	target error
	msg    string
}{
	{service.ErrCredentialsRequired, app.MsgCredentialsRequired},
	{service.ErrUsernameTooLong, app.MsgUsernameTooLong},
	{service.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{service.ErrInvalidElapsedTime, app.MsgInvalidTimeSeconds},
	{service.ErrInvalidLeaderboardLimit, app.MsgInvalidLimit},
	{service.ErrBoardIsRequired, app.MsgBoardIsRequired},
	{service.ErrUsernameTaken, app.MsgUsernameTaken},
	{store.ErrUsernameAlreadyExists, app.MsgUsernameTaken},
	{service.ErrInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, app.MsgMissingAuthorizationHeader},
	{ErrInvalidAuthorizationHeader, app.MsgInvalidAuthorizationHeader},
	{ErrEmptyToken, app.MsgInvalidAuthorizationHeader},
	{service.ErrHintForbidden, app.MsgAdminRequired},
	{store.ErrNoUserWasFound, app.MsgUserNotFound},
	{ErrInvalidJSON, app.MsgInvalidJSON},
	{ErrInvalidTimeSeconds, app.MsgInvalidTimeSeconds},
	{ErrInvalidLimit, app.MsgInvalidLimit},
}

// messageFromError returns the client-facing text for err. Upstream failures
// pass their message through; other unknown errors never leak details.
func messageFromError(err error) string {
	for _, m := range publicMessages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	if errors.Is(err, adapter.ErrUpstreamFailure) {
		return err.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}
