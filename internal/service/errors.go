package service

import (
	"errors"
	"fmt"
)

// ErrInvalidDataProvided is wrapped by every input validation error so the
// transport layer can map the whole family to one status.
var ErrInvalidDataProvided = errors.New("invalid data provided")

var (
	ErrCredentialsRequired     = fmt.Errorf("%w: username and password required", ErrInvalidDataProvided)
	ErrUsernameTooLong         = fmt.Errorf("%w: username must be at most 80 characters", ErrInvalidDataProvided)
	ErrPasswordTooLong         = fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidDataProvided)
	ErrInvalidElapsedTime      = fmt.Errorf("%w: time_seconds must be a non-negative integer", ErrInvalidDataProvided)
	ErrInvalidLeaderboardLimit = fmt.Errorf("%w: limit must be between 1 and 100", ErrInvalidDataProvided)
	ErrBoardIsRequired         = fmt.Errorf("%w: board is required", ErrInvalidDataProvided)
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrHintForbidden = errors.New("admin access required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
