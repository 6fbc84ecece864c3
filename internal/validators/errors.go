package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrUsernameTooLong   = errors.New("username is too long")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrNegativeTime      = errors.New("time must be a non-negative number of seconds")
	ErrTimeTooLarge      = errors.New("time exceeds the maximum game duration")
	ErrEmptyBoard        = errors.New("board is required")
	ErrEmptyBoardRow     = errors.New("board rows cannot be empty")
	ErrInvalidLimitValue = errors.New("limit out of range")
)
