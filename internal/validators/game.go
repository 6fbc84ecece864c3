package validators

import (
	"context"

	"github.com/MKhiriev/go-sudoku-backend/models"
)

// Field name constants select which rules Validate applies.
const (
	// FieldUsername requires a non-empty username.
	FieldUsername = "username"

	// FieldPassword requires a non-empty password.
	FieldPassword = "password"

	// FieldUsernameLength bounds the username to MaxUsernameLength characters.
	FieldUsernameLength = "username_length"

	// FieldUserID requires a positive user id.
	FieldUserID = "user_id"

	// FieldTimeSeconds requires a completion time in [0, MaxTimeSeconds].
	FieldTimeSeconds = "time_seconds"

	// FieldBoardRows requires at least one row and no empty rows.
	FieldBoardRows = "board_rows"
)

// MaxUsernameLength matches the users.username column.
const MaxUsernameLength = 80

// MaxTimeSeconds caps one reported game at a week. Larger values are client
// bugs and would let total_time overflow.
const MaxTimeSeconds = 7 * 24 * 60 * 60

// Leaderboard page bounds.
const (
	MinLeaderboardLimit = 1
	MaxLeaderboardLimit = 100
)

// LeaderboardLimit is the page size requested from the leaderboard.
type LeaderboardLimit int64

// GameValidator implements [Validator] for the account, statistics and hint
// inputs.
type GameValidator struct{}

func NewGameValidator() *GameValidator {
	return &GameValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.Credentials, models.GameResult and models.Board are accepted, as is
// LeaderboardLimit. When no fields are given a default set per type is
// checked. Returns ErrUnsupportedType for any other type.
func (v *GameValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.GameResult:
		return v.validateGameResult(ctx, value, fields...)
	case *models.GameResult:
		return v.validateGameResult(ctx, *value, fields...)

	case models.Board:
		return v.validateBoard(ctx, value, fields...)
	case *models.Board:
		return v.validateBoard(ctx, *value, fields...)

	case LeaderboardLimit:
		if value < MinLeaderboardLimit || value > MaxLeaderboardLimit {
			return ErrInvalidLimitValue
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *GameValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldUsernameLength}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		case FieldUsernameLength:
			// characters, not bytes
			if len([]rune(creds.Username)) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameValidator) validateGameResult(_ context.Context, result models.GameResult, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTimeSeconds}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if result.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTimeSeconds:
			if result.TimeSeconds < 0 {
				return ErrNegativeTime
			}
			if result.TimeSeconds > MaxTimeSeconds {
				return ErrTimeTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameValidator) validateBoard(_ context.Context, board models.Board, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBoardRows}
	}

	for _, f := range fields {
		switch f {
		case FieldBoardRows:
			if !board.IsEmpty() {
				continue
			}
			if len(board) == 0 {
				return ErrEmptyBoard
			}
			return ErrEmptyBoardRow
		default:
			return ErrUnknownField
		}
	}

	return nil
}
