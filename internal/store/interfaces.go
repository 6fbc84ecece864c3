package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-sudoku-backend/models"
)

// UserRepository persists user accounts together with their game statistics.
type UserRepository interface {
	// CreateUser inserts user and returns it with the id assigned by the
	// backend. A taken username yields [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// RecordGame folds one completed game of elapsed seconds into the user's
	// statistics atomically and returns the updated user.
	RecordGame(ctx context.Context, userID int64, elapsed int64) (models.User, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// Leaderboard ranks usernames by their fastest completion time.
type Leaderboard interface {
	// SubmitTime stores fastest as the ranking score of username.
	SubmitTime(ctx context.Context, username string, fastest int64) error

	// Top returns up to limit entries ordered by fastest time ascending.
	Top(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
