package service

import (
	"context"

	"github.com/MKhiriev/go-sudoku-backend/models"
)

// AuthService covers account creation, credential verification and the
// session token lifecycle.
type AuthService interface {
	// RegisterUser creates an account with zero statistics.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login returns the account matching creds or ErrInvalidCredentials. The
	// error does not reveal whether the username exists.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// WhoAmI re-reads the account of an authenticated caller.
	WhoAmI(ctx context.Context, userID int64) (models.User, error)
}

// StatsService records completed games and reports per-user aggregates.
type StatsService interface {
	RecordGame(ctx context.Context, result models.GameResult) (models.User, error)
	GetStats(ctx context.Context, userID int64) (models.StatsSummary, error)
	Leaderboard(ctx context.Context, limit int64) ([]models.LeaderboardEntry, error)
}

// HintService relays a board to the completion API for the admin account.
type HintService interface {
	Hint(ctx context.Context, principal models.Principal, board models.Board) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
