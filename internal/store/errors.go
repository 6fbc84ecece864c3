package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user cannot be created
	// because the username is already registered. The check is enforced by
	// the backend at write time.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a lookup or update targets a user
	// that does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnsupportedDSN is returned by [NewStorages] for a DSN whose scheme
	// does not name a known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrNotSQLBackend is returned by [ConnectSQL] for the memory DSN.
	ErrNotSQLBackend = errors.New("DSN does not name a SQL backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrStatsOutOfRange is returned by RecordGame when the new total would
	// not fit the total_time column.
	ErrStatsOutOfRange = errors.New("game statistics out of range")

	// ErrScanningRow is returned when scanning a users row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrLeaderboardUpdate is returned when the leaderboard cache rejects a
	// submitted time.
	ErrLeaderboardUpdate = errors.New("failed to update leaderboard")

	// ErrLeaderboardRead is returned when the leaderboard cache cannot be read.
	ErrLeaderboardRead = errors.New("failed to read leaderboard")
)
