package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL implementation of [UserRepository] shared by the
// PostgreSQL and SQLite backends. Dialect differences live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so that
// database errors carry the request trace id.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row in [usersColumns] order.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user    models.User
		fastest sql.NullInt64
	)

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.GamesPlayed,
		&user.TotalTime,
		&fastest,
	)
	if err != nil {
		return models.User{}, err
	}

	if fastest.Valid {
		user.FastestTime = &fastest.Int64
	}

	return user, nil
}

// CreateUser inserts a new account and returns the stored row.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		if r.db.uniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan saved user from db; SQLite reports constraint failures here
	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if r.db.uniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByUsername returns the account registered under username.
// A missing row yields [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildFindUserByUsernameQuery(r.db.builder, username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsername", query, args)
}

// FindUserByID returns the account with userID.
// A missing row yields [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindUserByIDQuery(r.db.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows), postgresError(err) == pgerrcode.NoDataFound:
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}

// RecordGame applies one completed game to the user's statistics with a
// single UPDATE ... RETURNING, which the database evaluates under the row
// lock. It is never retried: a retry after an unseen commit would count the
// game twice.
func (r *userRepository) RecordGame(ctx context.Context, userID int64, elapsed int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordGameQuery(r.db.builder, userID, elapsed)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RecordGame").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case postgresError(err) == pgerrcode.NumericValueOutOfRange:
		log.Warn().Err(err).Int64("user_id", userID).Msg("total_time out of range")
		return models.User{}, ErrStatsOutOfRange
	default:
		log.Err(err).Str("func", "*userRepository.RecordGame").Int64("user_id", userID).Msg("error recording game")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *userRepository) Ping(ctx context.Context) error {
	return r.db.withRetry(ctx, func() error {
		return r.db.PingContext(ctx)
	})
}
