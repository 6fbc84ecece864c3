package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/migrations"
	sq "github.com/Masterminds/squirrel"
)

// retryDelays are the pauses between attempts of a retryable read; its length
// is the number of retries.
var retryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond, 500 * time.Millisecond}

// DB is a SQL connection pool together with the dialect details the
// repository needs: placeholder format, unique-violation detection, error
// classification and the goose dialect for migrations.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	isUniqueViolation  func(err error) bool
	errorClassificator ErrorClassificator
	migrationDialect   string
	logger             *logger.Logger
}

// ConnectSQL opens the SQL backend named by cfg.DSN without migrating it.
func ConnectSQL(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	backend, err := ResolveBackend(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case BackendSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotSQLBackend, backend)
	}
}

// MigrationDialect is the goose dialect of this connection.
func (db *DB) MigrationDialect() string {
	return db.migrationDialect
}

// Migrate applies pending schema migrations for this connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.migrationDialect)
}

func (db *DB) uniqueViolation(err error) bool {
	return db.isUniqueViolation != nil && db.isUniqueViolation(err)
}

// withRetry runs op and repeats it while the classifier reports the error as
// retryable and ctx is alive. Only idempotent operations may use it.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = op()
		if err == nil || attempt >= len(retryDelays) || db.errorClassificator == nil ||
			db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt+1).Msg("retrying database call")

		timer := time.NewTimer(retryDelays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}
