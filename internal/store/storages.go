package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
)

// Backend names the identity store implementation selected by a DSN.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// ResolveBackend maps a DSN to its backend by scheme.
func ResolveBackend(dsn string) (Backend, error) {
	switch {
	case dsn == config.MemoryDSN:
		return BackendMemory, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(dsn, sqliteScheme), strings.HasPrefix(dsn, "file:"):
		return BackendSQLite, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, redactDSN(dsn))
}

// redactDSN keeps only the scheme so credentials never reach logs or errors.
func redactDSN(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme + "://***"
	}
	return "***"
}

// Storages bundles the persistence dependencies of the services.
type Storages struct {
	UserRepository UserRepository
	Leaderboard    Leaderboard

	// DB is nil for the memory backend.
	DB *DB

	closers []io.Closer
}

// NewStorages opens the identity store named by cfg.DB.DSN, runs its
// migrations and, when cfg.Cache.RedisURL is set, connects the leaderboard.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, err := ResolveBackend(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	storages := &Storages{Leaderboard: NewNopLeaderboard()}

	switch backend {
	case BackendMemory:
		storages.UserRepository = NewMemoryUserRepository(log)
	case BackendPostgres, BackendSQLite:
		db, err := ConnectSQL(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		storages.closers = append(storages.closers, db)

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = storages.Close()
			return nil, err
		}

		storages.DB = db
		storages.UserRepository = NewUserRepository(db, log)
	}
	log.Info().Str("backend", string(backend)).Msg("identity store ready")

	if cfg.Cache.RedisURL != "" {
		leaderboard, err := NewRedisLeaderboard(ctx, cfg.Cache.RedisURL, log)
		if err != nil {
			_ = storages.Close()
			return nil, err
		}
		storages.closers = append(storages.closers, leaderboard)
		storages.Leaderboard = leaderboard
	}

	return storages, nil
}

// Ping checks the identity store.
func (s *Storages) Ping(ctx context.Context) error {
	return s.UserRepository.Ping(ctx)
}

// Close releases every opened connection.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
