// Package migrations embeds the users schema for every supported SQL backend
// and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialects accepted by [Migrate]. The value names both the goose dialect and
// the directory holding that backend's scripts.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var (
	ErrNilDB          = errors.New("db is nil")
	ErrUnknownDialect = errors.New("unknown migration dialect")
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var dialectDirs = map[string]string{
	DialectPostgres: "postgres",
	DialectSQLite:   "sqlite",
}

func prepare(db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s scripts: %w", dir, err)
	}
	goose.SetBaseFS(sub)

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	return nil
}

// Migrate applies every pending migration for dialect.
func Migrate(db *sql.DB, dialect string) error {
	return MigrateContext(context.Background(), db, dialect)
}

func MigrateContext(ctx context.Context, db *sql.DB, dialect string) error {
	if err := prepare(db, dialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Rollback reverts the most recently applied migration.
func Rollback(ctx context.Context, db *sql.DB, dialect string) error {
	if err := prepare(db, dialect); err != nil {
		return err
	}

	if err := goose.DownContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration rollback error: %w", err)
	}

	return nil
}

// Status logs the applied state of every migration through goose's logger.
func Status(ctx context.Context, db *sql.DB, dialect string) error {
	if err := prepare(db, dialect); err != nil {
		return err
	}

	if err := goose.StatusContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration status error: %w", err)
	}

	return nil
}
