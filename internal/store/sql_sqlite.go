package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/migrations"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteScheme = "sqlite://"

// NewConnectSQLite opens the SQLite database named by cfg.DSN
// ("sqlite://<path>" or a "file:" URI) and verifies it with a ping.
//
// The pool is limited to one connection: SQLite serialises writers anyway and
// an in-memory database exists per connection.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := sqliteDataSource(cfg.DSN)

	// db will be in file
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newSQLiteDB(conn, log), nil
}

func newSQLiteDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		isUniqueViolation:  isSQLiteUniqueViolation,
		errorClassificator: NewSQLiteErrorClassifier(),
		migrationDialect:   migrations.DialectSQLite,
		logger:             log,
	}
}

// sqliteDataSource converts a configured DSN into the data source name the
// driver understands.
func sqliteDataSource(dsn string) string {
	return strings.TrimPrefix(dsn, sqliteScheme)
}

func createLocalDBFileIfNotExists(dbFile string) error {
	// URIs and in-memory databases are created by the driver
	if strings.HasPrefix(dbFile, "file:") || dbFile == ":memory:" || dbFile == "" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		return f.Close()
	}

	// file already exists
	return nil
}
