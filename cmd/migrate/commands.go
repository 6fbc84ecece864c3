package main

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-sudoku-backend/internal/config"
	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
	"github.com/MKhiriev/go-sudoku-backend/internal/store"
	"github.com/MKhiriev/go-sudoku-backend/migrations"
	"github.com/spf13/cobra"
)

// connectFunc opens the database the commands operate on. dsn overrides the
// configured one when not empty.
type connectFunc func(ctx context.Context, dsn string) (*store.DB, error)

// migrationFunc is the shape shared by the migrations package entry points.
type migrationFunc func(ctx context.Context, db *sql.DB, dialect string) error

func connectFromConfig(log *logger.Logger) connectFunc {
	return func(ctx context.Context, dsn string) (*store.DB, error) {
		storageCfg, err := config.GetStorageConfig()
		if dsn != "" {
			storageCfg.DB.DSN = dsn
			err = nil
		}
		if err != nil {
			log.Err(err).Msg("error getting storage configs")
			return nil, err
		}

		return store.ConnectSQL(ctx, storageCfg.DB, log)
	}
}

func newRootCmd(connect connectFunc) *cobra.Command {
	var dsn string

	rootCmd := &cobra.Command{
		Use:   "sudoku-migrate",
		Short: "Manage the users schema of the sudoku backend",
		Long: `sudoku-migrate applies, reverts and inspects the embedded schema
migrations against the database named by STORAGE_DB_DATABASE_URI (or --dsn).

Only SQL backends are supported; the memory store has no schema.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "", "Database DSN (env: STORAGE_DB_DATABASE_URI)")

	rootCmd.AddCommand(
		newMigrationCmd("up", "Apply every pending migration", &dsn, connect, migrations.MigrateContext),
		newMigrationCmd("down", "Revert the most recent migration", &dsn, connect, migrations.Rollback),
		newMigrationCmd("status", "Print the state of every migration", &dsn, connect, migrations.Status),
	)

	return rootCmd
}

func newMigrationCmd(use, short string, dsn *string, connect connectFunc, migrate migrationFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			db, err := connect(ctx, *dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			return migrate(ctx, db.DB, db.MigrationDialect())
		},
	}
}
