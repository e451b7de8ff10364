// Package storage opens the local settings database and wires up the
// repositories backed by it.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dchizhov/profcard/internal/migrations"
	"github.com/dchizhov/profcard/internal/repositories/settings"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories bundles the stores backed by the local database.
type Repositories struct {
	Settings settings.Repository

	db *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite database at dsn, applies
// migrations, and returns the repositories bound to it. busyTimeout > 0 sets
// the SQLite busy_timeout pragma.
func InitDatabase(ctx context.Context, dsn string, busyTimeout time.Duration) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dsn, err)
	}

	if busyTimeout > 0 {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeout.Milliseconds())); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
		}
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Repositories{
		Settings: settings.NewSQLiteRepository(db),
		db:       db,
	}, nil
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	return r.db.Close()
}
