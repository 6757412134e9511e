// Package sqlite implements the scheduling store on a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"smart-scheduler/internal/task/repository"
	"smart-scheduler/pkg/log"
)

//go:embed migrations.sql
var migrationsFS embed.FS

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Config configures the SQLite store.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// Open opens (creating if needed) the SQLite database and runs migrations.
func Open(cfg Config, l log.Logger) (repository.Repository, *sql.DB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	// SQLite prefers a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if cfg.BusyTimeout > 0 {
		_, _ = db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()))
	}
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	r := &implRepository{db: db, l: l}
	if err := r.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return r, db, nil
}

// New wraps an already-open database handle (used by tests).
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, string(b))
	return err
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
