// Package sqlite persists the local auth session in an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"todo/config"
	"todo/internal/domain/lifecycle"
	"todo/internal/errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

//go:embed migrations/*.sql
var migrations embed.FS

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the session database and closes it when the app stops.
func New(params Params) (*sql.DB, error) {
	path := memoryPath
	if params.Config.Session != nil && params.Config.Session.DBPath != "" {
		path = params.Config.Session.DBPath
	}

	db, err := Open(path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping session database")
			}
			params.Logger.Info("Session database ready", slog.String("path", path))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

// Open opens the SQLite database at path and applies the migrations.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path != memoryPath {
		dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open session database")
	}
	// One connection keeps an in-memory database alive and serialises writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "ping session database")
	}

	if err := runMigrations(db); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "run session migrations")
	}

	return db, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Wrap(err, "set dialect")
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "goose up")
	}

	return nil
}
