// Package storage opens the databases behind the risk score sink and brings
// their schema up to date with the embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/dmitrijs2005/cubihealth/internal/migrations"
	"github.com/dmitrijs2005/cubihealth/internal/repositories/scores"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Score store backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func runMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, dialect, dir string) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, dir)
}

// OpenSQLite opens the local database at dsn and migrates it. SQLite allows
// a single writer, so the pool is limited to one connection.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db, migrations.SQLite, "sqlite3", migrations.SQLiteDir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}

// OpenPostgres connects through the pgx stdlib driver, checks the
// connection and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	if err := runMigrations(ctx, db, migrations.Postgres, "pgx", migrations.PostgresDir); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}

// Options selects and locates the score store.
type Options struct {
	Backend     string
	SQLitePath  string
	PostgresDSN string
}

// OpenScores returns the configured score repository and a function that
// releases its database.
func OpenScores(ctx context.Context, o Options) (scores.Repository, func() error, error) {
	noop := func() error { return nil }

	switch o.Backend {
	case BackendMemory:
		return scores.NewMemoryRepository(), noop, nil

	case BackendSQLite, "":
		db, err := OpenSQLite(ctx, o.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return scores.NewSQLiteRepository(db), db.Close, nil

	case BackendPostgres:
		if o.PostgresDSN == "" {
			return nil, noop, fmt.Errorf("postgres score store requires a DSN")
		}
		db, err := OpenPostgres(ctx, o.PostgresDSN)
		if err != nil {
			return nil, noop, err
		}
		return scores.NewPostgresRepository(db), db.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown score store %q", o.Backend)
}
