package migrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

// DefaultDir is where the SQL migrations live relative to the repo root.
const DefaultDir = "db/migrations"

func prepare() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	return nil
}

// Up applies all pending migrations from dir.
func Up(ctx context.Context, db *sql.DB, dir string) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, dir string) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.DownContext(ctx, db, dir)
}

// Status prints the migration status to stdout.
func Status(ctx context.Context, db *sql.DB, dir string) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, dir)
}
