// Package migrations carries the goose SQL migrations for the qa_sets and
// questions tables so both the migrator binary and the API can apply them.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

const tableName = "goose_db_version"

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.DownContext(ctx, db, ".")
}

// Status logs the applied/pending state of each migration.
func Status(ctx context.Context, db *sql.DB) error {
	if err := prepare(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, ".")
}

func prepare() error {
	goose.SetBaseFS(FS)
	goose.SetTableName(tableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return nil
}
