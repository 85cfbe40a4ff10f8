package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Migration files ship inside the binary so a fresh deployment needs no
// extra artifacts on disk.
//
//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations to db using goose.
// It is idempotent: already-applied versions are skipped.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}
