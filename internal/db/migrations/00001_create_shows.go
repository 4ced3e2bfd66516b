package migrations

// Column types differ per driver: MySQL cannot index an unbounded TEXT column
// and each backend spells its timestamp type differently.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateShows, downCreateShows)
}

func upCreateShows(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS shows (
    id               TEXT PRIMARY KEY,
    position         INTEGER NOT NULL,
    page_slug        TEXT NOT NULL,
    title            TEXT NOT NULL,
    meta_title       TEXT NOT NULL,
    meta_description TEXT NOT NULL,
    tags             TEXT,
    imageurl         TEXT NOT NULL,
    tagline          TEXT NOT NULL,
    full_bio         TEXT NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS shows (
    id               VARCHAR(36) PRIMARY KEY,
    position         INT NOT NULL,
    page_slug        VARCHAR(255) NOT NULL,
    title            VARCHAR(255) NOT NULL,
    meta_title       VARCHAR(255) NOT NULL,
    meta_description TEXT NOT NULL,
    tags             TEXT,
    imageurl         TEXT NOT NULL,
    tagline          TEXT NOT NULL,
    full_bio         MEDIUMTEXT NOT NULL,
    created_at       TIMESTAMP(6) NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS shows (
    id               TEXT PRIMARY KEY,
    position         INTEGER NOT NULL,
    page_slug        TEXT NOT NULL,
    title            TEXT NOT NULL,
    meta_title       TEXT NOT NULL,
    meta_description TEXT NOT NULL,
    tags             TEXT,
    imageurl         TEXT NOT NULL,
    tagline          TEXT NOT NULL,
    full_bio         TEXT NOT NULL,
    created_at       DATETIME NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create shows table: %w", err)
	}
	// Not unique: an import forced past validation may carry duplicates.
	_, err := tx.ExecContext(ctx, `CREATE INDEX shows_page_slug_idx ON shows (page_slug)`)
	return err
}

func downCreateShows(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS shows`)
	return err
}
