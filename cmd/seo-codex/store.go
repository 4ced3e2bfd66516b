package main

import (
	"github.com/jmoiron/sqlx"

	"github.com/vrcreative/seo-codex/internal/config"
	"github.com/vrcreative/seo-codex/internal/db"
	"github.com/vrcreative/seo-codex/internal/store"
)

// openStore connects to the configured database and applies migrations.
// The caller closes the returned DB.
func openStore(cfg *config.Config) (*sqlx.DB, *store.ShowStore, error) {
	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(database, cfg.DB.Driver); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return database, store.NewShowStore(database), nil
}
