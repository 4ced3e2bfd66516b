// Package db opens the catalog database and applies its schema.
package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// sqlDriver maps a configured driver to the database/sql driver name.
// modernc/sqlite registers as "sqlite" (CGO-free).
var sqlDriver = map[string]string{
	"sqlite3":  "sqlite",
	"mysql":    "mysql",
	"postgres": "postgres",
}

// New opens and pings a database for driver (sqlite3, mysql or postgres).
func New(driver, dsn string) (*sqlx.DB, error) {
	name, ok := sqlDriver[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported DB driver %q: must be sqlite3, mysql, or postgres", driver)
	}

	conn, err := sqlx.Connect(name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == "sqlite3" {
		if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	}
	return conn, nil
}
