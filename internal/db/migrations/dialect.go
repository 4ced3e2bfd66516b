// Package migrations holds the goose Go migrations for the catalog schema.
// They are Go rather than SQL because column types differ per backend.
package migrations

// dialect is the goose dialect of the database being migrated.
var dialect string

// SetDialect selects the DDL variant ("sqlite3", "postgres" or "mysql").
// The db package calls it before goose.Up.
func SetDialect(d string) {
	dialect = d
}
