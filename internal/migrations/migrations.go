// Package migrations embeds the goose SQL migrations of both storage
// backends.
package migrations

import "embed"

// SQLite holds the local database schema under the "sqlite" directory.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// Postgres holds the server database schema under the "postgres" directory.
//
//go:embed postgres/*.sql
var Postgres embed.FS

const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)
