// Package migrations embeds the goose migrations for the SQL backends, one
// directory per dialect.
package migrations

import "embed"

// Migrations contains postgres/*.sql and sqlite/*.sql.
//
//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS

const (
	PostgresDir = "postgres"
	SQLiteDir   = "sqlite"
)
