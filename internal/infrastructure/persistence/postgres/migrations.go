package postgres

import "embed"

// Migrations holds the catalog schema, applied at startup through
// pkg/postgres.RunMigrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations that holds the files.
const MigrationsDir = "migrations"
