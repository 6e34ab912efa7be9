// Package tikketdb holds all the migrations for the Tikket database
package tikketdb

import "github.com/uptrace/bun/migrate"

// Migrations is the registry all numbered migration files register into.
var Migrations = migrate.NewMigrations()
