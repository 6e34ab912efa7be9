package main

import (
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/tikket/tikket-server/pkg/config"
	"github.com/tikket/tikket-server/pkg/migrations/tikketdb"
	"github.com/tikket/tikket-server/pkg/pgutil"
	mghelper "github.com/tikket/tikket-server/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	// Connect to database
	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for Tikket database (%s)...\n", cfg.Database.Database)

	// Create migrator
	migrator := migrate.NewMigrator(db, tikketdb.Migrations)

	// Run migrations with args
	err = mghelper.RunMigrations(migrator, flag.Args()...)
	if err != nil {
		log.Fatalf("migration failed: %s", err.Error())
	}
}
