// Package main provides a schema migration runner for the SQLite save store.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"

	"github.com/cory-johannsen/wildshelper/internal/config"
	"github.com/cory-johannsen/wildshelper/internal/storage/sqlite"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file")
	dbPath := flag.String("db", "", "SQLite database path (overrides storage.path)")
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "number of steps (0 = all)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	path := cfg.Storage.Path
	if *dbPath != "" {
		path = *dbPath
	} else if cfg.Storage.Backend != "sqlite" {
		log.Fatalf("storage.backend is %q; pass -db or configure the sqlite backend", cfg.Storage.Backend)
	}

	db, err := sqlite.OpenDB(path)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	m, err := sqlite.NewMigrator(db)
	if err != nil {
		log.Fatalf("creating migrator: %v", err)
	}
	defer m.Close()

	switch *direction {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
	default:
		log.Fatalf("invalid direction %q: must be 'up' or 'down'", *direction)
	}

	noChange := errors.Is(err, migrate.ErrNoChange)
	if err != nil && !noChange {
		log.Fatalf("migration failed: %v", err)
	}

	version, dirty, _ := m.Version()
	elapsed := time.Since(start)

	if noChange {
		fmt.Fprintf(os.Stdout, "no changes (version=%d dirty=%v) [%s]\n", version, dirty, elapsed)
	} else {
		fmt.Fprintf(os.Stdout, "migrated %s %s to version=%d dirty=%v [%s]\n", path, *direction, version, dirty, elapsed)
	}
}
