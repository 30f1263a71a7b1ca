package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/JaimeStill/event-builder/internal/config"
	"github.com/JaimeStill/event-builder/internal/events"
	"github.com/JaimeStill/event-builder/migrations"
	"github.com/JaimeStill/event-builder/pkg/database"
	"github.com/JaimeStill/event-builder/pkg/lifecycle"
	"github.com/JaimeStill/event-builder/pkg/logging"
)

func main() {
	var (
		dsn  = flag.String("dsn", "", "Database connection string (overrides DATABASE_URL)")
		all  = flag.Bool("all", false, "Run all seeders")
		evts = flag.Bool("events", false, "Seed events")
		file = flag.String("file", "", "External seed file (overrides embedded)")
		list = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	if !*all && !*evts {
		fmt.Println("usage: seed [-dsn <connection-string>] [-all|-events] [-file <path>] [-list]")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatalf("config finalize failed: %v", err)
	}
	if *dsn != "" {
		cfg.Database.DSN = *dsn
	}

	logger := logging.New(&cfg.Logging)
	lc := lifecycle.New()

	db, err := database.New(&cfg.Database, migrations.FS, logger)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.Start(lc); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer lc.Shutdown(5 * time.Second)

	sys := events.New(db.Connection(), logger)
	ctx := context.Background()

	if *file != "" {
		if seeder, ok := getSeeder("events"); ok {
			seeder.(*EventSeeder).SetFile(*file)
		}
	}

	if *all {
		if err := runAllSeeders(ctx, sys); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		fmt.Println("all seeders completed successfully")
		return
	}

	if err := runSeeder(ctx, sys, "events"); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Println("events seeded successfully")
}
