// Command migrate applies the embedded call_sessions migrations to the configured Postgres database.
package main

import (
	"context"
	"flag"
	"log"

	"ivr-server/internal/config"
	"ivr-server/internal/observability"
	"ivr-server/internal/store/migrations"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	flag.Parse()

	ctx := context.Background()
	logger := observability.NewLogger()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadSessionOnly()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}
	if cfg.Session.Backend != config.SessionBackendPostgres {
		log.Fatalf("SESSION_BACKEND=%s has no schema to migrate", cfg.Session.Backend)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "direction", Value: *direction})
	if err := migrations.Run(cfg.Database.ConnectionString(), *direction); err != nil {
		logger.Fatal(ctx, "migration failed", err)
	}
	logger.Info(ctx, "migrations applied")
}
