package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/kenone20/domainogen/pkg/config"
	"github.com/kenone20/domainogen/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS); err != nil {
		slog.Error("library migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("library migrations applied")
}
