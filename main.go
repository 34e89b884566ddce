package main

import (
	"flag"
	"log"
	"path/filepath"

	"lms_backend/internal/app"
	"lms_backend/internal/config"
	"lms_backend/pkg/configwatcher"
	"lms_backend/pkg/database"
)

// @title LMS Backend API
// @version 1.0
// @description Course authoring, enrollment and progress tracking for a small learning platform.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

// @BasePath /
func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	seed := flag.Bool("seed", false, "seed demo users and a sample course after migrating")
	configPath := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.MigrateOnly = *migrateOnly
	cfg.Seed = *seed

	if cfg.MigrateOnly {
		if _, err := database.InitDB(&cfg.Database); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migration complete")
		return
	}

	application := app.NewApp(cfg)

	go configwatcher.WatchConfig(filepath.Join(*configPath, "config.yaml"), cfg, func(newCfg interface{}) {
		if updated, ok := newCfg.(*config.Config); ok {
			*cfg = *updated
			log.Println("Config reloaded")
		}
	})

	application.Run()
}
