// Standalone seeder for local development.
//
// The same data can be loaded at startup with the -seed flag; this script
// exists for provisioning a database without starting the server.
//
// Usage: go run scripts/seed.go

package main

import (
	"log"

	"lms_backend/internal/config"
	"lms_backend/pkg/database"
	"lms_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done")
}
