package main

import (
	"log"
	"os"

	"campus-events/internal/api"
	"campus-events/internal/config"
	"campus-events/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := storage.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if cfg.SeedOnStart {
		storage.Seed(db)
	}

	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		log.Fatalf("failed to create static dir: %v", err)
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := api.Serve(db, cfg); err != nil {
		log.Fatal(err)
	}
}
