package main

import (
	"context"
	"os"

	"github.com/oggyb/golf-buddy/internal/config"
	"github.com/oggyb/golf-buddy/internal/db"
	"github.com/oggyb/golf-buddy/internal/logger"
	"github.com/oggyb/golf-buddy/internal/seed"
)

func main() {
	cfg := config.New()
	logger.InitFromConfig(cfg)
	log := logger.With("cmd", "seed")

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	if err := seed.Run(context.Background(), database, cfg.Seed.Users, cfg.Seed.Courses); err != nil {
		log.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	log.Info("seeding completed", "users", cfg.Seed.Users, "courses", cfg.Seed.Courses)
}
