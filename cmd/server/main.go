package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/oggyb/golf-buddy/internal/app"
	"github.com/oggyb/golf-buddy/internal/cache"
	"github.com/oggyb/golf-buddy/internal/config"
	"github.com/oggyb/golf-buddy/internal/db"
	"github.com/oggyb/golf-buddy/internal/logger"
	"github.com/oggyb/golf-buddy/internal/seed"
	"github.com/oggyb/golf-buddy/internal/server"
	"github.com/oggyb/golf-buddy/internal/service/buddy"
	"github.com/oggyb/golf-buddy/internal/service/chat"
	"github.com/oggyb/golf-buddy/internal/service/profile"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB (migrates on open)
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return 1
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return 1
	}

	appCtx := app.New(cfg, database, redisCache, log)

	if cfg.App.ENV == "development" {
		if err := seed.Run(ctx, database, cfg.Seed.Users, cfg.Seed.Courses); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registrars := []server.Registrar{
		profile.NewRegistrar(appCtx),
		buddy.NewRegistrar(appCtx),
		chat.NewRegistrar(appCtx),
	}

	admin := server.NewAdminRouter(map[string]server.Pinger{
		"db":    appCtx.Store,
		"redis": redisCache,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting gRPC server", "addr", cfg.GRPC.Host+":"+cfg.GRPC.Port)
		return server.StartGRPCServer(gctx, cfg, log, registrars...)
	})
	g.Go(func() error {
		log.Info("starting admin server", "addr", cfg.HTTP.Addr)
		return server.StartAdminServer(gctx, cfg.HTTP.Addr, admin, log)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "err", err)
		return 1
	}
	log.Info("shutdown complete")
	return 0
}
