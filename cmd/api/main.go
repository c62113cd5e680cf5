package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/baharkarakas/player-registry/internal/api"
	"github.com/baharkarakas/player-registry/internal/config"
	"github.com/baharkarakas/player-registry/internal/db"
	"github.com/baharkarakas/player-registry/internal/logger"
	"github.com/baharkarakas/player-registry/internal/metrics"
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/baharkarakas/player-registry/internal/repository/memory"
	"github.com/baharkarakas/player-registry/internal/repository/postgres"
	"github.com/baharkarakas/player-registry/internal/services"
	"github.com/baharkarakas/player-registry/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	var repos repository.Repositories
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, int32(cfg.DBMaxConns))
		if err != nil {
			log.Error("db connect", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				log.Error("migrations", "err", err)
				os.Exit(1)
			}
		}
		repos = postgres.NewRepositories(pool)
	default:
		repos = memory.NewRepositories(clock)
	}

	wp := worker.NewPool(cfg.Workers)
	defer wp.Stop()

	playerSvc := services.NewPlayerService(repos.Players, repos.AuditLogs, wp, clock, cfg.ListingPath)

	metrics.Init()
	r, err := api.NewRouter(cfg, playerSvc)
	if err != nil {
		log.Error("router", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}
