package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/holocron/holocron-api/internal/config"
	"github.com/holocron/holocron-api/internal/logger"
	"github.com/holocron/holocron-api/internal/repository"
	"github.com/holocron/holocron-api/internal/router"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.New(cfg.Log, cfg.Env)
	if envErr != nil {
		log.Warn().Msg("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, closeStores, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("opening stores")
	}
	defer closeStores()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.New(cfg, log, stores),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("driver", cfg.Database.Driver).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced shutdown")
		return
	}

	log.Info().Msg("server stopped")
}

// openStores connects the configured backend and returns a cleanup func.
func openStores(ctx context.Context, cfg config.Config, log zerolog.Logger) (router.Stores, func(), error) {
	if cfg.Database.Driver == "memory" {
		log.Warn().Msg("using in-memory store, data is lost on exit")
		return router.MemoryStores(repository.NewMemoryStore()), func() {}, nil
	}

	db, err := repository.NewDB(ctx, cfg.Database)
	if err != nil {
		return router.Stores{}, nil, err
	}

	if cfg.Database.Migrate {
		if err := repository.Migrate(ctx, db, log); err != nil {
			db.Close()
			return router.Stores{}, nil, err
		}
	}

	return router.MySQLStores(db), func() { db.Close() }, nil
}
