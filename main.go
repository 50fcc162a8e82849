package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minsu-han/corpsite/internal/config"
	"github.com/minsu-han/corpsite/internal/database"
	"github.com/minsu-han/corpsite/internal/logging"
	"github.com/minsu-han/corpsite/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logging.New("info", false)
		l.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(cfg.Logging.Level, cfg.Logging.Pretty)

	var store database.Store
	switch cfg.Database.Driver {
	case "postgres":
		store, err = database.NewPostgres(cfg.Database.DSN)
	default:
		store, err = database.New(cfg.Database.Path)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer store.Close()
	log.Info().Str("backend", store.DatabaseType()).Msg("store ready")

	srv := server.New(cfg, store, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.Addr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}
}
