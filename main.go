package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/saieswarnookala/project-X/internal/api"
	"github.com/saieswarnookala/project-X/internal/config"
	"github.com/saieswarnookala/project-X/internal/hub"
	"github.com/saieswarnookala/project-X/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Initialize the entity store. All state lives here and is lost on exit.
	st := store.New()
	if cfg.SeedDemoData {
		if err := st.SeedDemoData(cfg.BcryptCost); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		logger.Info().Msg("seeded demo users")
	}

	// Initialize the notification hub
	h := hub.New(cfg, logger)

	router := api.SetupRouter(cfg, logger, st, h)
	srv := &http.Server{
		Addr:    ":" + cfg.ApiPort,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.ApiPort).Msg("API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info().Str("signal", sig.String()).Msg("shutting down")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}
	// Drop any websocket connections Shutdown left hanging.
	h.Close()

	logger.Info().Msg("server stopped")
}
