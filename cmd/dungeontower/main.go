// Package main is the entry point for Dungeon Tower.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/dungeontower/internal/game"
	"github.com/samdwyer/dungeontower/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONBAND_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}
}

// run plays one session and releases the log file, signal handler and
// exporter before returning.
func run(cfg game.Config) error {
	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetry.Options{
			APIKey:  cfg.HoneycombKey,
			Dataset: cfg.HoneycombDataset,
		})
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				// ctx is cancelled by now; give the exporter its own context to flush.
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	logger.Info("starting", slog.Int64("seed", cfg.Seed), slog.Bool("telemetry", cfg.Telemetry))

	g, err := game.New(cfg, logger)
	if err != nil {
		logger.Error("game init failed", slog.String("error", err.Error()))
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	// The loop blocks on terminal input, so a signal stops it from a second goroutine.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer stop()
		return g.Run(egCtx)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		g.Stop()
		return nil
	})

	if err := eg.Wait(); err != nil {
		log.Printf("Game error: %v", err)
	}
	logger.Info("stopped")
	return nil
}

// newLogger returns a JSON logger writing to path, or a discarding logger
// when path is empty. The terminal is owned by the game while it runs.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewJSONHandler(f, nil)), func() { f.Close() }, nil
}
