// Package main is the entry point for blastgrid.
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

	"github.com/cenkalti/backoff/v5"
	"github.com/joho/godotenv"

	"github.com/samdwyer/blastgrid/internal/game"
	"github.com/samdwyer/blastgrid/internal/telemetry"
)

// telemetryTries bounds how long startup waits on the exporter.
const telemetryTries = 3

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_BLASTGRID_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, diag, closeLog, err := openLogs(cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := backoff.Retry(ctx, func() (func(context.Context) error, error) {
		return telemetry.Setup(ctx, diag)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(telemetryTries))
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				diag.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// openLogs returns the structured game logger and the diagnostics logger.
// The terminal belongs to the game while it runs, so both discard output
// unless a log file is configured.
func openLogs(path string) (*slog.Logger, *log.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), log.New(io.Discard, "", 0), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, nil))
	diag := log.New(f, "diag: ", log.LstdFlags)
	return logger, diag, func() { f.Close() }, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_BLASTGRID_API_KEY")
	dataset := os.Getenv("HONEYCOMB_BLASTGRID_DATASET")
	if dataset == "" {
		dataset = "blastgrid" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
