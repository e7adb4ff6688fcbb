package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// config is the API's runtime configuration, read from the environment.
type config struct {
	ListenAddr      string
	LogLevel        string
	ShutdownTimeout time.Duration
	// ExportOTLP is set when OTEL_EXPORTER_OTLP_ENDPOINT names a collector.
	ExportOTLP bool
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

func loadConfig() (config, error) {
	if err := loadDotEnv(); err != nil {
		return config{}, err
	}

	cfg := config{
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		ShutdownTimeout: 5 * time.Second,
		ExportOTLP:      os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "",
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return config{}, fmt.Errorf("parse SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
