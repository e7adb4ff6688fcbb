package main

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected listen addr %q, got %q", ":8080", cfg.ListenAddr)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected log level %q, got %q", "info", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected shutdown timeout 5s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.ExportOTLP {
		t.Fatal("did not expect OTLP export without an endpoint")
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Fatalf("expected listen addr %q, got %q", ":9090", cfg.ListenAddr)
	}
	if cfg.ShutdownTimeout != 250*time.Millisecond {
		t.Fatalf("expected shutdown timeout 250ms, got %s", cfg.ShutdownTimeout)
	}
	if !cfg.ExportOTLP {
		t.Fatal("expected OTLP export with an endpoint set")
	}
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	if _, err := loadConfig(); err == nil {
		t.Fatal("expected an error for an unparseable SHUTDOWN_TIMEOUT")
	}
}
