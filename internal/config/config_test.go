package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"BIND_ADDR", "PORT", "SERVICE_NAME", "SERVICE_VERSION",
		"LOG_LEVEL", "SHUTDOWN_TIMEOUT", "HOSTNAME_MODE", "POD_NAME",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Fatalf("expected 0.0.0.0:8080, got %s", cfg.Addr())
	}
	if cfg.ServiceName != "demo-app" {
		t.Fatalf("expected demo-app, got %q", cfg.ServiceName)
	}
	if cfg.Version != "beta-test-3" {
		t.Fatalf("expected beta-test-3, got %q", cfg.Version)
	}
	if cfg.Host.Mode != "request" {
		t.Fatalf("expected request hostname mode, got %q", cfg.Host.Mode)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BIND_ADDR", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("HOSTNAME_MODE", "process")
	t.Setenv("POD_NAME", "demo-app-7f9c")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9090" {
		t.Fatalf("expected 127.0.0.1:9090, got %s", cfg.Addr())
	}
	if cfg.Host.Mode != "process" || cfg.Host.PodName != "demo-app-7f9c" {
		t.Fatalf("unexpected host config: %+v", cfg.Host)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]struct {
		name  string
		value string
	}{
		"non numeric port":  {"PORT", "http"},
		"bad bind address":  {"BIND_ADDR", "localhost:80"},
		"unknown mode":      {"HOSTNAME_MODE", "dns"},
		"unknown log level": {"LOG_LEVEL", "trace"},
		"bad duration":      {"SHUTDOWN_TIMEOUT", "ten"},
		"negative duration": {"SHUTDOWN_TIMEOUT", "-1s"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.name, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.name, tc.value)
			}
		})
	}
}
