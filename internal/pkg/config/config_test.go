package config

import (
	"context"
	"strings"
	"testing"

	"github.com/sethvargo/go-envconfig"
)

func loadWith(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	var cfg Config
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	})
	return &cfg, err
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	_, err := loadWith(t, map[string]string{})
	if err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("error should name the missing variable, got: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{"JWT_SECRET": "test-secret"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.Database.URL == "" {
		t.Fatalf("expected a documented database default")
	}
	if cfg.JWTSecret != "test-secret" {
		t.Fatalf("unexpected secret: %s", cfg.JWTSecret)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{
		"JWT_SECRET":   "s",
		"PORT":         "9000",
		"DATABASE_URL": "postgres://db:5432/app",
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.Database.URL != "postgres://db:5432/app" {
		t.Fatalf("unexpected database url: %s", cfg.Database.URL)
	}
}
