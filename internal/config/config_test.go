package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("MASTER_EMAIL", "master@example.com")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.MongoDatabase != "form-review" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
	if cfg.UserCollection != "users" || cfg.FormCollection != "forms" {
		t.Errorf("collections = %q / %q", cfg.UserCollection, cfg.FormCollection)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if string(cfg.JWTSecret) != "test-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.MasterEmail != "master@example.com" {
		t.Errorf("MasterEmail = %q", cfg.MasterEmail)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "3s")
	t.Setenv("API_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg := Load()

	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestParseListFallback(t *testing.T) {
	t.Setenv("TEST_LIST_KEY", " , ,")
	got := parseList("TEST_LIST_KEY", []string{"fallback"})
	if len(got) != 1 || got[0] != "fallback" {
		t.Errorf("parseList = %v, want [fallback]", got)
	}
}
