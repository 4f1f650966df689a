package config

import (
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(os.Stderr)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "AUTH_SECRET", "TOKEN_TTL", "REFRESH_TTL", "SEED_USER", "SEED_PASSWORD",
		"BASE_URL", "ENABLE_HTTPS", "LOG_LEVEL", "AUTH_PATH",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)
	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("BaseURL default expected 'localhost:8080', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8080" {
		t.Fatalf("ServerURL default expected 'http://localhost:8080', got %q", cfg.ServerURL)
	}
	if got := cfg.PrivateURL(); got != "http://localhost:8080/api/auth/private" {
		t.Fatalf("PrivateURL default mismatch: %q", got)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("TokenTTL default expected 15m, got %s", cfg.TokenTTL)
	}
	if cfg.RefreshTTL != 7*24*time.Hour {
		t.Fatalf("RefreshTTL default expected 168h, got %s", cfg.RefreshTTL)
	}
	if cfg.DatabaseDSN == "" || cfg.LogLevel != "info" {
		t.Fatalf("server defaults must be filled: dsn=%q level=%q", cfg.DatabaseDSN, cfg.LogLevel)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("AUTH_PATH", "/api/me")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("REFRESH_TTL", "48h")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.PrivateURL() != "https://example.com:443/api/me" {
		t.Fatalf("PrivateURL must use AUTH_PATH, got %q", cfg.PrivateURL())
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("TokenTTL expected 1h, got %s", cfg.TokenTTL)
	}
	if cfg.RefreshTTL != 48*time.Hour {
		t.Fatalf("RefreshTTL expected 48h, got %s", cfg.RefreshTTL)
	}
}

func TestNewConfig_InvalidValuesFallback(t *testing.T) {
	clearEnv(t)
	// BASE_URL со схемой и AUTH_PATH без ведущего слэша откатываются на значения по умолчанию
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("AUTH_PATH", "api/auth/private")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8080" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8080', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8080") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
	if cfg.AuthPath != "/api/auth/private" {
		t.Fatalf("invalid AUTH_PATH must fallback, got %q", cfg.AuthPath)
	}
}

func TestConfig_Endpoint(t *testing.T) {
	cfg := &Config{ServerURL: "http://h:1/"}
	if got := cfg.Endpoint("/api/auth/register"); got != "http://h:1/api/auth/register" {
		t.Fatalf("Endpoint mismatch: %q", got)
	}
	if got := cfg.PrivateURL(); got != "http://h:1/api/auth/private" {
		t.Fatalf("PrivateURL with empty AuthPath must use default, got %q", got)
	}
}
