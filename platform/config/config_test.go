package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "HTTP_ADDR", "CORS_ORIGINS", "CORS_ALLOW_ALL", "CORS_ALLOW_CREDENTIALS",
		"SHUTDOWN_TIMEOUT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"PHONE_DEFAULT_REGION", "PHONE_BATCH_CONCURRENCY",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000")
	t.Setenv("PHONE_DEFAULT_REGION", "VN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.GetHTTPAddr() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.GetHTTPAddr())
	}
	if cfg.GetShutdownTimeout() != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.GetShutdownTimeout())
	}
	if cfg.GetRateLimitRPS() != defaultRateLimitRPS || cfg.GetRateLimitBurst() != defaultRateLimitBurst {
		t.Fatalf("expected default rate limits, got %v/%d", cfg.GetRateLimitRPS(), cfg.GetRateLimitBurst())
	}
	if cfg.GetPhoneBatchConcurrency() != defaultPhoneBatchConcurrency {
		t.Fatalf("expected default batch concurrency, got %d", cfg.GetPhoneBatchConcurrency())
	}
	if cfg.GetPhoneDefaultRegion() != "VN" {
		t.Fatalf("expected VN region, got %q", cfg.GetPhoneDefaultRegion())
	}
	if cfg.GetCORSAllowAll() {
		t.Fatal("expected CORS allow-all to be disabled")
	}
	if cfg.IsProduction() {
		t.Fatal("expected development environment")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("CORS_ORIGINS", "https://shop.example, *")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")
	t.Setenv("PHONE_DEFAULT_REGION", " us ")
	t.Setenv("PHONE_BATCH_CONCURRENCY", "-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.IsProduction() {
		t.Fatal("expected production environment")
	}
	if !cfg.GetCORSAllowAll() {
		t.Fatal("expected wildcard origin to enable allow-all")
	}
	if len(cfg.GetCORSOrigins()) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.GetCORSOrigins())
	}
	if cfg.GetShutdownTimeout() != 3*time.Second {
		t.Fatalf("expected 3s, got %s", cfg.GetShutdownTimeout())
	}
	if cfg.GetRateLimitRPS() != 2.5 || cfg.GetRateLimitBurst() != 4 {
		t.Fatalf("unexpected rate limits %v/%d", cfg.GetRateLimitRPS(), cfg.GetRateLimitBurst())
	}
	if cfg.GetPhoneDefaultRegion() != "US" {
		t.Fatalf("expected US, got %q", cfg.GetPhoneDefaultRegion())
	}
	if cfg.GetPhoneBatchConcurrency() != defaultPhoneBatchConcurrency {
		t.Fatalf("expected invalid concurrency to fall back, got %d", cfg.GetPhoneBatchConcurrency())
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected split result %v", got)
	}
}
