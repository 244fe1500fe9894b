// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetShutdownTimeout() time.Duration
}

// RateLimitConfig provides settings for the per-IP rate limiter.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// PhoneConfig provides settings for the phone lookup module.
type PhoneConfig interface {
	GetPhoneDefaultRegion() string
	GetPhoneBatchConcurrency() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                   string
	HTTPAddr              string
	CORSAllowAll          bool
	CORSOrigins           []string
	CORSAllowCreds        bool
	ShutdownTimeout       time.Duration
	RateLimitRPS          float64
	RateLimitBurst        int
	PhoneDefaultRegion    string
	PhoneBatchConcurrency int
}

const (
	defaultShutdownTimeout       = 10 * time.Second
	defaultRateLimitRPS          = 10.0
	defaultRateLimitBurst        = 20
	defaultPhoneBatchConcurrency = 8
)

// Load reads configuration from the environment, after loading an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                   getEnv("APP_ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:          corsAllowAll,
		CORSOrigins:           corsOrigins,
		CORSAllowCreds:        strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		ShutdownTimeout:       durationOr(getEnv("SHUTDOWN_TIMEOUT", ""), defaultShutdownTimeout),
		RateLimitRPS:          positiveFloatOr(getEnv("RATE_LIMIT_RPS", ""), defaultRateLimitRPS),
		RateLimitBurst:        positiveIntOr(getEnv("RATE_LIMIT_BURST", ""), defaultRateLimitBurst),
		PhoneDefaultRegion:    strings.ToUpper(strings.TrimSpace(getEnv("PHONE_DEFAULT_REGION", "VN"))),
		PhoneBatchConcurrency: positiveIntOr(getEnv("PHONE_BATCH_CONCURRENCY", ""), defaultPhoneBatchConcurrency),
	}

	if cfg.PhoneDefaultRegion == "" {
		cfg.PhoneDefaultRegion = "VN"
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// =============================================================================
// Interface Implementations
// =============================================================================

func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool             { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool           { return c.CORSAllowCreds }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }
func (c *Config) GetRateLimitRPS() float64          { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int            { return c.RateLimitBurst }
func (c *Config) GetPhoneDefaultRegion() string     { return c.PhoneDefaultRegion }
func (c *Config) GetPhoneBatchConcurrency() int     { return c.PhoneBatchConcurrency }

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func durationOr(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func positiveIntOr(value string, fallback int) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || result <= 0 {
		return fallback
	}
	return result
}

func positiveFloatOr(value string, fallback float64) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || result <= 0 {
		return fallback
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
