package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetcher   FetcherConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Users     UsersConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetcherConfig controls how target pages are fetched.
type FetcherConfig struct {
	// Timeout is the deadline for a single page fetch.
	Timeout time.Duration // default: 30s

	// MaxBodySize caps how many bytes of the response body are read.
	MaxBodySize int64 // default: 10 MB

	// Proxy is an optional proxy URL applied to all fetches.
	// Format: "http://host:port" or "socks5://host:port".
	Proxy string

	// UserAgent overrides the default Chrome user agent string.
	UserAgent string
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication. Off by default so the
	// inspection endpoints are open, matching the reference deployment.
	Enabled bool // default: false

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-identity rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per identity.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per identity.
	Burst int // default: 10
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// UsersConfig points at the external identity service whose user listing
// is logged once per inspection request. An empty BaseURL disables the call.
type UsersConfig struct {
	BaseURL string
	Timeout time.Duration // default: 5s
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("PAGECHECK_HOST", "0.0.0.0"),
			Port: envIntOr("PAGECHECK_PORT", 8080),
			Mode: envOr("PAGECHECK_MODE", "release"),
		},
		Fetcher: FetcherConfig{
			Timeout:     envDurationOr("PAGECHECK_FETCH_TIMEOUT", 30*time.Second),
			MaxBodySize: envInt64Or("PAGECHECK_MAX_BODY_SIZE", 10*1024*1024),
			Proxy:       os.Getenv("PAGECHECK_PROXY"),
			UserAgent:   os.Getenv("PAGECHECK_USER_AGENT"),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("PAGECHECK_AUTH_ENABLED", false),
			APIKeys: envSliceOr("PAGECHECK_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("PAGECHECK_RATE_RPS", 5.0),
			Burst:             envIntOr("PAGECHECK_RATE_BURST", 10),
		},
		Log: LogConfig{
			Level:  envOr("PAGECHECK_LOG_LEVEL", "info"),
			Format: envOr("PAGECHECK_LOG_FORMAT", "json"),
		},
		Users: UsersConfig{
			BaseURL: os.Getenv("PAGECHECK_USERS_URL"),
			Timeout: envDurationOr("PAGECHECK_USERS_TIMEOUT", 5*time.Second),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64Or(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
