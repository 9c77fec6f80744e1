package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr    string
	CORSOrigins []string

	// Stores
	RedisAddr   string
	RedisPass   string
	DatabaseURL string

	// Upstream CRM API
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// Sessions
	SessionTTL   time.Duration
	CookieMaxAge int
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	sessionTTL := getEnvDuration("SESSION_TTL", 12*time.Hour)

	return AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8000"),
		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),

		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASS", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		UpstreamBaseURL: getEnv("UPSTREAM_API_BASE_URL", "http://localhost:4000/api"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second),

		SessionTTL:   sessionTTL,
		CookieMaxAge: int(sessionTTL / time.Second),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
