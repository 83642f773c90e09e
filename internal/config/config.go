package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	devJWTSecret = "dev-secret-change-in-production"
	// hex of "dev-seal-key-change-in-prod!!!!!"
	devSealKey = "6465762d7365616c2d6b65792d6368616e67652d696e2d70726f642121212121"
)

var (
	ErrDevJWTSecret = errors.New("JWT_SECRET must be set in production environment")
	ErrDevSealKey   = errors.New("SEAL_KEY must be set in production environment")
)

type Config struct {
	Port             string
	Env              string
	DatabaseDSN      string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	SealKey          string
	CORSOrigins      []string
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Load reads the configuration from the environment. Unparseable numbers and
// durations fall back to their defaults with a warning. Running in production
// with the development secrets is an error.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passvault?parseTime=true"),
		JWTSecret:        getEnv("JWT_SECRET", devJWTSecret),
		JWTAccessExpiry:  getDuration("JWT_ACCESS_EXPIRY", time.Hour),
		JWTRefreshExpiry: getDuration("JWT_REFRESH_EXPIRY", 24*time.Hour),
		SealKey:          getEnv("SEAL_KEY", devSealKey),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		RateLimitRPS:     getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:   getInt("RATE_LIMIT_BURST", 10),
	}

	if cfg.IsProduction() {
		if cfg.JWTSecret == devJWTSecret {
			return cfg, ErrDevJWTSecret
		}
		if cfg.SealKey == devSealKey {
			return cfg, ErrDevSealKey
		}
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
