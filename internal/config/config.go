// Package config gathers every runtime knob from the environment.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	TokenTTL  time.Duration

	UploadDir string

	// connection pool
	DBMaxOpen     int
	DBMaxIdle     int
	DBMaxLifetime time.Duration

	// login attempts per client IP, per second (burst = LoginRateBurst)
	LoginRate      float64
	LoginRateBurst int
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := &Config{
		Port:        getenv("PORT", "3001"),
		DatabaseURL: getenv("DATABASE_URL", ""),
		JWTSecret:   getenv("JWT_SECRET", ""),
		UploadDir:   getenv("UPLOAD_DIR", "uploads"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	ttl, err := parseTTL(getenv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = ttl

	cfg.DBMaxOpen = atoi(getenv("DB_MAX_OPEN", "25"))
	cfg.DBMaxIdle = atoi(getenv("DB_MAX_IDLE", "25"))
	cfg.DBMaxLifetime = time.Duration(atoi(getenv("DB_MAX_LIFETIME", "300"))) * time.Second

	cfg.LoginRate, _ = strconv.ParseFloat(getenv("LOGIN_RATE", "1"), 64)
	cfg.LoginRateBurst = atoi(getenv("LOGIN_RATE_BURST", "5"))

	return cfg, nil
}

// helper to read env with default
func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// parseTTL accepts durations such as "15m", "24h", "20s", or a bare number
// of hours ("24").
func parseTTL(ttlStr string) (time.Duration, error) {
	if strings.HasSuffix(ttlStr, "m") ||
		strings.HasSuffix(ttlStr, "h") ||
		strings.HasSuffix(ttlStr, "s") {
		return time.ParseDuration(ttlStr)
	}

	hours, err := strconv.Atoi(ttlStr)
	if err != nil {
		return 0, err
	}
	return time.Duration(hours) * time.Hour, nil
}
