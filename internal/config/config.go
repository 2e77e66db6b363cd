package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	ApiPort         string
	AllowedOrigin   string
	ShutdownTimeout time.Duration

	// Store
	SeedDemoData bool

	// Auth
	BcryptCost int

	// WebSocket
	WsSendBuffer   int
	WsReadLimit    int64
	WsWriteTimeout time.Duration

	// Rate Limiting
	RateLimitRefillRate int // tokens per second, per client IP
	RateLimitBucketSize int
}

// Load configuration from environment variables, reading a .env file first
// if one is present.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	var err error

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	cfg.ApiPort = getEnv("API_PORT", "8080")
	cfg.AllowedOrigin = getEnv("ALLOWED_ORIGIN", "*")

	shutdownSeconds, err := strconv.Atoi(getEnv("SHUTDOWN_TIMEOUT_SECONDS", "15"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT_SECONDS: %w", err)
	}
	cfg.ShutdownTimeout = time.Duration(shutdownSeconds) * time.Second

	cfg.SeedDemoData, err = strconv.ParseBool(getEnv("SEED_DEMO_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA: %w", err)
	}

	cfg.BcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	cfg.WsSendBuffer, err = strconv.Atoi(getEnv("WS_SEND_BUFFER", "32"))
	if err != nil {
		return nil, fmt.Errorf("invalid WS_SEND_BUFFER: %w", err)
	}

	wsReadLimit, err := strconv.ParseInt(getEnv("WS_READ_LIMIT_BYTES", "4096"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid WS_READ_LIMIT_BYTES: %w", err)
	}
	cfg.WsReadLimit = wsReadLimit

	wsWriteTimeoutSeconds, err := strconv.Atoi(getEnv("WS_WRITE_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid WS_WRITE_TIMEOUT_SECONDS: %w", err)
	}
	cfg.WsWriteTimeout = time.Duration(wsWriteTimeoutSeconds) * time.Second

	cfg.RateLimitRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_REFILL_RATE", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_RATE: %w", err)
	}
	cfg.RateLimitBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_BUCKET_SIZE", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BUCKET_SIZE: %w", err)
	}

	return cfg, nil
}
