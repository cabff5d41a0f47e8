package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAddr        = ":8080"
	defaultIdleTimeout = 30 * time.Minute
	minSecretLength    = 16
)

// ErrMissingSessionSecret is returned when SESSION_SECRET is unset or too short.
var ErrMissingSessionSecret = errors.New("SESSION_SECRET must be set to at least 16 bytes")

// Config holds all configuration for the application.
type Config struct {
	Addr          string
	SessionSecret string
	// IdleTimeout is how long an untouched form session is kept in memory.
	IdleTimeout time.Duration
	// StaticDir, when set, serves assets from disk instead of the embedded copy.
	StaticDir string
	LogFormat string
	LogLevel  string
}

// New loads configuration from a .env file, if present, and the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:          os.Getenv("APP_ADDR"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		StaticDir:     os.Getenv("STATIC_DIR"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		IdleTimeout:   defaultIdleTimeout,
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}

	if raw := os.Getenv("SESSION_IDLE_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse SESSION_IDLE_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive, got %s", d)
		}
		cfg.IdleTimeout = d
	}

	if len(cfg.SessionSecret) < minSecretLength {
		return nil, ErrMissingSessionSecret
	}
	return cfg, nil
}
