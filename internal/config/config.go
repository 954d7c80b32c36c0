package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes the configuration values the application reads. Handlers
// and tests depend on this interface rather than on *Config directly.
type Provider interface {
	GetAppName() string
	GetServerAddr() string
	GetSessionSecret() string
	GetSessionSecure() bool
	GetLogFormat() string
	GetLogLevel() string
	GetRateLimitPerMinute() int
	GetShutdownTimeout() time.Duration
}

// Config holds all configuration for the application.
type Config struct {
	AppName            string
	ServerAddr         string
	SessionSecret      string
	SessionSecure      bool
	LogFormat          string
	LogLevel           string
	RateLimitPerMinute int
	ShutdownTimeout    time.Duration
}

const minSessionSecretLen = 16

// New loads configuration from environment variables, reading a .env file
// first when one is present.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppName:       getEnv("APP_NAME", "Goby"),
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.SessionSecure, err = strconv.ParseBool(getEnv("SESSION_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_SECURE: %w", err)
	}
	if cfg.RateLimitPerMinute, err = strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "10")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have no usable default.
func (c *Config) Validate() error {
	if len(c.SessionSecret) < minSessionSecretLen {
		return fmt.Errorf("SESSION_SECRET must be set and at least %d bytes long", minSessionSecretLen)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetAppName() string                { return c.AppName }
func (c *Config) GetServerAddr() string             { return c.ServerAddr }
func (c *Config) GetSessionSecret() string          { return c.SessionSecret }
func (c *Config) GetSessionSecure() bool            { return c.SessionSecure }
func (c *Config) GetLogFormat() string              { return c.LogFormat }
func (c *Config) GetLogLevel() string               { return c.LogLevel }
func (c *Config) GetRateLimitPerMinute() int        { return c.RateLimitPerMinute }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }
