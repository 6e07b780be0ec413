package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application
type Config struct {
	fx.Out

	LogLevel          zapcore.Level
	DatabaseURL       string        `name:"database_url"`
	Port              int           `name:"port"`
	Version           string        `name:"version"`
	JWTSecret         string        `name:"jwt_secret"`
	SessionTTL        time.Duration `name:"session_ttl"`
	AdminUsername     string        `name:"admin_username"`
	AdminPasswordHash string        `name:"admin_password_hash"`
}

// NewConfig loads configuration from environment variables
func NewConfig() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := Config{}

	// Configure logging
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	switch logLevel {
	case "debug":
		config.LogLevel = zapcore.DebugLevel
	case "info":
		config.LogLevel = zapcore.InfoLevel
	default:
		config.LogLevel = zapcore.WarnLevel
	}

	// Configure database
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	// Configure port
	config.Port = 8080
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		config.Port = p
	}

	// Configure version
	config.Version = os.Getenv("VERSION")
	if config.Version == "" {
		config.Version = "VERSION_UNAVAILABLE"
	}

	// Token signing secret for the mobile API
	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	// Session lifetime, one week unless overridden
	config.SessionTTL = 7 * 24 * time.Hour
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL %q: %w", ttl, err)
		}
		config.SessionTTL = d
	}

	// Admin credentials. Both must be set together; leaving them unset
	// disables the admin login entirely.
	config.AdminUsername = os.Getenv("ADMIN_USERNAME")
	config.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	if (config.AdminUsername == "") != (config.AdminPasswordHash == "") {
		return Config{}, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD_HASH must be set together")
	}

	return config, nil
}
