package config

import (
	"fmt"  // For error wrapping
	"time" // For cache TTL

	"github.com/joho/godotenv"             // For loading .env files
	"github.com/kelseyhightower/envconfig" // For typed environment parsing
)

// Config holds the application configuration
type Config struct {
	AppPort         string        `envconfig:"APP_PORT" default:"8000"`              // Application port
	DBDriver        string        `envconfig:"DB_DRIVER" default:"sqlite"`           // sqlite or mysql
	DBUser          string        `envconfig:"DB_USER"`                              // Database user
	DBPassword      string        `envconfig:"DB_PASSWORD"`                          // Database password
	DBHost          string        `envconfig:"DB_HOST" default:"127.0.0.1"`          // Database host
	DBPort          string        `envconfig:"DB_PORT" default:"3306"`               // Database port
	DBName          string        `envconfig:"DB_NAME" default:"bungeoppang"`        // Database name
	SQLitePath      string        `envconfig:"SQLITE_PATH" default:"bungeoppang.db"` // SQLite database file
	JWTSecret       string        `envconfig:"JWT_SECRET"`                           // JWT secret key
	RedisAddr       string        `envconfig:"REDIS_ADDR"`                           // Redis address, empty disables caching
	RedisPass       string        `envconfig:"REDIS_PASS"`                           // Redis password
	RedisDB         int           `envconfig:"REDIS_DB" default:"0"`                 // Redis database number
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"60s"`              // Listing cache TTL
	CodeMaxAttempts int           `envconfig:"CODE_MAX_ATTEMPTS" default:"256"`      // Employee code draws before giving up
	IsProd          bool          `envconfig:"IS_PROD" default:"false"`              // Is production environment
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`             // Logrus level
}

// LoadConfig loads configuration from .env and environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects settings the server cannot run with
func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.CodeMaxAttempts <= 0 {
		return fmt.Errorf("CODE_MAX_ATTEMPTS must be positive, got %d", c.CodeMaxAttempts)
	}
	if c.IsProd && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=true"
}

// CacheEnabled reports whether a redis address was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}
