// Package config loads application runtime configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort     = "8080"
	defaultDriver   = "mysql"
	defaultTokenTTL = 7 * 24 * time.Hour
)

// Database holds the connection settings for the user store.
type Database struct {
	Driver        string // mysql, postgres or sqlite
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	RunMigrations bool
}

// Redis holds the connection settings for the token store.
type Redis struct {
	Addr     string
	Password string
}

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	Port     string
	Database Database
	Redis    Redis
	TokenTTL time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", defaultPort),
		Database: Database{
			Driver:        strings.ToLower(getEnv("DB_DRIVER", defaultDriver)),
			Host:          os.Getenv("DB_HOST"),
			Port:          os.Getenv("DB_PORT"),
			User:          os.Getenv("DB_USER"),
			Password:      os.Getenv("DB_PASSWORD"),
			Name:          os.Getenv("DB_NAME"),
			RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		},
		Redis: Redis{
			Addr:     redisAddr(),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		TokenTTL: defaultTokenTTL,
	}

	switch cfg.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}

	return cfg, nil
}

// Address returns the listen address in the format Gin expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func redisAddr() string {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return ""
	}
	port := getEnv("REDIS_PORT", "6379")
	return host + ":" + port
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
