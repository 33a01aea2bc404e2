// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the process needs to start.
type Config struct {
	DatabaseURL     string
	ListenAddr      string
	MigrationsDir   string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load reads configuration from environment variables. DATABASE_URL is
// required; everything else has a default.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg := &Config{
		DatabaseURL:     dsn,
		ListenAddr:      envOrDefault("LISTEN_ADDR", "0.0.0.0:8080"),
		MigrationsDir:   envOrDefault("MIGRATIONS_DIR", "./migrations"),
		MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 0),
		MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 0),
		ConnMaxLifetime: time.Duration(envInt("DB_CONN_MAX_LIFETIME", 0)) * time.Second,
	}
	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
