// Package config reads runtime settings from the environment, with an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the game's runtime settings.
type Config struct {
	ContentDir string `validate:"required"`
	Layout     string // optional XML room layout
	Catalog    string // optional SQLite catalog
	Seed       int64  // 0 seeds from the clock
	PlayerName string `validate:"required"`
	PlayerHP   int    `validate:"gte=0"` // 0 defers to the content, then the engine default
	LogLevel   string `validate:"oneof=debug info warn error"`
	LogFormat  string `validate:"oneof=text json"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		ContentDir: getEnv("KERKER_CONTENT", "assets"),
		Layout:     getEnv("KERKER_LAYOUT", ""),
		Catalog:    getEnv("KERKER_CATALOG", ""),
		PlayerName: getEnv("KERKER_PLAYER_NAME", "Adventurer"),
		LogLevel:   strings.ToLower(getEnv("LOG_LEVEL", "warn")),
		LogFormat:  strings.ToLower(getEnv("LOG_FORMAT", "text")),
	}

	seed, err := strconv.ParseInt(getEnv("KERKER_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid KERKER_SEED value: %w", err)
	}
	cfg.Seed = seed

	hp, err := strconv.Atoi(getEnv("KERKER_PLAYER_HP", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid KERKER_PLAYER_HP value: %w", err)
	}
	cfg.PlayerHP = hp

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings against their constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
