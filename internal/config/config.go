// Package config loads clubgraph settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Env      string
	LogLevel string

	// DataPath is the player CSV export.
	DataPath string

	// TopK bounds the centrality listing of the stats command.
	TopK int

	PageRankDamping   float64
	PageRankTolerance float64

	// Styled enables lipgloss output.
	Styled bool
}

// Load reads configuration from environment variables, after loading a .env
// file from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:               getEnv("CLUBGRAPH_ENV", "development"),
		LogLevel:          getEnv("CLUBGRAPH_LOG_LEVEL", "info"),
		DataPath:          getEnv("CLUBGRAPH_DATA", "FIFA17_official_data.csv"),
		TopK:              getEnvInt("CLUBGRAPH_TOP_K", 10),
		PageRankDamping:   getEnvFloat("CLUBGRAPH_PAGERANK_DAMPING", 0.85),
		PageRankTolerance: getEnvFloat("CLUBGRAPH_PAGERANK_TOLERANCE", 1e-6),
		Styled:            getEnvBool("CLUBGRAPH_STYLED", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that values are within range.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("CLUBGRAPH_DATA is required")
	}
	if c.TopK < 0 {
		return fmt.Errorf("CLUBGRAPH_TOP_K must be >= 0, got %d", c.TopK)
	}
	if c.PageRankDamping <= 0 || c.PageRankDamping >= 1 {
		return fmt.Errorf("CLUBGRAPH_PAGERANK_DAMPING must be in (0,1), got %v", c.PageRankDamping)
	}
	if c.PageRankTolerance <= 0 {
		return fmt.Errorf("CLUBGRAPH_PAGERANK_TOLERANCE must be > 0, got %v", c.PageRankTolerance)
	}
	return nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return defaultValue
}
