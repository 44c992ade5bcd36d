// Package config provides configuration management for the server.
// This file contains the lightweight configuration for standalone operation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/symptom-guidance-server/internal/domain"
)

// LiteConfig is a simplified configuration for standalone operation.
// It requires no Postgres or Redis: the learning store runs on SQLite and
// history on the in-memory repository.
type LiteConfig struct {
	// Data storage
	DataDir string // Base directory for data files

	// Engine settings
	ResultCacheSize int // Maximum memoized diagnosis results

	// HTTP settings
	HTTPPort int // HTTP listen port

	// Logging
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: json, text
}

// DefaultLiteConfig returns a configuration with sensible defaults.
func DefaultLiteConfig() *LiteConfig {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".symptom-guidance")

	return &LiteConfig{
		DataDir:         dataDir,
		ResultCacheSize: 256,
		HTTPPort:        8080,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// LoadLiteConfig loads configuration from environment variables.
// Falls back to defaults if not set.
func LoadLiteConfig() *LiteConfig {
	cfg := DefaultLiteConfig()

	// Data directory
	if v := os.Getenv("SYMPTOM_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	// Engine settings
	if v := os.Getenv("SYMPTOM_RESULT_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.ResultCacheSize = n
		}
	}

	// HTTP settings
	if v := os.Getenv("SYMPTOM_HTTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	// Logging
	if v := os.Getenv("SYMPTOM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SYMPTOM_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}

// LearningDBPath returns the path to the learning store SQLite database.
func (c *LiteConfig) LearningDBPath() string {
	return filepath.Join(c.DataDir, "learning.db")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *LiteConfig) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0755)
}

// Manager materializes the lite configuration as a full ConfigManager, so
// the standalone server wires into the same components as the full one.
// The store always runs on SQLite under DataDir and rate limiting is off.
func (c *LiteConfig) Manager() domain.ConfigManager {
	return &liteManager{config: domain.Config{
		Server: domain.ServerConfig{
			Host:         "0.0.0.0",
			Port:         c.HTTPPort,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Store: domain.StoreConfig{
			Backend:    "sqlite",
			SQLitePath: c.LearningDBPath(),
		},
		Engine: domain.EngineConfig{
			ResultCacheSize: c.ResultCacheSize,
		},
		Logging: domain.LoggingConfig{
			Level:  c.LogLevel,
			Format: c.LogFormat,
			Output: "stdout",
		},
	}}
}

// liteManager serves a fixed configuration snapshot.
type liteManager struct {
	config domain.Config
}

func (m *liteManager) GetConfig() *domain.Config             { return &m.config }
func (m *liteManager) GetServerConfig() *domain.ServerConfig { return &m.config.Server }

func (m *liteManager) Validate() error {
	if m.config.Server.Port <= 0 || m.config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", m.config.Server.Port)
	}
	if m.config.Engine.ResultCacheSize < 0 {
		return fmt.Errorf("invalid result cache size: %d", m.config.Engine.ResultCacheSize)
	}
	return nil
}
