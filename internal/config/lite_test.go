package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symptom-guidance-server/internal/domain"
)

func TestDefaultLiteConfig(t *testing.T) {
	cfg := DefaultLiteConfig()

	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, 256, cfg.ResultCacheSize)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadLiteConfig_Defaults(t *testing.T) {
	// Clear relevant env vars
	clearEnvVars(t)

	cfg := LoadLiteConfig()

	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, 256, cfg.ResultCacheSize)
	assert.Equal(t, 8080, cfg.HTTPPort)
}

func TestLoadLiteConfig_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	// Set environment variables
	os.Setenv("SYMPTOM_DATA_DIR", "/tmp/test-symptom")
	os.Setenv("SYMPTOM_RESULT_CACHE_SIZE", "64")
	os.Setenv("SYMPTOM_HTTP_PORT", "9090")
	os.Setenv("SYMPTOM_LOG_LEVEL", "debug")
	os.Setenv("SYMPTOM_LOG_FORMAT", "text")

	defer clearEnvVars(t)

	cfg := LoadLiteConfig()

	assert.Equal(t, "/tmp/test-symptom", cfg.DataDir)
	assert.Equal(t, 64, cfg.ResultCacheSize)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadLiteConfig_InvalidValuesIgnored(t *testing.T) {
	clearEnvVars(t)

	os.Setenv("SYMPTOM_RESULT_CACHE_SIZE", "not-a-number")
	os.Setenv("SYMPTOM_HTTP_PORT", "-1")

	defer clearEnvVars(t)

	cfg := LoadLiteConfig()

	assert.Equal(t, 256, cfg.ResultCacheSize)
	assert.Equal(t, 8080, cfg.HTTPPort)
}

func TestLiteConfig_LearningDBPath(t *testing.T) {
	cfg := &LiteConfig{DataDir: "/home/user/.symptom-guidance"}

	path := cfg.LearningDBPath()

	assert.Equal(t, "/home/user/.symptom-guidance/learning.db", path)
}

func TestLiteConfig_EnsureDataDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	cfg := &LiteConfig{DataDir: filepath.Join(tmpDir, "symptom")}

	err = cfg.EnsureDataDir()
	require.NoError(t, err)

	// Verify directory exists
	_, err = os.Stat(cfg.DataDir)
	assert.NoError(t, err)
}

func TestLiteConfig_Manager(t *testing.T) {
	lite := &LiteConfig{
		DataDir:         "/tmp/symptom-lite",
		ResultCacheSize: 64,
		HTTPPort:        9090,
		LogLevel:        "debug",
		LogFormat:       "text",
	}

	var manager domain.ConfigManager = lite.Manager()
	require.NoError(t, manager.Validate())

	cfg := manager.GetConfig()
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Zero(t, cfg.Server.RateLimit, "rate limiting is off in lite mode")
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/tmp/symptom-lite/learning.db", cfg.Store.SQLitePath)
	assert.Equal(t, 64, cfg.Engine.ResultCacheSize)
	assert.Equal(t, "debug", cfg.Logging.Level)

	assert.Equal(t, 9090, manager.GetServerConfig().Port)
}

func TestLiteConfig_ManagerValidate(t *testing.T) {
	tests := []struct {
		name string
		lite LiteConfig
	}{
		{"zero port", LiteConfig{HTTPPort: 0, ResultCacheSize: 16}},
		{"port out of range", LiteConfig{HTTPPort: 70000, ResultCacheSize: 16}},
		{"negative cache size", LiteConfig{HTTPPort: 8080, ResultCacheSize: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.lite.Manager().Validate())
		})
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	vars := []string{
		"SYMPTOM_DATA_DIR",
		"SYMPTOM_RESULT_CACHE_SIZE",
		"SYMPTOM_HTTP_PORT",
		"SYMPTOM_LOG_LEVEL",
		"SYMPTOM_LOG_FORMAT",
	}
	for _, v := range vars {
		os.Unsetenv(v)
	}
}
