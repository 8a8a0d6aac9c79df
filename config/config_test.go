package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnvironment points the package at a temporary home directory.
// It returns the path to the temporary config directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	configPath := filepath.Join(tempDir, "Dexter", "config")
	require.NoError(t, os.MkdirAll(configPath, 0755))

	originalHomeDirFunc := osUserHomeDir
	osUserHomeDir = func() (string, error) {
		return tempDir, nil
	}
	t.Cleanup(func() { osUserHomeDir = originalHomeDirFunc })

	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")

	return configPath
}

func TestLoad_Success(t *testing.T) {
	configDir := setupTestEnvironment(t)

	cfg := &Config{
		APIKey:              "file-key",
		BaseURL:             "https://test.example/apis",
		TimeoutSeconds:      30,
		MaxPollAttempts:     10,
		PollIntervalSeconds: 0.5,
	}
	data, _ := json.Marshal(cfg)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "camb.json"), data, 0644))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-key", loaded.APIKey)
	assert.Equal(t, "https://test.example/apis", loaded.BaseURL)
	assert.Equal(t, 10, loaded.MaxPollAttempts)
	assert.Equal(t, 500*time.Millisecond, loaded.PollInterval())
	assert.Equal(t, 30*time.Second, loaded.Timeout())
}

func TestLoad_FileCreation(t *testing.T) {
	configDir := setupTestEnvironment(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// The default file must exist afterwards with the default values.
	assert.FileExists(t, filepath.Join(configDir, "camb.json"))
	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, "https://client.camb.ai/apis", cfg.BaseURL)
	assert.Equal(t, 60, cfg.MaxPollAttempts)
	assert.Equal(t, 2*time.Second, cfg.PollInterval())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	configDir := setupTestEnvironment(t)

	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "camb.json"),
		[]byte(`{"api_key":"only-key"}`),
		0644,
	))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "only-key", cfg.APIKey)
	assert.Equal(t, 60, cfg.MaxPollAttempts, "missing keys keep defaults")
	assert.Equal(t, "https://client.camb.ai/apis", cfg.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	configDir := setupTestEnvironment(t)

	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "camb.json"),
		[]byte(`{"api_key":"file-key","base_url":"https://file.example"}`),
		0644,
	))

	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvBaseURL, "https://env.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey, "environment beats the file")
	assert.Equal(t, "https://env.example", cfg.BaseURL)
}

func TestLoad_InvalidJSON(t *testing.T) {
	configDir := setupTestEnvironment(t)

	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "camb.json"),
		[]byte("{ not valid json }"),
		0644,
	))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not decode config file")
}
