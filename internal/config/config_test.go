package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
source:
  base_url: "https://gist.example.com/api/"
  gist_id: "abc123"
  timeout_seconds: 10

export:
  output_dir: "./reports"
  formats: ["csv"]

storage:
  s3_bucket: "dashboard-exports"
  s3_prefix: "acme/"

server:
  port: 9090
  host: "0.0.0.0"

log:
  level: "debug"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://gist.example.com/api", cfg.Source.BaseURL)
	assert.Equal(t, "abc123", cfg.Source.GistID)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout())

	assert.Equal(t, "./reports", cfg.Export.OutputDir)
	assert.Equal(t, []string{"csv"}, cfg.Export.Formats)

	assert.True(t, cfg.Storage.S3Enabled())
	assert.Equal(t, "acme/", cfg.Storage.S3Prefix)
	assert.Equal(t, "us-west-2", cfg.Storage.S3Region)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("{}"), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com", cfg.Source.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout())
	assert.Equal(t, ".", cfg.Export.OutputDir)
	assert.Equal(t, []string{"csv", "xlsx"}, cfg.Export.Formats)
	assert.False(t, cfg.Storage.S3Enabled())
	assert.Equal(t, "localhost:8080", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("source: [unclosed"), 0644)
	require.NoError(t, err)

	_, err = Load(configPath)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GIST_ID", "from-env")
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("DASHBOARD_S3_BUCKET", "env-bucket")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("GIST_BASE_URL", "http://127.0.0.1:9999/")

	cfg, err := LoadFromEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Source.GistID)
	assert.Equal(t, "ghp_test", cfg.Source.Token)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.Source.BaseURL)
	assert.Equal(t, "env-bucket", cfg.Storage.S3Bucket)
	assert.Equal(t, 7070, cfg.Server.Port)
}
