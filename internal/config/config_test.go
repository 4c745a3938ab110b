package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 8, cfg.Reporting.PageSize)
	assert.Equal(t, 10, cfg.Reporting.MaxUploadsPerDay)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "localhost:4318", cfg.Tracing.OTLPEndpoint)
	assert.Equal(t, 30, cfg.Backup.RetentionDays)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
env: production
server:
  port: 9090
reporting:
  max_uploads_per_day: 10
log:
  level: warn
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Reporting.MaxUploadsPerDay)
	assert.Equal(t, "warn", cfg.Log.Level)
	// 未覆盖的键回退到默认值
	assert.Equal(t, 8, cfg.Reporting.PageSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestIsProduction(t *testing.T) {
	assert.False(t, IsProduction(nil))
	assert.False(t, IsProduction(&Config{Env: "development"}))
	assert.True(t, IsProduction(&Config{Env: "production"}))
}

func TestSapSyncDuration(t *testing.T) {
	c := SapConfig{SyncDurationMs: 1500}
	assert.Equal(t, "1.5s", c.SyncDuration().String())
}
