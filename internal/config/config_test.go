package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "badger", cfg.Storage.Driver)
	assert.Equal(t, "mindset-journeys-state", cfg.Storage.StateKey)
	assert.Equal(t, 300, cfg.App.MinReadingSeconds)
	assert.Equal(t, time.Minute, cfg.ReminderPollInterval())
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.ExpireTime)
	assert.Equal(t, dir, cfg.Dir)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
server:
  port: "9090"
  mode: release
storage:
  driver: memory
  state_key: test-key
app:
  timezone: UTC
  min_reading_seconds: 10
reminder:
  poll_interval_seconds: 15
archive:
  type: local
  local_path: exports
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "test-key", cfg.Storage.StateKey)
	assert.Equal(t, 15*time.Second, cfg.ReminderPollInterval())

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = os.Stat(filepath.Join(dir, "exports"))
	assert.NoError(t, err)
}

func TestLoadConfigRejectsShortAuthSecret(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
auth:
  enabled: true
  secret: short
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfigRejectsUnknownTimezone(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := `
app:
  timezone: Mars/Olympus
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
