package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/config"
)

func TestNewManager_Defaults(t *testing.T) {
	manager, err := config.NewManager(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg := manager.Get()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "simulated", cfg.Permissions.Backend)
	assert.NotEmpty(t, cfg.Permissions.AppID)
	assert.NotEmpty(t, cfg.Permissions.SettingsCommand)
}

func TestNewManager_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: debug
permissions:
  backend: portal
  simulated:
    camera: blocked
`), 0o644))

	manager, err := config.NewManager(path)
	require.NoError(t, err)

	cfg := manager.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "portal", cfg.Permissions.Backend)
	assert.Equal(t, "blocked", cfg.Permissions.Simulated["camera"])
}
