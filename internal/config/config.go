// Package config loads and watches the kiosk configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Shell       ShellConfig       `mapstructure:"shell"`
	Permissions PermissionsConfig `mapstructure:"permissions"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ShellConfig controls the terminal shell.
type ShellConfig struct {
	HomeURL string `mapstructure:"home_url"`
}

// PermissionsConfig selects and tunes the OS permission backend.
type PermissionsConfig struct {
	// Backend is "portal" (XDG Desktop Portal over D-Bus) or "simulated".
	Backend string `mapstructure:"backend"`

	// AppID identifies this app in the portal permission store.
	AppID string `mapstructure:"app_id"`

	// SettingsCommand is run to open the OS permission settings.
	SettingsCommand []string `mapstructure:"settings_command"`

	// Simulated seeds the simulated backend: capability name -> status.
	Simulated map[string]string `mapstructure:"simulated"`
}

// Manager owns the viper instance and hands out thread-safe snapshots.
type Manager struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	config    *Config
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager with defaults applied and the config file
// loaded if one exists. A missing file is not an error.
func NewManager(path string) (*Manager, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("shell.home_url", "https://example.com")
	v.SetDefault("permissions.backend", "simulated")
	v.SetDefault("permissions.app_id", "dev.bnema.kiosk")
	v.SetDefault("permissions.settings_command", []string{"xdg-open", "settings://privacy"})

	if path != "" {
		v.SetConfigFile(path)
	} else {
		configDir, err := defaultConfigDir()
		if err == nil {
			v.AddConfigPath(configDir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("KIOSK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	m := &Manager{viper: v}
	if err := m.reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns the current config snapshot.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// OnChange registers a callback invoked after each successful reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

func (m *Manager) reload() error {
	var cfg Config
	if err := m.viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	m.config = &cfg
	return nil
}

func defaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "kiosk"), nil
}
