package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// DOCKSPACE_DOCKING_ZONE_MARGIN, DOCKSPACE_VIEWPORT_WIDTH, ...
	v.SetEnvPrefix("DOCKSPACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "DOCKSPACE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKSPACE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKSPACE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKSPACE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w\nCheck the file format (must be valid TOML) and permissions", err)
		}
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf("failed to create default config: %w", createErr)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", m.viper.ConfigFileUsed(), err)
	}
	return config, nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	return WriteConfigOrdered(DefaultConfig(), configFile)
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("docking.zone_margin", defaults.Docking.ZoneMargin)
	m.viper.SetDefault("docking.min_pane_percent", defaults.Docking.MinPanePercent)
	m.viper.SetDefault("docking.resize_step_percent", defaults.Docking.ResizeStepPercent)

	m.viper.SetDefault("viewport.width", defaults.Viewport.Width)
	m.viper.SetDefault("viewport.height", defaults.Viewport.Height)

	m.viper.SetDefault("layout.preset", defaults.Layout.Preset)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

// reload re-reads the configuration (must be called with m.mu held for write).
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}
