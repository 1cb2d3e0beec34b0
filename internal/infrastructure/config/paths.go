package config

import (
	"os"
	"path/filepath"
)

const appName = "dockspace"

// GetConfigDir returns $XDG_CONFIG_HOME/dockspace (default: ~/.config/dockspace).
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path of the default TOML config file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
