package config

import (
	"os"
	"path/filepath"
)

// AppName names the config directory
const AppName = "tokenaudit"

// GetConfigDir returns the path to the tokenaudit config directory
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// GetConfigPath returns the path of the default config file
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
