package cli

import (
	"os"
	"path/filepath"
)

// appName is used for cache and config directory names.
const appName = "topoviz"

// cacheDir returns the render artifact cache directory, honoring
// XDG_CACHE_HOME and falling back to ~/.cache/topoviz.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// defaultConfigPath returns the default config file location, honoring
// XDG_CONFIG_HOME and falling back to ~/.config/topoviz/config.toml.
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
