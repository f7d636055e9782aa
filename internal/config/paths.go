package config

import (
	"os"
	"path/filepath"
)

// ConfigFile returns the config file path. GRIDPICK_CONFIG overrides the
// default XDG location.
func ConfigFile() string {
	if p := os.Getenv("GRIDPICK_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(configDir(), "config.yaml")
}

// DataDir returns the directory for data files such as the model database.
func DataDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "gridpick")
	}
	return filepath.Join(homeDir(), ".local", "share", "gridpick")
}

func configDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "gridpick")
	}
	return filepath.Join(homeDir(), ".config", "gridpick")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
