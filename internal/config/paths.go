package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "GLPI_INVENTORY_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "glpi.yml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "glpi-inventory"
)

// VerifyFile reports whether path can be an inventory source: only YAML
// files are accepted.
func VerifyFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}

// FindConfigPath searches for config file in priority order:
// 1. $GLPI_INVENTORY_CONFIG (explicit path)
// 2. ./glpi.yml or ./glpi.yaml (working directory)
// 3. $XDG_CONFIG_HOME/glpi-inventory/glpi.yml
// 4. ~/.config/glpi-inventory/glpi.yml
// 5. /etc/glpi-inventory/glpi.yml
//
// Returns empty string if no config file found
func FindConfigPath() string {
	// 1. Explicit environment variable
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	// 2. Working directory
	for _, name := range []string{ConfigFileName, "glpi.yaml"} {
		if fileExists(name) {
			if abs, err := filepath.Abs(name); err == nil {
				return abs
			}
			return name
		}
	}

	// 3. XDG config home
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, ConfigFileName)
		if fileExists(path) {
			return path
		}
	}

	// 4. Default XDG location (~/.config)
	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, ConfigFileName)
		if fileExists(path) {
			return path
		}
	}

	// 5. System-wide
	systemPath := filepath.Join("/etc", ConfigDirName, ConfigFileName)
	if fileExists(systemPath) {
		return systemPath
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
