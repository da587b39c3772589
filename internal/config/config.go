// Package config loads the GLPI inventory source file and credentials.
//
// The source file follows the layout of an Ansible inventory source:
//
//	plugin: glpi
//	glpi_url: https://glpi.example.com/apirest.php
//	timeout: 30s
//
// Config file locations (priority order):
//  1. $GLPI_INVENTORY_CONFIG
//  2. ./glpi.yml, ./glpi.yaml
//  3. $XDG_CONFIG_HOME/glpi-inventory/glpi.yml
//  4. ~/.config/glpi-inventory/glpi.yml
//  5. /etc/glpi-inventory/glpi.yml
//
// Tokens never live in the file; see LoadCredentials.
package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"glpi-inventory/internal/domain"
)

// PluginName is the only accepted value of the plugin key
const PluginName = "glpi"

// Load finds and loads the config file
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return nil, "", &domain.ConfigurationError{
			Field:  "config file",
			Reason: "not found (set " + EnvConfigPath + " or pass --config)",
		}
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	if !VerifyFile(path) {
		return nil, path, &domain.ConfigurationError{
			Field:  "config file",
			Reason: "must have a .yml or .yaml extension: " + path,
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, errors.Wrap(err, "read config")
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Parse decodes and validates a config document
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults normalizes loaded values
func (c *Config) applyDefaults() {
	c.Plugin = strings.TrimSpace(c.Plugin)
	c.URL = strings.TrimSpace(c.URL)
}

// Validate checks required settings
func (c *Config) Validate() error {
	if c.Plugin == "" {
		return domain.Missing("plugin")
	}
	if c.Plugin != PluginName {
		return &domain.ConfigurationError{
			Field:  "plugin",
			Reason: "must be " + PluginName + ", got " + c.Plugin,
		}
	}
	if c.URL == "" {
		return domain.Missing("glpi_url")
	}
	if c.Timeout < 0 {
		return &domain.ConfigurationError{Field: "timeout", Reason: "must not be negative"}
	}
	return nil
}
