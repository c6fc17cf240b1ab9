package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"linked/pkg/logging"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/" + AppName
	configFileName = "config.yaml"
)

// userHomeDir is a package variable so tests can point it at a temp dir.
var userHomeDir = homedir.Dir

// DefaultConfigDir returns ~/.config/linked.
func DefaultConfigDir() (string, error) {
	homeDir, err := userHomeDir()
	if err != nil {
		return "", &ConfigurationError{
			FilePath:  userConfigDir,
			ErrorType: "io",
			Message:   "could not determine home directory",
			Reason:    err,
		}
	}

	return filepath.Join(homeDir, userConfigDir), nil
}

// ResolveConfigDir picks the config directory with this precedence:
//  1. flagValue (--config-dir)
//  2. LINKED_CONFIG_DIR environment variable
//  3. ~/.config/linked
//
// A leading ~ in the flag or environment value is expanded.
func ResolveConfigDir(flagValue string) (string, error) {
	source := "--config-dir"
	dir := flagValue
	if dir == "" {
		source = ConfigDirEnvVar
		dir = os.Getenv(ConfigDirEnvVar)
	}
	if dir == "" {
		return DefaultConfigDir()
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", &ConfigurationError{
			FilePath:  dir,
			ErrorType: "io",
			Message:   fmt.Sprintf("could not expand %s", source),
			Reason:    err,
		}
	}

	logging.Debug("Config", "Using config directory %s from %s", expanded, source)
	return expanded, nil
}

// EnsureConfigDir creates dir and its parents if they do not exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &ConfigurationError{
			FilePath:  dir,
			ErrorType: "io",
			Message:   "failed to create config directory",
			Reason:    err,
		}
	}
	return nil
}

// LoadConfig loads config.yaml from configPath on top of the defaults.
// A missing config.yaml is not an error.
func LoadConfig(configPath string) (LinkedConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return LinkedConfig{}, &ConfigurationError{
			FilePath:  configFilePath,
			ErrorType: "io",
			Message:   "failed to read config file",
			Reason:    err,
		}
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return LinkedConfig{}, &ConfigurationError{
			FilePath:  configFilePath,
			ErrorType: "parse",
			Message:   "malformed config file",
			Reason:    err,
		}
	}

	if err := config.Validate(); err != nil {
		return LinkedConfig{}, &ConfigurationError{
			FilePath:  configFilePath,
			ErrorType: "validation",
			Message:   "invalid config file",
			Reason:    err,
		}
	}

	logging.Debug("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}
