package config

import "linked/internal/links"

const (
	// AppName is used for the config directory name and user-facing hints.
	AppName = "linked"

	// ConfigDirEnvVar overrides the config directory when --config-dir is not set.
	ConfigDirEnvVar = "LINKED_CONFIG_DIR"

	// DefaultOutput is the list output format used when none is configured.
	DefaultOutput = "text"

	// DefaultLogLevel is the minimum level of diagnostics written to stderr.
	DefaultLogLevel = "warn"
)

// GetDefaultConfig returns the configuration used when config.yaml is absent.
func GetDefaultConfig() LinkedConfig {
	return LinkedConfig{
		LinksFile:       links.DefaultFileName,
		SanitizeTargets: false,
		Output:          DefaultOutput,
		CopyToClipboard: true,
		LogLevel:        DefaultLogLevel,
	}
}
