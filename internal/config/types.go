package config

// LinkedConfig is the top-level configuration structure for linked,
// read from config.yaml in the config directory.
type LinkedConfig struct {
	// LinksFile is the name of the links file inside the config directory.
	LinksFile string `yaml:"linksFile,omitempty"`
	// SanitizeTargets strips parentheses and quotes from targets on add.
	SanitizeTargets bool `yaml:"sanitizeTargets"`
	// Output is the default output format for list (text, table, json, yaml).
	Output string `yaml:"output,omitempty"`
	// CopyToClipboard controls whether get copies the target or prints it.
	CopyToClipboard bool `yaml:"copyToClipboard"`
	// LogLevel is the minimum level of diagnostics written to stderr.
	LogLevel string `yaml:"logLevel,omitempty"`
}
