// Package config resolves the linked configuration directory and loads the
// optional config.yaml inside it.
//
// # Configuration Directory
//
// The directory holds config.yaml and the links file. It is chosen in this
// order:
//  1. --config-dir flag
//  2. LINKED_CONFIG_DIR environment variable
//  3. ~/.config/linked
//
// EnsureConfigDir creates it recursively before first use.
//
// # config.yaml
//
//	linksFile: links.json
//	sanitizeTargets: false
//	output: table
//	copyToClipboard: true
//	logLevel: warn
//
// Every field is optional; missing fields keep the values from
// GetDefaultConfig. A missing config.yaml is equivalent to an empty one.
package config
