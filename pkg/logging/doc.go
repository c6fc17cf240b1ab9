// Package logging provides leveled, structured diagnostics for the linked CLI.
//
// This package is a thin layer over Go's slog package. Command output meant
// for the user goes to stdout through the commands themselves; logging is for
// diagnostics and goes to stderr.
//
// # Log Levels
//   - **Debug**: file paths, link counts, config resolution steps
//   - **Info**: general informational messages
//   - **Warn**: recoverable problems, such as an unavailable clipboard
//   - **Error**: failures, always with the underlying error attached
//
// # Usage
//
//	logging.InitForCLI(logging.LevelWarn, os.Stderr)
//
//	logging.Debug("LinkStore", "Loaded %d links from %s", len(m), path)
//	logging.Warn("Clipboard", "Clipboard not available, printing link instead")
//	logging.Error("Config", err, "Failed to read %s", path)
//
// Every entry carries a subsystem attribute:
//
//   - **Bootstrap**: root command setup
//   - **Config**: config directory and config.yaml resolution
//   - **LinkStore**: links file load and save
//   - **Clipboard**: clipboard access
//   - **SelfUpdate**: release checks and binary replacement
//
// Messages logged before InitForCLI are dropped.
package logging
