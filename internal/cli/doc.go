// Package cli provides the shared command-line building blocks for linked.
//
// # Components
//
// PlainTableWriter renders kubectl-style aligned columns with uppercase
// headers and no box-drawing characters, suitable for piping to grep, awk or
// cut.
//
// UsageError and NotFoundError are the typed failures commands return.
// ExitCode maps any command error to the process exit status:
//   - 0: success, including a lookup that found nothing
//   - 1: usage errors, unreadable or malformed links files, failed writes
//
// FormatSuccess, FormatWarning and FormatError give messages a consistent
// prefix (✓, ⚠, "Error:"). StartSpinner shows progress for slow network
// operations such as self-update.
package cli
