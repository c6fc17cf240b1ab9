package cli

import (
	"errors"
	"fmt"

	"linked/internal/links"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution, including a lookup
	// that found nothing.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a failed command: bad arguments, an unreadable
	// or unparsable links file, or a failed write.
	ExitCodeError = 1
)

// UsageError indicates the command was invoked with the wrong arguments.
type UsageError struct {
	// Usage is the expected invocation, e.g. "linked add <ABBREV> <TARGET>".
	Usage string
	// Message describes what was wrong.
	Message string
}

// Error returns the problem followed by the expected invocation.
func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return fmt.Sprintf("%s\nUsage: %s", e.Message, e.Usage)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *UsageError) Is(target error) bool {
	_, ok := target.(*UsageError)
	return ok
}

// NotFoundError indicates that an abbreviation has no stored link.
// Commands that treat a miss as informational print a message instead of
// returning this error.
type NotFoundError struct {
	Abbreviation string
}

// Error returns a user-friendly error message with actionable guidance.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf(`no link exists for the abbreviation '%s'

To see stored abbreviations, run:
  linked list`, e.Abbreviation)
}

// Is allows errors.Is() to work with wrapped errors.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeError
}

// IsDataError reports whether err came from reading, parsing or writing the
// links file, as opposed to a usage problem.
func IsDataError(err error) bool {
	var parseErr *links.ParseError
	var ioErr *links.IOError
	return errors.As(err, &parseErr) || errors.As(err, &ioErr)
}
