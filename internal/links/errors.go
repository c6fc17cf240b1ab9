package links

import "fmt"

// ParseError indicates that the backing file does not hold a flat JSON object
// of strings.
type ParseError struct {
	Path   string
	Reason error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse links: %v", e.Reason)
	}
	return fmt.Sprintf("failed to parse links file %s: %v", e.Path, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// IOError indicates that the links directory or file could not be created,
// read or written.
type IOError struct {
	// Op is the failed operation, e.g. "read" or "write".
	Op     string
	Path   string
	Reason error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Reason)
}

func (e *IOError) Unwrap() error {
	return e.Reason
}
