// Package clipboard copies link targets to the operating system clipboard.
package clipboard

import (
	"errors"

	"linked/pkg/logging"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard utility can be reached, for
// example on a headless Linux host without xclip, xsel or wl-copy.
var ErrUnavailable = errors.New("clipboard is not available on this system")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	Copy(text string) error
}

// System is the operating system clipboard.
type System struct{}

// NewSystem returns the operating system clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy replaces the clipboard contents with text.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		logging.Debug("Clipboard", "No clipboard utility found")
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	logging.Debug("Clipboard", "Copied %d bytes", len(text))
	return nil
}

// Memory is an in-process clipboard. It records the last copied text and is
// used when the system clipboard must not be touched.
type Memory struct {
	// Err, when set, is returned by Copy instead of storing the text.
	Err      error
	contents string
	copies   int
}

// Copy stores text, or returns m.Err when set.
func (m *Memory) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.contents = text
	m.copies++
	return nil
}

// Contents returns the last copied text.
func (m *Memory) Contents() string {
	return m.contents
}

// Copies returns how many times Copy stored text.
func (m *Memory) Copies() int {
	return m.copies
}
