package links

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"linked/pkg/logging"

	"github.com/natefinch/atomic"
)

// DefaultFileName is the name of the links file inside the config directory.
const DefaultFileName = "links.json"

// Store reads and writes the links file in a config directory.
// It holds no link state; every Load returns a fresh LinkMap.
type Store struct {
	dir      string
	fileName string
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithFileName overrides the links file name inside the directory.
// An empty name keeps DefaultFileName.
func WithFileName(name string) StoreOption {
	return func(s *Store) {
		if name != "" {
			s.fileName = name
		}
	}
}

// NewStore creates a Store for links kept in dir.
func NewStore(dir string, opts ...StoreOption) *Store {
	s := &Store{
		dir:      dir,
		fileName: DefaultFileName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the directory holding the links file.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the full path to the links file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, s.fileName)
}

// Load reads the complete LinkMap from disk.
// A missing or zero-length file yields an empty map.
func (s *Store) Load() (LinkMap, error) {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("LinkStore", "No links file at %s, starting empty", path)
			return LinkMap{}, nil
		}
		return nil, &IOError{Op: "read", Path: path, Reason: err}
	}

	if len(data) == 0 {
		logging.Debug("LinkStore", "Links file %s is empty", path)
		return LinkMap{}, nil
	}

	m, err := unmarshal(data)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: err}
	}

	logging.Debug("LinkStore", "Loaded %d links from %s", len(m), path)
	return m, nil
}

// Save replaces the links file with a full snapshot of m.
// The directory is created if it does not exist.
func (s *Store) Save(m LinkMap) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return &IOError{Op: "create directory", Path: s.dir, Reason: err}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return fmt.Errorf("failed to encode links: %w", err)
	}

	path := s.Path()
	if err := atomic.WriteFile(path, &buf); err != nil {
		return &IOError{Op: "write", Path: path, Reason: err}
	}

	logging.Debug("LinkStore", "Saved %d links to %s", len(m), path)
	return nil
}

// Decode parses a LinkMap from r. Empty input is an empty map.
func Decode(r io.Reader) (LinkMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return LinkMap{}, nil
	}

	m, err := unmarshal(data)
	if err != nil {
		return nil, &ParseError{Reason: err}
	}
	return m, nil
}

// Encode writes m to w as an indented JSON object with sorted keys.
func Encode(w io.Writer, m LinkMap) error {
	if m == nil {
		m = LinkMap{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// unmarshal accepts only a flat JSON object of strings with non-empty keys.
// Null targets and invalid UTF-8 are rejected rather than coerced, so a
// later Save cannot rewrite them as "" or U+FFFD.
func unmarshal(data []byte) (LinkMap, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("content is not valid UTF-8")
	}

	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("expected a JSON object of strings")
	}

	m := make(LinkMap, len(raw))
	for abbrev, target := range raw {
		if abbrev == "" {
			return nil, ErrEmptyAbbreviation
		}
		if target == nil {
			return nil, fmt.Errorf("abbreviation %q has a null target", abbrev)
		}
		m[abbrev] = *target
	}
	return m, nil
}
