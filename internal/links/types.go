package links

import (
	"errors"
	"iter"
	"maps"
	"slices"
	"strings"
)

// ErrEmptyAbbreviation is returned when a link is stored under an empty key.
var ErrEmptyAbbreviation = errors.New("abbreviation cannot be empty")

// sanitizeReplacer removes characters that break shell quoting and clipboard
// pasting in some terminals.
var sanitizeReplacer = strings.NewReplacer("(", "", ")", "", "'", "", `"`, "")

// LinkMap maps an abbreviation to its target, usually a URL.
type LinkMap map[string]string

// Set stores target under abbrev, replacing any previous target.
func (m LinkMap) Set(abbrev, target string) error {
	if abbrev == "" {
		return ErrEmptyAbbreviation
	}
	m[abbrev] = target
	return nil
}

// Get returns the target stored under abbrev.
func (m LinkMap) Get(abbrev string) (string, bool) {
	target, ok := m[abbrev]
	return target, ok
}

// Delete removes abbrev. Returns false if it was not present.
func (m LinkMap) Delete(abbrev string) bool {
	if _, ok := m[abbrev]; !ok {
		return false
	}
	delete(m, abbrev)
	return true
}

// Abbreviations returns all keys in lexicographic order.
func (m LinkMap) Abbreviations() []string {
	return slices.Sorted(maps.Keys(m))
}

// Sorted yields (abbreviation, target) pairs ordered by abbreviation.
func (m LinkMap) Sorted() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, abbrev := range m.Abbreviations() {
			if !yield(abbrev, m[abbrev]) {
				return
			}
		}
	}
}

// Sanitize strips parentheses and quotes from a target.
func Sanitize(target string) string {
	return sanitizeReplacer.Replace(target)
}
