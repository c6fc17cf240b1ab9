package formatting

import (
	"io"

	"linked/internal/links"
)

// JSONFormatter writes links in the same document shape as links.json.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatLinks writes m as an indented JSON object with sorted keys.
func (f *JSONFormatter) FormatLinks(w io.Writer, m links.LinkMap) error {
	return links.Encode(w, m)
}
