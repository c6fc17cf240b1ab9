package formatting

import (
	"fmt"
	"io"

	"linked/internal/links"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// FormatLinks writes m as a YAML mapping. yaml.v3 sorts map keys.
func (f *YAMLFormatter) FormatLinks(w io.Writer, m links.LinkMap) error {
	if m == nil {
		m = links.LinkMap{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]string(m)); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
