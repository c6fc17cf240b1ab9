// Package formatting renders stored links for the list command.
//
// Every formatter walks the links in abbreviation order and writes to the
// supplied io.Writer, so commands can point output at cobra's OutOrStdout and
// tests can capture it in a buffer.
package formatting

import (
	"fmt"
	"io"
	"strings"

	"linked/internal/links"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatText  OutputFormat = "text"  // Aligned plain columns
	FormatTable OutputFormat = "table" // Rich boxed table
	FormatJSON  OutputFormat = "json"  // JSON object, same shape as links.json
	FormatYAML  OutputFormat = "yaml"  // YAML mapping
)

// Formats lists the accepted output formats in help order.
var Formats = []OutputFormat{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range Formats {
		if f == format {
			return f, nil
		}
	}

	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unsupported output format %q (use one of: %s)", name, strings.Join(names, ", "))
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	// NoHeaders suppresses the header row in text and table output.
	NoHeaders bool
	// Template, when set, renders each link with a Go template instead of Format.
	Template string
	// MaxTargetWidth truncates targets in text and table output. Zero keeps
	// them whole.
	MaxTargetWidth int
}

// Formatter renders a LinkMap.
type Formatter interface {
	FormatLinks(w io.Writer, m links.LinkMap) error
}

// NewFormatter creates the appropriate formatter based on options.
// A template takes precedence over the output format.
func NewFormatter(options Options) (Formatter, error) {
	if options.Template != "" {
		return NewTemplateFormatter(options.Template)
	}

	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	case FormatTable:
		return NewTableFormatter(options), nil
	case FormatText, "":
		return NewTextFormatter(options), nil
	default:
		_, err := ParseFormat(string(options.Format))
		return nil, err
	}
}
