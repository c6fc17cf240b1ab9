package formatting

import (
	"io"

	"linked/internal/cli"
	"linked/internal/links"
	pkgstrings "linked/pkg/strings"
)

// TextFormatter prints kubectl-style aligned columns, one link per line.
type TextFormatter struct {
	options Options
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(options Options) *TextFormatter {
	return &TextFormatter{options: options}
}

// FormatLinks writes an ABBREVIATION / TARGET column layout.
func (f *TextFormatter) FormatLinks(w io.Writer, m links.LinkMap) error {
	tw := cli.NewPlainTableWriter(w)
	tw.SetHeaders([]string{"abbreviation", "target"})
	tw.SetNoHeaders(f.options.NoHeaders)

	for abbrev, target := range m.Sorted() {
		tw.AppendRow([]string{abbrev, pkgstrings.Truncate(target, f.options.MaxTargetWidth)})
	}

	return tw.Render()
}
