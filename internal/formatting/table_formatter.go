package formatting

import (
	"io"

	"linked/internal/links"
	pkgstrings "linked/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) *TableFormatter {
	return &TableFormatter{options: options}
}

// FormatLinks renders all links as a rounded table with a total footer.
func (f *TableFormatter) FormatLinks(w io.Writer, m links.LinkMap) error {
	t := f.createTable(w)

	if !f.options.NoHeaders {
		t.AppendHeader(table.Row{"Abbreviation", "Target"})
	}

	for abbrev, target := range m.Sorted() {
		t.AppendRow(table.Row{abbrev, pkgstrings.Truncate(target, f.options.MaxTargetWidth)})
	}

	if !f.options.NoHeaders {
		t.AppendFooter(table.Row{"Total", len(m)})
	}

	t.Render()
	return nil
}

func (f *TableFormatter) createTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatUpper
	t.Style().Format.Footer = text.FormatUpper
	return t
}
