package cli

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// PlainTableWriter provides kubectl-style plain table output without box-drawing characters.
// This format is optimized for:
//   - Easy copy/paste operations
//   - Piping to grep, awk, cut and other command-line tools
//   - Terminal-agnostic rendering (no Unicode issues)
type PlainTableWriter struct {
	// headers contains the column header names
	headers []string
	// rows contains the table data rows
	rows [][]string
	// columnWidths tracks the maximum display width of each column
	columnWidths []int
	// minPadding is the minimum space between columns
	minPadding int
	// showHeaders controls whether to display the header row
	showHeaders bool
	// output is the writer to output to
	output io.Writer
}

// NewPlainTableWriter creates a new plain table writer with kubectl-style formatting.
// By default, headers are shown. Use SetNoHeaders(true) to suppress them.
func NewPlainTableWriter(output io.Writer) *PlainTableWriter {
	return &PlainTableWriter{
		headers:      []string{},
		rows:         [][]string{},
		columnWidths: []int{},
		minPadding:   3,
		showHeaders:  true,
		output:       output,
	}
}

// SetHeaders sets the column headers for the table.
// Headers are displayed in uppercase.
func (w *PlainTableWriter) SetHeaders(headers []string) {
	w.headers = make([]string, len(headers))
	w.columnWidths = make([]int, len(headers))
	for i, h := range headers {
		upper := strings.ToUpper(h)
		w.headers[i] = upper
		w.columnWidths[i] = text.StringWidthWithoutEscSequences(upper)
	}
}

// SetNoHeaders controls whether to suppress the header row.
func (w *PlainTableWriter) SetNoHeaders(noHeaders bool) {
	w.showHeaders = !noHeaders
}

// AppendRow adds a row to the table.
func (w *PlainTableWriter) AppendRow(row []string) {
	// Ensure row has same number of columns as headers
	normalizedRow := make([]string, len(w.headers))
	for i := range w.headers {
		if i < len(row) {
			normalizedRow[i] = row[i]
			if width := text.StringWidthWithoutEscSequences(row[i]); width > w.columnWidths[i] {
				w.columnWidths[i] = width
			}
		}
	}
	w.rows = append(w.rows, normalizedRow)
}

// Render outputs the table and returns the first write error.
func (w *PlainTableWriter) Render() error {
	if len(w.headers) == 0 {
		return nil
	}

	// Don't output anything if no rows and headers are suppressed
	if len(w.rows) == 0 && !w.showHeaders {
		return nil
	}

	widths := w.renderWidths()
	if w.showHeaders {
		if err := w.printRow(w.headers, widths); err != nil {
			return err
		}
	}

	for _, row := range w.rows {
		if err := w.printRow(row, widths); err != nil {
			return err
		}
	}
	return nil
}

// renderWidths returns the column widths used for output. Header widths only
// count when the header row is shown.
func (w *PlainTableWriter) renderWidths() []int {
	if w.showHeaders {
		return w.columnWidths
	}

	widths := make([]int, len(w.headers))
	for _, row := range w.rows {
		for i, cell := range row {
			if width := text.StringWidthWithoutEscSequences(cell); width > widths[i] {
				widths[i] = width
			}
		}
	}
	return widths
}

// printRow prints a single row with proper column alignment.
func (w *PlainTableWriter) printRow(row []string, widths []int) error {
	var sb strings.Builder
	for i, cell := range row {
		sb.WriteString(cell)
		// Last column: no padding needed
		if i < len(row)-1 {
			pad := widths[i] - text.StringWidthWithoutEscSequences(cell) + w.minPadding
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}
	_, err := io.WriteString(w.output, strings.TrimRight(sb.String(), " ")+"\n")
	return err
}
