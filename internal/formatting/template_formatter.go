package formatting

import (
	"fmt"
	"io"
	"text/template"

	"linked/internal/links"

	"github.com/Masterminds/sprig/v3"
)

// Link is the value a --template is executed against.
type Link struct {
	Abbreviation string
	Target       string
}

// TemplateFormatter renders each link with a user-supplied Go template.
// Sprig functions are available, e.g. '{{ .Abbreviation | upper }}'.
type TemplateFormatter struct {
	tmpl *template.Template
}

// NewTemplateFormatter parses text once; a parse error is reported before any
// link is loaded.
func NewTemplateFormatter(text string) (*TemplateFormatter, error) {
	tmpl, err := template.New("link").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid template: %w", err)
	}
	return &TemplateFormatter{tmpl: tmpl}, nil
}

// FormatLinks executes the template once per link and ends each with a newline.
func (f *TemplateFormatter) FormatLinks(w io.Writer, m links.LinkMap) error {
	for abbrev, target := range m.Sorted() {
		if err := f.tmpl.Execute(w, Link{Abbreviation: abbrev, Target: target}); err != nil {
			return fmt.Errorf("failed to render link %q: %w", abbrev, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
