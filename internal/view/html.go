package view

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed page.html
var pageHTML string

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	// Scene descriptors are compiled-in CSS, not user input.
	"css": func(s string) template.CSS { return template.CSS(s) },
	"pct": func(v float64) template.CSS { return template.CSS(fmt.Sprintf("%.2f%%", v)) },
}).Parse(pageHTML))

// Render writes the page as a complete HTML document.
func Render(w io.Writer, p Page) error {
	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
