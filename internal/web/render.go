package web

import (
	"fmt"
	"html/template"
	"io"
)

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if r.templates.Lookup(name) == nil {
		return fmt.Errorf("unknown template: %s", name)
	}

	return r.templates.ExecuteTemplate(w, name, data)
}
