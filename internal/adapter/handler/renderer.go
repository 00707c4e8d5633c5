package handler

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/labstack/echo/v4"
)

const layoutTemplate = "layout.html"

// TemplateRenderer implements echo.Renderer. Each page is parsed together
// with the shared layout and executed through it.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

// NewTemplateRenderer parses every page under dir in fsys
func NewTemplateRenderer(fsys fs.FS, dir string) (*TemplateRenderer, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	layout := path.Join(dir, layoutTemplate)
	pages := make(map[string]*template.Template)
	for _, file := range files {
		name := path.Base(file)
		if name == layoutTemplate {
			continue
		}
		tmpl, err := template.ParseFS(fsys, layout, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &TemplateRenderer{pages: pages}, nil
}

// Render executes the named page
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
