// Package view renders the panel's HTML screens.  Templates are embedded
// so the binary is self-contained; markup is deliberately plain since
// styling is not this repository's concern.
package view

import (
    "embed"
    "html/template"
    "io"

    "github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
    templates *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
    t, err := template.ParseFS(files, "templates/*.html")
    if err != nil {
        return nil, err
    }
    return &Renderer{templates: t}, nil
}

// Render executes the named page template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
    return r.templates.ExecuteTemplate(w, name, data)
}
