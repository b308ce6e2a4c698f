package html

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

type Template struct {
	Templates *template.Template
}

// NewTemplate parses the embedded page templates.
func NewTemplate() *Template {
	return &Template{Templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}
