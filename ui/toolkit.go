// Package ui renders the editor's form-field primitives. Every value is
// escaped by html/template; callers embed the returned markup as-is.
package ui

import (
	"bytes"
	"embed"
	"html/template"
	"sync"

	"cptui.GO/form"
)

//go:embed templates/*.html
var templateFS embed.FS

// Option is one choice of a select input. Default marks the option chosen
// when nothing is selected.
type Option struct {
	Value   string
	Text    string
	Default bool
}

type SelectField struct {
	Group    string
	Name     string
	Label    string
	Help     string
	Required bool
	Options  []Option
	// Selected is the value to pre-select; empty falls back to the default option.
	Selected string
}

type TextField struct {
	Group    string
	Name     string
	Label    string
	Help     string
	Required bool
	Value    string
}

// Toolkit is the set of rendering primitives the editor hands to
// render_fields subscribers.
type Toolkit interface {
	SelectInput(f SelectField) (template.HTML, error)
	TextInput(f TextField) (template.HTML, error)
	Section(title string, rows ...template.HTML) (template.HTML, error)
}

// Templates implements Toolkit over the embedded field templates.
type Templates struct {
	t *template.Template
}

var (
	defaultOnce sync.Once
	defaultTpl  *Templates
)

// Default returns the shared Toolkit parsed from the embedded templates.
func Default() *Templates {
	defaultOnce.Do(func() {
		defaultTpl = &Templates{
			t: template.Must(template.ParseFS(templateFS, "templates/*.html")),
		}
	})
	return defaultTpl
}

type optionView struct {
	Value    string
	Text     string
	Selected bool
}

func (t *Templates) SelectInput(f SelectField) (template.HTML, error) {
	opts := make([]optionView, len(f.Options))
	matched := false
	for i, o := range f.Options {
		opts[i] = optionView{Value: o.Value, Text: o.Text}
		if f.Selected != "" && o.Value == f.Selected {
			opts[i].Selected = true
			matched = true
		}
	}
	if !matched {
		for i, o := range f.Options {
			if o.Default {
				opts[i].Selected = true
				break
			}
		}
	}
	return t.exec("select", map[string]interface{}{
		"Name":      f.Name,
		"FieldName": form.FieldName(f.Group, f.Name),
		"Label":     f.Label,
		"Help":      f.Help,
		"Required":  f.Required,
		"Options":   opts,
	})
}

func (t *Templates) TextInput(f TextField) (template.HTML, error) {
	return t.exec("text", map[string]interface{}{
		"Name":      f.Name,
		"FieldName": form.FieldName(f.Group, f.Name),
		"Label":     f.Label,
		"Help":      f.Help,
		"Required":  f.Required,
		"Value":     f.Value,
	})
}

// Section wraps rows in a collapsible postbox with a title.
func (t *Templates) Section(title string, rows ...template.HTML) (template.HTML, error) {
	return t.exec("section", map[string]interface{}{
		"Title": title,
		"Rows":  rows,
	})
}

func (t *Templates) exec(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
