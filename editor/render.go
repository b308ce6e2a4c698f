package editor

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"sort"

	"cptui.GO/hooks"
	"cptui.GO/ui"
)

// lookup serves render_fields subscribers for one request.
type lookup struct {
	s     *Service
	query url.Values
}

func (l lookup) Records(ctx context.Context, kind hooks.Kind) (hooks.Records, error) {
	return l.s.store.FindAll(ctx, kind)
}

// Current is the record named by the kind's selection parameter, or the
// first stored record when none is named.
func (l lookup) Current(ctx context.Context, kind hooks.Kind) (string, bool) {
	if name := l.query.Get(kind.SelectedParam()); name != "" {
		return name, true
	}
	names, err := l.s.Names(ctx, kind)
	if err != nil || len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// IsEdit reports whether query selects the edit tab.
func IsEdit(query url.Values) bool {
	return query.Get("action") == "edit"
}

// RenderForm writes the editor's own fields followed by every
// render_fields subscriber's markup.
func (s *Service) RenderForm(ctx context.Context, w io.Writer, kind hooks.Kind, query url.Values) error {
	tk := ui.Default()
	lk := lookup{s: s, query: query}

	var current hooks.Record
	if IsEdit(query) {
		if name, ok := lk.Current(ctx, kind); ok {
			records, err := s.store.FindAll(ctx, kind)
			if err != nil {
				return err
			}
			current = records[name]
		}
	}

	group := kind.FormGroup()
	fields := []ui.TextField{
		{Group: group, Name: "name", Label: kind.Label() + " Slug", Required: true,
			Help: "The slug name, used for queries and registration. Max 20 characters.", Value: current.String("name")},
		{Group: group, Name: "label", Label: "Plural Label", Value: current.String("label")},
		{Group: group, Name: "singular_label", Label: "Singular Label", Value: current.String("singular_label")},
		{Group: group, Name: "description", Label: "Description", Value: current.String("description")},
	}
	rows := make([]template.HTML, 0, len(fields))
	for _, f := range fields {
		row, err := tk.TextInput(f)
		if err != nil {
			return fmt.Errorf("editor: render %s: %w", f.Name, err)
		}
		rows = append(rows, row)
	}
	section, err := tk.Section("Basic settings", rows...)
	if err != nil {
		return fmt.Errorf("editor: render section: %w", err)
	}
	if _, err := io.WriteString(w, string(section)); err != nil {
		return err
	}

	return s.hooks.RenderFields(ctx, w, hooks.RenderContext{
		Kind:   kind,
		Query:  query,
		UI:     tk,
		Lookup: lk,
	})
}

// Names returns the stored record names of kind, sorted.
func (s *Service) Names(ctx context.Context, kind hooks.Kind) ([]string, error) {
	records, err := s.store.FindAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Current returns the record the edit tab shows for query.
func (s *Service) Current(ctx context.Context, kind hooks.Kind, query url.Values) (string, bool) {
	return lookup{s: s, query: query}.Current(ctx, kind)
}
