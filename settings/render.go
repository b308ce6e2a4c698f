package settings

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"cptui.GO/hooks"
	"cptui.GO/ui"
)

const sectionTitle = "GraphQL Settings"

// Render writes the GraphQL settings section into the editor form. On the
// edit tab (action=edit) fields are pre-filled from the selected record;
// otherwise they render at their defaults.
func (c *Controller) Render(ctx context.Context, w io.Writer, rc hooks.RenderContext) error {
	tk := rc.UI
	if tk == nil {
		tk = ui.Default()
	}
	current, err := currentRecord(ctx, rc)
	if err != nil {
		return err
	}
	group := rc.Kind.FormGroup()
	label := rc.Kind.Label()

	selected := ""
	if _, ok := current[KeyShowInGraphQL]; ok {
		selected = "0"
		if Truthy(current[KeyShowInGraphQL]) {
			selected = "1"
		}
	}
	attrs := FromRecord(current)

	rows := make([]template.HTML, 0, 3)
	row, err := tk.SelectInput(ui.SelectField{
		Group: group,
		Name:  KeyShowInGraphQL,
		Label: "Show in GraphQL",
		Help:  fmt.Sprintf("(default: true) Whether or not to show this %s data in the GraphQL API.", label),
		Options: []ui.Option{
			{Value: "0", Text: "False"},
			{Value: "1", Text: "True", Default: true},
		},
		Selected: selected,
	})
	if err != nil {
		return fmt.Errorf("settings: render %s: %w", KeyShowInGraphQL, err)
	}
	rows = append(rows, row)

	for _, f := range []ui.TextField{
		{Group: group, Name: KeySingleName, Label: "GraphQL Single Name",
			Help: fmt.Sprintf("Single name for this %s in the GraphQL API.", label), Value: attrs.SingleNameOr("")},
		{Group: group, Name: KeyPluralName, Label: "GraphQL Plural Name",
			Help: fmt.Sprintf("Plural name for this %s in the GraphQL API.", label), Value: attrs.PluralNameOr("")},
	} {
		row, err := tk.TextInput(f)
		if err != nil {
			return fmt.Errorf("settings: render %s: %w", f.Name, err)
		}
		rows = append(rows, row)
	}

	section, err := tk.Section(sectionTitle, rows...)
	if err != nil {
		return fmt.Errorf("settings: render section: %w", err)
	}
	_, err = io.WriteString(w, string(section))
	return err
}

func currentRecord(ctx context.Context, rc hooks.RenderContext) (hooks.Record, error) {
	if rc.Query.Get("action") != "edit" || rc.Lookup == nil {
		return nil, nil
	}
	name, ok := rc.Lookup.Current(ctx, rc.Kind)
	if !ok {
		return nil, nil
	}
	records, err := rc.Lookup.Records(ctx, rc.Kind)
	if err != nil {
		return nil, fmt.Errorf("settings: load %s records: %w", rc.Kind, err)
	}
	return records[name], nil
}
