package ui

import (
	"html/template"
	"strings"
	"testing"
)

var boolOptions = []Option{
	{Value: "0", Text: "False"},
	{Value: "1", Text: "True", Default: true},
}

func TestSelectInput_DefaultOption(t *testing.T) {
	out, err := Default().SelectInput(SelectField{
		Group:   "cpt_custom_post_type",
		Name:    "show_in_graphql",
		Label:   "Show in GraphQL",
		Options: boolOptions,
	})
	if err != nil {
		t.Fatalf("SelectInput: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `name="cpt_custom_post_type[show_in_graphql]"`) {
		t.Errorf("missing grouped name: %s", s)
	}
	if !strings.Contains(s, `<option value="1" selected="selected">True</option>`) {
		t.Errorf("default option not selected: %s", s)
	}
	if strings.Contains(s, `<option value="0" selected="selected">`) {
		t.Errorf("False should not be selected: %s", s)
	}
}

func TestSelectInput_Selected(t *testing.T) {
	out, err := Default().SelectInput(SelectField{Name: "show_in_graphql", Options: boolOptions, Selected: "0"})
	if err != nil {
		t.Fatalf("SelectInput: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `<option value="0" selected="selected">False</option>`) {
		t.Errorf("False not selected: %s", s)
	}
	if !strings.Contains(s, `<option value="1">True</option>`) {
		t.Errorf("True should be unselected: %s", s)
	}
}

func TestTextInput_Escapes(t *testing.T) {
	out, err := Default().TextInput(TextField{
		Group: "cpt_custom_tax",
		Name:  "graphql_single_name",
		Label: "GraphQL Single Name",
		Help:  "Single name <b>here</b>",
		Value: `"><script>alert(1)</script>`,
	})
	if err != nil {
		t.Fatalf("TextInput: %v", err)
	}
	s := string(out)
	if strings.Contains(s, "<script>") || strings.Contains(s, "<b>") {
		t.Errorf("unescaped markup in output: %s", s)
	}
	if !strings.Contains(s, `name="cpt_custom_tax[graphql_single_name]"`) {
		t.Errorf("missing grouped name: %s", s)
	}
	if !strings.Contains(s, `aria-required="false"`) {
		t.Errorf("missing aria-required: %s", s)
	}
}

func TestSection_WrapsRows(t *testing.T) {
	row := template.HTML(`<tr><td>row</td></tr>`)
	out, err := Default().Section("GraphQL Settings", row)
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, "<span>GraphQL Settings</span>") {
		t.Errorf("missing title: %s", s)
	}
	if !strings.Contains(s, `<table class="form-table cptui-table"><tr><td>row</td></tr></table>`) {
		t.Errorf("rows not embedded verbatim: %s", s)
	}
}
