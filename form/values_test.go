package form

import (
	"net/url"
	"testing"
)

func TestParse_Groups(t *testing.T) {
	in := url.Values{
		"cpt_custom_post_type[name]":                {"book"},
		"cpt_custom_post_type[show_in_graphql]":     {"0", "1"},
		"cpt_custom_post_type[labels][menu_name]":   {"Books"},
		"cpt_custom_tax[graphql_single_name]":       {"Genre"},
		"cpt_submit":                                {"Save"},
		"broken[":                                   {"x"},
	}
	v := Parse(in)

	pt := v.Group("cpt_custom_post_type")
	if got := pt["name"]; got != "book" {
		t.Errorf("name = %q, want book", got)
	}
	if got := pt["show_in_graphql"]; got != "1" {
		t.Errorf("show_in_graphql = %q, want last value 1", got)
	}
	if got := pt["labels.menu_name"]; got != "Books" {
		t.Errorf("labels.menu_name = %q, want Books", got)
	}
	if got, _ := v.Group("cpt_custom_tax").Get("graphql_single_name"); got != "Genre" {
		t.Errorf("tax single name = %q, want Genre", got)
	}
	if got := v.Group("")["cpt_submit"]; got != "Save" {
		t.Errorf("ungrouped cpt_submit = %q, want Save", got)
	}
}

func TestParse_MalformedKeys(t *testing.T) {
	v := Parse(url.Values{
		"broken[":                            {"x"},
		"cpt_custom_tax[graphql_plural_name": {"Genres"},
		"cpt.custom[label]":                  {"Dotted"},
		"cpt_custom_tax[name]trailing":       {"genre"},
		"cpt_custom_tax[]":                   {"dropped"},
	})

	ungrouped := v.Group("")
	if got := ungrouped["broken_"]; got != "x" {
		t.Errorf("broken_ = %q, want x", got)
	}
	if got := ungrouped["cpt_custom_tax_graphql_plural_name"]; got != "Genres" {
		t.Errorf("unclosed bracket = %q, want Genres", got)
	}
	if got := v.Group("cpt_custom")["label"]; got != "Dotted" {
		t.Errorf("dotted group label = %q, want Dotted", got)
	}
	tax := v.Group("cpt_custom_tax")
	if got := tax["name"]; got != "genre" {
		t.Errorf("name with trailing text = %q, want genre", got)
	}
	if len(tax) != 1 {
		t.Errorf("tax group = %v, want only name", tax)
	}
}

func TestGroup_Decode(t *testing.T) {
	var fields struct {
		Name  string `form:"name"`
		Label string `form:"label"`
	}
	g := Parse(url.Values{
		"cpt_custom_post_type[name]":  {"book"},
		"cpt_custom_post_type[label]": {"Books"},
	}).Group("cpt_custom_post_type")
	if err := g.Decode(&fields); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if fields.Name != "book" || fields.Label != "Books" {
		t.Errorf("Decode = %+v, want book/Books", fields)
	}
}

func TestGroup_MissingIsEmpty(t *testing.T) {
	v := Parse(url.Values{})
	g := v.Group("cpt_custom_post_type")
	if g == nil {
		t.Fatal("Group returned nil")
	}
	if _, ok := g.Get("show_in_graphql"); ok {
		t.Error("Get on empty group: want false")
	}
	if got := g.GetOr("graphql_single_name", "x"); got != "x" {
		t.Errorf("GetOr = %q, want x", got)
	}
}

func TestFieldName(t *testing.T) {
	if got := FieldName("cpt_custom_tax", "graphql_plural_name"); got != "cpt_custom_tax[graphql_plural_name]" {
		t.Errorf("FieldName = %q", got)
	}
	if got := FieldName("", "action"); got != "action" {
		t.Errorf("FieldName ungrouped = %q, want action", got)
	}
}
