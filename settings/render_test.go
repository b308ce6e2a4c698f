package settings

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"cptui.GO/hooks"
)

type stubLookup struct {
	records hooks.Records
	current string
	err     error
}

func (s stubLookup) Records(ctx context.Context, kind hooks.Kind) (hooks.Records, error) {
	return s.records, s.err
}

func (s stubLookup) Current(ctx context.Context, kind hooks.Kind) (string, bool) {
	return s.current, s.current != ""
}

func render(t *testing.T, rc hooks.RenderContext) string {
	t.Helper()
	var buf bytes.Buffer
	if err := New().Render(context.Background(), &buf, rc); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestRender_New(t *testing.T) {
	out := render(t, hooks.RenderContext{
		Kind:   hooks.KindPostType,
		Query:  url.Values{},
		Lookup: stubLookup{records: hooks.Records{"book": {KeyShowInGraphQL: false, KeySingleName: "Book"}}, current: "book"},
	})
	if !strings.Contains(out, "GraphQL Settings") {
		t.Errorf("missing section title: %s", out)
	}
	if !strings.Contains(out, `<option value="1" selected="selected">True</option>`) {
		t.Errorf("True not selected by default: %s", out)
	}
	if !strings.Contains(out, `name="cpt_custom_post_type[graphql_single_name]" value=""`) {
		t.Errorf("single name not empty on new: %s", out)
	}
	if !strings.Contains(out, `name="cpt_custom_post_type[graphql_plural_name]" value=""`) {
		t.Errorf("plural name not empty on new: %s", out)
	}
}

func TestRender_Edit(t *testing.T) {
	out := render(t, hooks.RenderContext{
		Kind:  hooks.KindPostType,
		Query: url.Values{"action": {"edit"}},
		Lookup: stubLookup{
			records: hooks.Records{"book": {KeyShowInGraphQL: true, KeySingleName: "Book"}},
			current: "book",
		},
	})
	if !strings.Contains(out, `<option value="1" selected="selected">True</option>`) {
		t.Errorf("True not selected: %s", out)
	}
	if !strings.Contains(out, `name="cpt_custom_post_type[graphql_single_name]" value="Book"`) {
		t.Errorf("single name not pre-filled: %s", out)
	}
	if !strings.Contains(out, `name="cpt_custom_post_type[graphql_plural_name]" value=""`) {
		t.Errorf("plural name should be empty: %s", out)
	}
}

func TestRender_EditStoredFalse(t *testing.T) {
	out := render(t, hooks.RenderContext{
		Kind:   hooks.KindTaxonomy,
		Query:  url.Values{"action": {"edit"}},
		Lookup: stubLookup{records: hooks.Records{"genre": {KeyShowInGraphQL: "0"}}, current: "genre"},
	})
	if !strings.Contains(out, `<option value="0" selected="selected">False</option>`) {
		t.Errorf("False not selected for stored false: %s", out)
	}
	if !strings.Contains(out, `name="cpt_custom_tax[show_in_graphql]"`) {
		t.Errorf("taxonomy group not used: %s", out)
	}
	if !strings.Contains(out, "Single name for this Taxonomy in the GraphQL API.") {
		t.Errorf("taxonomy help text missing: %s", out)
	}
}

func TestRender_EditUnknownRecord(t *testing.T) {
	out := render(t, hooks.RenderContext{
		Kind:   hooks.KindPostType,
		Query:  url.Values{"action": {"edit"}},
		Lookup: stubLookup{records: hooks.Records{}, current: "missing"},
	})
	if !strings.Contains(out, `<option value="1" selected="selected">True</option>`) {
		t.Errorf("unknown record should render defaults: %s", out)
	}
}

func TestRender_EscapesStoredValues(t *testing.T) {
	out := render(t, hooks.RenderContext{
		Kind:  hooks.KindPostType,
		Query: url.Values{"action": {"edit"}},
		Lookup: stubLookup{
			records: hooks.Records{"book": {KeySingleName: `"><script>x</script>`}},
			current: "book",
		},
	})
	if strings.Contains(out, "<script>") {
		t.Errorf("stored value not escaped: %s", out)
	}
}

func TestRender_LookupError(t *testing.T) {
	var buf bytes.Buffer
	err := New().Render(context.Background(), &buf, hooks.RenderContext{
		Kind:   hooks.KindPostType,
		Query:  url.Values{"action": {"edit"}},
		Lookup: stubLookup{current: "book", err: errors.New("db down")},
	})
	if err == nil {
		t.Fatal("want error when records cannot be loaded")
	}
}
