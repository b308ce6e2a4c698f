// Package form groups submitted admin form fields by their bracketed
// group name, e.g. cpt_custom_post_type[show_in_graphql]=1.
package form

import (
	"log"
	"net/url"
	"regexp"
	"strings"

	gpform "github.com/go-playground/form/v4"
)

// Group holds the fields submitted under one group name.
type Group map[string]string

// Values is a submitted form keyed by group name. Ungrouped fields live
// under the empty group.
type Values map[string]Group

var decoder = gpform.NewDecoder()

// bracketed matches a name followed by one or more [..] pairs. Anything
// after the last pair is ignored.
var bracketed = regexp.MustCompile(`^([^\[\]]+)((?:\[[^\[\]]*\])+)`)

var brackets = regexp.MustCompile(`\[([^\[\]]*)\]`)

// submission wraps every group under one map field so the decoder sees
// g[group][field] keys.
type submission struct {
	Groups map[string]map[string]string `form:"g"`
}

// Parse splits bracketed keys into groups. Nested brackets are joined with
// dots (cpt_custom_post_type[labels][menu_name] -> labels.menu_name). The
// last value wins for repeated keys. Top-level names are cleaned the way
// the host's form decoder does: spaces and dots become underscores, and an
// unclosed [ becomes one too.
func Parse(in url.Values) Values {
	out := make(Values)
	nested := make(url.Values)
	for key, vals := range in {
		if len(vals) == 0 {
			continue
		}
		val := vals[len(vals)-1]
		m := bracketed.FindStringSubmatch(key)
		if m == nil {
			if name := topName(key); name != "" {
				out.set("", name, val)
			}
			continue
		}
		var parts []string
		for _, p := range brackets.FindAllStringSubmatch(m[2], -1) {
			parts = append(parts, p[1])
		}
		field := strings.Join(parts, ".")
		if field == "" {
			continue
		}
		nested.Set("g["+topName(m[1])+"]["+field+"]", val)
	}
	if len(nested) == 0 {
		return out
	}
	var sub submission
	if err := decoder.Decode(&sub, nested); err != nil {
		log.Printf("form: decode: %v", err)
	}
	for group, fields := range sub.Groups {
		for field, val := range fields {
			out.set(group, field, val)
		}
	}
	return out
}

// topName cleans an unbracketed top-level name.
func topName(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 && !strings.Contains(name[i:], "]") {
		name = name[:i] + "_" + name[i+1:]
	}
	return strings.NewReplacer(" ", "_", ".", "_").Replace(name)
}

func (v Values) set(group, field, val string) {
	g, ok := v[group]
	if !ok {
		g = make(Group)
		v[group] = g
	}
	g[field] = val
}

// Group returns the named group; missing groups are empty, never nil.
func (v Values) Group(name string) Group {
	if g, ok := v[name]; ok && g != nil {
		return g
	}
	return Group{}
}

// Get returns the field value and whether it was submitted.
func (g Group) Get(field string) (string, bool) {
	val, ok := g[field]
	return val, ok
}

// GetOr returns the field value or def when absent.
func (g Group) GetOr(field, def string) string {
	if val, ok := g[field]; ok {
		return val
	}
	return def
}

// Decode fills the struct v from the group's fields by their form tags.
func (g Group) Decode(v interface{}) error {
	in := make(url.Values, len(g))
	for field, val := range g {
		in.Set(field, val)
	}
	return decoder.Decode(v, in)
}

// FieldName builds the submitted key for field within group.
func FieldName(group, field string) string {
	if group == "" {
		return field
	}
	return group + "[" + field + "]"
}
