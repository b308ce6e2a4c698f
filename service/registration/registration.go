// Package registration holds built registrations (a stored record after
// pre_register) and caches them per kind.
package registration

import (
	"cptui.GO/hooks"
	"cptui.GO/settings"
)

// Registration is the live form of one stored record.
type Registration struct {
	Kind hooks.Kind `json:"kind"`
	Name string     `json:"name"`
	Args hooks.Args `json:"args"`
}

// ShowInGraphQL reports whether the registration is exposed to the query API.
func (r Registration) ShowInGraphQL() bool {
	return settings.Truthy(r.Args[settings.KeyShowInGraphQL])
}

// SingleName returns graphql_single_name, falling back to the singular
// label and then the record name.
func (r Registration) SingleName() string {
	if s, ok := r.Args[settings.KeySingleName].(string); ok && s != "" {
		return s
	}
	if labels, ok := r.Args["labels"].(map[string]interface{}); ok {
		if s, ok := labels["singular_name"].(string); ok && s != "" {
			return s
		}
	}
	return r.Name
}

// PluralName returns graphql_plural_name, falling back to the label and
// then the record name.
func (r Registration) PluralName() string {
	if s, ok := r.Args[settings.KeyPluralName].(string); ok && s != "" {
		return s
	}
	if s := r.Label(); s != "" {
		return s
	}
	return r.Name
}

// Label returns the host's plural label.
func (r Registration) Label() string {
	s, _ := r.Args["label"].(string)
	return s
}

// Filter returns the registrations exposed to the query API.
func Filter(regs []Registration) []Registration {
	out := make([]Registration, 0, len(regs))
	for _, r := range regs {
		if r.ShowInGraphQL() {
			out = append(out, r)
		}
	}
	return out
}
