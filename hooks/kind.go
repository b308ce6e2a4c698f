package hooks

import (
	"fmt"
	"strings"

	apperr "cptui.GO/core/errors"
)

// Kind is the record category an extension point fires for.
type Kind int

const (
	KindPostType Kind = iota + 1
	KindTaxonomy
)

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindPostType, KindTaxonomy}
}

func (k Kind) String() string {
	switch k {
	case KindPostType:
		return "post_type"
	case KindTaxonomy:
		return "taxonomy"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Label is the human-readable kind name used in field help text.
func (k Kind) Label() string {
	switch k {
	case KindPostType:
		return "Post Type"
	case KindTaxonomy:
		return "Taxonomy"
	default:
		return k.String()
	}
}

// FormGroup is the group name the editor form submits this kind's fields under.
func (k Kind) FormGroup() string {
	switch k {
	case KindPostType:
		return "cpt_custom_post_type"
	case KindTaxonomy:
		return "cpt_custom_tax"
	default:
		return ""
	}
}

// SelectedParam is the query parameter naming the record being edited.
func (k Kind) SelectedParam() string {
	switch k {
	case KindPostType:
		return "cptui_post_type"
	case KindTaxonomy:
		return "cptui_taxonomy"
	default:
		return ""
	}
}

// ParseKind accepts the canonical names plus the plural route forms.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "post_type", "post_types", "post-type", "post-types", "posttype", "posttypes":
		return KindPostType, nil
	case "taxonomy", "taxonomies", "tax":
		return KindTaxonomy, nil
	}
	return 0, apperr.NewValidationError("kind", fmt.Sprintf("unknown kind %q", s))
}
