package resolvers

import (
	gqlmodels "cptui.GO/graphql/models"
	"cptui.GO/service/registration"
)

func contentTypeToGraphQL(r registration.Registration) *gqlmodels.ContentType {
	label := r.Label()
	if label == "" {
		label = r.Name
	}
	return &gqlmodels.ContentType{
		Kind:              r.Kind.String(),
		Name:              r.Name,
		Label:             label,
		ShowInGraphql:     r.ShowInGraphQL(),
		GraphqlSingleName: r.SingleName(),
		GraphqlPluralName: r.PluralName(),
	}
}

func contentTypesToGraphQL(regs []registration.Registration) []*gqlmodels.ContentType {
	out := make([]*gqlmodels.ContentType, 0, len(regs))
	for _, r := range registration.Filter(regs) {
		out = append(out, contentTypeToGraphQL(r))
	}
	return out
}
