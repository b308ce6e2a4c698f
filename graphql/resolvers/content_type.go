package resolvers

import (
	"context"

	gqlmodels "cptui.GO/graphql/models"
	"cptui.GO/hooks"
)

// NameArgs matches contentType(name) and taxonomy(name).
type NameArgs struct {
	Name string
}

func (r *QueryResolver) ContentTypes(ctx context.Context) ([]*gqlmodels.ContentType, error) {
	return r.list(ctx, hooks.KindPostType)
}

func (r *QueryResolver) Taxonomies(ctx context.Context) ([]*gqlmodels.ContentType, error) {
	return r.list(ctx, hooks.KindTaxonomy)
}

// ContentType returns one exposed post type, or null when it is missing or hidden.
func (r *QueryResolver) ContentType(ctx context.Context, args NameArgs) (*gqlmodels.ContentType, error) {
	return r.one(ctx, hooks.KindPostType, args.Name)
}

// Taxonomy returns one exposed taxonomy, or null when it is missing or hidden.
func (r *QueryResolver) Taxonomy(ctx context.Context, args NameArgs) (*gqlmodels.ContentType, error) {
	return r.one(ctx, hooks.KindTaxonomy, args.Name)
}

func (r *QueryResolver) list(ctx context.Context, kind hooks.Kind) ([]*gqlmodels.ContentType, error) {
	regs, err := r.source.Registrations(ctx, kind)
	if err != nil {
		logf(ctx, "graphql: %s registrations: %v", kind, err)
		return nil, err
	}
	return contentTypesToGraphQL(regs), nil
}

func (r *QueryResolver) one(ctx context.Context, kind hooks.Kind, name string) (*gqlmodels.ContentType, error) {
	regs, err := r.source.Registrations(ctx, kind)
	if err != nil {
		logf(ctx, "graphql: %s registrations: %v", kind, err)
		return nil, err
	}
	for _, reg := range regs {
		if reg.Name == name && reg.ShowInGraphQL() {
			return contentTypeToGraphQL(reg), nil
		}
	}
	return nil, nil
}
