package resolvers

import (
	"context"
	"errors"
	"strings"

	gqlmodels "cptui.GO/graphql/models"
	"cptui.GO/hooks"
	"cptui.GO/service/registration"
	"cptui.GO/service/search"
)

// SearchArgs matches searchContentTypes(query, limit = 10).
type SearchArgs struct {
	Query string
	Limit int32
}

// SearchContentTypes matches exposed post types and taxonomies against query.
// Uses Elasticsearch when configured, otherwise a substring match over the
// live registrations.
func (r *QueryResolver) SearchContentTypes(ctx context.Context, args SearchArgs) ([]*gqlmodels.ContentType, error) {
	limit := int(args.Limit)
	if limit <= 0 {
		limit = 10
	}
	if r.searcher != nil {
		hits, err := r.searcher.Search(ctx, args.Query, limit)
		if err == nil {
			return r.fromHits(ctx, hits)
		}
		if !errors.Is(err, search.ErrNotConfigured) {
			logf(ctx, "graphql: search %q: %v, falling back to registrations", args.Query, err)
		}
	}
	return r.scan(ctx, args.Query, limit)
}

func (r *QueryResolver) fromHits(ctx context.Context, hits []search.Hit) ([]*gqlmodels.ContentType, error) {
	byKind := make(map[hooks.Kind]map[string]registration.Registration)
	out := make([]*gqlmodels.ContentType, 0, len(hits))
	for _, h := range hits {
		regs, ok := byKind[h.Kind]
		if !ok {
			list, err := r.source.Registrations(ctx, h.Kind)
			if err != nil {
				return nil, err
			}
			regs = make(map[string]registration.Registration, len(list))
			for _, reg := range list {
				regs[reg.Name] = reg
			}
			byKind[h.Kind] = regs
		}
		// The index can lag behind deletes and show_in_graphql changes.
		reg, ok := regs[h.Name]
		if !ok || !reg.ShowInGraphQL() {
			continue
		}
		out = append(out, contentTypeToGraphQL(reg))
	}
	return out, nil
}

func (r *QueryResolver) scan(ctx context.Context, query string, limit int) ([]*gqlmodels.ContentType, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*gqlmodels.ContentType, 0)
	for _, kind := range hooks.Kinds() {
		regs, err := r.source.Registrations(ctx, kind)
		if err != nil {
			return nil, err
		}
		for _, reg := range registration.Filter(regs) {
			if len(out) >= limit {
				return out, nil
			}
			if matches(reg, q) {
				out = append(out, contentTypeToGraphQL(reg))
			}
		}
	}
	return out, nil
}

func matches(reg registration.Registration, q string) bool {
	if q == "" {
		return true
	}
	for _, s := range []string{reg.Name, reg.Label(), reg.SingleName(), reg.PluralName()} {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
