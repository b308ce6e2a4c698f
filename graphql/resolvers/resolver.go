package resolvers

import (
	"context"
	"encoding/json"
	"log"

	"cptui.GO/graphql"
	gqlregistry "cptui.GO/graphql/registry"
	"cptui.GO/hooks"
	"cptui.GO/service/registration"
	"cptui.GO/service/search"
)

// Source supplies built registrations. *editor.Service implements it.
type Source interface {
	Registrations(ctx context.Context, kind hooks.Kind) ([]registration.Registration, error)
}

// Searcher queries the search index. *search.SearchService implements it.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]search.Hit, error)
}

// QueryResolver is the single resolver for all Query fields.
// Methods live in content_type.go and search.go; _extension dispatches to
// graphql/registry.
type QueryResolver struct {
	source   Source
	searcher Searcher
}

// NewQueryResolver returns the Query resolver. searcher may be nil.
func NewQueryResolver(source Source, searcher Searcher) *QueryResolver {
	return &QueryResolver{source: source, searcher: searcher}
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

// Extension dispatches to registered custom resolvers and returns their JSON.
func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := gqlregistry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func logf(ctx context.Context, format string, args ...interface{}) {
	if id := graphql.RequestIDFromContext(ctx); id != "" {
		format = "[" + id + "] " + format
	}
	log.Printf(format, args...)
}
