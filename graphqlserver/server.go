package graphqlserver

import (
	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"cptui.GO/graphql"
	gqlregistry "cptui.GO/graphql/registry"
	"cptui.GO/graphql/resolvers"
)

// NewSchema parses the schema over source and searcher (nil searcher means
// registrations are scanned for searchContentTypes). Locks the _extension
// registry.
func NewSchema(source resolvers.Source, searcher resolvers.Searcher) (*gql.Schema, error) {
	gqlregistry.Lock()
	root := resolvers.NewQueryResolver(source, searcher)
	return gql.ParseSchema(graphql.Schema(), root, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
