package graphql

import (
	_ "embed"
)

//go:embed schema.graphqls
var schemaBase string

// Schema returns the query API SDL.
func Schema() string {
	return schemaBase
}
