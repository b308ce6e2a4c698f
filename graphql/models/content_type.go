package models

// ContentType is a post type or taxonomy as exposed to the query API.
type ContentType struct {
	Kind              string `json:"kind"`
	Name              string `json:"name"`
	Label             string `json:"label"`
	ShowInGraphql     bool   `json:"showInGraphql"`
	GraphqlSingleName string `json:"graphqlSingleName"`
	GraphqlPluralName string `json:"graphqlPluralName"`
}
