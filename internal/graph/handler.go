package graph

import (
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// MustSchema parses the SDL against the resolver. Panics on a mismatch
// between schema fields and resolver methods, so wiring errors surface
// at startup, not per request.
func MustSchema(resolver *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(SchemaString, resolver)
}

// NewHandler returns the HTTP handler serving the GraphQL endpoint.
func NewHandler(resolver *Resolver) http.Handler {
	return &relay.Handler{Schema: MustSchema(resolver)}
}
