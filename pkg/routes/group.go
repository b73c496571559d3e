// Package routes declares HTTP routes as data and assembles them into a named
// route table that can be registered on a mux, reversed into URLs, and
// rendered into an OpenAPI document.
package routes

import (
	"net/http"

	"github.com/JaimeStill/wordmap/pkg/openapi"
)

// Route is a single endpoint. Name is the reverse-lookup key and may be empty.
type Route struct {
	Method  string
	Pattern string
	Name    string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}
