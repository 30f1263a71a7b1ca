// Package routes declares HTTP routes alongside their OpenAPI operations so a
// single definition drives both mux registration and the generated document.
package routes

import (
	"net/http"

	"github.com/JaimeStill/event-builder/pkg/openapi"
)

// Route binds a handler to a method and a pattern relative to its group.
type Route struct {
	Method  string
	Pattern string
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
	Schemas     map[string]*openapi.Schema
}

// AddToSpec adds the group's operations to spec with paths rooted at basePath.
// Operations without explicit tags inherit the group tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addOperations(basePath, spec)
}

func (g *Group) addOperations(parentPrefix string, spec *openapi.Spec) {
	prefix := parentPrefix + g.Prefix

	if len(g.Schemas) > 0 && spec.Components != nil {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		spec.AddOperation(prefix+route.Pattern, route.Method, op)
	}

	for i := range g.Children {
		g.Children[i].addOperations(prefix, spec)
	}
}

func (g *Group) register(mux *http.ServeMux, parentPrefix string) {
	prefix := parentPrefix + g.Prefix

	for _, route := range g.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}

	for i := range g.Children {
		g.Children[i].register(mux, prefix)
	}
}

// Register adds every group route to mux and documents it in spec.
// Mux patterns are relative to the module; spec paths include basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for i := range groups {
		groups[i].register(mux, "")
		if spec != nil {
			groups[i].AddToSpec(basePath, spec)
		}
	}
}
