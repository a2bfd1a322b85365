// Package asset holds the bundle registry: the mapping from a bundle route to
// the ordered source files that were combined into it.
package asset

import (
	"fmt"
	"sort"
	"strings"

	oerrors "github.com/opmodel/bundler/internal/errors"
)

// Asset describes one bundle. Order of SourceFiles is load order.
type Asset struct {
	Route       string   `json:"route" yaml:"route"`
	SourceFiles []string `json:"sourceFiles" yaml:"sourceFiles"`
}

// Files returns a copy of the asset's source files.
func (a Asset) Files() []string {
	files := make([]string, len(a.SourceFiles))
	copy(files, a.SourceFiles)
	return files
}

// Registry maps routes to assets. It is populated once by NewRegistry and
// is safe for concurrent reads afterwards.
type Registry struct {
	assets map[string]Asset
}

// NewRegistry registers the given assets.
// Routes must be non-empty, unique, and must not carry a query string.
func NewRegistry(assets ...Asset) (*Registry, error) {
	r := &Registry{assets: make(map[string]Asset, len(assets))}

	for i, a := range assets {
		field := fmt.Sprintf("[%d].route", i)
		switch {
		case a.Route == "":
			return nil, oerrors.NewValidationError("bundle route is empty", "", field,
				"Every bundle needs a route such as /bundle.js")
		case strings.Contains(a.Route, "?"):
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("bundle route %q contains a query string", a.Route), "", field,
				"Query parameters belong on the bundle attribute, not the registered route")
		}
		if _, exists := r.assets[a.Route]; exists {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("bundle route %q is registered more than once", a.Route), "", field,
				"Routes must be unique")
		}
		r.assets[a.Route] = Asset{Route: a.Route, SourceFiles: a.Files()}
	}

	return r, nil
}

// Lookup returns the asset registered for route. Matching is exact and
// case-sensitive.
func (r *Registry) Lookup(route string) (Asset, bool) {
	a, ok := r.assets[route]
	return a, ok
}

// Resolve is Lookup that reports a missing route as an unknown bundle route
// error.
func (r *Registry) Resolve(route string) (Asset, error) {
	a, ok := r.assets[route]
	if !ok {
		return Asset{}, oerrors.NewUnknownRouteError(route)
	}
	return a, nil
}

// Routes returns all registered routes in sorted order.
func (r *Registry) Routes() []string {
	routes := make([]string, 0, len(r.assets))
	for route := range r.assets {
		routes = append(routes, route)
	}
	sort.Strings(routes)
	return routes
}

// Len returns the number of registered assets.
func (r *Registry) Len() int {
	return len(r.assets)
}
