package render

import (
	"slices"

	"refmap/pkg/resolve"
)

// Filter restricts which edges appear in a rendered diagram.
// Empty slices mean "no restriction"; the zero value allows every
// edge. Consumers typically request only direct, included edges to
// keep diagrams readable.
type Filter struct {
	Types  []resolve.Type
	Scopes []resolve.Scope
}

// Allow reports whether the edge passes the filter.
func (f Filter) Allow(e resolve.Edge) bool {
	if len(f.Types) > 0 && !slices.Contains(f.Types, e.Type) {
		return false
	}
	if len(f.Scopes) > 0 && !slices.Contains(f.Scopes, e.Scope) {
		return false
	}
	return true
}

// Apply returns the edges that pass the filter, preserving order.
func (f Filter) Apply(edges []resolve.Edge) []resolve.Edge {
	out := make([]resolve.Edge, 0, len(edges))
	for _, e := range edges {
		if f.Allow(e) {
			out = append(out, e)
		}
	}
	return out
}
