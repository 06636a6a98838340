package resolve

import "refmap/pkg/component"

// Type classifies a root→target relationship by whether a one-hop path
// exists and whether longer paths also exist.
type Type string

// Dependency classifications.
const (
	// TypeDirect: every path from root to target is a single hop.
	TypeDirect Type = "direct"
	// TypeRedundant: a direct reference exists, but at least one longer
	// path reaches the same target, so the direct reference is not the
	// only route.
	TypeRedundant Type = "redundant"
	// TypeIndirect: the target is only reachable via paths of two or
	// more hops.
	TypeIndirect Type = "indirect"
)

// Scope records whether an edge's target is itself one of the analyzed
// batch components.
type Scope string

// Edge scopes.
const (
	ScopeIncluded Scope = "included"
	ScopeExternal Scope = "external"
)

// Key identifies an edge by its (root, target) pair.
type Key struct {
	Root   string
	Target string
}

// Edge describes one reachable (root, target) pair with the path-length
// statistics accumulated over every discovered path. Exactly one Edge
// exists per reachable pair; self-edges are never materialized.
//
// Edges are plain data: Type and Scope are pure functions of the
// finished chain fields and the input batch, finalized in a single
// post-pass after traversal.
type Edge struct {
	RootName      string         `json:"root"`
	RootKind      component.Kind `json:"root_kind"`
	TargetName    string         `json:"target"`
	TargetVersion string         `json:"target_version"`
	ShortestChain int            `json:"shortest_chain"` // Minimum hops over any path (>= 1)
	LongestChain  int            `json:"longest_chain"`  // Maximum hops over any acyclic path
	Type          Type           `json:"type"`
	Scope         Scope          `json:"scope"`
}

// classify derives the dependency type from the finished chain lengths.
// Precedence matters: a longest chain of one means no longer route
// exists at all, which outranks the redundancy check.
func classify(shortest, longest int) Type {
	switch {
	case longest == 1:
		return TypeDirect
	case shortest == 1:
		return TypeRedundant
	default:
		return TypeIndirect
	}
}

// scopeOf reports whether target is itself a root in the batch.
func scopeOf(batch component.Batch, target string) Scope {
	if _, ok := batch[target]; ok {
		return ScopeIncluded
	}
	return ScopeExternal
}
