// Package resolve computes the classified dependency graph for a batch
// of analyzed components.
//
// Given each component's declared direct references, Resolve walks the
// reference graph from every batch component and produces one Edge per
// reachable (root, target) pair, carrying the shortest and longest
// observed chain lengths, the maximum observed target version, and the
// derived Direct/Redundant/Indirect classification. Cycles terminate
// the walk without materializing self-edges.
package resolve

import (
	"slices"

	"refmap/pkg/component"
)

// Resolve computes every reachable (root, target) edge for the batch.
//
// The walk is depth-first per root with an owned path stack; roots are
// processed in sorted name order and accumulate into a shared edge
// collection, so the result is deterministic for a given batch. An
// empty batch yields an empty, non-nil edge slice.
//
// Resolve returns an error only when a version needed for a max-merge
// does not parse; there are no partial results.
func Resolve(batch component.Batch) ([]Edge, error) {
	w := &walker{
		batch:  batch,
		edges:  make(map[Key]*Edge),
		onPath: make(map[string]bool),
	}

	for _, root := range batch.Names() {
		rec := batch[root]
		w.root = root
		w.rootKind = rec.Kind
		w.onPath[root] = true
		err := w.walk(rec, 1)
		delete(w.onPath, root)
		if err != nil {
			return nil, err
		}
	}

	return w.collect(), nil
}

// walker holds the traversal state for one Resolve call. The path
// stack (onPath) is per root; the edge map is shared across roots.
type walker struct {
	batch component.Batch
	edges map[Key]*Edge

	root     string
	rootKind component.Kind
	onPath   map[string]bool
}

// walk visits cur's direct references at the given path depth.
//
// References already on the active path close a cycle: the branch is
// not extended and no edge is recorded for the closing hop. This also
// covers self-references (the root is on the path from depth zero) and
// bounds recursion by the number of distinct component names. Names
// absent from the batch are external leaves; their edge is recorded
// but there is nothing to recurse into.
func (w *walker) walk(cur component.Record, depth int) error {
	for _, ref := range cur.DirectReferences {
		if w.onPath[ref.Name] {
			continue
		}
		if err := w.record(ref, depth); err != nil {
			return err
		}
		next, ok := w.batch[ref.Name]
		if !ok {
			continue
		}
		w.onPath[ref.Name] = true
		err := w.walk(next, depth+1)
		delete(w.onPath, ref.Name)
		if err != nil {
			return err
		}
	}
	return nil
}

// record creates or widens the edge root→ref for a path of the given
// depth. Rediscoveries narrow the shortest chain, widen the longest
// chain, and raise the target version under semantic-version ordering.
func (w *walker) record(ref component.Reference, depth int) error {
	key := Key{Root: w.root, Target: ref.Name}
	e, ok := w.edges[key]
	if !ok {
		w.edges[key] = &Edge{
			RootName:      w.root,
			RootKind:      w.rootKind,
			TargetName:    ref.Name,
			TargetVersion: ref.Version,
			ShortestChain: depth,
			LongestChain:  depth,
		}
		return nil
	}

	e.ShortestChain = min(e.ShortestChain, depth)
	e.LongestChain = max(e.LongestChain, depth)

	v, err := component.MaxVersion(e.TargetVersion, ref.Version)
	if err != nil {
		return err
	}
	e.TargetVersion = v
	return nil
}

// collect finalizes classification and scope for every edge and returns
// the collection sorted by (root, target).
func (w *walker) collect() []Edge {
	out := make([]Edge, 0, len(w.edges))
	for _, e := range w.edges {
		e.Type = classify(e.ShortestChain, e.LongestChain)
		e.Scope = scopeOf(w.batch, e.TargetName)
		out = append(out, *e)
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.RootName != b.RootName {
			if a.RootName < b.RootName {
				return -1
			}
			return 1
		}
		if a.TargetName < b.TargetName {
			return -1
		}
		if a.TargetName > b.TargetName {
			return 1
		}
		return 0
	})
	return out
}
