// Package render turns a resolved edge collection into diagram text.
//
// Renderers consume the resolver's plain edge data plus an ordered
// name→style lookup and a type/scope filter; they impose nothing back
// on resolution. DOT output can additionally be rasterized to SVG with
// Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/goccy/go-graphviz"

	"refmap/pkg/resolve"
)

// Options configures diagram text generation.
type Options struct {
	// Styles selects node attributes by component name.
	// Nil uses the default style for every node.
	Styles *Styles
	// Filter restricts which edges are drawn. The zero value draws all.
	Filter Filter
	// Versions labels each edge with the target version.
	Versions bool
}

// styles returns the configured lookup or an all-default one.
func (o Options) styles() *Styles {
	if o.Styles != nil {
		return o.Styles
	}
	s, _ := NewStyles(nil, DefaultStyle)
	return s
}

// edgeAttrs maps a classification to its DOT line style: direct edges
// are solid, redundant dashed, indirect dotted.
func edgeAttrs(t resolve.Type) string {
	switch t {
	case resolve.TypeRedundant:
		return "style=dashed"
	case resolve.TypeIndirect:
		return "style=dotted"
	default:
		return "style=solid"
	}
}

// nodeNames collects the distinct node names referenced by the edges,
// sorted for deterministic output.
func nodeNames(edges []resolve.Edge) []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range edges {
		for _, n := range []string{e.RootName, e.TargetName} {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	slices.Sort(names)
	return names
}

// ToDOT converts the edge collection to Graphviz DOT format.
// The output is deterministic for a given input: nodes are sorted by
// name and edges keep the resolver's (root, target) order.
func ToDOT(edges []resolve.Edge, opts Options) string {
	edges = opts.Filter.Apply(edges)
	styles := opts.styles()

	var buf bytes.Buffer
	buf.WriteString("digraph components {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, name := range nodeNames(edges) {
		st := styles.For(name)
		fmt.Fprintf(&buf, "  %q [shape=%s, fillcolor=%q, color=%q];\n", name, st.Shape, st.Fill, st.Color)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		attrs := edgeAttrs(e.Type)
		if opts.Versions && e.TargetVersion != "" {
			attrs += fmt.Sprintf(", label=%q", e.TargetVersion)
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.RootName, e.TargetName, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG rasterizes a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
