package render

import (
	"bytes"
	"fmt"
	"strings"

	"refmap/pkg/resolve"
)

// plantumlArrow maps a classification to its PlantUML connector:
// direct edges use a solid arrow, redundant and indirect edges use
// dotted arrows with the classification spelled out.
func plantumlArrow(t resolve.Type) string {
	if t == resolve.TypeDirect {
		return "-->"
	}
	return "..>"
}

// plantumlID turns a component name into a PlantUML-safe identifier.
// PlantUML component aliases cannot contain path separators or dots.
func plantumlID(name string) string {
	r := strings.NewReplacer("/", "_", ".", "_", "-", "_", " ", "_")
	return r.Replace(name)
}

// ToPlantUML converts the edge collection to a PlantUML component
// diagram. Included components render as [component]; external ones
// additionally carry the <<external>> stereotype.
func ToPlantUML(edges []resolve.Edge, opts Options) string {
	edges = opts.Filter.Apply(edges)

	external := make(map[string]bool)
	for _, e := range edges {
		if e.Scope == resolve.ScopeExternal {
			external[e.TargetName] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("@startuml\n")

	for _, name := range nodeNames(edges) {
		if external[name] {
			fmt.Fprintf(&buf, "component %q as %s <<external>>\n", name, plantumlID(name))
		} else {
			fmt.Fprintf(&buf, "component %q as %s\n", name, plantumlID(name))
		}
	}

	buf.WriteString("\n")
	for _, e := range edges {
		line := fmt.Sprintf("%s %s %s", plantumlID(e.RootName), plantumlArrow(e.Type), plantumlID(e.TargetName))
		if opts.Versions && e.TargetVersion != "" {
			line += fmt.Sprintf(" : %s", e.TargetVersion)
		}
		buf.WriteString(line + "\n")
	}

	buf.WriteString("@enduml\n")
	return buf.String()
}
