package render

import (
	"strings"
	"testing"

	"refmap/pkg/component"
	"refmap/pkg/resolve"
)

func testEdges() []resolve.Edge {
	return []resolve.Edge{
		{
			RootName: "app", RootKind: component.KindExecutable,
			TargetName: "core", TargetVersion: "1.2.0",
			ShortestChain: 1, LongestChain: 1,
			Type: resolve.TypeDirect, Scope: resolve.ScopeIncluded,
		},
		{
			RootName: "app", RootKind: component.KindExecutable,
			TargetName: "util", TargetVersion: "0.9.0",
			ShortestChain: 1, LongestChain: 2,
			Type: resolve.TypeRedundant, Scope: resolve.ScopeIncluded,
		},
		{
			RootName: "core", RootKind: component.KindLibrary,
			TargetName: "zlib", TargetVersion: "1.3.0",
			ShortestChain: 2, LongestChain: 2,
			Type: resolve.TypeIndirect, Scope: resolve.ScopeExternal,
		},
	}
}

func TestFilter(t *testing.T) {
	edges := testEdges()

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"ZeroValueAllowsAll", Filter{}, 3},
		{"DirectOnly", Filter{Types: []resolve.Type{resolve.TypeDirect}}, 1},
		{"DirectAndRedundant", Filter{Types: []resolve.Type{resolve.TypeDirect, resolve.TypeRedundant}}, 2},
		{"IncludedOnly", Filter{Scopes: []resolve.Scope{resolve.ScopeIncluded}}, 2},
		{
			"DirectIncluded",
			Filter{
				Types:  []resolve.Type{resolve.TypeDirect},
				Scopes: []resolve.Scope{resolve.ScopeIncluded},
			},
			1,
		},
		{"NothingMatches", Filter{Types: []resolve.Type{resolve.TypeIndirect}, Scopes: []resolve.Scope{resolve.ScopeIncluded}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.filter.Apply(edges)); got != tt.want {
				t.Errorf("Apply kept %d edges, want %d", got, tt.want)
			}
		})
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testEdges(), Options{Versions: true})

	for _, want := range []string{
		"digraph components {",
		`"app" -> "core" [style=solid, label="1.2.0"];`,
		`"app" -> "util" [style=dashed, label="0.9.0"];`,
		`"core" -> "zlib" [style=dotted, label="1.3.0"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTStyles(t *testing.T) {
	styles, err := NewStyles([]Rule{
		{Pattern: "app", Style: Style{Fill: "lightgreen", Shape: "component"}},
	}, Style{})
	if err != nil {
		t.Fatalf("NewStyles: %v", err)
	}

	dot := ToDOT(testEdges(), Options{Styles: styles})
	if !strings.Contains(dot, `"app" [shape=component, fillcolor="lightgreen", color="black"];`) {
		t.Errorf("DOT output missing styled app node:\n%s", dot)
	}
	if !strings.Contains(dot, `"zlib" [shape=box, fillcolor="white", color="black"];`) {
		t.Errorf("DOT output missing default-styled zlib node:\n%s", dot)
	}
}

func TestToDOTFilterDropsNodes(t *testing.T) {
	dot := ToDOT(testEdges(), Options{
		Filter: Filter{Scopes: []resolve.Scope{resolve.ScopeIncluded}},
	})
	if strings.Contains(dot, "zlib") {
		t.Errorf("filtered-out target should not appear:\n%s", dot)
	}
	if !strings.Contains(dot, `"app" -> "core"`) {
		t.Errorf("included edge missing:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	first := ToDOT(testEdges(), Options{Versions: true})
	for range 3 {
		if again := ToDOT(testEdges(), Options{Versions: true}); again != first {
			t.Fatal("DOT output not deterministic")
		}
	}
}

func TestToPlantUML(t *testing.T) {
	uml := ToPlantUML(testEdges(), Options{Versions: true})

	for _, want := range []string{
		"@startuml",
		`component "app" as app`,
		`component "zlib" as zlib <<external>>`,
		"app --> core : 1.2.0",
		"core ..> zlib : 1.3.0",
		"@enduml",
	} {
		if !strings.Contains(uml, want) {
			t.Errorf("PlantUML output missing %q:\n%s", want, uml)
		}
	}
}

func TestToPlantUMLSanitizesIDs(t *testing.T) {
	edges := []resolve.Edge{{
		RootName: "github.com/acme/app", RootKind: component.KindExecutable,
		TargetName: "golang.org/x/sys", TargetVersion: "v0.36.0",
		ShortestChain: 1, LongestChain: 1,
		Type: resolve.TypeDirect, Scope: resolve.ScopeExternal,
	}}

	uml := ToPlantUML(edges, Options{})
	if !strings.Contains(uml, "github_com_acme_app --> golang_org_x_sys") {
		t.Errorf("PlantUML IDs not sanitized:\n%s", uml)
	}
	if !strings.Contains(uml, `component "golang.org/x/sys" as golang_org_x_sys <<external>>`) {
		t.Errorf("PlantUML external component declaration missing:\n%s", uml)
	}
}
