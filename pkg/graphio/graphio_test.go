package graphio

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"refmap/pkg/component"
	"refmap/pkg/errors"
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
			TargetName: "zlib", TargetVersion: "1.3.0",
			ShortestChain: 1, LongestChain: 3,
			Type: resolve.TypeRedundant, Scope: resolve.ScopeExternal,
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	edges := testEdges()

	var buf bytes.Buffer
	if err := WriteJSON(edges, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, edges) {
		t.Errorf("round trip diverged:\ngot:  %+v\nwant: %+v", got, edges)
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.json")
	edges := testEdges()

	if err := ExportJSON(edges, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !reflect.DeepEqual(got, edges) {
		t.Errorf("file round trip diverged:\ngot:  %+v\nwant: %+v", got, edges)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	if _, err := ImportJSON("does/not/exist.json"); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestReadJSONRejectsInvalidEdges(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"SelfEdge", `{"edges":[{"root":"a","target":"a","shortest_chain":1,"longest_chain":1}]}`},
		{"ZeroChain", `{"edges":[{"root":"a","target":"b","shortest_chain":0,"longest_chain":1}]}`},
		{"LongestBelowShortest", `{"edges":[{"root":"a","target":"b","shortest_chain":2,"longest_chain":1}]}`},
		{"EmptyEndpoint", `{"edges":[{"root":"","target":"b","shortest_chain":1,"longest_chain":1}]}`},
		{"Malformed", `{"edges":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.json))
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ReadJSON error = %v, want %s", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(testEdges(), &buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), buf.String())
	}
	if lines[0] != "root,root_kind,target,target_version,shortest_chain,longest_chain,type,scope" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "app,executable,core,1.2.0,1,1,direct,included" {
		t.Errorf("unexpected first row: %s", lines[1])
	}
	if lines[2] != "app,executable,zlib,1.3.0,1,3,redundant,external" {
		t.Errorf("unexpected second row: %s", lines[2])
	}
}
