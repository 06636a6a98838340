// Package graphio serializes resolved edge collections for storage and
// cross-tool exchange.
//
// JSON is the round-trip format: export, re-import, and render produce
// identical results. CSV is a one-way tabular export for spreadsheets
// and ad-hoc querying.
package graphio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"refmap/pkg/errors"
	"refmap/pkg/resolve"
)

// document is the JSON envelope for an edge collection.
type document struct {
	Edges []resolve.Edge `json:"edges"`
}

// WriteJSON encodes the edge collection as indented JSON.
func WriteJSON(edges []resolve.Edge, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Edges: edges}); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the edge collection to a JSON file at path.
func ExportJSON(edges []resolve.Edge, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(edges, f)
}

// ReadJSON decodes an edge collection from r.
// Structural invariants the resolver guarantees are re-checked on
// import, so a hand-edited file cannot smuggle impossible edges into a
// renderer.
func ReadJSON(r io.Reader) ([]resolve.Edge, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode edges")
	}
	for _, e := range doc.Edges {
		if err := validate(e); err != nil {
			return nil, err
		}
	}
	return doc.Edges, nil
}

// ImportJSON reads an edge collection from a JSON file at path.
func ImportJSON(path string) ([]resolve.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}

// validate re-checks resolver invariants on an imported edge.
func validate(e resolve.Edge) error {
	switch {
	case e.RootName == "" || e.TargetName == "":
		return errors.New(errors.ErrCodeInvalidInput, "edge with empty endpoint: %q -> %q", e.RootName, e.TargetName)
	case e.RootName == e.TargetName:
		return errors.New(errors.ErrCodeInvalidInput, "self-edge %q", e.RootName)
	case e.ShortestChain < 1:
		return errors.New(errors.ErrCodeInvalidInput, "%s -> %s: shortest chain %d < 1", e.RootName, e.TargetName, e.ShortestChain)
	case e.LongestChain < e.ShortestChain:
		return errors.New(errors.ErrCodeInvalidInput, "%s -> %s: longest chain %d < shortest %d", e.RootName, e.TargetName, e.LongestChain, e.ShortestChain)
	}
	return nil
}

// csvHeader is the fixed column layout of the CSV export.
var csvHeader = []string{
	"root", "root_kind", "target", "target_version",
	"shortest_chain", "longest_chain", "type", "scope",
}

// WriteCSV writes the edge collection as CSV with a header row.
func WriteCSV(edges []resolve.Edge, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range edges {
		row := []string{
			e.RootName, string(e.RootKind), e.TargetName, e.TargetVersion,
			strconv.Itoa(e.ShortestChain), strconv.Itoa(e.LongestChain),
			string(e.Type), string(e.Scope),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s -> %s: %w", e.RootName, e.TargetName, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the edge collection to a CSV file at path.
func ExportCSV(edges []resolve.Edge, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(edges, f)
}
