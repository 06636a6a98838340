// Package component defines the metadata model for analyzed binary
// components: the records produced by metadata providers and consumed
// by the dependency graph resolver.
package component

import (
	"slices"

	"refmap/pkg/errors"
)

// Kind classifies a component by its binary role.
type Kind string

// Component kinds.
const (
	KindExecutable Kind = "executable"
	KindLibrary    Kind = "library"
	KindOther      Kind = "other"
)

// ParseKind converts a string to a Kind. Unrecognized non-empty values
// map to KindOther so that providers for exotic binary formats degrade
// gracefully. An empty string is an error.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindExecutable, KindLibrary, KindOther:
		return Kind(s), nil
	case "":
		return "", errors.New(errors.ErrCodeInvalidKind, "component kind must not be empty")
	default:
		return KindOther, nil
	}
}

// Reference is a single declared first-level dependency of a component.
type Reference struct {
	Name    string // Referenced component name
	Version string // Version recorded at the reference site
}

// Record holds the metadata extracted from one binary component.
// DirectReferences preserves declaration order; the order affects only
// display downstream, never graph resolution.
type Record struct {
	Name             string      // Unique component name within a batch
	Version          string      // Component's own version
	Kind             Kind        // Binary role
	DirectReferences []Reference // Declared first-level dependencies (may be empty)
}

// Batch is the full set of components under analysis, keyed by name.
// Names are unique; references to names absent from the batch are
// external references.
type Batch map[string]Record

// Add inserts a record into the batch.
// Returns ErrCodeInvalidInput for an empty name and
// ErrCodeDuplicateComponent if the name is already present.
func (b Batch) Add(r Record) error {
	if r.Name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "component name must not be empty")
	}
	if _, exists := b[r.Name]; exists {
		return errors.New(errors.ErrCodeDuplicateComponent, "component %q declared more than once", r.Name)
	}
	b[r.Name] = r
	return nil
}

// Names returns all component names in sorted order.
// Sorting keeps batch iteration deterministic across runs.
func (b Batch) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
