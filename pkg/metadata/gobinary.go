package metadata

import (
	"context"
	"debug/buildinfo"
	"path/filepath"

	"refmap/pkg/component"
	"refmap/pkg/errors"
)

// develVersion is the version the Go toolchain stamps on modules built
// from a working tree rather than a tagged release.
const develVersion = "(devel)"

// GoBinary extracts component metadata from compiled Go binaries using
// the build information embedded by the Go toolchain.
//
// The component name is the main module path, the version is the main
// module version, and the direct references are the module requirements
// recorded in the binary. Replaced modules report the replacement
// target, since that is what the binary actually links against.
type GoBinary struct{}

// Name returns the provider identifier.
func (GoBinary) Name() string { return "gobinary" }

// Supports reports whether the file carries readable Go build info.
func (GoBinary) Supports(path string) bool {
	_, err := buildinfo.ReadFile(path)
	return err == nil
}

// Extract reads the binary's embedded build information.
func (GoBinary) Extract(_ context.Context, path string) ([]component.Record, error) {
	bi, err := buildinfo.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read build info from %s", path)
	}

	name := bi.Main.Path
	if name == "" {
		name = filepath.Base(path)
	}
	version := bi.Main.Version
	if version == "" {
		version = develVersion
	}

	refs := make([]component.Reference, 0, len(bi.Deps))
	for _, dep := range bi.Deps {
		mod := dep
		if dep.Replace != nil {
			mod = dep.Replace
		}
		refs = append(refs, component.Reference{Name: mod.Path, Version: mod.Version})
	}

	return []component.Record{{
		Name:             name,
		Version:          version,
		Kind:             component.KindExecutable,
		DirectReferences: refs,
	}}, nil
}
