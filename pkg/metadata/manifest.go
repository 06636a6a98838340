package metadata

import (
	"context"
	"strings"

	"github.com/BurntSushi/toml"

	"refmap/pkg/component"
	"refmap/pkg/errors"
)

// Manifest extracts component metadata from TOML component manifests.
// Manifests describe binaries refmap cannot read directly, or
// hand-written batches for experimentation:
//
//	[[component]]
//	name = "billing-service"
//	version = "2.1.0"
//	kind = "executable"
//
//	  [[component.ref]]
//	  name = "payments-core"
//	  version = "1.4.0"
//
// Reference order in the file is preserved in the extracted records.
type Manifest struct{}

// Name returns the provider identifier.
func (Manifest) Name() string { return "manifest" }

// Supports reports whether the path looks like a TOML manifest.
func (Manifest) Supports(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".toml")
}

type manifestFile struct {
	Component []manifestComponent `toml:"component"`
}

type manifestComponent struct {
	Name    string        `toml:"name"`
	Version string        `toml:"version"`
	Kind    string        `toml:"kind"`
	Ref     []manifestRef `toml:"ref"`
}

type manifestRef struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Extract parses the manifest file into component records.
// Components must carry a name and a kind; references must carry a
// name. Versions are not validated here: only versions that later
// need an ordering decision in the resolver must parse.
func (Manifest) Extract(_ context.Context, path string) ([]component.Record, error) {
	var mf manifestFile
	if _, err := toml.DecodeFile(path, &mf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode %s", path)
	}

	records := make([]component.Record, 0, len(mf.Component))
	for i, mc := range mf.Component {
		if mc.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: component %d has no name", path, i)
		}
		kind, err := component.ParseKind(mc.Kind)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "%s: component %q", path, mc.Name)
		}

		refs := make([]component.Reference, 0, len(mc.Ref))
		for j, mr := range mc.Ref {
			if mr.Name == "" {
				return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: component %q reference %d has no name", path, mc.Name, j)
			}
			refs = append(refs, component.Reference{Name: mr.Name, Version: mr.Version})
		}

		records = append(records, component.Record{
			Name:             mc.Name,
			Version:          mc.Version,
			Kind:             kind,
			DirectReferences: refs,
		})
	}

	return records, nil
}
