// Package metadata extracts component records from files on disk.
//
// A Provider knows how to read one input format (compiled Go binaries,
// TOML component manifests) and turns it into component records for the
// resolver. Providers are leaf-level: they perform no graph work.
package metadata

import (
	"context"
	"os"

	"refmap/pkg/component"
	"refmap/pkg/errors"
)

// Provider extracts component metadata from a file.
type Provider interface {
	// Name returns the provider identifier (e.g., "gobinary", "manifest").
	Name() string
	// Supports reports whether this provider can handle the given path.
	Supports(path string) bool
	// Extract reads the file and returns the components it describes.
	// A compiled binary yields one record; a manifest may yield many.
	Extract(ctx context.Context, path string) ([]component.Record, error)
}

// Detect finds a provider that supports the given path.
// Providers are tried in order; the first match wins.
func Detect(path string, providers ...Provider) (Provider, error) {
	for _, p := range providers {
		if p.Supports(path) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "no provider supports %s", path)
}

// Scan builds a component batch from a list of input paths.
// Each path is dispatched to the first supporting provider; the same
// component name appearing twice across inputs violates the batch
// uniqueness invariant and fails the whole scan.
func Scan(ctx context.Context, paths []string, providers ...Provider) (component.Batch, error) {
	batch := make(component.Batch)
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "stat %s", path)
		}
		p, err := Detect(path, providers...)
		if err != nil {
			return nil, err
		}
		records, err := p.Extract(ctx, path)
		if err != nil {
			return nil, err
		}
		for _, r := range records {
			if err := batch.Add(r); err != nil {
				return nil, err
			}
		}
	}
	return batch, nil
}
