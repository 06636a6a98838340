package component

import (
	mm "github.com/Masterminds/semver/v3"

	"refmap/pkg/errors"
)

// CompareVersions compares two version strings by semantic version
// ordering, returning:
//
//	-1 if a < b
//	 0 if a == b
//	 1 if a > b
//
// Returns ErrCodeInvalidVersion if either string does not parse.
// Version is a published, user-facing field, so an unparseable version
// is reported rather than silently ordered.
func CompareVersions(a, b string) (int, error) {
	va, err := mm.NewVersion(a)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidVersion, err, "parse version %q", a)
	}
	vb, err := mm.NewVersion(b)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidVersion, err, "parse version %q", b)
	}
	return va.Compare(vb), nil
}

// MaxVersion returns the higher of two version strings by semantic
// version ordering, not lexicographic comparison. Identical strings
// short-circuit without parsing, so only versions that actually need
// an ordering decision can fail.
func MaxVersion(a, b string) (string, error) {
	if a == b {
		return a, nil
	}
	cmp, err := CompareVersions(a, b)
	if err != nil {
		return "", err
	}
	if cmp >= 0 {
		return a, nil
	}
	return b, nil
}
