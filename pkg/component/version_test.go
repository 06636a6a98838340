package component

import (
	"testing"

	"refmap/pkg/errors"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    int
		wantErr bool
	}{
		{"Equal", "1.2.3", "1.2.3", 0, false},
		{"Less", "1.2.3", "1.3.0", -1, false},
		{"Greater", "2.0.0", "1.9.9", 1, false},
		{"SemanticNotLexicographic", "10.0.0", "9.0.0", 1, false},
		{"VPrefix", "v1.2.3", "1.2.3", 0, false},
		{"ShortForm", "1.2", "1.1.9", 1, false},
		{"UnparseableLeft", "garbage", "1.0.0", 0, true},
		{"UnparseableRight", "1.0.0", "garbage", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CompareVersions(tt.a, tt.b)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidVersion) {
					t.Fatalf("CompareVersions(%q, %q) error = %v, want %s", tt.a, tt.b, err, errors.ErrCodeInvalidVersion)
				}
				return
			}
			if err != nil {
				t.Fatalf("CompareVersions(%q, %q): %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMaxVersion(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    string
		wantErr bool
	}{
		{"TakesHigher", "1.0.0", "1.2.0", "1.2.0", false},
		{"KeepsHigher", "2.0.0", "1.2.0", "2.0.0", false},
		{"EqualShortCircuits", "(devel)", "(devel)", "(devel)", false},
		{"Unparseable", "(devel)", "1.0.0", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxVersion(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MaxVersion(%q, %q) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("MaxVersion(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
