package component

import (
	"reflect"
	"testing"

	"refmap/pkg/errors"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Kind
		wantErr bool
	}{
		{"Executable", "executable", KindExecutable, false},
		{"Library", "library", KindLibrary, false},
		{"Other", "other", KindOther, false},
		{"UnknownMapsToOther", "plugin", KindOther, false},
		{"Empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestBatchAdd(t *testing.T) {
	b := make(Batch)
	if err := b.Add(Record{Name: "app", Version: "1.0.0", Kind: KindExecutable}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	err := b.Add(Record{Name: "app", Version: "2.0.0", Kind: KindLibrary})
	if !errors.Is(err, errors.ErrCodeDuplicateComponent) {
		t.Errorf("duplicate Add error = %v, want %s", err, errors.ErrCodeDuplicateComponent)
	}

	err = b.Add(Record{Name: "", Version: "1.0.0", Kind: KindLibrary})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty name Add error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestBatchNamesSorted(t *testing.T) {
	b := make(Batch)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := b.Add(Record{Name: name, Version: "1.0.0", Kind: KindLibrary}); err != nil {
			t.Fatalf("Add(%s): %v", name, err)
		}
	}
	want := []string{"alpha", "mid", "zeta"}
	if got := b.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
