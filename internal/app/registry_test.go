package app

import (
	"sort"
	"testing"
)

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup("nope"); err == nil {
		t.Fatalf("Lookup(nope) did not fail")
	}
}

func TestFunctions_Sorted(t *testing.T) {
	fs := Functions()
	if len(fs) < 3 {
		t.Fatalf("Functions() returned %d entries, want at least 3", len(fs))
	}
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("Functions() not sorted: %v", names)
	}
}

func TestMustRegister_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("duplicate registration did not panic")
		}
	}()
	MustRegister(&Function{Name: "f"})
}
