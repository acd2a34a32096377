package permute

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/stat/combin"
)

func lessString(a, b string) bool { return a < b }

func TestTwoKeyDomain(t *testing.T) {
	input := map[string]int{"a": 1, "b": 2}
	it := New(input, lessString)

	first, ok := it.Next()
	if !ok {
		t.Fatal("expected first arrangement")
	}
	if first["a"] != 1 || first["b"] != 2 {
		t.Errorf("first arrangement should be the identity, got %v", first)
	}

	second, ok := it.Next()
	if !ok {
		t.Fatal("expected second arrangement")
	}
	if second["a"] != 2 || second["b"] != 1 {
		t.Errorf("second arrangement should swap values, got %v", second)
	}

	if _, ok := it.Next(); ok {
		t.Error("expected exhaustion after 2 arrangements")
	}
	if it.Emitted() != 2 {
		t.Errorf("Emitted() = %d, want 2", it.Emitted())
	}
}

func TestInputNotMutated(t *testing.T) {
	input := map[string]int{"a": 1, "b": 2, "c": 3}
	it := New(input, lessString)
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	if input["a"] != 1 || input["b"] != 2 || input["c"] != 3 {
		t.Errorf("caller's map was mutated: %v", input)
	}
}

func TestYieldsIndependentCopies(t *testing.T) {
	it := New(map[string]int{"a": 1, "b": 2}, lessString)
	first, _ := it.Next()
	first["a"] = 99
	second, _ := it.Next()
	if second["a"] == 99 {
		t.Error("arrangements should not share storage")
	}
}

func TestEmptyDomain(t *testing.T) {
	it := New(map[string]int{}, lessString)
	m, ok := it.Next()
	if !ok {
		t.Fatal("empty domain should yield exactly one (empty) arrangement")
	}
	if len(m) != 0 {
		t.Errorf("expected empty arrangement, got %v", m)
	}
	if _, ok := it.Next(); ok {
		t.Error("expected exhaustion after the empty arrangement")
	}
}

func TestFullCoverageAgainstCombin(t *testing.T) {
	// The arrangement set for n=4 must match all 4! index permutations.
	keys := []string{"a", "b", "c", "d"}
	input := map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}

	want := combin.NumPermutations(4, 4)
	seen := make(map[string]bool, want)

	it := New(input, lessString)
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		key := fmt.Sprintf("%d%d%d%d", m[keys[0]], m[keys[1]], m[keys[2]], m[keys[3]])
		if seen[key] {
			t.Errorf("duplicate arrangement %s", key)
		}
		seen[key] = true
	}

	if len(seen) != want {
		t.Fatalf("enumerated %d distinct arrangements, want %d", len(seen), want)
	}

	for _, perm := range combin.Permutations(4, 4) {
		key := fmt.Sprintf("%d%d%d%d", perm[0], perm[1], perm[2], perm[3])
		if !seen[key] {
			t.Errorf("missing arrangement %s", key)
		}
	}
}

func TestIdentityFirst(t *testing.T) {
	it := New(map[int]string{3: "x", 1: "y", 2: "z"}, func(a, b int) bool { return a < b })
	first, ok := it.Next()
	if !ok {
		t.Fatal("expected an arrangement")
	}
	if first[1] != "y" || first[2] != "z" || first[3] != "x" {
		t.Errorf("first arrangement should preserve the original assignment, got %v", first)
	}
}
