package layers_test

import (
	"slices"
	"testing"

	"pdfhtml/layers"
)

func TestIndexFor(t *testing.T) {
	var got []int
	for i := range 5 {
		idx, ok := layers.IndexFor(i, 2)
		if !ok {
			t.Fatalf("IndexFor(%d, 2) has no index", i)
		}
		got = append(got, idx)
	}
	if want := []int{0, 1, 0, 1, 0}; !slices.Equal(got, want) {
		t.Errorf("IndexFor = %v, want %v", got, want)
	}

	if _, ok := layers.IndexFor(3, 0); ok {
		t.Error("empty list must not produce index")
	}
}

func TestCycle(t *testing.T) {
	values := []string{"repeat-x"}
	for i := range 3 {
		if v, ok := layers.Cycle(values, i); !ok || v != "repeat-x" {
			t.Errorf("Cycle(%d) = %q, %v", i, v, ok)
		}
	}
	if v := layers.CycleOr([]string(nil), 1, "auto"); v != "auto" {
		t.Errorf("CycleOr = %q", v)
	}
	if v := layers.CycleOr([]string{"a", "b", "c"}, 4, "auto"); v != "b" {
		t.Errorf("CycleOr = %q", v)
	}
}
