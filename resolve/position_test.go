package resolve_test

import (
	"slices"
	"testing"

	"pdfhtml/resolve"
	"pdfhtml/style"
)

func TestPositionOverspecified(t *testing.T) {
	tests := []struct {
		name        string
		direction   string
		scheme      string
		left, right *float64
	}{
		{name: "rtl relative keeps right", direction: "rtl", scheme: "relative", right: ptr(20.0)},
		{name: "ltr relative keeps left", direction: "ltr", scheme: "relative", left: ptr(10.0)},
		{name: "relative without direction keeps left", scheme: "relative", left: ptr(10.0)},
		{name: "absolute keeps both", direction: "rtl", scheme: "absolute", left: ptr(10.0), right: ptr(20.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newResolver(t)
			pairs := []string{style.Position, tt.scheme, style.Left, "10pt", style.Right, "20pt"}
			if tt.direction != "" {
				pairs = append(pairs, style.Direction, tt.direction)
			}
			p := r.Position(element(resolve.TargetKindBlock, pairs...))
			if p == nil {
				t.Fatal("position not resolved")
			}
			if !equalPtr(p.Left, tt.left) || !equalPtr(p.Right, tt.right) {
				t.Errorf("left/right = %v/%v, want %v/%v", deref(p.Left), deref(p.Right), deref(tt.left), deref(tt.right))
			}
		})
	}
}

func TestPositionOffsets(t *testing.T) {
	r, logs := newResolver(t)
	p := r.Position(element(resolve.TargetKindBlock,
		style.Position, "relative",
		style.Top, "1em",
		style.Bottom, "50%",
		style.Left, "auto",
	))
	if p == nil || p.Scheme != resolve.PositionSchemeRelative {
		t.Fatalf("position = %+v", p)
	}
	if !equalPtr(p.Top, ptr(12.0)) || p.Bottom != nil || p.Left != nil || p.Right != nil {
		t.Errorf("offsets = %+v", p)
	}
	if c := codes(logs); !slices.Equal(c, []string{string(resolve.CodePercentUnsupported)}) {
		t.Errorf("diagnostics = %v", c)
	}
}

func TestPositionSchemes(t *testing.T) {
	r, logs := newResolver(t)
	for _, s := range []string{"static", "fixed", "sticky", "floating"} {
		if p := r.Position(element(resolve.TargetKindBlock, style.Position, s, style.Left, "1pt")); p != nil {
			t.Errorf("position %s resolved to %+v", s, p)
		}
	}
	want := []string{string(resolve.CodePositionFixed), string(resolve.CodeUnsupportedValue), string(resolve.CodeInvalidValue)}
	if c := codes(logs); !slices.Equal(c, want) {
		t.Errorf("diagnostics = %v, want %v", c, want)
	}
}

func ptr[T any](v T) *T { return &v }

func equalPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return near(*a, *b)
}

func deref(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
