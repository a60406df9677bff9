package resolve_test

import (
	"slices"
	"testing"

	"pdfhtml/resolve"
	"pdfhtml/style"
	"pdfhtml/units"
)

func TestBoxDimensions(t *testing.T) {
	r, logs := newResolver(t)
	b := r.Box(element(resolve.TargetKindBlock,
		style.BoxSizing, "border-box",
		style.Width, "50%",
		style.Height, "auto",
		style.MinWidth, "10px",
		style.MaxWidth, "none",
		style.MaxHeight, "-5pt",
	))
	if b == nil || !b.BorderBox {
		t.Fatalf("box = %+v", b)
	}
	if b.Width == nil || *b.Width != units.Pct(50) || b.Height != nil {
		t.Errorf("width/height = %v/%v", b.Width, b.Height)
	}
	if b.MinWidth == nil || *b.MinWidth != units.Pt(7.5) || b.MaxWidth != nil || b.MaxHeight != nil {
		t.Errorf("limits = %+v", b)
	}
	if c := codes(logs); !slices.Equal(c, []string{string(resolve.CodeInvalidValue)}) {
		t.Errorf("diagnostics = %v", c)
	}

	if b := r.Box(element(resolve.TargetKindBlock, style.Color, "red")); b != nil {
		t.Errorf("empty box = %+v", b)
	}
}

func TestTableHeightIsMinimal(t *testing.T) {
	tests := []struct {
		kind              resolve.TargetKind
		height, minHeight string
		want              units.Length
	}{
		{resolve.TargetKindCell, "10pt", "20pt", units.Pt(20)},
		{resolve.TargetKindTable, "30pt", "20pt", units.Pt(30)},
		{resolve.TargetKindTable, "30pt", "", units.Pt(30)},
		{resolve.TargetKindCell, "50%", "20pt", units.Pt(20)},
	}
	for _, tt := range tests {
		r, _ := newResolver(t)
		b := r.Box(element(tt.kind, style.Height, tt.height, style.MinHeight, tt.minHeight))
		if b == nil || b.Height != nil || b.MinHeight == nil || *b.MinHeight != tt.want {
			t.Errorf("%s height %s min %s: box = %+v", tt.kind, tt.height, tt.minHeight, b)
		}
	}

	r, _ := newResolver(t)
	b := r.Box(element(resolve.TargetKindBlock, style.Height, "10pt", style.MinHeight, "20pt"))
	if b.Height == nil || *b.Height != units.Pt(10) {
		t.Errorf("block height must be kept: %+v", b)
	}
}

func TestMargins(t *testing.T) {
	r, logs := newResolver(t)
	m := r.Margins(element(resolve.TargetKindBlock,
		style.MarginLeft, "auto",
		style.MarginRight, "auto",
		style.MarginTop, "-1em",
		style.MarginBottom, "10%",
	))
	if m.Alignment != resolve.HorizontalAlignmentCenter {
		t.Errorf("alignment = %s", m.Alignment)
	}
	if m.Top == nil || m.Top.Value != -12 || m.Bottom != nil {
		t.Errorf("top/bottom = %+v/%+v", m.Top, m.Bottom)
	}
	if c := codes(logs); !slices.Equal(c, []string{string(resolve.CodePercentUnsupported)}) {
		t.Errorf("diagnostics = %v", c)
	}

	m = r.Margins(element(resolve.TargetKindBlock, style.MarginLeft, "auto", style.MarginRight, "5pt"))
	if m.Alignment != resolve.HorizontalAlignmentRight || !m.Left.Auto || m.Right.Value != 5 {
		t.Errorf("margins = %+v", m)
	}
}

func TestPaddings(t *testing.T) {
	r, logs := newResolver(t)
	el := element(resolve.TargetKindCell,
		style.PaddingTop, "10%",
		style.PaddingLeft, "2pt",
		style.PaddingRight, "auto",
		style.PaddingBottom, "-1pt",
	)
	base := 200.0
	el.PercentBase = &base
	p := r.Paddings(el)
	if p.Top == nil || p.Top.Value != 20 || p.Left.Value != 2 || p.Right != nil || p.Bottom != nil {
		t.Errorf("paddings = %+v", p)
	}
	if logs.Len() != 2 {
		t.Errorf("diagnostics = %v", codes(logs))
	}
}
