package resolve_test

import (
	"slices"
	"testing"

	"pdfhtml/resolve"
	"pdfhtml/style"
	"pdfhtml/units"
)

func TestFlexContainer(t *testing.T) {
	r, logs := newResolver(t)
	el := element(resolve.TargetKindBlock,
		style.Display, "flex",
		style.FlexDirection, "column-reverse",
		style.FlexWrap, "wrap-reverse",
		style.AlignItems, "baseline",
		style.JustifyContent, "safe center",
		style.AlignContent, "space-between",
	)
	if !el.IsFlexContainer() {
		t.Fatal("display flex is not a flex container")
	}
	fc := r.FlexContainer(el)
	want := resolve.FlexContainer{
		Direction:      resolve.FlexDirectionColumnReverse,
		Wrap:           resolve.FlexWrapWrapReverse,
		AlignItems:     resolve.AlignmentBaseline,
		JustifyContent: resolve.AlignmentFlexStart,
		AlignContent:   resolve.AlignmentSpaceBetween,
	}
	if *fc != want {
		t.Errorf("container = %+v, want %+v", *fc, want)
	}
	if c := codes(logs); !slices.Equal(c, []string{string(resolve.CodeFlexUnsupported)}) {
		t.Errorf("diagnostics = %v", c)
	}
}

func TestFlexContainerDefaults(t *testing.T) {
	r, logs := newResolver(t)
	fc := r.FlexContainer(element(resolve.TargetKindBlock,
		style.Display, "inline-flex",
		style.AlignItems, "left",
		style.FlexWrap, "sometimes",
	))
	want := resolve.FlexContainer{
		Direction:      resolve.FlexDirectionRow,
		Wrap:           resolve.FlexWrapNowrap,
		AlignItems:     resolve.AlignmentStretch,
		JustifyContent: resolve.AlignmentFlexStart,
		AlignContent:   resolve.AlignmentNormal,
	}
	if *fc != want {
		t.Errorf("container = %+v, want %+v", *fc, want)
	}
	if logs.Len() != 2 {
		t.Errorf("expected 2 diagnostics, got %v", codes(logs))
	}
}

func TestFlexItem(t *testing.T) {
	r, logs := newResolver(t)
	item := r.FlexItem(element(resolve.TargetKindBlock,
		style.FlexGrow, "2",
		style.FlexShrink, "0.5",
		style.FlexBasis, "10em",
	))
	if item.Grow == nil || *item.Grow != 2 || item.Shrink == nil || *item.Shrink != 0.5 {
		t.Errorf("grow/shrink = %v/%v", item.Grow, item.Shrink)
	}
	if item.Basis == nil || *item.Basis != units.Pt(120) {
		t.Errorf("basis = %v", item.Basis)
	}

	item = r.FlexItem(element(resolve.TargetKindBlock, style.FlexBasis, "content"))
	if item.Basis != nil || item.Grow != nil {
		t.Errorf("content basis must be left untouched: %+v", item)
	}
	item = r.FlexItem(element(resolve.TargetKindBlock, style.FlexBasis, "auto"))
	if item.Basis != nil {
		t.Errorf("auto basis must be left untouched: %+v", item)
	}
	if c := codes(logs); !slices.Equal(c, []string{string(resolve.CodeFlexUnsupported)}) {
		t.Errorf("diagnostics = %v", c)
	}
}

func TestFlexItemClearsCollapsingMargins(t *testing.T) {
	r, _ := newResolver(t)
	el := element(resolve.TargetKindBlock, style.FlexGrow, "1")
	el.FlexItem = true
	vp, _, err := r.Resolve(el)
	if err != nil {
		t.Fatal(err)
	}
	if vp.FlexItem == nil || vp.CollapsingMargins == nil || *vp.CollapsingMargins {
		t.Errorf("flex item = %+v, collapsing margins = %v", vp.FlexItem, vp.CollapsingMargins)
	}
	if vp.FlexContainer != nil {
		t.Errorf("unexpected flex container")
	}
}
