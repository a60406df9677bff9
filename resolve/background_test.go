package resolve_test

import (
	"slices"
	"testing"

	"pdfhtml/resolve"
	"pdfhtml/resource"
	"pdfhtml/style"
	"pdfhtml/units"
)

func TestBackgroundRepeatCycling(t *testing.T) {
	r, _ := newResolver(t)
	el := element(resolve.TargetKindBlock,
		style.BackgroundImage, "linear-gradient(red, blue), linear-gradient(to right, red, blue), url(a.png)",
		style.BackgroundRepeat, "repeat-x",
	)
	got, _ := r.Backgrounds(el)
	if len(got) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(got))
	}
	for i, l := range got {
		if l.RepeatX != resolve.RepeatModeRepeat || l.RepeatY != resolve.RepeatModeNoRepeat {
			t.Errorf("layer %d: repeat = (%s, %s)", i, l.RepeatX, l.RepeatY)
		}
	}
}

func TestBackgroundEndToEnd(t *testing.T) {
	r, logs := newResolver(t)
	el := element(resolve.TargetKindBlock,
		style.BackgroundImage, "url(a.png), linear-gradient(to right, red 0, blue 100%)",
		style.BackgroundPositionX, "left",
		style.BackgroundSize, "cover, 50% auto",
	)
	got, bc := r.Backgrounds(el)
	if len(got) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(got))
	}
	if bc != nil {
		t.Errorf("unexpected background color %+v", bc)
	}
	if n := logs.Len(); n != 0 {
		t.Errorf("unexpected diagnostics: %v", codes(logs))
	}

	img := got[0]
	if img.Image == nil || img.Image.Kind != resource.KindRaster {
		t.Fatalf("first layer is not raster image: %+v", img)
	}
	if img.Size.Kind != resolve.SizeKindCover {
		t.Errorf("first layer size = %s, want cover", img.Size.Kind)
	}
	if img.Width != 75 || img.Height != 37.5 {
		t.Errorf("raster size = %vx%v, want 75x37.5", img.Width, img.Height)
	}

	grad := got[1]
	if grad.Gradient == nil {
		t.Fatalf("second layer is not gradient: %+v", grad)
	}
	if grad.Size.Kind != resolve.SizeKindExplicit || grad.Size.Width == nil || *grad.Size.Width != units.Pct(50) || grad.Size.Height != nil {
		t.Errorf("gradient size = %+v, want 50%% x auto", grad.Size)
	}

	for i, l := range got {
		if l.Position.X != resolve.PositionXLeft || !l.Position.XOffset.IsZero() {
			t.Errorf("layer %d: position x = %s %v", i, l.Position.X, l.Position.XOffset)
		}
		if l.Clip != resolve.BoxAreaBorderBox || l.Origin != resolve.BoxAreaPaddingBox {
			t.Errorf("layer %d: clip %s origin %s", i, l.Clip, l.Origin)
		}
	}
}

func TestBackgroundSkipsBrokenLayers(t *testing.T) {
	r, logs := newResolver(t)
	el := element(resolve.TargetKindBlock,
		style.BackgroundImage, "url(missing.png), linear-gradient(red), none, radial-gradient(red, blue), url(a.png)",
		style.BackgroundRepeat, "repeat, round, space, repeat-y, no-repeat",
	)
	got, _ := r.Backgrounds(el)
	if len(got) != 1 {
		t.Fatalf("expected single layer, got %d", len(got))
	}
	// properties are taken by the position in background-image list
	if got[0].RepeatX != resolve.RepeatModeNoRepeat || got[0].RepeatY != resolve.RepeatModeNoRepeat {
		t.Errorf("repeat = (%s, %s), want no-repeat", got[0].RepeatX, got[0].RepeatY)
	}
	want := []string{
		string(resolve.CodeImageUnavailable),
		string(resolve.CodeInvalidGradient),
		string(resolve.CodeUnsupportedValue),
	}
	if c := codes(logs); !slices.Equal(c, want) {
		t.Errorf("diagnostics = %v, want %v", c, want)
	}
}

func TestBackgroundLayerProperties(t *testing.T) {
	r, logs := newResolver(t)
	el := element(resolve.TargetKindBlock,
		style.BackgroundImage, "url(a.png), url(v.svg)",
		style.BackgroundPositionX, "right 10px, 25%",
		style.BackgroundPositionY, "bottom, center",
		style.BackgroundBlendMode, "multiply, color-dodge",
		style.BackgroundClip, "content-box",
		style.BackgroundOrigin, "border-box, content-box",
		style.BackgroundRepeat, "round space",
		style.BackgroundColor, "#00ff00",
	)
	got, bc := r.Backgrounds(el)
	if len(got) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(got))
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", codes(logs))
	}

	first, second := got[0], got[1]
	if first.Position.X != resolve.PositionXRight || first.Position.XOffset != units.Pt(7.5) {
		t.Errorf("first position x = %s %v", first.Position.X, first.Position.XOffset)
	}
	if first.Position.Y != resolve.PositionYBottom {
		t.Errorf("first position y = %s", first.Position.Y)
	}
	if second.Position.X != resolve.PositionXLeft || second.Position.XOffset != units.Pct(25) {
		t.Errorf("second position x = %s %v", second.Position.X, second.Position.XOffset)
	}
	if second.Position.Y != resolve.PositionYCenter {
		t.Errorf("second position y = %s", second.Position.Y)
	}
	if first.BlendMode != resolve.BlendModeMultiply || second.BlendMode != resolve.BlendModeColorDodge {
		t.Errorf("blend modes = %s, %s", first.BlendMode, second.BlendMode)
	}
	if first.Clip != resolve.BoxAreaContentBox || second.Clip != resolve.BoxAreaContentBox {
		t.Errorf("clip = %s, %s", first.Clip, second.Clip)
	}
	if first.Origin != resolve.BoxAreaBorderBox || second.Origin != resolve.BoxAreaContentBox {
		t.Errorf("origin = %s, %s", first.Origin, second.Origin)
	}
	for i, l := range got {
		if l.RepeatX != resolve.RepeatModeRound || l.RepeatY != resolve.RepeatModeSpace {
			t.Errorf("layer %d: repeat = (%s, %s)", i, l.RepeatX, l.RepeatY)
		}
	}
	if !second.Deferred || second.Width != 0 {
		t.Errorf("vector layer without size must be deferred: %+v", second)
	}

	if bc == nil || bc.Color != units.RGB(0, 255, 0) || bc.Opacity != 1 || bc.Clip != resolve.BoxAreaContentBox {
		t.Errorf("background color = %+v", bc)
	}
}

func TestBackgroundColor(t *testing.T) {
	r, _ := newResolver(t)

	_, bc := r.Backgrounds(element(resolve.TargetKindBlock, style.BackgroundColor, "transparent"))
	if bc != nil {
		t.Errorf("transparent background color must not be painted: %+v", bc)
	}

	el := element(resolve.TargetKindBlock, style.BackgroundColor, "currentcolor")
	el.Color = units.RGB(1, 2, 3)
	_, bc = r.Backgrounds(el)
	if bc == nil || bc.Color != el.Color || bc.Clip != resolve.BoxAreaBorderBox {
		t.Errorf("background color = %+v", bc)
	}
}

func TestFinalSize(t *testing.T) {
	vector := &resource.ImageHandle{Kind: resource.KindVector, AspectRatio: 2}
	raster := &resource.ImageHandle{Kind: resource.KindRaster, Width: 100, Height: 50, HasWidth: true, HasHeight: true}
	pt := func(v float64) *units.Length { l := units.Pt(v); return &l }
	pct := func(v float64) *units.Length { l := units.Pct(v); return &l }

	tests := []struct {
		name         string
		layer        resolve.BackgroundLayer
		areaW, areaH float64
		w, h         float64
	}{
		{
			name:  "vector auto fits wider image to area width",
			layer: resolve.BackgroundLayer{Image: vector, Deferred: true},
			areaW: 100, areaH: 100, w: 100, h: 50,
		},
		{
			name:  "vector auto fits narrow area by height",
			layer: resolve.BackgroundLayer{Image: vector, Deferred: true},
			areaW: 400, areaH: 100, w: 200, h: 100,
		},
		{
			name:  "vector cover",
			layer: resolve.BackgroundLayer{Image: vector, Deferred: true, Size: resolve.BackgroundSize{Kind: resolve.SizeKindCover}},
			areaW: 100, areaH: 100, w: 200, h: 100,
		},
		{
			name:  "vector contain",
			layer: resolve.BackgroundLayer{Image: vector, Deferred: true, Size: resolve.BackgroundSize{Kind: resolve.SizeKindContain}},
			areaW: 100, areaH: 100, w: 100, h: 50,
		},
		{
			name:  "vector explicit width keeps ratio",
			layer: resolve.BackgroundLayer{Image: vector, Deferred: true, Size: resolve.BackgroundSize{Kind: resolve.SizeKindExplicit, Width: pt(50)}},
			areaW: 100, areaH: 100, w: 50, h: 25,
		},
		{
			name:  "vector explicit percent height",
			layer: resolve.BackgroundLayer{Image: vector, Deferred: true, Size: resolve.BackgroundSize{Kind: resolve.SizeKindExplicit, Height: pct(50)}},
			areaW: 100, areaH: 80, w: 80, h: 40,
		},
		{
			name: "vector without proportions ignores intrinsic width",
			layer: resolve.BackgroundLayer{Deferred: true, Image: &resource.ImageHandle{
				Kind: resource.KindVector, Width: 40, HasWidth: true, AspectRatio: 2, PreserveAspectRatioNone: true,
			}},
			areaW: 100, areaH: 80, w: 100, h: 80,
		},
		{
			name: "vector intrinsic width derives height",
			layer: resolve.BackgroundLayer{Deferred: true, Image: &resource.ImageHandle{
				Kind: resource.KindVector, Width: 40, HasWidth: true, AspectRatio: 2,
			}},
			areaW: 100, areaH: 80, w: 30, h: 15,
		},
		{
			name:  "vector cover without ratio fills area",
			layer: resolve.BackgroundLayer{Image: &resource.ImageHandle{Kind: resource.KindVector}, Deferred: true, Size: resolve.BackgroundSize{Kind: resolve.SizeKindCover}},
			areaW: 30, areaH: 70, w: 30, h: 70,
		},
		{
			name:  "raster auto uses intrinsic size",
			layer: resolve.BackgroundLayer{Image: raster, Width: 75, Height: 37.5},
			areaW: 300, areaH: 300, w: 75, h: 37.5,
		},
		{
			name:  "raster explicit width keeps ratio",
			layer: resolve.BackgroundLayer{Image: raster, Width: 75, Height: 37.5, Size: resolve.BackgroundSize{Kind: resolve.SizeKindExplicit, Width: pt(30)}},
			areaW: 300, areaH: 300, w: 30, h: 15,
		},
		{
			name:  "gradient auto fills area",
			layer: resolve.BackgroundLayer{},
			areaW: 120, areaH: 60, w: 120, h: 60,
		},
		{
			name:  "gradient explicit half width",
			layer: resolve.BackgroundLayer{Size: resolve.BackgroundSize{Kind: resolve.SizeKindExplicit, Width: pct(50)}},
			areaW: 120, areaH: 60, w: 60, h: 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.layer.FinalSize(tt.areaW, tt.areaH)
			if !near(w, tt.w) || !near(h, tt.h) {
				t.Errorf("FinalSize(%v, %v) = %vx%v, want %vx%v", tt.areaW, tt.areaH, w, h, tt.w, tt.h)
			}
		})
	}
}
