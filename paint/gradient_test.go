package paint_test

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"pdfhtml/paint"
)

func TestParseLinearGradient(t *testing.T) {
	tests := []struct {
		in        string
		angle     float64
		corner    string
		stops     int
		repeating bool
	}{
		{"linear-gradient(red, blue)", 180, "", 2, false},
		{"linear-gradient(to right, red, blue)", 90, "", 2, false},
		{"linear-gradient(45deg, red 10%, rgb(0, 0, 255) 20pt)", 45, "", 2, false},
		{"linear-gradient(0.25turn, red, yellow, blue)", 90, "", 3, false},
		{"linear-gradient(to left top, red, blue)", 180, "top left", 2, false},
		{"repeating-linear-gradient(100grad, red 0 10px, blue 10px 20px)", 90, "", 4, true},
		{"linear-gradient(red, 30%, blue)", 180, "", 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			g, err := paint.ParseLinearGradient(tt.in, 12, 12)
			if err != nil {
				t.Fatalf("ParseLinearGradient(%q) error: %v", tt.in, err)
			}
			if math.Abs(g.Angle-tt.angle) > 1e-9 || g.Corner != tt.corner {
				t.Errorf("direction = %v %q, want %v %q", g.Angle, g.Corner, tt.angle, tt.corner)
			}
			if len(g.Stops) != tt.stops {
				t.Errorf("stops = %d, want %d", len(g.Stops), tt.stops)
			}
			if g.Repeating != tt.repeating {
				t.Errorf("repeating = %v", g.Repeating)
			}
		})
	}
}

func TestParseLinearGradientInvalid(t *testing.T) {
	for _, in := range []string{
		"linear-gradient(red)",
		"linear-gradient(to nowhere, red, blue)",
		"linear-gradient(red, notacolor)",
		"linear-gradient(10%, red, blue)",
		"linear-gradient(red, 10%, 20%, blue)",
		"linear-gradient(red 1px 2px 3px, blue)",
	} {
		if _, err := paint.ParseLinearGradient(in, 12, 12); err == nil {
			t.Errorf("ParseLinearGradient(%q) must fail", in)
		}
	}
	if _, err := paint.ParseLinearGradient("url(a.png)", 12, 12); !errors.Is(err, paint.ErrNotGradient) {
		t.Errorf("expected ErrNotGradient, got %v", err)
	}
}

func TestGradientOffsets(t *testing.T) {
	g, err := paint.ParseLinearGradient("linear-gradient(red, green, blue 50pt, white 40pt, black)", 12, 12)
	if err != nil {
		t.Fatal(err)
	}
	_, offsets := g.Offsets(100)
	want := []float64{0, 0.25, 0.5, 0.5, 1}
	if len(offsets) != len(want) {
		t.Fatalf("offsets = %v", offsets)
	}
	for i := range want {
		if math.Abs(offsets[i]-want[i]) > 1e-9 {
			t.Errorf("offsets = %v, want %v", offsets, want)
			break
		}
	}
}

func TestAngleForCorner(t *testing.T) {
	g := &paint.Gradient{Corner: "top right"}
	if a := g.AngleFor(100, 100); math.Abs(a-45) > 1e-9 {
		t.Errorf("AngleFor square = %v", a)
	}
	g.Corner = "bottom left"
	if a := g.AngleFor(100, 100); math.Abs(a-225) > 1e-9 {
		t.Errorf("AngleFor square = %v", a)
	}
	if l := (&paint.Gradient{Angle: 90}).LineLength(30, 10); math.Abs(l-30) > 1e-9 {
		t.Errorf("LineLength = %v", l)
	}
}

func TestRender(t *testing.T) {
	g, err := paint.ParseLinearGradient("linear-gradient(to right, red, blue)", 12, 12)
	if err != nil {
		t.Fatal(err)
	}
	img, err := paint.Render(g, 20, 2)
	if err != nil {
		t.Fatal(err)
	}
	left := color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	right := color.NRGBAModel.Convert(img.At(19, 0)).(color.NRGBA)
	if left.R <= left.B {
		t.Errorf("left pixel must be red-ish, got %+v", left)
	}
	if right.B <= right.R {
		t.Errorf("right pixel must be blue-ish, got %+v", right)
	}

	data, err := paint.Swatch(g, 4.8)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("expected PNG encoded swatch")
	}
}
