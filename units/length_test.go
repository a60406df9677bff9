package units_test

import (
	"math"
	"testing"

	"pdfhtml/units"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want units.Length
		ok   bool
	}{
		{"12pt", units.Pt(12), true},
		{"16px", units.Pt(12), true},
		{"1in", units.Pt(72), true},
		{"2.54cm", units.Pt(72), true},
		{"25.4MM", units.Pt(72), true},
		{"1pc", units.Pt(12), true},
		{"2em", units.Pt(20), true},
		{"2rem", units.Pt(32), true},
		{"1ex", units.Pt(5), true},
		{"50%", units.Pct(50), true},
		{"-3pt", units.Pt(-3), true},
		{".5pt", units.Pt(0.5), true},
		{"0", units.Pt(0), true},
		{"4", units.Pt(3), true},
		{"auto", units.Length{}, false},
		{"12 pt", units.Length{}, false},
		{"12furlong", units.Length{}, false},
		{"", units.Length{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := units.ParseLength(tt.in, 10, 16)
			if ok != tt.ok {
				t.Fatalf("ParseLength(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && (got.Percent != tt.want.Percent || !near(got.Value, tt.want.Value)) {
				t.Errorf("ParseLength(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLengthIdempotent(t *testing.T) {
	inputs := []string{"1pt", "13px", "0.3in", "7.25cm", "3mm", "2pc", "1.5em", "0.75rem", "33%", "-2.4pt", "1e2px", "0.1px"}
	contexts := [][2]float64{{12, 12}, {9.5, 16}, {13.333, 10.1}}
	for _, in := range inputs {
		for _, ctx := range contexts {
			first, ok := units.ParseLength(in, ctx[0], ctx[1])
			if !ok {
				t.Fatalf("ParseLength(%q) failed", in)
			}
			text := units.FormatLength(first)
			second, ok := units.ParseLength(text, ctx[0], ctx[1])
			if !ok {
				t.Fatalf("ParseLength(%q) of formatted %q failed", in, text)
			}
			if second != first {
				t.Errorf("round trip of %q via %q: %+v != %+v", in, text, second, first)
			}
		}
	}
}

func TestParseAbsolute(t *testing.T) {
	if v, ok := units.ParseAbsolute("100"); !ok || !near(v, 75) {
		t.Errorf("ParseAbsolute(100) = %v, %v", v, ok)
	}
	if v, ok := units.ParseAbsolute("1in"); !ok || !near(v, 72) {
		t.Errorf("ParseAbsolute(1in) = %v, %v", v, ok)
	}
	for _, bad := range []string{"1em", "10%", "x"} {
		if _, ok := units.ParseAbsolute(bad); ok {
			t.Errorf("ParseAbsolute(%q) must fail", bad)
		}
	}
}

func TestParsePointsRejectsPercent(t *testing.T) {
	if _, ok := units.ParsePoints("10%", 12, 12); ok {
		t.Error("percentage must be rejected")
	}
	if v, ok := units.ParsePoints("1em", 14, 12); !ok || v != 14 {
		t.Errorf("ParsePoints(1em) = %v, %v", v, ok)
	}
}

func TestLengthResolve(t *testing.T) {
	if got := units.Pct(25).Resolve(200); got != 50 {
		t.Errorf("Resolve = %v", got)
	}
	if got := units.Pt(7).Resolve(200); got != 7 {
		t.Errorf("Resolve = %v", got)
	}
}
