package resolve_test

import (
	"slices"
	"testing"

	"pdfhtml/resolve"
	"pdfhtml/resource"
	"pdfhtml/style"
)

func listItem(listTag string, ordinal int, pairs ...string) *resolve.Element {
	el := element(resolve.TargetKindListItem, pairs...)
	el.Tag, el.ListTag, el.Ordinal = "li", listTag, ordinal
	return el
}

func TestListMarkerTypes(t *testing.T) {
	tests := []struct {
		name     string
		listTag  string
		value    string
		ordinal  int
		kind     resolve.MarkerKind
		text     string
		scale    float64
		diagnose bool
	}{
		{name: "default unordered", listTag: "ul", kind: resolve.MarkerKindSymbol, text: "•", scale: 1},
		{name: "default ordered", listTag: "ol", ordinal: 3, kind: resolve.MarkerKindNumbering, text: "3. "},
		{name: "square", listTag: "ul", value: "square", kind: resolve.MarkerKindSymbol, text: "■", scale: 0.8},
		{name: "upper roman", listTag: "ol", value: "upper-roman", ordinal: 4, kind: resolve.MarkerKindNumbering, text: "IV. "},
		{name: "lower latin", listTag: "ul", value: "lower-latin", ordinal: 28, kind: resolve.MarkerKindNumbering, text: "ab. "},
		{name: "greek", listTag: "ol", value: "lower-greek", ordinal: 25, kind: resolve.MarkerKindNumbering, text: "αα. "},
		{name: "none", listTag: "ol", value: "none", ordinal: 1, kind: resolve.MarkerKindNone},
		{name: "unknown in ordered list", listTag: "ol", value: "hebrew", ordinal: 2, kind: resolve.MarkerKindNumbering, text: "2. ", diagnose: true},
		{name: "unknown in unordered list", listTag: "ul", value: "hebrew", kind: resolve.MarkerKindSymbol, text: "•", scale: 1, diagnose: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, logs := newResolver(t)
			var pairs []string
			if tt.value != "" {
				pairs = []string{style.ListStyleType, tt.value}
			}
			m := r.ListMarker(listItem(tt.listTag, tt.ordinal, pairs...))
			if m == nil {
				t.Fatal("marker not resolved")
			}
			if m.Kind != tt.kind || m.Text != tt.text || m.FontScale != tt.scale {
				t.Errorf("marker = %+v", m)
			}
			if (logs.Len() > 0) != tt.diagnose {
				t.Errorf("diagnostics = %v", codes(logs))
			}
		})
	}
}

func TestListMarkerSmallSymbolRise(t *testing.T) {
	r, _ := newResolver(t)
	m := r.ListMarker(listItem("ul", 1, style.ListStyleType, "circle"))
	if m.Symbol != "○" || !near(m.TextRise, 1.2) {
		t.Errorf("circle marker = %+v", m)
	}
}

func TestListMarkerImage(t *testing.T) {
	r, _ := newResolver(t)
	m := r.ListMarker(listItem("ol", 1,
		style.ListStyleType, "decimal",
		style.ListStyleImage, "url(a.png)",
		style.ListStylePosition, "inside",
	))
	if m.Kind != resolve.MarkerKindImage || m.Image == nil || m.Image.Source != "a.png" {
		t.Fatalf("marker = %+v", m)
	}
	if m.Indent != resolve.MarkerImageIndent || m.Text != "" || m.Position != resolve.MarkerPositionInside {
		t.Errorf("marker = %+v", m)
	}
}

func TestListMarkerGradient(t *testing.T) {
	r, _ := newResolver(t)
	list := element(resolve.TargetKindList, style.ListStyleImage, "linear-gradient(to right, red, blue)")
	list.Tag, list.ListTag = "ul", "ul"
	m := r.ListMarker(list)
	if m.Kind != resolve.MarkerKindImage || m.Image == nil || m.Image.Kind != resource.KindForm {
		t.Fatalf("marker = %+v", m)
	}
	if !near(m.Image.Width, 6.4) || len(m.Image.Data) == 0 {
		t.Errorf("swatch = %vx%v with %d bytes", m.Image.Width, m.Image.Height, len(m.Image.Data))
	}
}

func TestListMarkerFallbacks(t *testing.T) {
	r, logs := newResolver(t)
	m := r.ListMarker(listItem("ol", 5, style.ListStyleImage, "url(missing.png)"))
	if m.Kind != resolve.MarkerKindNumbering || m.Text != "5. " {
		t.Errorf("marker = %+v", m)
	}
	if c := codes(logs); !slices.Equal(c, []string{string(resolve.CodeImageUnavailable)}) {
		t.Errorf("diagnostics = %v", c)
	}
	if m := r.ListMarker(element(resolve.TargetKindBlock, style.ListStyleType, "disc")); m != nil {
		t.Errorf("block element got marker %+v", m)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int
		ns   resolve.NumberingSystem
		want string
	}{
		{7, resolve.NumberingSystemDecimal, "7"},
		{7, resolve.NumberingSystemDecimalLeadingZero, "07"},
		{12, resolve.NumberingSystemDecimalLeadingZero, "12"},
		{1, resolve.NumberingSystemLowerAlpha, "a"},
		{26, resolve.NumberingSystemLowerAlpha, "z"},
		{27, resolve.NumberingSystemUpperAlpha, "AA"},
		{52, resolve.NumberingSystemLowerAlpha, "az"},
		{0, resolve.NumberingSystemLowerAlpha, "0"},
		{1994, resolve.NumberingSystemUpperRoman, "MCMXCIV"},
		{14, resolve.NumberingSystemLowerRoman, "xiv"},
		{4000, resolve.NumberingSystemLowerRoman, "4000"},
		{24, resolve.NumberingSystemLowerGreek, "ω"},
	}
	for _, tt := range tests {
		if got := resolve.FormatNumber(tt.n, tt.ns); got != tt.want {
			t.Errorf("FormatNumber(%d, %s) = %q, want %q", tt.n, tt.ns, got, tt.want)
		}
	}
}
