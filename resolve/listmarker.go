package resolve

import (
	"go.uber.org/zap"

	"pdfhtml/css"
	"pdfhtml/paint"
	"pdfhtml/resource"
	"pdfhtml/style"
	"pdfhtml/units"
)

const (
	// MarkerImageIndent separates image markers from item content, in points.
	MarkerImageIndent = 5.0
	// SmallSymbolScale reduces font size of circle and square markers.
	SmallSymbolScale = 0.8
	// SwatchScale is the side of gradient marker relative to font size.
	SwatchScale = 0.4
	// NumberSuffix follows ordered list marker numbers.
	NumberSuffix = ". "
)

var listSymbols = map[string]string{
	"disc":   "•",
	"circle": "○",
	"square": "■",
}

var numberingSystems = map[string]NumberingSystem{
	"decimal":              NumberingSystemDecimal,
	"decimal-leading-zero": NumberingSystemDecimalLeadingZero,
	"lower-alpha":          NumberingSystemLowerAlpha,
	"lower-latin":          NumberingSystemLowerAlpha,
	"upper-alpha":          NumberingSystemUpperAlpha,
	"upper-latin":          NumberingSystemUpperAlpha,
	"lower-roman":          NumberingSystemLowerRoman,
	"upper-roman":          NumberingSystemUpperRoman,
	"lower-greek":          NumberingSystemLowerGreek,
}

// ListMarker describes marker drawn in front of list items. FontScale and
// TextRise adjust symbol glyphs, Indent is set for image markers only.
type ListMarker struct {
	Kind      MarkerKind            `yaml:"kind"`
	Symbol    string                `yaml:"symbol,omitempty"`
	Numbering NumberingSystem       `yaml:"numbering,omitempty"`
	Text      string                `yaml:"text,omitempty"`
	FontScale float64               `yaml:"font_scale,omitempty"`
	TextRise  float64               `yaml:"text_rise,omitempty"`
	Image     *resource.ImageHandle `yaml:"image,omitempty"`
	Indent    float64               `yaml:"indent,omitempty"`
	Position  MarkerPosition        `yaml:"position"`
}

// ListMarker resolves marker of a list or a list item. Other elements get nil.
func (r *Resolver) ListMarker(el *Element) *ListMarker {
	if el.Kind != TargetKindList && el.Kind != TargetKindListItem {
		return nil
	}

	m := r.markerImage(el)
	if m == nil {
		m = r.markerType(el)
	}
	if v, ok := el.get(style.ListStylePosition); ok {
		p, err := ParseMarkerPosition(css.Keyword(v))
		if err != nil {
			r.warn(CodeUnsupportedValue, el, style.ListStylePosition, v)
		}
		m.Position = p
	}
	if el.Kind == TargetKindListItem {
		m.Text = markerText(m, el.Ordinal)
	}
	return m
}

func markerText(m *ListMarker, ordinal int) string {
	switch m.Kind {
	case MarkerKindSymbol:
		return m.Symbol
	case MarkerKindNumbering:
		return FormatNumber(ordinal, m.Numbering) + NumberSuffix
	}
	return ""
}

func (r *Resolver) markerImage(el *Element) *ListMarker {
	v, ok := el.get(style.ListStyleImage)
	if !ok || css.IsKeyword(v, "none") {
		return nil
	}

	if paint.IsGradient(v) {
		g, err := paint.ParseLinearGradient(v, el.Lengths.Em, el.Lengths.Rem)
		if err == nil {
			side := el.Lengths.Em * SwatchScale
			var data []byte
			if data, err = paint.Swatch(g, side); err == nil {
				px := side / units.PxToPt
				return &ListMarker{
					Kind:   MarkerKindImage,
					Indent: MarkerImageIndent,
					Image: &resource.ImageHandle{
						Source: "gradient", Kind: resource.KindForm, Format: "png",
						Width: px, Height: px, HasWidth: true, HasHeight: true, AspectRatio: 1,
						Data: data,
					},
				}
			}
		}
		r.log.Warn(CodeInvalidGradient.Message(), zap.Stringer("code", CodeInvalidGradient),
			zap.String("property", style.ListStyleImage), zap.String("value", v),
			zap.String("element", el.Path), zap.Error(err))
		return nil
	}

	src, ok := css.URL(v)
	if !ok {
		r.warn(CodeInvalidValue, el, style.ListStyleImage, v)
		return nil
	}
	img, ok := r.images.RetrieveImage(src)
	if !ok {
		r.warn(CodeImageUnavailable, el, style.ListStyleImage, src)
		return nil
	}
	return &ListMarker{Kind: MarkerKindImage, Image: img, Indent: MarkerImageIndent}
}

func (r *Resolver) markerType(el *Element) *ListMarker {
	v, ok := el.get(style.ListStyleType)
	if !ok {
		return fallbackMarker(el)
	}
	k := css.Keyword(v)
	if k == "none" {
		return &ListMarker{Kind: MarkerKindNone}
	}
	if sym, ok := listSymbols[k]; ok {
		m := &ListMarker{Kind: MarkerKindSymbol, Symbol: sym, FontScale: 1}
		if k != "disc" {
			m.FontScale = SmallSymbolScale
			m.TextRise = el.Lengths.Em * (1 - SmallSymbolScale) / 2
		}
		return m
	}
	if ns, ok := numberingSystems[k]; ok {
		return &ListMarker{Kind: MarkerKindNumbering, Numbering: ns}
	}
	r.warn(CodeUnsupportedValue, el, style.ListStyleType, v)
	return fallbackMarker(el)
}

func fallbackMarker(el *Element) *ListMarker {
	if el.ListTag == "ol" {
		return &ListMarker{Kind: MarkerKindNumbering, Numbering: NumberingSystemDecimal}
	}
	return &ListMarker{Kind: MarkerKindSymbol, Symbol: listSymbols["disc"], FontScale: 1}
}
