package resolve

import (
	"strings"

	"pdfhtml/css"
	"pdfhtml/style"
	"pdfhtml/units"
)

// Font metrics approximation used for inline vertical alignment.
const (
	SubOffset            = -0.2
	SuperOffset          = 0.33
	AscenderCoefficient  = 0.8
	DescenderCoefficient = 0.2
	middleParentShare    = 0.25
	middleOwnShare       = 0.3
)

// InlineVerticalAlignment positions inline block relative to the line. Value
// is a fraction of line height for fraction and points for fixed.
type InlineVerticalAlignment struct {
	Type  InlineVerticalAlignmentType `yaml:"type"`
	Value float64                     `yaml:"value,omitempty"`
}

var inlineAlignments = map[string]InlineVerticalAlignmentType{
	"top":         InlineVerticalAlignmentTypeTop,
	"bottom":      InlineVerticalAlignmentTypeBottom,
	"middle":      InlineVerticalAlignmentTypeMiddle,
	"text-top":    InlineVerticalAlignmentTypeTextTop,
	"text-bottom": InlineVerticalAlignmentTypeTextBottom,
	"sub":         InlineVerticalAlignmentTypeSub,
	"super":       InlineVerticalAlignmentTypeSuper,
}

func (r *Resolver) applyVerticalAlign(el *Element, vp *VisualProperties) {
	v, ok := el.get(style.VerticalAlign)
	if !ok {
		return
	}
	switch el.Kind {
	case TargetKindCell:
		vp.CellAlign = cellAlignment(v)
	case TargetKindInlineBlock:
		vp.InlineAlign = r.InlineAlignment(el)
	case TargetKindInline:
		if rise := r.TextRise(el); rise != 0 {
			vp.TextRise = &rise
		}
	}
}

func cellAlignment(value string) *VerticalAlignment {
	a, err := ParseVerticalAlignment(css.Keyword(value))
	if err != nil || a == VerticalAlignmentTop {
		return nil
	}
	return &a
}

// InlineAlignment maps vertical-align of an inline block. Unrecognized values
// align to the baseline.
func (r *Resolver) InlineAlignment(el *Element) *InlineVerticalAlignment {
	v, _ := el.get(style.VerticalAlign)
	if t, ok := inlineAlignments[css.Keyword(v)]; ok {
		return &InlineVerticalAlignment{Type: t}
	}
	if l, ok := units.ParseLength(v, el.Lengths.Em, el.Lengths.Rem); ok {
		if l.Percent {
			return &InlineVerticalAlignment{Type: InlineVerticalAlignmentTypeFraction, Value: l.Value / 100}
		}
		return &InlineVerticalAlignment{Type: InlineVerticalAlignmentTypeFixed, Value: l.Value}
	}
	if !css.IsKeyword(v, "baseline") {
		r.warn(CodeUnsupportedValue, el, style.VerticalAlign, v)
	}
	return &InlineVerticalAlignment{Type: InlineVerticalAlignmentTypeBaseline}
}

// TextRise computes baseline shift in points for the text of an inline
// element. Keywords which need actual line box metrics (top and bottom)
// produce zero.
func (r *Resolver) TextRise(el *Element) float64 {
	v, ok := el.get(style.VerticalAlign)
	if !ok {
		return 0
	}
	fontSize := el.Lengths.Em
	parent := el.parentFontSize()

	switch k := css.Keyword(v); k {
	case "baseline":
		return 0
	case "top", "bottom":
		r.warn(CodeUnsupportedValue, el, style.VerticalAlign, v)
		return 0
	case "sub":
		return SubOffset * parent
	case "super":
		return SuperOffset * parent
	case "middle":
		return middleParentShare*parent - middleOwnShare*fontSize
	case "text-top":
		edge := fontSize*AscenderCoefficient + (r.lineHeight(el)-fontSize)/2
		return parent*AscenderCoefficient - edge
	case "text-bottom":
		edge := fontSize*DescenderCoefficient + (r.lineHeight(el)-fontSize)/2
		return edge - parent*DescenderCoefficient
	default:
		if strings.HasSuffix(k, "%") {
			if p, ok := units.ParseLength(v, fontSize, el.Lengths.Rem); ok && p.Percent {
				return r.lineHeight(el) * p.Value / 100
			}
		} else if l, ok := units.ParsePoints(v, fontSize, el.Lengths.Rem); ok {
			return l
		}
	}
	r.warn(CodeInvalidValue, el, style.VerticalAlign, v)
	return 0
}

func (r *Resolver) lineHeight(el *Element) float64 {
	v, _ := el.get(style.LineHeight)
	return units.LineHeight(v, el.Lengths.Em, el.Lengths.Rem)
}
