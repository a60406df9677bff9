package resolve

import (
	"pdfhtml/css"
	"pdfhtml/style"
	"pdfhtml/units"
)

// Box holds element dimensions. Percentages are kept for the backend which
// knows the containing block. Nil dimensions are auto or none.
type Box struct {
	BorderBox bool          `yaml:"border_box,omitempty"`
	Width     *units.Length `yaml:"width,omitempty"`
	Height    *units.Length `yaml:"height,omitempty"`
	MinWidth  *units.Length `yaml:"min_width,omitempty"`
	MinHeight *units.Length `yaml:"min_height,omitempty"`
	MaxWidth  *units.Length `yaml:"max_width,omitempty"`
	MaxHeight *units.Length `yaml:"max_height,omitempty"`
}

// BoxSide is a margin or padding of one side in points.
type BoxSide struct {
	Value float64 `yaml:"value,omitempty"`
	Auto  bool    `yaml:"auto,omitempty"`
}

// Margins of an element. Alignment is derived from auto horizontal margins.
type Margins struct {
	Top       *BoxSide            `yaml:"top,omitempty"`
	Right     *BoxSide            `yaml:"right,omitempty"`
	Bottom    *BoxSide            `yaml:"bottom,omitempty"`
	Left      *BoxSide            `yaml:"left,omitempty"`
	Alignment HorizontalAlignment `yaml:"alignment,omitempty"`
}

// Paddings of an element.
type Paddings struct {
	Top    *BoxSide `yaml:"top,omitempty"`
	Right  *BoxSide `yaml:"right,omitempty"`
	Bottom *BoxSide `yaml:"bottom,omitempty"`
	Left   *BoxSide `yaml:"left,omitempty"`
}

// Box resolves width, height and their limits. Tables and cells grow with
// their content so their height works as minimal height.
func (r *Resolver) Box(el *Element) *Box {
	b := &Box{
		Width:     r.dimension(el, style.Width, "auto"),
		Height:    r.dimension(el, style.Height, "auto"),
		MinWidth:  r.dimension(el, style.MinWidth, "auto"),
		MinHeight: r.dimension(el, style.MinHeight, "auto"),
		MaxWidth:  r.dimension(el, style.MaxWidth, "none"),
		MaxHeight: r.dimension(el, style.MaxHeight, "none"),
	}
	if v, ok := el.get(style.BoxSizing); ok {
		switch {
		case css.IsKeyword(v, "border-box"):
			b.BorderBox = true
		case css.IsKeyword(v, "content-box"):
		default:
			r.warn(CodeUnsupportedValue, el, style.BoxSizing, v)
		}
	}

	if (el.Kind == TargetKindTable || el.Kind == TargetKindCell) && b.Height != nil {
		b.MinHeight = maxLength(b.Height, b.MinHeight)
		b.Height = nil
	}

	if *b == (Box{}) {
		return nil
	}
	return b
}

// maxLength picks the larger of two lengths. Percentages can not be compared
// with points, absolute length is preferred then.
func maxLength(a, b *units.Length) *units.Length {
	switch {
	case b == nil:
		return a
	case a.Percent != b.Percent:
		if a.Percent {
			return b
		}
		return a
	case b.Value > a.Value:
		return b
	}
	return a
}

func (r *Resolver) dimension(el *Element, property, none string) *units.Length {
	v, ok := el.get(property)
	if !ok || css.IsKeyword(v, none) {
		return nil
	}
	l, ok := units.ParseLength(v, el.Lengths.Em, el.Lengths.Rem)
	if !ok || l.Value < 0 {
		r.warn(CodeInvalidValue, el, property, v)
		return nil
	}
	return &l
}

// Margins resolves four margins. Percentages need element percent base, they
// are dropped otherwise.
func (r *Resolver) Margins(el *Element) *Margins {
	m := &Margins{
		Top:    r.boxSide(el, style.MarginTop, true),
		Right:  r.boxSide(el, style.MarginRight, true),
		Bottom: r.boxSide(el, style.MarginBottom, true),
		Left:   r.boxSide(el, style.MarginLeft, true),
	}
	leftAuto := m.Left != nil && m.Left.Auto
	rightAuto := m.Right != nil && m.Right.Auto
	switch {
	case leftAuto && rightAuto:
		m.Alignment = HorizontalAlignmentCenter
	case leftAuto:
		m.Alignment = HorizontalAlignmentRight
	case rightAuto:
		m.Alignment = HorizontalAlignmentLeft
	}
	if *m == (Margins{}) {
		return nil
	}
	return m
}

// Paddings resolves four paddings the same way as margins, auto is not
// allowed.
func (r *Resolver) Paddings(el *Element) *Paddings {
	p := &Paddings{
		Top:    r.boxSide(el, style.PaddingTop, false),
		Right:  r.boxSide(el, style.PaddingRight, false),
		Bottom: r.boxSide(el, style.PaddingBottom, false),
		Left:   r.boxSide(el, style.PaddingLeft, false),
	}
	if *p == (Paddings{}) {
		return nil
	}
	return p
}

func (r *Resolver) boxSide(el *Element, property string, auto bool) *BoxSide {
	v, ok := el.get(property)
	if !ok {
		return nil
	}
	if css.IsKeyword(v, "auto") {
		if auto {
			return &BoxSide{Auto: true}
		}
		r.warn(CodeInvalidValue, el, property, v)
		return nil
	}
	l, ok := units.ParseLength(v, el.Lengths.Em, el.Lengths.Rem)
	if !ok || (!auto && l.Value < 0) {
		r.warn(CodeInvalidValue, el, property, v)
		return nil
	}
	if l.Percent {
		if el.PercentBase == nil {
			r.warn(CodePercentUnsupported, el, property, v)
			return nil
		}
		return &BoxSide{Value: l.Resolve(*el.PercentBase)}
	}
	return &BoxSide{Value: l.Value}
}
