package resolve

import (
	"pdfhtml/css"
	"pdfhtml/style"
	"pdfhtml/units"
)

// Position holds offsets of relatively or absolutely positioned element in
// points. Nil offsets are auto.
type Position struct {
	Scheme PositionScheme `yaml:"scheme"`
	Left   *float64       `yaml:"left,omitempty"`
	Right  *float64       `yaml:"right,omitempty"`
	Top    *float64       `yaml:"top,omitempty"`
	Bottom *float64       `yaml:"bottom,omitempty"`
}

// Position resolves positioning scheme and offsets. Static elements get nil.
// For relatively positioned elements only one horizontal offset is kept:
// right one in right-to-left context and left one otherwise.
func (r *Resolver) Position(el *Element) *Position {
	v, ok := el.get(style.Position)
	if !ok {
		return nil
	}
	scheme, err := ParsePositionScheme(css.Keyword(v))
	if err != nil {
		r.warn(CodeInvalidValue, el, style.Position, v)
		return nil
	}
	switch scheme {
	case PositionSchemeStatic:
		return nil
	case PositionSchemeFixed:
		r.warn(CodePositionFixed, el, style.Position, v)
		return nil
	case PositionSchemeSticky:
		r.warn(CodeUnsupportedValue, el, style.Position, v)
		return nil
	}

	p := &Position{
		Scheme: scheme,
		Left:   r.offset(el, style.Left),
		Right:  r.offset(el, style.Right),
		Top:    r.offset(el, style.Top),
		Bottom: r.offset(el, style.Bottom),
	}
	if scheme == PositionSchemeRelative && p.Left != nil && p.Right != nil {
		if d, ok := el.get(style.Direction); ok && css.IsKeyword(d, "rtl") {
			p.Left = nil
		} else {
			p.Right = nil
		}
	}
	return p
}

func (r *Resolver) offset(el *Element, property string) *float64 {
	v, ok := el.get(property)
	if !ok || css.IsKeyword(v, "auto") {
		return nil
	}
	if units.IsPercentage(v) {
		r.error(CodePercentUnsupported, el, property, v)
		return nil
	}
	f, ok := units.ParsePoints(v, el.Lengths.Em, el.Lengths.Rem)
	if !ok {
		r.warn(CodeInvalidValue, el, property, v)
		return nil
	}
	return &f
}
