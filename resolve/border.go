package resolve

import (
	"pdfhtml/css"
	"pdfhtml/style"
	"pdfhtml/units"
)

// BevelColor is used for 3D border styles when border color is not set.
var BevelColor = units.RGB(212, 208, 200)

var borderWidths = map[string]float64{
	"thin":   1 * units.PxToPt,
	"medium": 2 * units.PxToPt,
	"thick":  3 * units.PxToPt,
}

// BorderSide is a resolved border of one side or an outline. Width is in
// points.
type BorderSide struct {
	Style   BorderStyle `yaml:"style"`
	Width   float64     `yaml:"width"`
	Color   units.Color `yaml:"color"`
	Opacity float64     `yaml:"opacity"`
}

// CornerRadius is an elliptical corner. Percentages refer to the border box.
type CornerRadius struct {
	Horizontal units.Length `yaml:"horizontal"`
	Vertical   units.Length `yaml:"vertical"`
}

// BorderSet holds everything drawn around the element box. Missing sides are
// not drawn.
type BorderSet struct {
	Top           *BorderSide `yaml:"top,omitempty"`
	Right         *BorderSide `yaml:"right,omitempty"`
	Bottom        *BorderSide `yaml:"bottom,omitempty"`
	Left          *BorderSide `yaml:"left,omitempty"`
	Outline       *BorderSide `yaml:"outline,omitempty"`
	OutlineOffset float64     `yaml:"outline_offset,omitempty"`

	TopLeftRadius     *CornerRadius `yaml:"top_left_radius,omitempty"`
	TopRightRadius    *CornerRadius `yaml:"top_right_radius,omitempty"`
	BottomRightRadius *CornerRadius `yaml:"bottom_right_radius,omitempty"`
	BottomLeftRadius  *CornerRadius `yaml:"bottom_left_radius,omitempty"`
}

func (b *BorderSet) empty() bool {
	return b.Top == nil && b.Right == nil && b.Bottom == nil && b.Left == nil && b.Outline == nil &&
		b.TopLeftRadius == nil && b.TopRightRadius == nil && b.BottomRightRadius == nil && b.BottomLeftRadius == nil
}

type sideNames struct {
	width, style, color string
}

// Borders resolves the four borders, outline and corner radii. Nil is
// returned when nothing is drawn.
func (r *Resolver) Borders(el *Element) *BorderSet {
	b := &BorderSet{
		Top:     r.borderSide(el, sideNames{style.BorderTopWidth, style.BorderTopStyle, style.BorderTopColor}),
		Right:   r.borderSide(el, sideNames{style.BorderRightWidth, style.BorderRightStyle, style.BorderRightColor}),
		Bottom:  r.borderSide(el, sideNames{style.BorderBottomWidth, style.BorderBottomStyle, style.BorderBottomColor}),
		Left:    r.borderSide(el, sideNames{style.BorderLeftWidth, style.BorderLeftStyle, style.BorderLeftColor}),
		Outline: r.borderSide(el, sideNames{style.OutlineWidth, style.OutlineStyle, style.OutlineColor}),
	}
	if b.Outline != nil {
		if v, ok := el.get(style.OutlineOffset); ok {
			off, ok := units.ParsePoints(v, el.Lengths.Em, el.Lengths.Rem)
			if !ok {
				r.warn(CodeInvalidValue, el, style.OutlineOffset, v)
			}
			b.OutlineOffset = off
		}
	}
	r.borderRadii(el, b)
	if b.empty() {
		return nil
	}
	return b
}

func (r *Resolver) borderSide(el *Element, names sideNames) *BorderSide {
	sv, ok := el.get(names.style)
	if !ok {
		return nil
	}
	kw := css.Keyword(sv)
	if kw == "auto" && names.style == style.OutlineStyle {
		kw = "solid"
	}
	if kw == "hidden" {
		kw = "none"
	}
	bs, err := ParseBorderStyle(kw)
	if err != nil {
		r.warn(CodeUnsupportedValue, el, names.style, sv)
		return nil
	}
	if bs == BorderStyleNone {
		return nil
	}

	width := borderWidths["medium"]
	if wv, ok := el.get(names.width); ok {
		switch {
		case units.IsPercentage(wv):
			r.error(CodePercentUnsupported, el, names.width, wv)
			return nil
		default:
			if w, ok := borderWidths[css.Keyword(wv)]; ok {
				width = w
			} else if w, ok := units.ParsePoints(wv, el.Lengths.Em, el.Lengths.Rem); ok {
				width = w
			} else {
				r.warn(CodeInvalidValue, el, names.width, wv)
				return nil
			}
		}
	}
	if width <= 0 {
		return nil
	}

	side := &BorderSide{Style: bs, Width: width, Color: units.Black, Opacity: 1}
	if cv, ok := el.get(names.color); ok {
		c, opacity, err := units.ParseColor(cv, el.Color)
		if err != nil {
			r.warn(CodeInvalidValue, el, names.color, cv)
		}
		side.Color, side.Opacity = c, opacity
	} else if bs.Is3D() {
		side.Color = BevelColor
	}
	return side
}

// borderRadii expands border-radius shorthand and applies corner longhands on
// top of it.
func (r *Resolver) borderRadii(el *Element, b *BorderSet) {
	corners := []**CornerRadius{&b.TopLeftRadius, &b.TopRightRadius, &b.BottomRightRadius, &b.BottomLeftRadius}

	if v, ok := el.get(style.BorderRadius); ok {
		if radii, ok := r.radiusShorthand(el, v); ok {
			for i, c := range corners {
				*c = radii[i]
			}
		} else {
			r.warn(CodeInvalidValue, el, style.BorderRadius, v)
		}
	}

	for i, name := range []string{style.BorderTopLeftRadius, style.BorderTopRightRadius,
		style.BorderBottomRightRadius, style.BorderBottomLeftRadius} {
		v, ok := el.get(name)
		if !ok {
			continue
		}
		toks := css.SplitSpace(v)
		if len(toks) == 0 || len(toks) > 2 {
			r.warn(CodeInvalidValue, el, name, v)
			continue
		}
		h, okH := r.radius(el, toks[0])
		vr, okV := r.radius(el, toks[len(toks)-1])
		if !okH || !okV {
			r.warn(CodeInvalidValue, el, name, v)
			continue
		}
		*corners[i] = cornerOf(h, vr)
	}
}

func (r *Resolver) radiusShorthand(el *Element, value string) ([]*CornerRadius, bool) {
	var horizontal, vertical []string
	slash := false
	for _, t := range css.SplitSlash(css.SplitSpace(value)) {
		switch {
		case t == "/" && !slash:
			slash = true
		case slash:
			vertical = append(vertical, t)
		default:
			horizontal = append(horizontal, t)
		}
	}
	if !slash {
		vertical = horizontal
	}
	hs, ok := r.expandCorners(el, horizontal)
	if !ok {
		return nil, false
	}
	vs, ok := r.expandCorners(el, vertical)
	if !ok {
		return nil, false
	}
	res := make([]*CornerRadius, 4)
	for i := range res {
		res[i] = cornerOf(hs[i], vs[i])
	}
	return res, true
}

// expandCorners follows the usual one to four values expansion in top-left,
// top-right, bottom-right, bottom-left order.
func (r *Resolver) expandCorners(el *Element, toks []string) ([]units.Length, bool) {
	if len(toks) == 0 || len(toks) > 4 {
		return nil, false
	}
	vals := make([]units.Length, len(toks))
	for i, t := range toks {
		l, ok := r.radius(el, t)
		if !ok {
			return nil, false
		}
		vals[i] = l
	}
	switch len(vals) {
	case 1:
		return []units.Length{vals[0], vals[0], vals[0], vals[0]}, true
	case 2:
		return []units.Length{vals[0], vals[1], vals[0], vals[1]}, true
	case 3:
		return []units.Length{vals[0], vals[1], vals[2], vals[1]}, true
	}
	return vals, true
}

func (r *Resolver) radius(el *Element, value string) (units.Length, bool) {
	l, ok := units.ParseLength(value, el.Lengths.Em, el.Lengths.Rem)
	if !ok || l.Value < 0 {
		return units.Length{}, false
	}
	return l, true
}

func cornerOf(h, v units.Length) *CornerRadius {
	if h.IsZero() || v.IsZero() {
		return nil
	}
	return &CornerRadius{Horizontal: h, Vertical: v}
}
