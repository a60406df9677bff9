package resolve

import (
	"pdfhtml/css"
	"pdfhtml/style"
	"pdfhtml/units"
)

// FlexItem describes how a flex item grows and shrinks. Nil means backend
// default.
type FlexItem struct {
	Grow   *float64      `yaml:"grow,omitempty"`
	Shrink *float64      `yaml:"shrink,omitempty"`
	Basis  *units.Length `yaml:"basis,omitempty"` // nil for auto and content
}

// FlexContainer describes how flex container lays out its items.
type FlexContainer struct {
	Direction      FlexDirection `yaml:"direction"`
	Wrap           FlexWrap      `yaml:"wrap"`
	AlignItems     Alignment     `yaml:"align_items"`
	JustifyContent Alignment     `yaml:"justify_content"`
	AlignContent   Alignment     `yaml:"align_content"`
}

var (
	alignItemsValues = alignmentSet(AlignmentNormal, AlignmentStart, AlignmentEnd, AlignmentCenter,
		AlignmentFlexStart, AlignmentFlexEnd, AlignmentSelfStart, AlignmentSelfEnd, AlignmentBaseline, AlignmentStretch)
	justifyContentValues = alignmentSet(AlignmentNormal, AlignmentStart, AlignmentEnd, AlignmentCenter,
		AlignmentFlexStart, AlignmentFlexEnd, AlignmentSelfStart, AlignmentSelfEnd, AlignmentLeft, AlignmentRight,
		AlignmentStretch, AlignmentSpaceBetween, AlignmentSpaceAround, AlignmentSpaceEvenly)
	alignContentValues = alignmentSet(AlignmentNormal, AlignmentStart, AlignmentEnd, AlignmentCenter,
		AlignmentFlexStart, AlignmentFlexEnd, AlignmentStretch, AlignmentSpaceBetween, AlignmentSpaceAround,
		AlignmentSpaceEvenly)
)

func alignmentSet(values ...Alignment) map[Alignment]bool {
	m := make(map[Alignment]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// FlexItem resolves flex item properties.
func (r *Resolver) FlexItem(el *Element) *FlexItem {
	item := &FlexItem{}
	if v, ok := el.get(style.FlexGrow); ok {
		item.Grow = r.flexFactor(el, style.FlexGrow, v)
	}
	if v, ok := el.get(style.FlexShrink); ok {
		item.Shrink = r.flexFactor(el, style.FlexShrink, v)
	}
	if v, ok := el.get(style.FlexBasis); ok {
		switch {
		case css.IsKeyword(v, "auto"):
		case css.IsKeyword(v, "content"):
			r.warn(CodeFlexUnsupported, el, style.FlexBasis, v)
		default:
			l, ok := units.ParseLength(v, el.Lengths.Em, el.Lengths.Rem)
			if ok && l.Value >= 0 {
				item.Basis = &l
			} else {
				r.warn(CodeInvalidValue, el, style.FlexBasis, v)
			}
		}
	}
	return item
}

func (r *Resolver) flexFactor(el *Element, property, value string) *float64 {
	f, ok := units.ParseNumber(value)
	if !ok || f < 0 {
		r.warn(CodeInvalidValue, el, property, value)
		return nil
	}
	return &f
}

// FlexContainer resolves flex container properties. Unsupported keywords are
// reported and replaced with defaults.
func (r *Resolver) FlexContainer(el *Element) *FlexContainer {
	fc := &FlexContainer{
		Direction:      FlexDirectionRow,
		Wrap:           FlexWrapNowrap,
		AlignItems:     AlignmentStretch,
		JustifyContent: AlignmentFlexStart,
		AlignContent:   AlignmentNormal,
	}
	if v, ok := el.get(style.FlexDirection); ok {
		if d, err := ParseFlexDirection(css.Keyword(v)); err == nil {
			fc.Direction = d
		} else {
			r.warn(CodeFlexUnsupported, el, style.FlexDirection, v)
		}
	}
	if v, ok := el.get(style.FlexWrap); ok {
		if w, err := ParseFlexWrap(css.Keyword(v)); err == nil {
			fc.Wrap = w
		} else {
			r.warn(CodeFlexUnsupported, el, style.FlexWrap, v)
		}
	}
	fc.AlignItems = r.alignment(el, style.AlignItems, alignItemsValues, fc.AlignItems)
	if fc.AlignItems == AlignmentNormal {
		fc.AlignItems = AlignmentStretch
	}
	fc.JustifyContent = r.alignment(el, style.JustifyContent, justifyContentValues, fc.JustifyContent)
	fc.AlignContent = r.alignment(el, style.AlignContent, alignContentValues, fc.AlignContent)
	return fc
}

func (r *Resolver) alignment(el *Element, property string, allowed map[Alignment]bool, def Alignment) Alignment {
	v, ok := el.get(property)
	if !ok {
		return def
	}
	a, err := ParseAlignment(css.Keyword(v))
	if err != nil || !allowed[a] {
		r.warn(CodeFlexUnsupported, el, property, v)
		return def
	}
	return a
}
