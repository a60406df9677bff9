package resolve

import (
	"slices"

	"pdfhtml/css"
	"pdfhtml/style"
	"pdfhtml/units"
)

// DecorationEntry is one expanded text decoration line declaration. Color is
// kept as written except currentcolor, which is replaced with the color of
// the declaring element.
type DecorationEntry struct {
	Line  string `yaml:"line"`
	Color string `yaml:"color"`
	Style string `yaml:"style"`
}

// Decoration is the merged text decoration an element passes to its
// children. Entries are unique and keep declaration order, ancestors first.
type Decoration struct {
	Entries []DecorationEntry `yaml:"entries,omitempty"`
}

// Empty reports whether there is nothing to draw.
func (d Decoration) Empty() bool {
	return len(d.Entries) == 0
}

// Merge appends own entries to d dropping repeated ones.
func (d Decoration) Merge(own []DecorationEntry) Decoration {
	res := make([]DecorationEntry, 0, len(d.Entries)+len(own))
	for _, e := range slices.Concat(d.Entries, own) {
		if !slices.Contains(res, e) {
			res = append(res, e)
		}
	}
	return Decoration{Entries: res}
}

// TextDecoration is a single decoration line to draw under, over or through
// element text. Thickness and offset are in points, nil means automatic.
type TextDecoration struct {
	Line      DecorationLine  `yaml:"line"`
	Style     DecorationStyle `yaml:"style"`
	Color     units.Color     `yaml:"color"`
	Opacity   float64         `yaml:"opacity"`
	Thickness *float64        `yaml:"thickness,omitempty"`
	Offset    *float64        `yaml:"offset,omitempty"`
}

// ExpandDecoration splits element's own text-decoration-line, -color and
// -style values and pads them to the same length repeating the last token of
// each list. The second result is false when element does not declare
// decoration lines or cancels them with none.
func ExpandDecoration(s *style.Map, current units.Color) ([]DecorationEntry, bool) {
	lines := css.SplitSpace(s.Value(style.TextDecorationLine))
	if len(lines) == 0 || slices.ContainsFunc(lines, func(l string) bool { return css.IsKeyword(l, "none") }) {
		return nil, false
	}
	colors := css.SplitSpace(s.Value(style.TextDecorationColor))
	if len(colors) == 0 {
		colors = []string{"currentcolor"}
	}
	styles := css.SplitSpace(s.Value(style.TextDecorationStyle))
	if len(styles) == 0 {
		styles = []string{"solid"}
	}

	n := max(len(lines), len(colors), len(styles))
	res := make([]DecorationEntry, n)
	for i := range res {
		c := padded(colors, i)
		if css.IsKeyword(c, "currentcolor") {
			c = current.String()
		}
		res[i] = DecorationEntry{
			Line:  css.Keyword(padded(lines, i)),
			Color: c,
			Style: css.Keyword(padded(styles, i)),
		}
	}
	return res, true
}

func padded(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return list[len(list)-1]
}

// TextDecoration merges element decoration with the one inherited from the
// parent. It returns lines to draw and decoration context for children.
// Inline blocks draw merged decoration but do not pass anything down.
func (r *Resolver) TextDecoration(el *Element) ([]TextDecoration, Decoration) {
	var own []DecorationEntry
	if el.Style != nil {
		own, _ = ExpandDecoration(el.Style, el.Color)
	}
	if len(own) == 0 && el.Decoration.Empty() {
		return nil, Decoration{}
	}

	merged := el.Decoration.Merge(own)
	res := make([]TextDecoration, 0, len(merged.Entries))
	for _, e := range merged.Entries {
		if td, ok := r.decorationLine(el, e); ok {
			res = append(res, td)
		}
	}
	r.decorationMetrics(el, res)

	if el.Kind == TargetKindInlineBlock {
		return res, Decoration{}
	}
	return res, merged
}

func (r *Resolver) decorationLine(el *Element, e DecorationEntry) (TextDecoration, bool) {
	line, err := ParseDecorationLine(e.Line)
	if err != nil {
		r.warn(CodeUnsupportedValue, el, style.TextDecorationLine, e.Line)
		return TextDecoration{}, false
	}
	ds, err := ParseDecorationStyle(e.Style)
	if err != nil {
		r.warn(CodeUnsupportedValue, el, style.TextDecorationStyle, e.Style)
		ds = DecorationStyleSolid
	}
	c, opacity, err := units.ParseColor(e.Color, el.Color)
	if err != nil {
		r.warn(CodeInvalidValue, el, style.TextDecorationColor, e.Color)
	}
	return TextDecoration{Line: line, Style: ds, Color: c, Opacity: opacity}, true
}

// decorationMetrics applies element's own thickness and underline offset.
func (r *Resolver) decorationMetrics(el *Element, lines []TextDecoration) {
	var thickness, offset *float64
	if v, ok := el.get(style.TextDecorationThickness); ok && !css.IsKeyword(v, "auto", "from-font") {
		if l, ok := units.ParseLength(v, el.Lengths.Em, el.Lengths.Rem); ok && l.Value >= 0 {
			t := l.Resolve(el.Lengths.Em)
			thickness = &t
		} else {
			r.warn(CodeInvalidValue, el, style.TextDecorationThickness, v)
		}
	}
	if v, ok := el.get(style.TextUnderlineOffset); ok && !css.IsKeyword(v, "auto") {
		if l, ok := units.ParseLength(v, el.Lengths.Em, el.Lengths.Rem); ok {
			o := l.Resolve(el.Lengths.Em)
			offset = &o
		} else {
			r.warn(CodeInvalidValue, el, style.TextUnderlineOffset, v)
		}
	}
	for i := range lines {
		lines[i].Thickness = thickness
		if lines[i].Line == DecorationLineUnderline {
			lines[i].Offset = offset
		}
	}
}
