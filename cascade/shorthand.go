package cascade

import (
	"errors"
	"strings"

	"pdfhtml/css"
	"pdfhtml/paint"
	"pdfhtml/style"
	"pdfhtml/units"
)

var sideNames = []string{"top", "right", "bottom", "left"}

var (
	borderStyles = []string{"none", "hidden", "solid", "dashed", "dotted", "double", "groove", "ridge", "inset", "outset", "auto"}
	borderWidths = []string{"thin", "medium", "thick"}
	lineKeywords = []string{"underline", "overline", "line-through", "blink", "none"}
	lineStyles   = []string{"solid", "double", "dotted", "dashed", "wavy"}
	repeatWords  = []string{"repeat", "repeat-x", "repeat-y", "no-repeat", "space", "round"}
	boxWords     = []string{"border-box", "padding-box", "content-box"}
	positionX    = []string{"left", "right"}
	positionY    = []string{"top", "bottom"}
	fontSizes    = []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large", "larger", "smaller"}
	wideKeywords = []string{"inherit", "initial", "unset"}
)

// longhands lists properties each shorthand sets.
var longhands = map[string][]string{
	"margin":        sides("margin-%s"),
	"padding":       sides("padding-%s"),
	"border-width":  sides("border-%s-width"),
	"border-style":  sides("border-%s-style"),
	"border-color":  sides("border-%s-color"),
	"border":        append(append(sides("border-%s-width"), sides("border-%s-style")...), sides("border-%s-color")...),
	"border-top":    {style.BorderTopWidth, style.BorderTopStyle, style.BorderTopColor},
	"border-right":  {style.BorderRightWidth, style.BorderRightStyle, style.BorderRightColor},
	"border-bottom": {style.BorderBottomWidth, style.BorderBottomStyle, style.BorderBottomColor},
	"border-left":   {style.BorderLeftWidth, style.BorderLeftStyle, style.BorderLeftColor},
	"outline":       {style.OutlineWidth, style.OutlineStyle, style.OutlineColor},
	"text-decoration": {style.TextDecorationLine, style.TextDecorationStyle, style.TextDecorationColor,
		style.TextDecorationThickness},
	"list-style":          {style.ListStyleType, style.ListStyleImage, style.ListStylePosition},
	"flex":                {style.FlexGrow, style.FlexShrink, style.FlexBasis},
	"flex-flow":           {style.FlexDirection, style.FlexWrap},
	"background-position": {style.BackgroundPositionX, style.BackgroundPositionY},
	"background": {style.BackgroundImage, style.BackgroundPositionX, style.BackgroundPositionY,
		style.BackgroundSize, style.BackgroundRepeat, style.BackgroundOrigin, style.BackgroundClip,
		style.BackgroundColor},
	"font": {style.FontSize, style.LineHeight},
}

func sides(format string) []string {
	res := make([]string, len(sideNames))
	for i, s := range sideNames {
		res[i] = strings.Replace(format, "%s", s, 1)
	}
	return res
}

// expand turns declaration into longhand declarations. Empty value removes
// previously set longhand. Second result is false for invalid shorthands.
func expand(d css.Declaration) ([]css.Declaration, bool) {
	names, ok := longhands[d.Property]
	if !ok {
		if d.Property == style.BorderRadius {
			// shorthand is resolved later but overrides earlier corners
			res := []css.Declaration{d}
			for _, c := range []string{style.BorderTopLeftRadius, style.BorderTopRightRadius,
				style.BorderBottomRightRadius, style.BorderBottomLeftRadius} {
				res = append(res, css.Declaration{Property: c, Important: d.Important})
			}
			return res, true
		}
		return []css.Declaration{d}, true
	}
	if css.IsKeyword(d.Value, wideKeywords...) {
		return declarations(d, names, repeat(css.Keyword(d.Value), len(names))), true
	}

	toks := css.SplitSpace(d.Value)
	var values []string
	switch d.Property {
	case "margin", "padding", "border-width", "border-style", "border-color":
		values = fourSides(toks)
	case "border":
		if w, s, c, ok := borderParts(toks); ok {
			values = slicesConcat(repeat(w, 4), repeat(s, 4), repeat(c, 4))
		}
	case "border-top", "border-right", "border-bottom", "border-left", "outline":
		if w, s, c, ok := borderParts(toks); ok {
			values = []string{w, s, c}
		}
	case "text-decoration":
		values = textDecorationParts(toks)
	case "list-style":
		values = listStyleParts(toks)
	case "flex":
		values = flexParts(toks)
	case "flex-flow":
		values = flexFlowParts(toks)
	case "background-position":
		values = backgroundPositionParts(d.Value)
	case "background":
		values = backgroundParts(d.Value)
	case "font":
		values = fontParts(toks)
	}
	if values == nil {
		return nil, false
	}
	return declarations(d, names, values), true
}

func declarations(d css.Declaration, names, values []string) []css.Declaration {
	res := make([]css.Declaration, len(names))
	for i, n := range names {
		res[i] = css.Declaration{Property: n, Value: values[i], Important: d.Important}
	}
	return res
}

func repeat(v string, n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = v
	}
	return res
}

func slicesConcat(lists ...[]string) []string {
	var res []string
	for _, l := range lists {
		res = append(res, l...)
	}
	return res
}

// fourSides follows top, right, bottom, left expansion of one to four values.
func fourSides(toks []string) []string {
	switch len(toks) {
	case 1:
		return repeat(toks[0], 4)
	case 2:
		return []string{toks[0], toks[1], toks[0], toks[1]}
	case 3:
		return []string{toks[0], toks[1], toks[2], toks[1]}
	case 4:
		return toks
	}
	return nil
}

func isLength(tok string) bool {
	_, ok := units.ParseLength(tok, style.DefaultFontSize, style.DefaultFontSize)
	return ok
}

func borderParts(toks []string) (width, bs, color string, ok bool) {
	if len(toks) == 0 || len(toks) > 3 {
		return "", "", "", false
	}
	for _, t := range toks {
		var slot *string
		switch {
		case css.IsKeyword(t, borderStyles...):
			slot = &bs
		case css.IsKeyword(t, borderWidths...) || isLength(t):
			slot = &width
		default:
			slot = &color
		}
		if *slot != "" {
			return "", "", "", false
		}
		*slot = t
	}
	return width, bs, color, true
}

func textDecorationParts(toks []string) []string {
	var lines []string
	var ds, color, thickness string
	for _, t := range toks {
		switch {
		case css.IsKeyword(t, lineKeywords...):
			lines = append(lines, t)
		case css.IsKeyword(t, lineStyles...) && ds == "":
			ds = t
		case (css.IsKeyword(t, "auto", "from-font") || isLength(t)) && thickness == "":
			thickness = t
		case color == "":
			color = t
		default:
			return nil
		}
	}
	return []string{strings.Join(lines, " "), ds, color, thickness}
}

func listStyleParts(toks []string) []string {
	var lt, image, position string
	nones := 0
	for _, t := range toks {
		switch {
		case css.IsKeyword(t, "none"):
			nones++
		case css.IsKeyword(t, "inside", "outside") && position == "":
			position = t
		case (strings.HasPrefix(css.Keyword(t), "url(") || paint.IsGradient(t)) && image == "":
			image = t
		case lt == "":
			lt = t
		default:
			return nil
		}
	}
	for ; nones > 0; nones-- {
		switch {
		case lt == "":
			lt = "none"
		case image == "":
			image = "none"
		default:
			return nil
		}
	}
	return []string{lt, image, position}
}

func flexParts(toks []string) []string {
	if len(toks) == 1 {
		switch {
		case css.IsKeyword(toks[0], "none"):
			return []string{"0", "0", "auto"}
		case css.IsKeyword(toks[0], "auto"):
			return []string{"1", "1", "auto"}
		}
	}
	var (
		factors    []string
		basis      string
		prevFactor bool
	)
	for _, t := range toks {
		if _, ok := units.ParseNumber(t); ok && (len(factors) == 0 || (len(factors) == 1 && prevFactor)) {
			factors, prevFactor = append(factors, t), true
			continue
		}
		prevFactor = false
		if basis == "" && (css.IsKeyword(t, "auto", "content") || isLength(t)) {
			basis = t
			continue
		}
		return nil
	}
	grow, shrink := "1", "1"
	if len(factors) > 0 {
		grow = factors[0]
		if basis == "" {
			basis = "0%"
		}
	}
	if len(factors) > 1 {
		shrink = factors[1]
	}
	if basis == "" {
		basis = "auto"
	}
	return []string{grow, shrink, basis}
}

func flexFlowParts(toks []string) []string {
	var dir, wrap string
	for _, t := range toks {
		switch {
		case css.IsKeyword(t, "row", "row-reverse", "column", "column-reverse") && dir == "":
			dir = t
		case css.IsKeyword(t, "nowrap", "wrap", "wrap-reverse") && wrap == "":
			wrap = t
		default:
			return nil
		}
	}
	return []string{dir, wrap}
}

// positionXY splits single layer position into horizontal and vertical part.
// Keyword may be followed by an offset from that edge.
func positionXY(toks []string) (string, string, bool) {
	type part struct {
		keyword, offset string
	}
	var parts []part
	for _, t := range toks {
		if isLength(t) {
			if n := len(parts); n > 0 && parts[n-1].offset == "" && !css.IsKeyword(parts[n-1].keyword, "center") && parts[n-1].keyword != "" && len(toks) > 2 {
				parts[n-1].offset = t
				continue
			}
			parts = append(parts, part{offset: t})
			continue
		}
		if !css.IsKeyword(t, "left", "right", "top", "bottom", "center") {
			return "", "", false
		}
		parts = append(parts, part{keyword: t})
	}
	if len(parts) == 0 || len(parts) > 2 {
		return "", "", false
	}
	str := func(p part) string {
		return strings.TrimSpace(p.keyword + " " + p.offset)
	}
	if len(parts) == 1 {
		p := parts[0]
		if css.IsKeyword(p.keyword, positionY...) {
			return "center", str(p), true
		}
		return str(p), "center", true
	}
	x, y := parts[0], parts[1]
	if css.IsKeyword(x.keyword, positionY...) || css.IsKeyword(y.keyword, positionX...) {
		x, y = y, x
	}
	if css.IsKeyword(x.keyword, positionY...) || css.IsKeyword(y.keyword, positionX...) {
		return "", "", false
	}
	return str(x), str(y), true
}

func backgroundPositionParts(value string) []string {
	var xs, ys []string
	for _, layer := range css.SplitComma(value) {
		x, y, ok := positionXY(css.SplitSpace(layer))
		if !ok {
			return nil
		}
		xs, ys = append(xs, x), append(ys, y)
	}
	if len(xs) == 0 {
		return nil
	}
	return []string{strings.Join(xs, ", "), strings.Join(ys, ", ")}
}

// backgroundParts expands background shorthand. Omitted parts get initial
// values, color is allowed in the last layer only.
func backgroundParts(value string) []string {
	layers := css.SplitComma(value)
	if len(layers) == 0 {
		return nil
	}
	var images, xs, ys, sizes, repeats, origins, clips []string
	color := "transparent"
	for i, layer := range layers {
		var (
			image         = "none"
			pos, size     []string
			rep, boxes    []string
			inSize        bool
			layerHasColor bool
		)
		for _, t := range css.SplitSlash(css.SplitSpace(layer)) {
			switch {
			case t == "/":
				if len(pos) == 0 || inSize {
					return nil
				}
				inSize = true
			case inSize && len(size) < 2 && (css.IsKeyword(t, "auto", "cover", "contain") || isLength(t)):
				size = append(size, t)
			case strings.HasPrefix(css.Keyword(t), "url(") || paint.IsGradient(t) || css.IsKeyword(t, "none"):
				image = t
			case css.IsKeyword(t, repeatWords...) && len(rep) < 2:
				rep = append(rep, t)
			case css.IsKeyword(t, boxWords...) && len(boxes) < 2:
				boxes = append(boxes, t)
			case !inSize && (css.IsKeyword(t, "left", "right", "top", "bottom", "center") || isLength(t)):
				pos = append(pos, t)
			case i == len(layers)-1 && !layerHasColor:
				if _, _, err := units.ParseColor(t, units.Black); err != nil && !errors.Is(err, units.ErrUnsupportedColor) {
					return nil
				}
				color, layerHasColor = t, true
			default:
				return nil
			}
		}
		x, y := "left", "top"
		if len(pos) > 0 {
			var ok bool
			if x, y, ok = positionXY(pos); !ok {
				return nil
			}
		}
		if inSize && len(size) == 0 {
			return nil
		}
		if len(size) == 0 {
			size = []string{"auto"}
		}
		if len(rep) == 0 {
			rep = []string{"repeat"}
		}
		origin, clip := "padding-box", "border-box"
		if len(boxes) > 0 {
			origin, clip = boxes[0], boxes[len(boxes)-1]
		}
		images, xs, ys = append(images, image), append(xs, x), append(ys, y)
		sizes = append(sizes, strings.Join(size, " "))
		repeats = append(repeats, strings.Join(rep, " "))
		origins, clips = append(origins, origin), append(clips, clip)
	}
	join := func(l []string) string { return strings.Join(l, ", ") }
	return []string{join(images), join(xs), join(ys), join(sizes), join(repeats), join(origins), join(clips), color}
}

// fontParts extracts font size and line height from font shorthand, the rest
// of it is not used.
func fontParts(toks []string) []string {
	toks = css.SplitSlash(toks)
	for i, t := range toks {
		_, bare := units.ParseNumber(t)
		if !css.IsKeyword(t, fontSizes...) && (bare || !isLength(t)) {
			continue
		}
		lh := "normal"
		if i+2 < len(toks) && toks[i+1] == "/" {
			lh = toks[i+2]
		}
		return []string{t, lh}
	}
	return nil
}
