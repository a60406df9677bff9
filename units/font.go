package units

import "pdfhtml/css"

// LineHeightNormal is the multiplier used for line-height: normal.
const LineHeightNormal = 1.2

// absolute size keywords in points
var fontSizes = map[string]float64{
	"xx-small":  9 * PxToPt,
	"x-small":   10 * PxToPt,
	"small":     13 * PxToPt,
	"medium":    16 * PxToPt,
	"large":     18 * PxToPt,
	"x-large":   24 * PxToPt,
	"xx-large":  32 * PxToPt,
	"xxx-large": 48 * PxToPt,
}

const fontScale = 1.2

// ParseFontSize resolves font-size against parent and root font sizes.
func ParseFontSize(value string, parent, rem float64) (float64, bool) {
	k := css.Keyword(value)
	if v, ok := fontSizes[k]; ok {
		return v, true
	}
	switch k {
	case "larger":
		return parent * fontScale, true
	case "smaller":
		return parent / fontScale, true
	}
	l, ok := ParseLength(value, parent, rem)
	if !ok {
		return 0, false
	}
	v := l.Resolve(parent)
	if v < 0 {
		return 0, false
	}
	return v, true
}

// LineHeight resolves line-height for the given font size. Unparseable values
// behave as normal.
func LineHeight(value string, fontSize, rem float64) float64 {
	k := css.Keyword(value)
	if k == "" || k == "normal" || k == "auto" {
		return fontSize * LineHeightNormal
	}
	if n, ok := ParseNumber(value); ok {
		if n < 0 {
			return fontSize * LineHeightNormal
		}
		return n * fontSize
	}
	if l, ok := ParseLength(value, fontSize, rem); ok {
		if v := l.Resolve(fontSize); v >= 0 {
			return v
		}
	}
	return fontSize * LineHeightNormal
}
