package units

//go:generate go tool go-enum --marshal --names

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"pdfhtml/css"
)

var (
	// ErrInvalidColor is returned for values which are not colors at all.
	ErrInvalidColor = errors.New("invalid color")
	// ErrUnsupportedColor is returned for recognized notations which are not
	// supported, black is substituted.
	ErrUnsupportedColor = errors.New("unsupported color notation")
)

// Color space of device color.
// ENUM(rgb, cmyk)
type ColorSpace int

// Color is a device color. RGB components are kept in 0..255 range, CMYK in 0..1.
type Color struct {
	Space      ColorSpace
	R, G, B    uint8
	C, M, Y, K float64
}

var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)

func RGB(r, g, b uint8) Color {
	return Color{Space: ColorSpaceRgb, R: r, G: g, B: b}
}

func CMYK(c, m, y, k float64) Color {
	return Color{Space: ColorSpaceCmyk, C: clamp01(c), M: clamp01(m), Y: clamp01(y), K: clamp01(k)}
}

// RGBA implements color.Color, CMYK colors are converted naively.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c.Space == ColorSpaceCmyk {
		return color.CMYK{
			C: uint8(math.Round(c.C * 255)),
			M: uint8(math.Round(c.M * 255)),
			Y: uint8(math.Round(c.Y * 255)),
			K: uint8(math.Round(c.K * 255)),
		}.RGBA()
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func (c Color) String() string {
	if c.Space == ColorSpaceCmyk {
		return fmt.Sprintf("device-cmyk(%g %g %g %g)", c.C, c.M, c.Y, c.K)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalYAML keeps dumps readable.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// ParseColor parses CSS color returning color and its opacity. currentColor
// is resolved to current. On ErrUnsupportedColor black with full opacity is
// returned alongside the error.
func ParseColor(value string, current Color) (Color, float64, error) {
	v := css.Keyword(value)
	switch {
	case v == "":
		return Black, 1, ErrInvalidColor
	case v == "currentcolor":
		return current, 1, nil
	case v == "transparent":
		return Black, 0, nil
	case strings.HasPrefix(v, "#"):
		return parseHex(v[1:])
	}
	if c, ok := colornames.Map[v]; ok {
		return RGB(c.R, c.G, c.B), 1, nil
	}

	f, ok := css.ParseFunction(v)
	if !ok {
		return Black, 1, ErrInvalidColor
	}
	switch f.Name {
	case "rgb", "rgba":
		return parseRGB(f.Args)
	case "device-cmyk", "cmyk":
		return parseCMYK(f.Args)
	case "hsl", "hsla", "hwb", "lab", "lch", "oklab", "oklch", "color", "color-mix":
		return Black, 1, ErrUnsupportedColor
	}
	return Black, 1, ErrInvalidColor
}

func parseHex(h string) (Color, float64, error) {
	switch len(h) {
	case 3, 4:
		var expanded strings.Builder
		for _, r := range h {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		h = expanded.String()
	case 6, 8:
	default:
		return Black, 1, ErrInvalidColor
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Black, 1, ErrInvalidColor
	}
	alpha := 1.0
	if len(h) == 8 {
		alpha = float64(n&0xff) / 255
		n >>= 8
	}
	return RGB(uint8(n>>16), uint8(n>>8), uint8(n)), alpha, nil
}

// components accepts both legacy comma separated and space separated forms
// with optional "/ alpha".
func components(args []string, n int) ([]string, string, bool) {
	switch len(args) {
	case n:
		return args, "", true
	case n + 1:
		return args[:n], args[n], true
	case 1:
	default:
		return nil, "", false
	}
	parts := css.SplitSpace(args[0])
	for i, p := range parts {
		if p == "/" {
			if i != n || i+2 != len(parts) {
				return nil, "", false
			}
			return parts[:i], parts[i+1], true
		}
	}
	return parts, "", len(parts) == n
}

func parseRGB(args []string) (Color, float64, error) {
	comps, alphaArg, ok := components(args, 3)
	if !ok {
		return Black, 1, ErrInvalidColor
	}
	var rgb [3]uint8
	for i, c := range comps {
		var v float64
		if num, unit, ok := splitDimension(c); ok && unit == "%" {
			v = num * 255 / 100
		} else if ok && unit == "" {
			v = num
		} else {
			return Black, 1, ErrInvalidColor
		}
		rgb[i] = uint8(math.Round(math.Max(0, math.Min(255, v))))
	}
	alpha, ok := parseAlpha(alphaArg)
	if !ok {
		return Black, 1, ErrInvalidColor
	}
	return RGB(rgb[0], rgb[1], rgb[2]), alpha, nil
}

func parseCMYK(args []string) (Color, float64, error) {
	comps, alphaArg, ok := components(args, 4)
	if !ok {
		return Black, 1, ErrInvalidColor
	}
	var v [4]float64
	for i, c := range comps {
		num, unit, ok := splitDimension(c)
		switch {
		case ok && unit == "%":
			v[i] = num / 100
		case ok && unit == "":
			v[i] = num
		default:
			return Black, 1, ErrInvalidColor
		}
	}
	alpha, ok := parseAlpha(alphaArg)
	if !ok {
		return Black, 1, ErrInvalidColor
	}
	return CMYK(v[0], v[1], v[2], v[3]), alpha, nil
}

func parseAlpha(s string) (float64, bool) {
	if s == "" {
		return 1, true
	}
	num, unit, ok := splitDimension(s)
	switch {
	case ok && unit == "%":
		return clamp01(num / 100), true
	case ok && unit == "":
		return clamp01(num), true
	}
	return 0, false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
