// Package units converts CSS lengths and colors into absolute values.
package units

import (
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

// PxToPt converts CSS pixels to points.
const PxToPt = 0.75

// absolute units in points
var ratios = map[string]float64{
	"pt": 1,
	"px": PxToPt,
	"in": 72,
	"cm": 72 / 2.54,
	"mm": 72 / 25.4,
	"q":  72 / 101.6,
	"pc": 12,
}

// Length is either an absolute value in points or a percentage which is left
// to be resolved against a box known only at layout time.
type Length struct {
	Value   float64 `yaml:"value"`
	Percent bool    `yaml:"percent,omitempty"`
}

// Pt makes absolute length.
func Pt(v float64) Length {
	return Length{Value: v}
}

// Pct makes percentage length.
func Pct(v float64) Length {
	return Length{Value: v, Percent: true}
}

// IsZero reports whether length is zero regardless of kind.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// Resolve returns points, percentages are taken from base.
func (l Length) Resolve(base float64) float64 {
	if l.Percent {
		return base * l.Value / 100
	}
	return l.Value
}

func (l Length) String() string {
	return FormatLength(l)
}

// FormatLength produces CSS text for the length which ParseLength reads back
// unchanged.
func FormatLength(l Length) string {
	s := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Percent {
		return s + "%"
	}
	return s + "pt"
}

// ParseLength parses length or percentage. Font relative units are resolved
// against em and rem, bare numbers are treated as pixels.
func ParseLength(value string, em, rem float64) (Length, bool) {
	num, unit, ok := splitDimension(value)
	if !ok {
		return Length{}, false
	}
	switch unit {
	case "%":
		return Pct(num), true
	case "":
		return Pt(num * PxToPt), true
	case "em":
		return Pt(num * em), true
	case "rem":
		return Pt(num * rem), true
	case "ex", "ch":
		return Pt(num * em / 2), true
	}
	if r, ok := ratios[unit]; ok {
		return Pt(num * r), true
	}
	return Length{}, false
}

// ParseAbsolute parses length which does not depend on any context.
func ParseAbsolute(value string) (float64, bool) {
	num, unit, ok := splitDimension(value)
	if !ok {
		return 0, false
	}
	if unit == "" {
		return num * PxToPt, true
	}
	r, ok := ratios[unit]
	if !ok {
		return 0, false
	}
	return num * r, true
}

// ParsePoints parses length which must resolve to points. Percentages fail.
func ParsePoints(value string, em, rem float64) (float64, bool) {
	l, ok := ParseLength(value, em, rem)
	if !ok || l.Percent {
		return 0, false
	}
	return l.Value, true
}

// IsPercentage reports whether value is a percentage.
func IsPercentage(value string) bool {
	_, unit, ok := splitDimension(value)
	return ok && unit == "%"
}

// ParseNumber parses unitless number.
func ParseNumber(value string) (float64, bool) {
	num, unit, ok := splitDimension(value)
	if !ok || unit != "" {
		return 0, false
	}
	return num, true
}

func splitDimension(value string) (float64, string, bool) {
	b := []byte(strings.TrimSpace(value))
	n, u := parse.Dimension(b)
	if n == 0 || n+u != len(b) {
		return 0, "", false
	}
	num, err := strconv.ParseFloat(string(b[:n]), 64)
	if err != nil {
		return 0, "", false
	}
	return num, strings.ToLower(string(b[n:])), true
}
