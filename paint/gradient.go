// Package paint describes CSS gradients and renders them into raster images.
package paint

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"pdfhtml/css"
	"pdfhtml/units"
)

// ErrNotGradient is returned for values which are not linear gradient functions.
var ErrNotGradient = errors.New("not a linear gradient")

// DefaultAngle points gradient line to the bottom of the box.
const DefaultAngle = 180.0

// ColorStop is a gradient color stop or a color transition hint.
type ColorStop struct {
	Color   units.Color   `yaml:"color,omitempty"`
	Opacity float64       `yaml:"opacity"`
	Offset  *units.Length `yaml:"offset,omitempty"` // nil when position is automatic
	Hint    bool          `yaml:"hint,omitempty"`   // transition hint, color is not used
}

// Gradient is a parsed linear-gradient or repeating-linear-gradient.
type Gradient struct {
	Repeating bool        `yaml:"repeating,omitempty"`
	Angle     float64     `yaml:"angle"`            // degrees clockwise from "to top"
	Corner    string      `yaml:"corner,omitempty"` // corner direction such as "top right", overrides Angle
	Stops     []ColorStop `yaml:"stops"`
}

// IsGradient reports whether value looks like gradient function.
func IsGradient(value string) bool {
	k := css.Keyword(value)
	return strings.HasPrefix(k, "linear-gradient(") || strings.HasPrefix(k, "repeating-linear-gradient(")
}

// ParseLinearGradient parses linear gradient. Lengths in stop positions are
// resolved with em and rem.
// Example: "linear-gradient(to right, blue 0, blue 150px, red 150px, red 300px)"
func ParseLinearGradient(value string, em, rem float64) (*Gradient, error) {
	f, ok := css.ParseFunction(value)
	if !ok {
		return nil, ErrNotGradient
	}

	g := &Gradient{Angle: DefaultAngle}
	switch f.Name {
	case "linear-gradient":
	case "repeating-linear-gradient":
		g.Repeating = true
	default:
		return nil, ErrNotGradient
	}
	if len(f.Args) < 2 {
		return nil, fmt.Errorf("gradient needs at least two arguments: %s", value)
	}

	args := f.Args
	if dir, ok, err := parseDirection(args[0]); err != nil {
		return nil, err
	} else if ok {
		if dir.corner != "" {
			g.Corner = dir.corner
		} else {
			g.Angle = dir.angle
		}
		args = args[1:]
	}

	for _, arg := range args {
		stops, err := parseColorStop(arg, em, rem)
		if err != nil {
			return nil, err
		}
		g.Stops = append(g.Stops, stops...)
	}

	colors := 0
	for i, s := range g.Stops {
		if s.Hint {
			// hint must sit between two color stops
			if i == 0 || i == len(g.Stops)-1 || g.Stops[i-1].Hint {
				return nil, fmt.Errorf("misplaced color hint: %s", value)
			}
			continue
		}
		colors++
	}
	if colors < 2 {
		return nil, fmt.Errorf("gradient needs at least two color stops: %s", value)
	}
	return g, nil
}

type direction struct {
	angle  float64
	corner string
}

var sides = map[string]float64{"top": 0, "right": 90, "bottom": 180, "left": 270}

func parseDirection(arg string) (direction, bool, error) {
	parts := strings.Fields(css.Keyword(arg))
	if len(parts) == 0 {
		return direction{}, false, nil
	}
	if parts[0] != "to" {
		if len(parts) != 1 {
			return direction{}, false, nil
		}
		a, ok := parseAngle(parts[0])
		if !ok {
			// not a direction, must be color stop
			return direction{}, false, nil
		}
		return direction{angle: a}, true, nil
	}

	switch len(parts) {
	case 2:
		a, ok := sides[parts[1]]
		if !ok {
			return direction{}, false, fmt.Errorf("invalid gradient direction: %s", arg)
		}
		return direction{angle: a}, true, nil
	case 3:
		v, h := parts[1], parts[2]
		if v == "left" || v == "right" {
			v, h = h, v
		}
		if (v != "top" && v != "bottom") || (h != "left" && h != "right") {
			return direction{}, false, fmt.Errorf("invalid gradient direction: %s", arg)
		}
		return direction{corner: v + " " + h}, true, nil
	}
	return direction{}, false, fmt.Errorf("invalid gradient direction: %s", arg)
}

// angle units in degrees
var angles = map[string]float64{"deg": 1, "grad": 0.9, "rad": 180 / math.Pi, "turn": 360}

func parseAngle(s string) (float64, bool) {
	if n, ok := units.ParseNumber(s); ok {
		// only unitless zero is an angle
		return 0, n == 0
	}
	for unit, ratio := range angles {
		if num, ok := strings.CutSuffix(s, unit); ok {
			if n, ok := units.ParseNumber(num); ok {
				return n * ratio, true
			}
		}
	}
	return 0, false
}

func parseColorStop(arg string, em, rem float64) ([]ColorStop, error) {
	parts := css.SplitSpace(arg)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty color stop")
	}

	// transition hint is a lone position
	if len(parts) == 1 {
		if l, ok := units.ParseLength(parts[0], em, rem); ok {
			return []ColorStop{{Offset: &l, Hint: true, Opacity: 1}}, nil
		}
	}

	c, opacity, err := units.ParseColor(parts[0], units.Black)
	if err != nil {
		return nil, fmt.Errorf("invalid color stop %q: %w", arg, err)
	}
	if len(parts) > 3 {
		return nil, fmt.Errorf("invalid color stop %q", arg)
	}

	stop := ColorStop{Color: c, Opacity: opacity}
	if len(parts) == 1 {
		return []ColorStop{stop}, nil
	}
	var stops []ColorStop
	for _, p := range parts[1:] {
		l, ok := units.ParseLength(p, em, rem)
		if !ok {
			return nil, fmt.Errorf("invalid color stop position %q", arg)
		}
		s := stop
		s.Offset = &l
		stops = append(stops, s)
	}
	return stops, nil
}

// AngleFor returns gradient angle in degrees for the box.
func (g *Gradient) AngleFor(width, height float64) float64 {
	if g.Corner == "" || width <= 0 || height <= 0 {
		return g.Angle
	}
	a := math.Atan(height/width) * 180 / math.Pi
	switch g.Corner {
	case "top right":
		return a
	case "bottom right":
		return 180 - a
	case "bottom left":
		return 180 + a
	default:
		return 360 - a
	}
}

// LineLength returns length of the gradient line for the box.
func (g *Gradient) LineLength(width, height float64) float64 {
	rad := g.AngleFor(width, height) * math.Pi / 180
	return math.Abs(width*math.Sin(rad)) + math.Abs(height*math.Cos(rad))
}

// Offsets returns positions of color stops as fractions of the gradient line,
// hints are skipped. Automatic positions are spread evenly, positions never
// decrease.
func (g *Gradient) Offsets(length float64) ([]ColorStop, []float64) {
	var (
		stops   []ColorStop
		offsets []float64
	)
	for _, s := range g.Stops {
		if s.Hint {
			continue
		}
		stops = append(stops, s)
		off := math.NaN()
		if s.Offset != nil && length > 0 {
			off = s.Offset.Resolve(length) / length
		} else if s.Offset != nil && s.Offset.Percent {
			off = s.Offset.Value / 100
		}
		offsets = append(offsets, off)
	}
	if len(offsets) == 0 {
		return nil, nil
	}

	if math.IsNaN(offsets[0]) {
		offsets[0] = 0
	}
	if last := len(offsets) - 1; math.IsNaN(offsets[last]) {
		offsets[last] = math.Max(1, slices.Max(slices.DeleteFunc(slices.Clone(offsets), math.IsNaN)))
	}
	for i := 1; i < len(offsets); i++ {
		if !math.IsNaN(offsets[i]) {
			offsets[i] = math.Max(offsets[i], offsets[i-1])
			continue
		}
		next := i + 1
		for math.IsNaN(offsets[next]) {
			next++
		}
		target := math.Max(offsets[next], offsets[i-1])
		step := (target - offsets[i-1]) / float64(next-i+1)
		for j := i; j < next; j++ {
			offsets[j] = offsets[j-1] + step
		}
	}
	return stops, offsets
}
