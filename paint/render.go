package paint

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"

	"pdfhtml/units"
)

// Render rasterizes gradient into image of the given size in pixels.
func Render(g *Gradient, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid gradient image size %dx%d", width, height)
	}
	w, h := float64(width), float64(height)

	length := g.LineLength(w, h)
	stops, offsets := g.Offsets(length)
	if len(stops) == 0 {
		return nil, fmt.Errorf("gradient has no color stops")
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	filler := rasterx.NewFiller(width, height, scanner)

	first, last := offsets[0], offsets[len(offsets)-1]
	if last-first < 1e-6 {
		// degenerate gradient paints its last color
		s := stops[len(stops)-1]
		filler.SetColor(rasterx.ApplyOpacity(s.Color, s.Opacity))
	} else {
		rad := g.AngleFor(w, h) * math.Pi / 180
		dx, dy := math.Sin(rad), -math.Cos(rad)
		sx, sy := w/2-dx*length/2, h/2-dy*length/2

		rg := &rasterx.Gradient{
			Points: [5]float64{
				sx + dx*length*first, sy + dy*length*first,
				sx + dx*length*last, sy + dy*length*last,
			},
			Matrix: rasterx.Identity,
			Units:  rasterx.UserSpaceOnUse,
		}
		rg.Bounds.W, rg.Bounds.H = w, h
		if g.Repeating {
			rg.Spread = rasterx.RepeatSpread
		}
		for i, s := range stops {
			rg.Stops = append(rg.Stops, rasterx.GradStop{
				StopColor: s.Color,
				Offset:    (offsets[i] - first) / (last - first),
				Opacity:   s.Opacity,
			})
		}
		filler.SetColor(rg.GetColorFunction(1))
	}

	rasterx.AddRect(0, 0, w, h, 0, filler)
	filler.Draw()
	return img, nil
}

// Swatch renders square gradient sample with the side given in points and
// returns it PNG encoded.
func Swatch(g *Gradient, side float64) ([]byte, error) {
	px := max(1, int(math.Round(side/units.PxToPt)))
	img, err := Render(g, px, px)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("unable to encode gradient swatch: %w", err)
	}
	return buf.Bytes(), nil
}
