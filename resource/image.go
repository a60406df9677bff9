// Package resource retrieves images referenced from styles and extracts the
// metadata needed for sizing them.
package resource

//go:generate go tool go-enum --marshal --names

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"
	"github.com/srwiley/oksvg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"pdfhtml/units"
)

// Kind of retrieved image.
// ENUM(raster, vector, form)
type Kind int

// ImageHandle describes retrieved image.
type ImageHandle struct {
	Source string `yaml:"source"`
	Kind   Kind   `yaml:"kind"`
	Format string `yaml:"format"`
	// Intrinsic size in CSS pixels. For vector images only sizes declared
	// with absolute units are known.
	Width     float64 `yaml:"width,omitempty"`
	Height    float64 `yaml:"height,omitempty"`
	HasWidth  bool    `yaml:"has_width,omitempty"`
	HasHeight bool    `yaml:"has_height,omitempty"`
	// Width to height ratio of the view box, zero when not declared.
	AspectRatio             float64 `yaml:"aspect_ratio,omitempty"`
	PreserveAspectRatioNone bool    `yaml:"preserve_aspect_ratio_none,omitempty"`

	Data []byte `yaml:"-"`
}

// HasAspectRatio reports whether image declares its proportions.
func (h *ImageHandle) HasAspectRatio() bool {
	return h.AspectRatio > 0
}

// RelativeSize reports whether final image size depends on the area it is
// drawn into.
func (h *ImageHandle) RelativeSize() bool {
	return h.Kind == KindVector && (!h.HasWidth || !h.HasHeight)
}

var svgType = filetype.NewType("svg", "image/svg+xml")

func init() {
	filetype.AddMatcher(svgType, isSVG)
}

func isSVG(data []byte) bool {
	head := bytes.TrimPrefix(data[:min(len(data), 1024)], []byte("\xef\xbb\xbf"))
	return bytes.HasPrefix(bytes.TrimSpace(head), []byte("<")) && bytes.Contains(head, []byte("<svg"))
}

// Decode detects image type and extracts intrinsic metadata.
func Decode(source string, data []byte) (*ImageHandle, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image %s is empty", source)
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("unable to detect type of image %s: %w", source, err)
	}
	if kind == svgType {
		return decodeSVG(source, data)
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return nil, fmt.Errorf("unsupported image type of %s (%s)", source, kind.MIME.Value)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image %s (%s): %w", source, kind.Extension, err)
	}
	return &ImageHandle{
		Source:    source,
		Kind:      KindRaster,
		Format:    format,
		Width:     float64(cfg.Width),
		Height:    float64(cfg.Height),
		HasWidth:  true,
		HasHeight: true,
		Data:      data,
	}, nil
}

func decodeSVG(source string, data []byte) (*ImageHandle, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{Permissive: true}
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to parse svg %s: %w", source, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil, fmt.Errorf("%s is not svg document", source)
	}

	h := &ImageHandle{Source: source, Kind: KindVector, Format: "svg", Data: data}
	if w, ok := svgLength(root.SelectAttrValue("width", "")); ok {
		h.Width, h.HasWidth = w, true
	}
	if v, ok := svgLength(root.SelectAttrValue("height", "")); ok {
		h.Height, h.HasHeight = v, true
	}
	if vb := strings.FieldsFunc(root.SelectAttrValue("viewBox", ""), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	}); len(vb) == 4 {
		w, errW := strconv.ParseFloat(vb[2], 64)
		ht, errH := strconv.ParseFloat(vb[3], 64)
		if errW == nil && errH == nil && w > 0 && ht > 0 {
			h.AspectRatio = w / ht
		}
	}
	if !h.HasAspectRatio() && h.HasWidth && h.HasHeight && h.Height > 0 {
		// no view box, rely on what renderer sees as its canvas
		if icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode); err == nil && icon.ViewBox.H > 0 {
			h.AspectRatio = icon.ViewBox.W / icon.ViewBox.H
		}
	}
	par := strings.Fields(root.SelectAttrValue("preserveAspectRatio", ""))
	h.PreserveAspectRatioNone = len(par) > 0 && par[0] == "none"
	return h, nil
}

// svgLength parses absolute svg length into CSS pixels.
func svgLength(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" || units.IsPercentage(value) {
		return 0, false
	}
	pt, ok := units.ParseAbsolute(value)
	if !ok || pt <= 0 {
		return 0, false
	}
	return pt / units.PxToPt, true
}
