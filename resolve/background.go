package resolve

import (
	"strings"

	"go.uber.org/zap"

	"pdfhtml/css"
	"pdfhtml/layers"
	"pdfhtml/paint"
	"pdfhtml/resource"
	"pdfhtml/style"
	"pdfhtml/units"
)

// BackgroundLayer is a single image or gradient painted behind the element.
// Layers are listed in declaration order, the first one is painted on top.
type BackgroundLayer struct {
	Image    *resource.ImageHandle `yaml:"image,omitempty"`
	Gradient *paint.Gradient       `yaml:"gradient,omitempty"`
	// Intrinsic tile size in points, zero when it depends on the area.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	// Deferred is set when final tile size can only be computed by the
	// backend, see FinalSize.
	Deferred  bool               `yaml:"deferred,omitempty"`
	Position  BackgroundPosition `yaml:"position"`
	Size      BackgroundSize     `yaml:"size"`
	RepeatX   RepeatMode         `yaml:"repeat_x"`
	RepeatY   RepeatMode         `yaml:"repeat_y"`
	BlendMode BlendMode          `yaml:"blend_mode"`
	Clip      BoxArea            `yaml:"clip"`
	Origin    BoxArea            `yaml:"origin"`
}

// BackgroundPosition anchors tile to an edge of the origin box and shifts it
// from that edge.
type BackgroundPosition struct {
	X       PositionX    `yaml:"x"`
	XOffset units.Length `yaml:"x_offset"`
	Y       PositionY    `yaml:"y"`
	YOffset units.Length `yaml:"y_offset"`
}

// BackgroundSize is a requested tile size. Nil dimension means auto.
type BackgroundSize struct {
	Kind   SizeKind      `yaml:"kind"`
	Width  *units.Length `yaml:"width,omitempty"`
	Height *units.Length `yaml:"height,omitempty"`
}

// BackgroundColor is painted below all layers within the clip box of the
// last layer.
type BackgroundColor struct {
	Color   units.Color `yaml:"color"`
	Opacity float64     `yaml:"opacity"`
	Clip    BoxArea     `yaml:"clip"`
}

// Backgrounds resolves background layers and background color.
func (r *Resolver) Backgrounds(el *Element) ([]BackgroundLayer, *BackgroundColor) {
	var images []string
	if v, ok := el.get(style.BackgroundImage); ok {
		images = css.SplitComma(v)
	}

	lists := backgroundLists{
		posX:   splitList(el, style.BackgroundPositionX),
		posY:   splitList(el, style.BackgroundPositionY),
		size:   splitList(el, style.BackgroundSize),
		repeat: splitList(el, style.BackgroundRepeat),
		blend:  splitList(el, style.BackgroundBlendMode),
		clip:   splitList(el, style.BackgroundClip),
		origin: splitList(el, style.BackgroundOrigin),
	}

	var res []BackgroundLayer
	for i, img := range images {
		if css.IsKeyword(img, "none") {
			continue
		}
		layer, ok := r.backgroundSource(el, img)
		if !ok {
			continue
		}
		r.applyLayerProperties(el, &layer, &lists, i)
		res = append(res, layer)
	}

	return res, r.backgroundColor(el, &lists, max(1, len(images)))
}

type backgroundLists struct {
	posX, posY, size, repeat, blend, clip, origin []string
}

func splitList(el *Element, name string) []string {
	v, ok := el.get(name)
	if !ok {
		return nil
	}
	return css.SplitComma(v)
}

func (r *Resolver) backgroundSource(el *Element, value string) (BackgroundLayer, bool) {
	if paint.IsGradient(value) {
		g, err := paint.ParseLinearGradient(value, el.Lengths.Em, el.Lengths.Rem)
		if err != nil {
			r.log.Warn(CodeInvalidGradient.Message(), zap.Stringer("code", CodeInvalidGradient),
				zap.String("property", style.BackgroundImage), zap.String("value", value),
				zap.String("element", el.Path), zap.Error(err))
			return BackgroundLayer{}, false
		}
		return BackgroundLayer{Gradient: g}, true
	}

	src, ok := css.URL(value)
	if !ok {
		if f, ok := css.ParseFunction(value); ok && strings.HasSuffix(f.Name, "gradient") {
			r.warn(CodeUnsupportedValue, el, style.BackgroundImage, value)
		} else {
			r.warn(CodeInvalidValue, el, style.BackgroundImage, value)
		}
		return BackgroundLayer{}, false
	}
	img, ok := r.images.RetrieveImage(src)
	if !ok {
		r.warn(CodeImageUnavailable, el, style.BackgroundImage, src)
		return BackgroundLayer{}, false
	}

	layer := BackgroundLayer{Image: img, Deferred: img.RelativeSize()}
	if !layer.Deferred {
		layer.Width = img.Width * units.PxToPt
		layer.Height = img.Height * units.PxToPt
	}
	return layer, true
}

func (r *Resolver) applyLayerProperties(el *Element, layer *BackgroundLayer, lists *backgroundLists, i int) {
	if v, ok := layers.Cycle(lists.posX, i); ok {
		layer.Position.X, layer.Position.XOffset = r.positionX(el, v)
	}
	if v, ok := layers.Cycle(lists.posY, i); ok {
		layer.Position.Y, layer.Position.YOffset = r.positionY(el, v)
	}
	if v, ok := layers.Cycle(lists.size, i); ok {
		layer.Size = r.backgroundSize(el, v)
	}
	if v, ok := layers.Cycle(lists.repeat, i); ok {
		layer.RepeatX, layer.RepeatY = r.backgroundRepeat(el, v)
	}
	if v, ok := layers.Cycle(lists.blend, i); ok {
		m, err := ParseBlendMode(css.Keyword(v))
		if err != nil {
			r.warn(CodeUnsupportedValue, el, style.BackgroundBlendMode, v)
		}
		layer.BlendMode = m
	}
	layer.Clip = r.boxArea(el, style.BackgroundClip, layers.CycleOr(lists.clip, i, BoxAreaBorderBox.String()), BoxAreaBorderBox)
	layer.Origin = r.boxArea(el, style.BackgroundOrigin, layers.CycleOr(lists.origin, i, BoxAreaPaddingBox.String()), BoxAreaPaddingBox)
}

func (r *Resolver) backgroundColor(el *Element, lists *backgroundLists, count int) *BackgroundColor {
	v, ok := el.get(style.BackgroundColor)
	if !ok {
		return nil
	}
	c, opacity, err := units.ParseColor(v, el.Color)
	if err != nil {
		r.warn(CodeInvalidValue, el, style.BackgroundColor, v)
		return nil
	}
	if opacity == 0 {
		return nil
	}
	bc := &BackgroundColor{Color: c, Opacity: opacity}
	if clip, ok := layers.Cycle(lists.clip, count-1); ok {
		bc.Clip = r.boxArea(el, style.BackgroundClip, clip, BoxAreaBorderBox)
	}
	return bc
}

func (r *Resolver) boxArea(el *Element, property, value string, def BoxArea) BoxArea {
	a, err := ParseBoxArea(css.Keyword(value))
	if err != nil {
		r.warn(CodeUnsupportedValue, el, property, value)
		return def
	}
	return a
}

// positionX parses horizontal position of a single layer. Keywords set the
// anchor edge and lengths set the shift, the last one of each kind wins.
func (r *Resolver) positionX(el *Element, value string) (PositionX, units.Length) {
	var (
		anchor PositionX
		offset units.Length
	)
	for _, tok := range css.SplitSpace(value) {
		if a, err := ParsePositionX(css.Keyword(tok)); err == nil {
			anchor = a
			continue
		}
		l, ok := units.ParseLength(tok, el.Lengths.Em, el.Lengths.Rem)
		if !ok {
			r.warn(CodeInvalidValue, el, style.BackgroundPositionX, value)
			return PositionXLeft, units.Length{}
		}
		offset = l
	}
	return anchor, offset
}

func (r *Resolver) positionY(el *Element, value string) (PositionY, units.Length) {
	var (
		anchor PositionY
		offset units.Length
	)
	for _, tok := range css.SplitSpace(value) {
		if a, err := ParsePositionY(css.Keyword(tok)); err == nil {
			anchor = a
			continue
		}
		l, ok := units.ParseLength(tok, el.Lengths.Em, el.Lengths.Rem)
		if !ok {
			r.warn(CodeInvalidValue, el, style.BackgroundPositionY, value)
			return PositionYTop, units.Length{}
		}
		offset = l
	}
	return anchor, offset
}

func (r *Resolver) backgroundSize(el *Element, value string) BackgroundSize {
	toks := css.SplitSpace(value)
	switch {
	case len(toks) == 1 && css.IsKeyword(toks[0], "cover"):
		return BackgroundSize{Kind: SizeKindCover}
	case len(toks) == 1 && css.IsKeyword(toks[0], "contain"):
		return BackgroundSize{Kind: SizeKindContain}
	case len(toks) == 0 || len(toks) > 2:
		r.warn(CodeInvalidValue, el, style.BackgroundSize, value)
		return BackgroundSize{}
	}

	dims := make([]*units.Length, 2)
	for i, tok := range toks {
		if css.IsKeyword(tok, "auto") {
			continue
		}
		l, ok := units.ParseLength(tok, el.Lengths.Em, el.Lengths.Rem)
		if !ok || l.Value < 0 {
			r.warn(CodeInvalidValue, el, style.BackgroundSize, value)
			return BackgroundSize{}
		}
		dims[i] = &l
	}
	if dims[0] == nil && dims[1] == nil {
		return BackgroundSize{}
	}
	return BackgroundSize{Kind: SizeKindExplicit, Width: dims[0], Height: dims[1]}
}

func (r *Resolver) backgroundRepeat(el *Element, value string) (RepeatMode, RepeatMode) {
	toks := css.SplitSpace(value)
	switch {
	case len(toks) == 1 && css.IsKeyword(toks[0], "repeat-x"):
		return RepeatModeRepeat, RepeatModeNoRepeat
	case len(toks) == 1 && css.IsKeyword(toks[0], "repeat-y"):
		return RepeatModeNoRepeat, RepeatModeRepeat
	case len(toks) == 1 || len(toks) == 2:
		x, errX := ParseRepeatMode(css.Keyword(toks[0]))
		y, errY := ParseRepeatMode(css.Keyword(toks[len(toks)-1]))
		if errX == nil && errY == nil {
			return x, y
		}
	}
	r.warn(CodeInvalidValue, el, style.BackgroundRepeat, value)
	return RepeatModeRepeat, RepeatModeRepeat
}

// FinalSize computes tile size in points for the area it is painted into.
// Explicit sizes win, missing dimensions come from the intrinsic size or
// proportions of the image and finally from the area itself.
func (l *BackgroundLayer) FinalSize(areaWidth, areaHeight float64) (float64, float64) {
	ratio := l.aspectRatio()

	if l.Size.Kind == SizeKindCover || l.Size.Kind == SizeKindContain {
		if ratio <= 0 || areaHeight <= 0 {
			return areaWidth, areaHeight
		}
		wider := areaWidth/areaHeight > ratio
		if wider == (l.Size.Kind == SizeKindCover) {
			return areaWidth, areaWidth / ratio
		}
		return areaHeight * ratio, areaHeight
	}

	var w, h float64
	var hasW, hasH, imageW, imageH bool
	if l.Size.Width != nil {
		w, hasW = l.Size.Width.Resolve(areaWidth), true
	}
	if l.Size.Height != nil {
		h, hasH = l.Size.Height.Resolve(areaHeight), true
	}
	// explicit dimension of a raster image scales the other one proportionally
	if iw, ih, ok := l.intrinsic(); ok && (l.Deferred || ratio <= 0 || (!hasW && !hasH)) {
		if !hasW && iw > 0 {
			w, hasW, imageW = iw, true, true
		}
		if !hasH && ih > 0 {
			h, hasH, imageH = ih, true, true
		}
	}

	if l.Image != nil && l.Image.PreserveAspectRatioNone {
		// image proportions are not kept, intrinsic sizes stretch to the area
		ratio = 0
		if imageW {
			w = areaWidth
		}
		if imageH {
			h = areaHeight
		}
	}

	if ratio > 0 {
		switch {
		case hasW && !hasH:
			h, hasH = w/ratio, true
		case !hasW && hasH:
			w, hasW = h*ratio, true
		case !hasW && !hasH && areaHeight > 0:
			if ratio > areaWidth/areaHeight {
				w, h = areaWidth, areaWidth/ratio
			} else {
				w, h = areaHeight*ratio, areaHeight
			}
			hasW, hasH = true, true
		}
	}
	if !hasW {
		w = areaWidth
	}
	if !hasH {
		h = areaHeight
	}
	return w, h
}

// intrinsic returns known intrinsic dimensions in points.
func (l *BackgroundLayer) intrinsic() (float64, float64, bool) {
	if l.Image == nil {
		return 0, 0, false
	}
	if !l.Deferred {
		return l.Width, l.Height, true
	}
	var w, h float64
	if l.Image.HasWidth {
		w = l.Image.Width * units.PxToPt
	}
	if l.Image.HasHeight {
		h = l.Image.Height * units.PxToPt
	}
	return w, h, w > 0 || h > 0
}

func (l *BackgroundLayer) aspectRatio() float64 {
	if l.Image == nil {
		return 0
	}
	if l.Image.HasAspectRatio() {
		return l.Image.AspectRatio
	}
	if l.Width > 0 && l.Height > 0 {
		return l.Width / l.Height
	}
	return 0
}
