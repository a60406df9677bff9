// Package resolve turns computed styles of a single element into typed visual
// properties a layout backend can apply without looking at CSS text again.
package resolve

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"pdfhtml/css"
	"pdfhtml/resource"
	"pdfhtml/style"
	"pdfhtml/units"
)

// Element is everything resolvers need to know about a styled element.
type Element struct {
	// Path identifies element in diagnostics.
	Path string
	Tag  string
	// ListTag is the tag of the list container, for list items this is the
	// parent tag.
	ListTag string
	Kind    TargetKind
	Style   *style.Map
	Lengths style.LengthContext
	// ParentFontSize in points, zero means the same as element font size.
	ParentFontSize float64
	// Color is the resolved text color of the element, currentcolor refers
	// to it.
	Color units.Color
	// Decoration is the merged text decoration of the parent element.
	Decoration Decoration
	// FlexItem is set when parent element is a flex container.
	FlexItem bool
	// Ordinal is the list item number used for marker text.
	Ordinal int
	// PercentBase, when not nil, is used to resolve percentage margins and
	// paddings.
	PercentBase *float64
}

func (el *Element) parentFontSize() float64 {
	if el.ParentFontSize > 0 {
		return el.ParentFontSize
	}
	return el.Lengths.Em
}

func (el *Element) get(name string) (string, bool) {
	if el.Style == nil {
		return "", false
	}
	v, ok := el.Style.Get(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// IsFlexContainer reports whether element lays out its children as flex items.
func (el *Element) IsFlexContainer() bool {
	v, ok := el.get(style.Display)
	return ok && css.IsKeyword(v, "flex", "inline-flex")
}

// VisualProperties is the typed result of resolving an element. Absent
// properties are nil, backend defaults apply to them.
type VisualProperties struct {
	Borders           *BorderSet               `yaml:"borders,omitempty"`
	Backgrounds       []BackgroundLayer        `yaml:"backgrounds,omitempty"`
	BackgroundColor   *BackgroundColor         `yaml:"background_color,omitempty"`
	FlexContainer     *FlexContainer           `yaml:"flex_container,omitempty"`
	FlexItem          *FlexItem                `yaml:"flex_item,omitempty"`
	CollapsingMargins *bool                    `yaml:"collapsing_margins,omitempty"`
	Position          *Position                `yaml:"position,omitempty"`
	TextDecoration    []TextDecoration         `yaml:"text_decoration,omitempty"`
	TextRise          *float64                 `yaml:"text_rise,omitempty"`
	InlineAlign       *InlineVerticalAlignment `yaml:"inline_vertical_alignment,omitempty"`
	CellAlign         *VerticalAlignment       `yaml:"vertical_alignment,omitempty"`
	ListMarker        *ListMarker              `yaml:"list_marker,omitempty"`
	Box               *Box                     `yaml:"box,omitempty"`
	Margins           *Margins                 `yaml:"margins,omitempty"`
	Paddings          *Paddings                `yaml:"paddings,omitempty"`
}

// Empty reports whether nothing was resolved.
func (vp *VisualProperties) Empty() bool {
	return vp.Borders == nil && len(vp.Backgrounds) == 0 && vp.BackgroundColor == nil &&
		vp.FlexContainer == nil && vp.FlexItem == nil && vp.CollapsingMargins == nil &&
		vp.Position == nil && len(vp.TextDecoration) == 0 && vp.TextRise == nil &&
		vp.InlineAlign == nil && vp.CellAlign == nil && vp.ListMarker == nil &&
		vp.Box == nil && vp.Margins == nil && vp.Paddings == nil
}

// Resolver resolves visual properties of elements. It is safe for concurrent
// use as long as its image retriever is.
type Resolver struct {
	log    *zap.Logger
	images resource.Retriever
}

// New creates resolver. When images is nil no image is ever found.
func New(log *zap.Logger, images resource.Retriever) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	if images == nil {
		images = noImages{}
	}
	return &Resolver{log: log.Named("resolve"), images: images}
}

type noImages struct{}

func (noImages) RetrieveImage(string) (*resource.ImageHandle, bool) { return nil, false }

// Resolve runs every resolver for the element. Decoration context to pass to
// child elements is returned alongside. A failure in one property group never
// prevents others from being resolved, recovered failures are reported as the
// error.
func (r *Resolver) Resolve(el *Element) (*VisualProperties, Decoration, error) {
	vp := &VisualProperties{}
	var next Decoration
	var errs error

	steps := []struct {
		name string
		fn   func()
	}{
		{"backgrounds", func() { vp.Backgrounds, vp.BackgroundColor = r.Backgrounds(el) }},
		{"borders", func() { vp.Borders = r.Borders(el) }},
		{"flex", func() { r.applyFlex(el, vp) }},
		{"position", func() { vp.Position = r.Position(el) }},
		{"text-decoration", func() { vp.TextDecoration, next = r.TextDecoration(el) }},
		{"vertical-align", func() { r.applyVerticalAlign(el, vp) }},
		{"list-marker", func() { vp.ListMarker = r.ListMarker(el) }},
		{"box", func() { vp.Box = r.Box(el) }},
		{"margins", func() { vp.Margins = r.Margins(el) }},
		{"paddings", func() { vp.Paddings = r.Paddings(el) }},
	}
	for _, s := range steps {
		errs = multierr.Append(errs, r.guard(el, s.name, s.fn))
	}
	return vp, next, errs
}

func (r *Resolver) guard(el *Element, name string, fn func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("unable to resolve %s for %s: %v", name, el.Path, rec)
			r.log.Error("Resolver failed", zap.String("group", name), zap.String("element", el.Path), zap.Any("panic", rec))
		}
	}()
	fn()
	return nil
}

func (r *Resolver) applyFlex(el *Element, vp *VisualProperties) {
	if el.IsFlexContainer() {
		vp.FlexContainer = r.FlexContainer(el)
	}
	if el.FlexItem {
		vp.FlexItem = r.FlexItem(el)
		collapsing := false
		vp.CollapsingMargins = &collapsing
	}
}

func (r *Resolver) warn(code Code, el *Element, property, value string) {
	r.log.Warn(code.Message(), zap.Stringer("code", code), zap.String("property", property),
		zap.String("value", value), zap.String("element", el.Path))
}

func (r *Resolver) error(code Code, el *Element, property, value string) {
	r.log.Error(code.Message(), zap.Stringer("code", code), zap.String("property", property),
		zap.String("value", value), zap.String("element", el.Path))
}
