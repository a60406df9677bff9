// Package document walks HTML element tree in document order feeding every
// element to the resolvers together with the context inherited from its
// ancestors.
package document

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"pdfhtml/cascade"
	"pdfhtml/counters"
	"pdfhtml/css"
	"pdfhtml/resolve"
	"pdfhtml/style"
	"pdfhtml/units"
)

// Options of document processing.
type Options struct {
	// DefaultFontSize in points is the font size of the root element parent.
	DefaultFontSize float64
	// RootFontSize in points overrides font size used for rem units.
	RootFontSize float64
	// PageWidth in points is the width of the page content area, table cells
	// resolve percentage margins and paddings against the nearest known width.
	PageWidth float64
	// Stylesheets are added after document stylesheets in the given order.
	Stylesheets [][]byte
	// Fetch loads linked stylesheets, nil disables them.
	Fetch cascade.Fetcher
}

// Run is a piece of text directly inside an element.
type Run struct {
	Text string  `yaml:"text"`
	Rise float64 `yaml:"rise,omitempty"`
}

// Node is the resolution result of one element.
type Node struct {
	Path       string                    `yaml:"element"`
	Depth      int                       `yaml:"depth"`
	Kind       resolve.TargetKind        `yaml:"kind"`
	FontSize   float64                   `yaml:"font_size"`
	Color      units.Color               `yaml:"color"`
	Ordinal    int                       `yaml:"ordinal,omitempty"`
	Properties *resolve.VisualProperties `yaml:"properties,omitempty"`
	Runs       []Run                     `yaml:"runs,omitempty"`
}

// Result holds nodes in document order. Err aggregates failures of single
// elements which did not stop processing.
type Result struct {
	RunID string `yaml:"run"`
	Nodes []Node `yaml:"elements"`
	Err   error  `yaml:"-"`
}

// Processor drives resolution of the whole document.
type Processor struct {
	log      *zap.Logger
	resolver *resolve.Resolver
	opts     Options
}

func New(log *zap.Logger, resolver *resolve.Resolver, opts Options) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	if resolver == nil {
		resolver = resolve.New(log, nil)
	}
	if opts.DefaultFontSize <= 0 {
		opts.DefaultFontSize = style.DefaultFontSize
	}
	return &Processor{log: log.Named("document"), resolver: resolver, opts: opts}
}

// frame is the context an element passes to its children.
type frame struct {
	path       string
	tag        string
	style      *style.Map
	fontSize   float64
	color      units.Color
	decoration resolve.Decoration
	rise       float64
	flex       bool
	width      *float64
	depth      int
}

// styler computes cascaded style of an element.
type styler interface {
	Compute(n *html.Node, parent *style.Map) *style.Map
}

type walker struct {
	*Processor
	ctx      context.Context
	log      *zap.Logger
	cascade  styler
	counters *counters.Store
	rem      float64
	result   *Result
}

// Process resolves every rendered element of the document. Processing stops
// early only when context is canceled.
func (p *Processor) Process(ctx context.Context, doc *goquery.Document) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.New().String()
	log := p.log.With(zap.String("run", id))

	c := cascade.New(log)
	c.Collect(doc, p.opts.Fetch)
	for i, data := range p.opts.Stylesheets {
		c.AddStylesheet(data, "stylesheet "+strconv.Itoa(i+1))
	}
	log.Debug("Cascade prepared", zap.Int("rules", c.Rules()))

	w := &walker{
		Processor: p,
		ctx:       ctx,
		log:       log,
		cascade:   c,
		counters:  counters.New(log),
		rem:       p.opts.RootFontSize,
		result:    &Result{RunID: id},
	}

	root := rootElement(doc)
	if root == nil {
		return w.result, nil
	}
	top := frame{fontSize: p.opts.DefaultFontSize, color: units.Black}
	if p.opts.PageWidth > 0 {
		top.width = &p.opts.PageWidth
	}
	if _, err := w.element(root, &top, 1); err != nil {
		return w.result, err
	}
	log.Debug("Document processed", zap.Int("elements", len(w.result.Nodes)), zap.Error(w.result.Err))
	return w.result, nil
}

func rootElement(doc *goquery.Document) *html.Node {
	for _, n := range doc.Nodes {
		if n.Type == html.ElementNode {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return c
			}
		}
	}
	return nil
}

// element resolves n and its subtree. It reports whether a rendered
// block-level element was met, n itself included, so raised text of
// enclosing inline elements stops there. Only context cancellation is
// returned as error, element failures are collected in result.
func (w *walker) element(n *html.Node, parent *frame, index int) (bool, error) {
	if err := w.ctx.Err(); err != nil {
		return false, err
	}

	f, node, ok := w.resolve(n, parent, index)
	if !ok {
		return false, nil
	}
	defer w.counters.Pop()

	block := isBlockLevel(w.result.Nodes[node].Kind)
	rise := f.rise
	indexes := make(map[string]int)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := strings.Join(strings.Fields(c.Data), " "); text != "" {
				w.result.Nodes[node].Runs = append(w.result.Nodes[node].Runs, Run{Text: text, Rise: rise})
			}
		case html.ElementNode:
			indexes[c.Data]++
			child := f
			child.rise = rise
			nested, err := w.element(c, &child, indexes[c.Data])
			if err != nil {
				return false, err
			}
			if nested {
				// text after nested block does not belong to the raised run
				rise = 0
				block = true
			}
		}
	}
	return block, nil
}

// resolve computes style and visual properties of a single element. It
// returns frame for children and index of the node in result. Elements which
// are not rendered are skipped.
func (w *walker) resolve(n *html.Node, parent *frame, index int) (f frame, node int, ok bool) {
	path := parent.path + "/" + n.Data
	if index > 1 || hasSameSibling(n) {
		path += "[" + strconv.Itoa(index) + "]"
	}

	var m *style.Map
	w.counters.Push()
	defer func() {
		if rec := recover(); rec != nil {
			err := fmt.Errorf("unable to process %s: %v", path, rec)
			w.log.Error("Element processing failed", zap.String("element", path), zap.Any("panic", rec))
			w.result.Err = multierr.Append(w.result.Err, err)
			if m == nil {
				m = parent.style
			}
			f = frame{path: path, tag: n.Data, style: m, fontSize: parent.fontSize, color: parent.color,
				width: parent.width, depth: parent.depth + 1}
			w.result.Nodes = append(w.result.Nodes, Node{Path: path, Depth: f.depth, FontSize: f.fontSize, Color: f.color})
			node, ok = len(w.result.Nodes)-1, true
		}
	}()

	m = w.cascade.Compute(n, parent.style)
	if css.IsKeyword(m.Value(style.Display), "none") {
		w.counters.Pop()
		return frame{}, 0, false
	}

	f = frame{path: path, tag: n.Data, style: m, depth: parent.depth + 1, width: parent.width}
	f.fontSize = w.fontSize(m, parent, path)
	f.color = w.color(m, parent, path)

	el := &resolve.Element{
		Path:           path,
		Tag:            n.Data,
		ListTag:        n.Data,
		Kind:           targetKind(n, m),
		Style:          m,
		Lengths:        style.LengthContext{Em: f.fontSize, Rem: w.rem},
		ParentFontSize: parent.fontSize,
		Color:          f.color,
		Decoration:     parent.decoration,
		FlexItem:       parent.flex,
	}
	if el.Kind == resolve.TargetKindListItem {
		el.ListTag = parent.tag
	}
	if el.Kind == resolve.TargetKindCell {
		el.PercentBase = parent.width
	}
	el.Ordinal = w.count(n, el.Kind, m)

	vp, decoration, err := w.resolver.Resolve(el)
	if err != nil {
		w.result.Err = multierr.Append(w.result.Err, err)
	}

	f.decoration = decoration
	f.flex = el.IsFlexContainer()
	switch {
	case el.Kind == resolve.TargetKindInline && vp.TextRise != nil:
		f.rise = parent.rise + *vp.TextRise
	case el.Kind == resolve.TargetKindInline:
		f.rise = parent.rise
	}
	if vp.Box != nil && vp.Box.Width != nil && !vp.Box.Width.Percent {
		width := vp.Box.Width.Value
		f.width = &width
	}

	result := Node{Path: path, Depth: f.depth, Kind: el.Kind, FontSize: f.fontSize, Color: f.color}
	if el.Kind == resolve.TargetKindListItem {
		result.Ordinal = el.Ordinal
	}
	if !vp.Empty() {
		result.Properties = vp
	}
	w.result.Nodes = append(w.result.Nodes, result)
	return f, len(w.result.Nodes) - 1, true
}

func hasSameSibling(n *html.Node) bool {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.Data == n.Data {
			return true
		}
	}
	return false
}

// fontSize resolves element font size and stores it back as absolute value
// so children inherit points rather than relative units. Line height given
// as length is made absolute the same way.
func (w *walker) fontSize(m *style.Map, parent *frame, path string) float64 {
	rem := w.rem
	if rem <= 0 {
		// root element: rem refers to its own font size
		rem = parent.fontSize
	}
	size := parent.fontSize
	if v, ok := m.Get(style.FontSize); ok {
		if fs, ok := units.ParseFontSize(v, parent.fontSize, rem); ok {
			size = fs
		} else {
			w.log.Debug("Invalid font size ignored", zap.String("element", path), zap.String("value", v))
		}
	}
	if w.rem <= 0 {
		w.rem = size
	}
	m.Set(style.FontSize, units.FormatLength(units.Pt(size)))

	if v, ok := m.Get(style.LineHeight); ok && !css.IsKeyword(v, "normal") {
		if _, bare := units.ParseNumber(v); !bare {
			if l, ok := units.ParseLength(v, size, w.rem); ok {
				m.Set(style.LineHeight, units.FormatLength(units.Pt(l.Resolve(size))))
			}
		}
	}
	return size
}

func (w *walker) color(m *style.Map, parent *frame, path string) units.Color {
	v, ok := m.Get(style.Color)
	if !ok {
		return parent.color
	}
	c, _, err := units.ParseColor(v, parent.color)
	switch {
	case errors.Is(err, units.ErrUnsupportedColor):
		w.log.Warn(resolve.CodeUnsupportedValue.Message(), zap.Stringer("code", resolve.CodeUnsupportedValue),
			zap.String("property", style.Color), zap.String("value", v), zap.String("element", path))
	case err != nil:
		w.log.Warn(resolve.CodeInvalidValue.Message(), zap.Stringer("code", resolve.CodeInvalidValue),
			zap.String("property", style.Color), zap.String("value", v), zap.String("element", path))
		c = parent.color
	}
	m.Set(style.Color, c.String())
	return c
}

// count applies counters of the element in document order and returns
// list item ordinal.
func (w *walker) count(n *html.Node, kind resolve.TargetKind, m *style.Map) int {
	if kind == resolve.TargetKindList {
		start := 1
		if v, ok := attr(n, "start"); ok && n.DataAtom == atom.Ol {
			if s, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				start = s
			}
		}
		w.counters.Reset(counters.ListItem, start-1)
	}
	w.counters.Apply(m)
	if kind != resolve.TargetKindListItem {
		return 0
	}

	if v, ok := attr(n, "value"); ok {
		if s, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			w.counters.Set(counters.ListItem, s)
			return s
		}
	}
	if !strings.Contains(m.Value(style.CounterIncrement), counters.ListItem) {
		w.counters.Increment(counters.ListItem, 1)
	}
	v, _ := w.counters.Value(counters.ListItem)
	return v
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
