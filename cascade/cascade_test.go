package cascade_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap/zaptest"
	"golang.org/x/net/html"

	"pdfhtml/cascade"
	"pdfhtml/style"
)

// computeFor loads document styles and computes the element matched by
// selector together with all of its ancestors.
func computeFor(t *testing.T, doc, selector string) *style.Map {
	t.Helper()

	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unable to parse document: %v", err)
	}
	c := cascade.New(zaptest.NewLogger(t))
	c.Collect(d, fetch)

	sel := d.Find(selector)
	if sel.Length() == 0 {
		t.Fatalf("selector %q matched nothing", selector)
	}

	var chain []*html.Node
	for n := sel.Nodes[0]; n != nil && n.Type == html.ElementNode; n = n.Parent {
		chain = append([]*html.Node{n}, chain...)
	}
	var m *style.Map
	for _, n := range chain {
		m = c.Compute(n, m)
	}
	return m
}

var sheets = map[string]string{
	"print.css":           `p { padding-right: 7px }`,
	"base.css":            `@import "css/fonts.css"; p { color: blue; margin-left: 1px }`,
	"css/fonts.css":       `@import url(more.css); p { color: green; font-size: 9pt }`,
	"css/more.css":        `p { color: gray; margin-bottom: 5px }`,
	"loop.css":            `@import "loop.css"; p { margin-right: 3px }`,
	"css/unreachable.css": `p { color: red }`,
}

func fetch(href string) ([]byte, error) {
	if s, ok := sheets[href]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("%s not found", href)
}

func expectValues(t *testing.T, m *style.Map, pairs ...string) {
	t.Helper()
	for i := 0; i+1 < len(pairs); i += 2 {
		got, ok := m.Get(pairs[i])
		want := pairs[i+1]
		switch {
		case want == "" && ok:
			t.Errorf("%s: expected no value, got %q", pairs[i], got)
		case want != "" && got != want:
			t.Errorf("%s: expected %q, got %q (present %v)", pairs[i], want, got, ok)
		}
	}
}

func TestUserAgentStylesheet(t *testing.T) {
	doc := `<html><body><ol><li id="x">one</li></ol><h1>Title</h1><table><tr><td id="c">1</td></tr></table></body></html>`

	expectValues(t, computeFor(t, doc, "#x"), "display", "list-item", "list-style-type", "decimal")
	expectValues(t, computeFor(t, doc, "h1"), "display", "block", "font-size", "2em", "margin-top", "0.67em")
	expectValues(t, computeFor(t, doc, "#c"), "display", "table-cell", "padding-left", "1px", "vertical-align", "middle")
	expectValues(t, computeFor(t, doc, "table"), "display", "table")
}

func TestCascadeOrdering(t *testing.T) {
	tests := []struct {
		name  string
		css   string
		attrs string
		want  string
	}{
		{"later rule wins", `p { color: red } p { color: blue }`, ``, "blue"},
		{"specificity beats order", `#x { color: blue } p.a { color: green } p { color: red }`, ``, "blue"},
		{"class beats type", `p.a { color: green } p { color: red }`, ``, "green"},
		{"inline beats id", `#x { color: blue }`, `style="color: olive"`, "olive"},
		{"important beats inline", `p { color: red !important }`, `style="color: olive"`, "red"},
		{"important inline beats important rule", `#x { color: red !important }`, `style="color: olive !important"`, "olive"},
		{"highest specificity of group", `p, #x { color: blue } p.a { color: green }`, ``, "blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<html><head><style>` + tt.css + `</style></head><body><p id="x" class="a" ` + tt.attrs + `>text</p></body></html>`
			expectValues(t, computeFor(t, doc, "#x"), "color", tt.want)
		})
	}
}

func TestAuthorImportantOverridesUserAgent(t *testing.T) {
	c := cascade.New(nil)
	c.AddStylesheet([]byte(`p { display: inline !important }`), "author")

	d, err := goquery.NewDocumentFromReader(strings.NewReader(`<p>x</p>`))
	if err != nil {
		t.Fatal(err)
	}
	m := c.Compute(d.Find("p").Nodes[0], nil)
	expectValues(t, m, "display", "inline")
}

func TestInheritance(t *testing.T) {
	doc := `<html><head><style>
	div { color: red; margin-left: 5px; list-style-type: square }
	span.i { margin-left: inherit }
	span.u { color: unset; margin-left: unset }
	span.n { color: initial }
	</style></head><body><div><span class="plain">a</span><span class="i">b</span><span class="u">c</span><span class="n">d</span></div></body></html>`

	expectValues(t, computeFor(t, doc, ".plain"), "color", "red", "margin-left", "", "list-style-type", "square")
	expectValues(t, computeFor(t, doc, ".i"), "margin-left", "5px", "color", "red")
	expectValues(t, computeFor(t, doc, ".u"), "color", "red", "margin-left", "")
	expectValues(t, computeFor(t, doc, ".n"), "color", "")
}

func TestShorthands(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want []string
	}{
		{"margin two values", `margin: 1px 2px`, []string{
			"margin-top", "1px", "margin-right", "2px", "margin-bottom", "1px", "margin-left", "2px"}},
		{"padding three values", `padding: 1px 2px 3px`, []string{
			"padding-top", "1px", "padding-right", "2px", "padding-bottom", "3px", "padding-left", "2px"}},
		{"longhand after shorthand", `margin: 1px; margin-left: 3px`, []string{
			"margin-top", "1px", "margin-left", "3px"}},
		{"invalid shorthand ignored", `margin: 1px; margin: 1px 2px 3px 4px 5px`, []string{
			"margin-top", "1px"}},
		{"border", `border: 1px solid red`, []string{
			"border-top-width", "1px", "border-left-style", "solid", "border-bottom-color", "red"}},
		{"border without color", `border-top: dashed 2px`, []string{
			"border-top-width", "2px", "border-top-style", "dashed", "border-top-color", ""}},
		{"border side styles", `border-style: solid dotted`, []string{
			"border-top-style", "solid", "border-right-style", "dotted", "border-left-style", "dotted"}},
		{"outline", `outline: auto 3px`, []string{
			"outline-style", "auto", "outline-width", "3px"}},
		{"text decoration", `text-decoration: underline overline dotted red`, []string{
			"text-decoration-line", "underline overline", "text-decoration-style", "dotted", "text-decoration-color", "red"}},
		{"list style", `list-style: square inside`, []string{
			"list-style-type", "square", "list-style-position", "inside", "list-style-image", ""}},
		{"list style none", `list-style: none`, []string{
			"list-style-type", "none"}},
		{"flex number", `flex: 2`, []string{
			"flex-grow", "2", "flex-shrink", "1", "flex-basis", "0%"}},
		{"flex none", `flex: none`, []string{
			"flex-grow", "0", "flex-shrink", "0", "flex-basis", "auto"}},
		{"flex full", `flex: 1 0 10px`, []string{
			"flex-grow", "1", "flex-shrink", "0", "flex-basis", "10px"}},
		{"flex basis first", `flex: 10px 3`, []string{
			"flex-grow", "3", "flex-basis", "10px"}},
		{"flex flow", `flex-flow: column wrap`, []string{
			"flex-direction", "column", "flex-wrap", "wrap"}},
		{"background position", `background-position: right 10px top, center`, []string{
			"background-position-x", "right 10px, center", "background-position-y", "top, center"}},
		{"background position swapped", `background-position: top left`, []string{
			"background-position-x", "left", "background-position-y", "top"}},
		{"background", `background: url(a.png) no-repeat center / cover red`, []string{
			"background-image", "url(a.png)", "background-repeat", "no-repeat",
			"background-position-x", "center", "background-position-y", "center",
			"background-size", "cover", "background-color", "red",
			"background-origin", "padding-box", "background-clip", "border-box"}},
		{"background layers", `background: url(a.png) repeat-x, linear-gradient(red, blue) content-box`, []string{
			"background-image", "url(a.png), linear-gradient(red, blue)",
			"background-repeat", "repeat-x, repeat",
			"background-origin", "padding-box, content-box",
			"background-clip", "border-box, content-box",
			"background-color", "transparent"}},
		{"background color only", `background: #fff`, []string{
			"background-image", "none", "background-color", "#fff"}},
		{"font", `font: italic bold 12px/1.5 serif`, []string{
			"font-size", "12px", "line-height", "1.5"}},
		{"font without line height", `font: 2em serif`, []string{
			"font-size", "2em", "line-height", "normal"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<html><head><style>p { ` + tt.css + ` }</style></head><body><p>x</p></body></html>`
			expectValues(t, computeFor(t, doc, "p"), tt.want...)
		})
	}
}

func TestBorderRadiusOverridesCorners(t *testing.T) {
	doc := `<html><head><style>
	p { border-top-left-radius: 3px }
	p.a { border-radius: 5px }
	p.b { border-radius: 5px; border-bottom-left-radius: 1px }
	</style></head><body><p class="a">x</p><p class="b">y</p></body></html>`

	expectValues(t, computeFor(t, doc, ".a"), "border-radius", "5px", "border-top-left-radius", "")
	expectValues(t, computeFor(t, doc, ".b"), "border-radius", "5px", "border-bottom-left-radius", "1px")
}

func TestMedia(t *testing.T) {
	doc := `<html><head>
	<style media="screen">p { color: red }</style>
	<style media="print, screen">p { margin-top: 2px }</style>
	<style>@media screen { p { padding-top: 3px } } @media print { p { padding-left: 4px } }</style>
	<link rel="stylesheet" href="print.css" media="print">
	<link rel="stylesheet" href="missing.css">
	<link rel="icon" href="print.css">
	</head><body><p>x</p></body></html>`

	expectValues(t, computeFor(t, doc, "p"),
		"color", "",
		"margin-top", "2px",
		"padding-top", "",
		"padding-left", "4px",
		"padding-right", "7px")
}

func TestImports(t *testing.T) {
	doc := `<html><head>
	<link rel="stylesheet" href="base.css">
	<style>@import "loop.css"; @import "missing.css"; p { font-size: 10pt }</style>
	</head><body><p>x</p></body></html>`

	// imported rules precede the importing stylesheet
	expectValues(t, computeFor(t, doc, "p"),
		"color", "blue",
		"margin-left", "1px",
		"margin-bottom", "5px",
		"margin-right", "3px",
		"font-size", "10pt")
}

func TestImportsNotFollowedWithoutFetcher(t *testing.T) {
	c := cascade.New(nil)
	before := c.Rules()
	c.AddStylesheet([]byte(`@import "base.css"; p { color: red }`), "test")
	if got := c.Rules() - before; got != 1 {
		t.Errorf("expected only own rule, got %d", got)
	}
}

func TestPseudoElementsIgnored(t *testing.T) {
	doc := `<html><head><style>p::before { color: red } p:first-child { margin-top: 1px }</style></head><body><p>x</p></body></html>`
	expectValues(t, computeFor(t, doc, "p"), "color", "", "margin-top", "1px")
}

func TestRulesCount(t *testing.T) {
	c := cascade.New(nil)
	before := c.Rules()
	if before == 0 {
		t.Fatal("user agent rules are not loaded")
	}
	c.AddStylesheet([]byte(`p { color: red } ::selection { color: blue } ??? { }`), "test")
	if got := c.Rules() - before; got != 1 {
		t.Errorf("expected one usable rule, got %d", got)
	}
}
