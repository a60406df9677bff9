// Package cascade computes raw property values of document elements from
// the user agent stylesheet, document stylesheets and inline styles.
package cascade

//go:generate go tool go-enum --marshal --names

import (
	_ "embed"
	"path"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"pdfhtml/css"
	"pdfhtml/style"
)

// Medium is the media type stylesheets are evaluated for.
const Medium = "print"

// maxImportDepth limits nesting of @import rules, it also stops import cycles.
const maxImportDepth = 8

//go:embed default.css
var defaultStylesheet []byte

// Origin of a style rule.
// ENUM(user-agent, author)
type Origin int

type rule struct {
	selectors cascadia.SelectorGroup
	decls     []css.Declaration
	origin    Origin
	seq       int
}

// candidate is a single longhand declaration competing for the element.
type candidate struct {
	decl        css.Declaration
	origin      Origin
	inline      bool
	specificity cascadia.Specificity
	seq         int
}

// Cascade keeps parsed rules in the order they were added.
type Cascade struct {
	log    *zap.Logger
	parser *css.Parser
	rules  []rule
	seq    int
}

// New creates cascade with user agent stylesheet already loaded.
func New(log *zap.Logger) *Cascade {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Cascade{log: log.Named("cascade")}
	c.parser = css.NewParser(c.log)
	c.add(c.parser.Parse(defaultStylesheet, "user agent"), OriginUserAgent)
	return c
}

// Rules returns number of rules known to the cascade.
func (c *Cascade) Rules() int {
	return len(c.rules)
}

// AddStylesheet parses author stylesheet and appends its rules. Imports are
// not followed.
func (c *Cascade) AddStylesheet(data []byte, source string) {
	c.load(data, source, "", nil, 0)
}

// Fetcher returns content of the external stylesheet referenced by href.
type Fetcher func(href string) ([]byte, error)

// Collect loads <style> elements and, when fetch is not nil, linked and
// imported stylesheets of the document in document order. Stylesheets not
// applicable to print media are skipped.
func (c *Cascade) Collect(doc *goquery.Document, fetch Fetcher) {
	doc.Find(`style, link[rel~="stylesheet" i]`).Each(func(i int, s *goquery.Selection) {
		if media, ok := s.Attr("media"); ok && !mediaMatches(media) {
			c.log.Debug("Skipping stylesheet", zap.Int("index", i), zap.String("media", media))
			return
		}
		if goquery.NodeName(s) == "style" {
			c.load([]byte(s.Text()), "style element", "", fetch, 0)
			return
		}
		href, ok := s.Attr("href")
		if !ok || fetch == nil {
			return
		}
		data, err := fetch(href)
		if err != nil {
			c.log.Warn("Unable to load stylesheet", zap.String("href", href), zap.Error(err))
			return
		}
		c.load(data, href, href, fetch, 0)
	})
}

// load adds rules of imported stylesheets first and then rules of the
// stylesheet itself. Nested imports are relative to the importing
// stylesheet location base.
func (c *Cascade) load(data []byte, source, base string, fetch Fetcher, depth int) {
	sheet := c.parser.Parse(data, source)
	for _, href := range sheet.Imports() {
		if fetch == nil {
			break
		}
		if depth >= maxImportDepth {
			c.log.Warn("Stylesheet imports are nested too deep, import ignored", zap.String("href", href))
			continue
		}
		if base != "" && !strings.Contains(href, ":") && !path.IsAbs(href) {
			href = path.Join(path.Dir(base), href)
		}
		imported, err := fetch(href)
		if err != nil {
			c.log.Warn("Unable to load stylesheet", zap.String("href", href), zap.Error(err))
			continue
		}
		c.load(imported, href, href, fetch, depth+1)
	}
	c.add(sheet, OriginAuthor)
}

func mediaMatches(media string) bool {
	if strings.TrimSpace(media) == "" {
		return true
	}
	for _, q := range strings.Split(media, ",") {
		fields := strings.Fields(css.Keyword(q))
		mq := css.MediaQuery{Raw: q}
		if len(fields) > 0 && (fields[0] == "only" || fields[0] == "not") {
			mq.Only, mq.Negated = fields[0] == "only", fields[0] == "not"
			fields = fields[1:]
		}
		if len(fields) > 0 && !strings.HasPrefix(fields[0], "(") {
			mq.Type = fields[0]
		}
		if mq.Evaluate(Medium) {
			return true
		}
	}
	return false
}

func (c *Cascade) add(sheet *css.Stylesheet, origin Origin) {
	for _, w := range sheet.Warnings {
		c.log.Debug("Stylesheet warning", zap.Stringer("origin", origin), zap.String("warning", w))
	}
	for _, r := range sheet.Rules(Medium) {
		group, err := cascadia.ParseGroupWithPseudoElements(r.Selector)
		if err != nil {
			c.log.Debug("Unsupported selector, rule ignored", zap.String("selector", r.Selector), zap.Error(err))
			continue
		}
		// pseudo elements generate no boxes here
		group = slices.DeleteFunc(group, func(s cascadia.Sel) bool { return s.PseudoElement() != "" })
		if len(group) == 0 {
			continue
		}
		c.rules = append(c.rules, rule{selectors: group, decls: r.Declarations, origin: origin, seq: c.seq})
		c.seq += len(r.Declarations)
	}
}

func (c *Cascade) candidates(n *html.Node) []candidate {
	var res []candidate
	push := func(d css.Declaration, origin Origin, inline bool, spec cascadia.Specificity, seq int) {
		longhands, ok := expand(d)
		if !ok {
			c.log.Debug("Invalid shorthand ignored", zap.String("property", d.Property), zap.String("value", d.Value))
			return
		}
		for _, l := range longhands {
			res = append(res, candidate{decl: l, origin: origin, inline: inline, specificity: spec, seq: seq})
		}
	}

	for _, r := range c.rules {
		var (
			spec    cascadia.Specificity
			matched bool
		)
		for _, s := range r.selectors {
			if !s.Match(n) {
				continue
			}
			if sp := s.Specificity(); !matched || spec.Less(sp) {
				spec = sp
			}
			matched = true
		}
		if !matched {
			continue
		}
		for i, d := range r.decls {
			push(d, r.origin, false, spec, r.seq+i)
		}
	}

	for _, a := range n.Attr {
		if a.Namespace != "" || !strings.EqualFold(a.Key, "style") {
			continue
		}
		for i, d := range c.parser.ParseInline(a.Val) {
			push(d, OriginAuthor, true, cascadia.Specificity{}, c.seq+i)
		}
	}
	return res
}

// level orders importance and origin: normal user agent, normal author,
// important author, important user agent.
func (cd candidate) level() int {
	switch {
	case !cd.decl.Important && cd.origin == OriginUserAgent:
		return 0
	case !cd.decl.Important:
		return 1
	case cd.origin == OriginAuthor:
		return 2
	}
	return 3
}

func (cd candidate) less(other candidate) bool {
	if a, b := cd.level(), other.level(); a != b {
		return a < b
	}
	if cd.inline != other.inline {
		return other.inline
	}
	if cd.specificity != other.specificity {
		return cd.specificity.Less(other.specificity)
	}
	return cd.seq < other.seq
}

// Compute returns cascaded values of the element. Parent is the computed
// map of the parent element, nil for the root. Inherited properties not set
// on the element are copied from parent.
func (c *Cascade) Compute(n *html.Node, parent *style.Map) *style.Map {
	cands := c.candidates(n)
	slices.SortStableFunc(cands, func(a, b candidate) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})

	m := style.NewMap()
	for _, cd := range cands {
		if cd.decl.Value == "" {
			m.Delete(cd.decl.Property)
			continue
		}
		m.Set(cd.decl.Property, cd.decl.Value)
	}

	reset := make(map[string]bool)
	for _, name := range m.Names() {
		value := m.Value(name)
		switch {
		case css.IsKeyword(value, "inherit"),
			css.IsKeyword(value, "unset") && slices.Contains(style.Inherited, name):
			if pv, ok := parent.Get(name); ok {
				m.Set(name, pv)
			} else {
				m.Delete(name)
			}
		case css.IsKeyword(value, "initial", "unset"):
			m.Delete(name)
			reset[name] = true
		}
	}

	for _, name := range style.Inherited {
		if _, ok := m.Get(name); ok || reset[name] {
			continue
		}
		if pv, ok := parent.Get(name); ok {
			m.Set(name, pv)
		}
	}
	return m
}
