package css

import "strings"

// MediaQuery represents a parsed @media query condition.
type MediaQuery struct {
	Raw      string         // Original media query string
	Type     string         // Media type (e.g., "print", "screen")
	Negated  bool           // true if "not" modifier was used on main type
	Only     bool           // true if "only" modifier was used
	Features []MediaFeature // Additional conditions (e.g., "and (orientation: portrait)")
}

// MediaFeature represents a single media feature condition in a media query.
type MediaFeature struct {
	Name    string // Feature name (e.g., "color", "orientation")
	Negated bool   // true if "not" modifier was used
}

// Evaluate returns true if this media query matches the given medium. Fixed
// page output has no viewport so features never restrict the match.
func (mq MediaQuery) Evaluate(medium string) bool {
	var typeMatches bool
	switch t := strings.ToLower(mq.Type); t {
	case "", "all":
		typeMatches = true
	default:
		typeMatches = t == medium
	}
	if mq.Negated {
		typeMatches = !typeMatches
	}
	return typeMatches
}

// Declaration is a single property declaration with its raw value.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a qualified rule: selector group with declarations in source order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Get returns the last declared value of the property.
func (r Rule) Get(name string) (Declaration, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i], true
		}
	}
	return Declaration{}, false
}

// MediaBlock represents @media block with its rules.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// StylesheetItem is one top-level entry, exactly one field is set.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	Import     *string
}

// Stylesheet contains parsed items in source order.
type Stylesheet struct {
	Items    []StylesheetItem
	Warnings []string
}

// Imports returns @import URLs in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// Rules returns rules applicable to medium in source order, flattening
// matching @media blocks.
func (s *Stylesheet) Rules(medium string) []Rule {
	var rules []Rule
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			rules = append(rules, *item.Rule)
		case item.MediaBlock != nil && item.MediaBlock.Query.Evaluate(medium):
			rules = append(rules, item.MediaBlock.Rules...)
		}
	}
	return rules
}
