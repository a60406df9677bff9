package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets and inline style attributes.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
				sheet.Warnings = append(sheet.Warnings, parser.Err().Error())
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			switch atRule {
			case "@media":
				mq := p.parseMediaQueryFromTokens(parser.Values())
				rules := p.parseMediaBlockRules(parser)
				p.log.Debug("Parsed @media block", zap.String("query", mq.Raw), zap.Int("rules", len(rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{
					MediaBlock: &MediaBlock{Query: mq, Rules: rules},
				})
			default:
				p.skipAtRuleBlock(parser)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.AtRuleGrammar:
			atRule := strings.ToLower(string(data))
			if atRule == "@import" {
				if url := extractImportURL(parser.Values()); url != "" {
					sheet.Items = append(sheet.Items, StylesheetItem{Import: &url})
					p.log.Debug("Parsed @import", zap.String("url", url))
				}
			} else {
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.BeginRulesetGrammar:
			selector := joinTokens(data, parser.Values())
			decls := p.parseDeclarations(parser)
			if selector == "" {
				sheet.Warnings = append(sheet.Warnings, "empty selector")
				continue
			}
			sheet.Items = append(sheet.Items, StylesheetItem{
				Rule: &Rule{Selector: selector, Declarations: decls},
			})
		}
	}
}

// ParseInline parses the content of a style attribute.
func (p *Parser) ParseInline(style string) []Declaration {
	var decls []Declaration
	parser := css.NewParser(parse.NewInputString(style), true)
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("Inline style parse error", zap.String("style", style), zap.Error(parser.Err()))
			}
			return decls
		case css.DeclarationGrammar:
			if d, ok := makeDeclaration(data, parser.Values()); ok {
				decls = append(decls, d)
			}
		}
	}
}

// extractImportURL extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
func extractImportURL(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return Unquote(string(t.Data))
		case css.URLToken:
			if u, ok := URL(string(t.Data)); ok {
				return u
			}
		}
	}
	return ""
}

// joinTokens builds selector string from grammar data and values.
func joinTokens(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

// parseDeclarations parses property declarations until EndRulesetGrammar.
func (p *Parser) parseDeclarations(parser *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar:
			if d, ok := makeDeclaration(data, parser.Values()); ok {
				decls = append(decls, d)
			}

		case css.CustomPropertyGrammar:
			// CSS custom properties (--var) are not supported
			continue
		}
	}
}

func makeDeclaration(name []byte, tokens []css.Token) (Declaration, bool) {
	d := Declaration{Property: strings.ToLower(string(name))}

	// strip trailing !important
	end := len(tokens)
	for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
		end--
	}
	if end >= 2 && tokens[end-1].TokenType == css.IdentToken &&
		strings.EqualFold(string(tokens[end-1].Data), "important") &&
		tokens[end-2].TokenType == css.DelimToken && string(tokens[end-2].Data) == "!" {
		d.Important = true
		end -= 2
	}

	d.Value = rawValue(tokens[:end])
	return d, d.Value != ""
}

// rawValue rebuilds value text from tokens, collapsing whitespace.
func rawValue(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		switch t.TokenType {
		case css.WhitespaceToken:
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		case css.CommentToken:
		case css.CommaToken:
			sb.WriteString(", ")
		default:
			sb.Write(t.Data)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseMediaQueryFromTokens parses a media query from CSS tokens.
// Only the first query of a comma separated list is considered.
func (p *Parser) parseMediaQueryFromTokens(tokens []css.Token) MediaQuery {
	mq := MediaQuery{Raw: rawValue(tokens)}

	// Format: [not|only] type [and [not] (feature)]...
	var idents []string
	depth := 0
scan:
	for _, t := range tokens {
		switch t.TokenType {
		case css.CommaToken:
			if depth == 0 {
				break scan
			}
		case css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.IdentToken:
			idents = append(idents, strings.ToLower(string(t.Data)))
		}
	}
	if len(idents) == 0 {
		return mq
	}

	i := 0
	switch idents[i] {
	case "not":
		mq.Negated = true
		i++
	case "only":
		mq.Only = true
		i++
	}

	if i < len(idents) && idents[i] != "and" {
		mq.Type = idents[i]
		i++
	}

	for i < len(idents) {
		if idents[i] != "and" {
			i++
			continue
		}
		i++
		if i >= len(idents) {
			break
		}
		feature := MediaFeature{}
		if idents[i] == "not" {
			feature.Negated = true
			i++
			if i >= len(idents) {
				break
			}
		}
		feature.Name = idents[i]
		mq.Features = append(mq.Features, feature)
		i++
	}
	return mq
}

// parseMediaBlockRules parses rules inside an @media block and returns them.
func (p *Parser) parseMediaBlockRules(parser *css.Parser) []Rule {
	var rules []Rule
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules

		case css.BeginAtRuleGrammar:
			p.skipAtRuleBlock(parser)

		case css.BeginRulesetGrammar:
			selector := joinTokens(data, parser.Values())
			decls := p.parseDeclarations(parser)
			if selector != "" {
				rules = append(rules, Rule{Selector: selector, Declarations: decls})
			}
		}
	}
}
