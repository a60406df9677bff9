package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/text/cases"
)

// Function is a functional notation value such as rgb(1, 2, 3).
type Function struct {
	Name string   // lower case, without parenthesis
	Args []string // arguments split on top level commas
}

// SplitComma splits value on commas which are not nested in parenthesis.
func SplitComma(value string) []string {
	return split(value, func(tt css.TokenType) bool { return tt == css.CommaToken })
}

// SplitSpace splits value on whitespace which is not nested in parenthesis.
func SplitSpace(value string) []string {
	return split(value, func(tt css.TokenType) bool { return tt == css.WhitespaceToken })
}

func split(value string, sep func(css.TokenType) bool) []string {
	var (
		parts []string
		sb    strings.Builder
		depth int
	)
	flush := func() {
		if s := strings.TrimSpace(sb.String()); s != "" {
			parts = append(parts, s)
		}
		sb.Reset()
	}

	l := css.NewLexer(parse.NewInputString(value))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			flush()
			return parts
		case css.CommentToken:
			continue
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 && sep(tt) {
			flush()
			continue
		}
		if tt == css.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.Write(data)
	}
}

// SplitSlash makes slash a separate token whether or not it was surrounded
// by whitespace. Functional notations are left intact.
func SplitSlash(toks []string) []string {
	res := make([]string, 0, len(toks))
	for _, t := range toks {
		if strings.ContainsRune(t, '(') {
			res = append(res, t)
			continue
		}
		for {
			before, after, found := strings.Cut(t, "/")
			if before != "" {
				res = append(res, before)
			}
			if !found {
				break
			}
			res = append(res, "/")
			t = after
		}
	}
	return res
}

// Keyword folds value for case insensitive keyword comparison.
func Keyword(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}

// IsKeyword reports whether value equals one of the keywords ignoring case.
func IsKeyword(value string, keywords ...string) bool {
	k := Keyword(value)
	for _, kw := range keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// ParseFunction parses functional notation. Value must consist of the single
// function and nothing else.
func ParseFunction(value string) (Function, bool) {
	value = strings.TrimSpace(value)
	open := strings.IndexByte(value, '(')
	if open <= 0 || !strings.HasSuffix(value, ")") {
		return Function{}, false
	}
	name := Keyword(value[:open])
	if strings.ContainsAny(name, " \t\n,") {
		return Function{}, false
	}
	inner := value[open+1 : len(value)-1]
	depth := 0
	for _, r := range inner {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				// closing parenthesis belongs to something else
				return Function{}, false
			}
		}
	}
	return Function{Name: name, Args: SplitComma(inner)}, true
}

// URL extracts location from url() notation.
func URL(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) < 5 || !strings.EqualFold(value[:4], "url(") || !strings.HasSuffix(value, ")") {
		return "", false
	}
	u := Unquote(value[4 : len(value)-1])
	return u, u != ""
}

// Unquote removes surrounding quotes from a string.
func Unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
