package css_test

import (
	"slices"
	"testing"

	"pdfhtml/css"
)

func TestSplitComma(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b", []string{"a", "b"}},
		{"url(a.png), linear-gradient(to right, red 10%, blue)", []string{"url(a.png)", "linear-gradient(to right, red 10%, blue)"}},
		{"rgb(1,2,3)", []string{"rgb(1,2,3)"}},
		{"  ", nil},
		{"cover, 50% auto", []string{"cover", "50% auto"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := css.SplitComma(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("SplitComma(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitSpace(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"underline  overline", []string{"underline", "overline"}},
		{"1px solid rgb(1, 2, 3)", []string{"1px", "solid", "rgb(1, 2, 3)"}},
		{"10px / 5px", []string{"10px", "/", "5px"}},
		{"left 10px", []string{"left", "10px"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := css.SplitSpace(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("SplitSpace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitSlash(t *testing.T) {
	got := css.SplitSlash(css.SplitSpace("center/cover url(img/a.png) 10px /5px"))
	want := []string{"center", "/", "cover", "url(img/a.png)", "10px", "/", "5px"}
	if !slices.Equal(got, want) {
		t.Errorf("SplitSlash = %q, want %q", got, want)
	}
}

func TestParseFunction(t *testing.T) {
	f, ok := css.ParseFunction("RGBA(1, 2, 3, .5)")
	if !ok {
		t.Fatal("expected function")
	}
	if f.Name != "rgba" || !slices.Equal(f.Args, []string{"1", "2", "3", ".5"}) {
		t.Errorf("unexpected function %+v", f)
	}

	for _, bad := range []string{"rgb", "rgb(1) x", "(1)", "a(b)c(d)"} {
		if _, ok := css.ParseFunction(bad); ok {
			t.Errorf("ParseFunction(%q) must fail", bad)
		}
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"url(a.png)", "a.png", true},
		{`url( "img/b c.svg" )`, "img/b c.svg", true},
		{"URL('x')", "x", true},
		{"url()", "", false},
		{"linear-gradient(red, blue)", "", false},
	}
	for _, tt := range tests {
		got, ok := css.URL(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("URL(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyword(t *testing.T) {
	if got := css.Keyword("  Repeat-X "); got != "repeat-x" {
		t.Errorf("Keyword = %q", got)
	}
	if !css.IsKeyword("INHERIT", "initial", "inherit") {
		t.Error("expected keyword match")
	}
}
