package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// Load parses HTML converting it to UTF-8 first. Content type may be empty,
// encoding is then detected from the content itself.
func Load(r io.Reader, contentType string) (*goquery.Document, error) {
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("unable to detect document encoding: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(utf8)
	if err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	return doc, nil
}

// LoadFile loads HTML document from file.
func LoadFile(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()

	doc, err := Load(f, "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// FileFetcher returns function reading linked stylesheets relative to dir.
// Remote locations are not supported.
func FileFetcher(dir string) func(string) ([]byte, error) {
	return func(href string) ([]byte, error) {
		if filepath.IsAbs(href) || hasScheme(href) {
			return nil, fmt.Errorf("stylesheet location %q is not relative", href)
		}
		return os.ReadFile(filepath.Join(dir, filepath.FromSlash(href)))
	}
}

func hasScheme(href string) bool {
	for i, r := range href {
		switch {
		case r == ':':
			return i > 0
		case r == '/' || r == '?' || r == '#':
			return false
		}
	}
	return false
}
