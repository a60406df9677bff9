package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"
)

// OutputName holds values available to output name template.
type OutputName struct {
	// Name is source file name without extension.
	Name string
	// Slug is URL friendly transliterated Name.
	Slug string
}

// FileName expands name template for the source file and returns sanitized
// output file name with extension of the requested format.
func (conf *OutputConfig) FileName(source string, format OutputFmt) (string, error) {
	tmpl, err := template.New(string(OutputNameTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(conf.NameTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse output name template: %w", err)
	}

	base := filepath.Base(source)
	values := OutputName{Name: strings.TrimSuffix(base, filepath.Ext(base))}
	values.Slug = slug.Make(values.Name)

	var buf strings.Builder
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("unable to expand output name template: %w", err)
	}
	return CleanFileName(strings.TrimSpace(buf.String())) + format.Ext(), nil
}
