package resolve

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/maruel/natural"
	"go.uber.org/zap/zapcore"
)

// Code classifies resolver diagnostics.
type Code string

const (
	CodeInvalidGradient    Code = "INVALID_GRADIENT_DECLARATION"
	CodePercentUnsupported Code = "CSS_PROPERTY_IN_PERCENTS_NOT_SUPPORTED"
	CodeUnsupportedValue   Code = "UNSUPPORTED_VALUE"
	CodeFlexUnsupported    Code = "FLEX_PROPERTY_IS_NOT_SUPPORTED_YET"
	CodeImageUnavailable   Code = "UNABLE_TO_RETRIEVE_IMAGE"
	CodePositionFixed      Code = "POSITION_NOT_IMPLEMENTED"
	CodeInvalidValue       Code = "INVALID_CSS_PROPERTY_VALUE"
)

var messages = map[Code]string{
	CodeInvalidGradient:    "Invalid gradient declaration, layer skipped",
	CodePercentUnsupported: "Percentage values are not supported for property, ignored",
	CodeUnsupportedValue:   "Unsupported property value, default used",
	CodeFlexUnsupported:    "Flex property value is not supported yet, default used",
	CodeImageUnavailable:   "Unable to retrieve image, ignored",
	CodePositionFixed:      "Fixed positioning is not implemented, ignored",
	CodeInvalidValue:       "Invalid property value, ignored",
}

func (c Code) String() string { return string(c) }

// Message returns human readable description of the code.
func (c Code) Message() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return string(c)
}

// Diagnostics counts resolver warnings and errors per code and property. Its
// Core is meant to be teed with the regular logger core.
type Diagnostics struct {
	mu     sync.Mutex
	counts map[string]int
}

// DiagnosticCount is a single summary line.
type DiagnosticCount struct {
	Code     string `yaml:"code"`
	Property string `yaml:"property,omitempty"`
	Count    int    `yaml:"count"`
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{counts: make(map[string]int)}
}

// Core returns zap core recording every entry of warning level and above
// carrying a diagnostic code.
func (d *Diagnostics) Core() zapcore.Core {
	return &diagCore{d: d}
}

func (d *Diagnostics) record(code, property string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.counts[code+"\x00"+property]++
}

// Total returns number of recorded diagnostics.
func (d *Diagnostics) Total() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.counts {
		n += c
	}
	return n
}

// Summary returns recorded counts in natural order of code and property.
func (d *Diagnostics) Summary() []DiagnosticCount {
	d.mu.Lock()
	defer d.mu.Unlock()

	keys := make([]string, 0, len(d.counts))
	for k := range d.counts {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))

	res := make([]DiagnosticCount, 0, len(keys))
	for _, k := range keys {
		code, property, _ := strings.Cut(k, "\x00")
		res = append(res, DiagnosticCount{Code: code, Property: property, Count: d.counts[k]})
	}
	return res
}

func (c DiagnosticCount) String() string {
	if c.Property == "" {
		return fmt.Sprintf("%s: %d", c.Code, c.Count)
	}
	return fmt.Sprintf("%s (%s): %d", c.Code, c.Property, c.Count)
}

type diagCore struct {
	d      *Diagnostics
	fields []zapcore.Field
}

func (c *diagCore) Enabled(l zapcore.Level) bool {
	return l >= zapcore.WarnLevel
}

func (c *diagCore) With(fields []zapcore.Field) zapcore.Core {
	return &diagCore{d: c.d, fields: append(append([]zapcore.Field(nil), c.fields...), fields...)}
}

func (c *diagCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *diagCore) Write(_ zapcore.Entry, fields []zapcore.Field) error {
	var code, property string
	for _, list := range [][]zapcore.Field{c.fields, fields} {
		for _, f := range list {
			switch f.Key {
			case "code":
				code = fieldString(f)
			case "property":
				property = fieldString(f)
			}
		}
	}
	if code != "" {
		c.d.record(code, property)
	}
	return nil
}

func (c *diagCore) Sync() error { return nil }

func fieldString(f zapcore.Field) string {
	switch f.Type {
	case zapcore.StringType:
		return f.String
	case zapcore.StringerType:
		if s, ok := f.Interface.(fmt.Stringer); ok {
			return s.String()
		}
	}
	return ""
}
