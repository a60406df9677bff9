package resolve_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pdfhtml/resolve"
	"pdfhtml/resource"
	"pdfhtml/style"
	"pdfhtml/units"
)

type images map[string]*resource.ImageHandle

func (m images) RetrieveImage(src string) (*resource.ImageHandle, bool) {
	h, ok := m[src]
	return h, ok
}

var testImages = images{
	"a.png": {Source: "a.png", Kind: resource.KindRaster, Format: "png", Width: 100, Height: 50, HasWidth: true, HasHeight: true},
	"v.svg": {Source: "v.svg", Kind: resource.KindVector, Format: "svg", AspectRatio: 2},
}

func newResolver(t *testing.T) (*resolve.Resolver, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	return resolve.New(zap.New(core), testImages), logs
}

func element(kind resolve.TargetKind, pairs ...string) *resolve.Element {
	return &resolve.Element{
		Path:    "html>body>div",
		Tag:     "div",
		Kind:    kind,
		Style:   style.MapOf(pairs...),
		Lengths: style.DefaultContext(),
		Color:   units.Black,
	}
}

func codes(logs *observer.ObservedLogs) []string {
	var res []string
	for _, e := range logs.All() {
		if c, ok := e.ContextMap()["code"].(string); ok {
			res = append(res, c)
		}
	}
	return res
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
