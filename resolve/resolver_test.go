package resolve_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"pdfhtml/resolve"
	"pdfhtml/resource"
	"pdfhtml/style"
)

type panicky struct{}

func (panicky) RetrieveImage(string) (*resource.ImageHandle, bool) {
	panic("retriever is broken")
}

func TestResolveIsolatesFailures(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.Level(zapcore.DPanicLevel))
	r := resolve.New(log, panicky{})
	el := element(resolve.TargetKindBlock,
		style.BackgroundImage, "url(a.png)",
		style.BorderTopStyle, "solid",
		style.MarginLeft, "1pt",
	)
	vp, _, err := r.Resolve(el)
	if err == nil || !strings.Contains(err.Error(), "backgrounds") {
		t.Fatalf("expected background failure, got %v", err)
	}
	if vp.Borders == nil || vp.Margins == nil {
		t.Errorf("other groups must still resolve: %+v", vp)
	}
}

func TestResolveEmpty(t *testing.T) {
	r := resolve.New(nil, nil)
	vp, next, err := r.Resolve(&resolve.Element{Kind: resolve.TargetKindInline, Lengths: style.DefaultContext()})
	if err != nil {
		t.Fatal(err)
	}
	if !vp.Empty() || !next.Empty() {
		t.Errorf("unexpected properties %+v %+v", vp, next)
	}
}

func TestResolveUnavailableImages(t *testing.T) {
	r := resolve.New(zap.NewNop(), nil)
	vp, _, err := r.Resolve(element(resolve.TargetKindBlock, style.BackgroundImage, "url(a.png)"))
	if err != nil {
		t.Fatal(err)
	}
	if len(vp.Backgrounds) != 0 {
		t.Errorf("layers = %+v", vp.Backgrounds)
	}
}

func TestDiagnosticsSummary(t *testing.T) {
	diag := resolve.NewDiagnostics()
	r := resolve.New(zap.New(diag.Core()), testImages)

	for _, v := range []string{"10%", "5%"} {
		r.Borders(element(resolve.TargetKindBlock, style.BorderTopStyle, "solid", style.BorderTopWidth, v))
	}
	r.Borders(element(resolve.TargetKindBlock, style.BorderLeftStyle, "solid", style.BorderLeftWidth, "1%"))
	r.Position(element(resolve.TargetKindBlock, style.Position, "fixed"))

	got := diag.Summary()
	want := []resolve.DiagnosticCount{
		{Code: string(resolve.CodePercentUnsupported), Property: style.BorderLeftWidth, Count: 1},
		{Code: string(resolve.CodePercentUnsupported), Property: style.BorderTopWidth, Count: 2},
		{Code: string(resolve.CodePositionFixed), Property: style.Position, Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("summary = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("summary[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if diag.Total() != 4 {
		t.Errorf("total = %d", diag.Total())
	}
	if s := got[1].String(); s != "CSS_PROPERTY_IN_PERCENTS_NOT_SUPPORTED (border-top-width): 2" {
		t.Errorf("String() = %q", s)
	}
}
