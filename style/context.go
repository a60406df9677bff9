package style

// DefaultFontSize is the font size in points used when nothing else is known.
const DefaultFontSize = 12.0

// LengthContext carries font sizes relative lengths are resolved against.
type LengthContext struct {
	Em  float64 // element font size in points
	Rem float64 // document root font size in points
}

// DefaultContext returns context for a document without any font sizes set.
func DefaultContext() LengthContext {
	return LengthContext{Em: DefaultFontSize, Rem: DefaultFontSize}
}
