package style

// Property names understood by resolvers.
const (
	Display    = "display"
	Direction  = "direction"
	Color      = "color"
	FontSize   = "font-size"
	LineHeight = "line-height"

	BackgroundColor     = "background-color"
	BackgroundImage     = "background-image"
	BackgroundPositionX = "background-position-x"
	BackgroundPositionY = "background-position-y"
	BackgroundSize      = "background-size"
	BackgroundRepeat    = "background-repeat"
	BackgroundBlendMode = "background-blend-mode"
	BackgroundClip      = "background-clip"
	BackgroundOrigin    = "background-origin"

	BorderTopWidth    = "border-top-width"
	BorderTopStyle    = "border-top-style"
	BorderTopColor    = "border-top-color"
	BorderRightWidth  = "border-right-width"
	BorderRightStyle  = "border-right-style"
	BorderRightColor  = "border-right-color"
	BorderBottomWidth = "border-bottom-width"
	BorderBottomStyle = "border-bottom-style"
	BorderBottomColor = "border-bottom-color"
	BorderLeftWidth   = "border-left-width"
	BorderLeftStyle   = "border-left-style"
	BorderLeftColor   = "border-left-color"

	BorderRadius            = "border-radius"
	BorderTopLeftRadius     = "border-top-left-radius"
	BorderTopRightRadius    = "border-top-right-radius"
	BorderBottomRightRadius = "border-bottom-right-radius"
	BorderBottomLeftRadius  = "border-bottom-left-radius"

	OutlineWidth  = "outline-width"
	OutlineStyle  = "outline-style"
	OutlineColor  = "outline-color"
	OutlineOffset = "outline-offset"

	FlexGrow       = "flex-grow"
	FlexShrink     = "flex-shrink"
	FlexBasis      = "flex-basis"
	FlexDirection  = "flex-direction"
	FlexWrap       = "flex-wrap"
	AlignItems     = "align-items"
	AlignContent   = "align-content"
	JustifyContent = "justify-content"

	Position = "position"
	Left     = "left"
	Right    = "right"
	Top      = "top"
	Bottom   = "bottom"

	TextDecorationLine      = "text-decoration-line"
	TextDecorationColor     = "text-decoration-color"
	TextDecorationStyle     = "text-decoration-style"
	TextDecorationThickness = "text-decoration-thickness"
	TextUnderlineOffset     = "text-underline-offset"

	VerticalAlign = "vertical-align"

	ListStyleType     = "list-style-type"
	ListStyleImage    = "list-style-image"
	ListStylePosition = "list-style-position"

	CounterReset     = "counter-reset"
	CounterIncrement = "counter-increment"

	BoxSizing = "box-sizing"
	Width     = "width"
	Height    = "height"
	MinWidth  = "min-width"
	MinHeight = "min-height"
	MaxWidth  = "max-width"
	MaxHeight = "max-height"

	MarginTop     = "margin-top"
	MarginRight   = "margin-right"
	MarginBottom  = "margin-bottom"
	MarginLeft    = "margin-left"
	PaddingTop    = "padding-top"
	PaddingRight  = "padding-right"
	PaddingBottom = "padding-bottom"
	PaddingLeft   = "padding-left"
)

// Inherited lists properties whose values descend to children when they are
// not set on the child itself. Text decoration is not inherited, it is merged
// along the traversal instead.
var Inherited = []string{
	Color,
	Direction,
	FontSize,
	LineHeight,
	ListStyleType,
	ListStyleImage,
	ListStylePosition,
}
