package resolve

//go:generate go tool go-enum --marshal --names

// Kind of element a property is written to.
// ENUM(block, inline, inline-block, list, list-item, table, cell)
type TargetKind int

// Border and outline drawing style.
// ENUM(none, solid, dashed, dotted, double, groove, ridge, inset, outset)
type BorderStyle int

// Is3D reports whether style is drawn with light and dark bevel colors.
func (s BorderStyle) Is3D() bool {
	switch s {
	case BorderStyleGroove, BorderStyleRidge, BorderStyleInset, BorderStyleOutset:
		return true
	}
	return false
}

// Horizontal background position anchor.
// ENUM(left, center, right)
type PositionX int

// Vertical background position anchor.
// ENUM(top, center, bottom)
type PositionY int

// Background size mode.
// ENUM(auto, cover, contain, explicit)
type SizeKind int

// Background repeat mode of a single axis.
// ENUM(repeat, no-repeat, round, space)
type RepeatMode int

// Background blend mode.
// ENUM(normal, multiply, screen, overlay, darken, lighten, color-dodge, color-burn, hard-light, soft-light, difference, exclusion, hue, saturation, color, luminosity)
type BlendMode int

// Box used for background clipping and positioning.
// ENUM(border-box, padding-box, content-box)
type BoxArea int

// Flex alignment keyword.
// ENUM(normal, start, end, center, flex-start, flex-end, self-start, self-end, left, right, baseline, stretch, space-between, space-around, space-evenly)
type Alignment int

// Flex container main axis direction.
// ENUM(row, row-reverse, column, column-reverse)
type FlexDirection int

// Flex container line wrapping.
// ENUM(nowrap, wrap, wrap-reverse)
type FlexWrap int

// Positioning scheme.
// ENUM(static, relative, absolute, fixed, sticky)
type PositionScheme int

// Text decoration line kind.
// ENUM(underline, overline, line-through)
type DecorationLine int

// Text decoration line style.
// ENUM(solid, double, dotted, dashed, wavy)
type DecorationStyle int

// Block level vertical alignment of cell content.
// ENUM(top, middle, bottom)
type VerticalAlignment int

// Vertical alignment of inline level boxes.
// ENUM(baseline, top, bottom, middle, text-top, text-bottom, sub, super, fraction, fixed)
type InlineVerticalAlignmentType int

// Kind of list marker.
// ENUM(none, symbol, numbering, image)
type MarkerKind int

// Numbering system of ordered list markers.
// ENUM(decimal, decimal-leading-zero, lower-alpha, upper-alpha, lower-roman, upper-roman, lower-greek)
type NumberingSystem int

// Placement of list markers.
// ENUM(outside, inside)
type MarkerPosition int

// Horizontal alignment of a block produced by auto margins.
// ENUM(none, left, center, right)
type HorizontalAlignment int
