package raycast

// Color is a 12-bit RGB444 pixel value, 4 bits per channel, packed 0x0RGB.
// A frame uses exactly four legal values: ceiling, floor, and the two wall
// shades.
type Color uint16

// RGBA8 expands the 4-4-4 channels to 8 bits each by nibble replication,
// so 0xF maps to 0xFF and 0x0 to 0x00.
func (c Color) RGBA8() (r, g, b uint8) {
	r = uint8(c>>8&0xF) * 17
	g = uint8(c>>4&0xF) * 17
	b = uint8(c&0xF) * 17
	return r, g, b
}

// Palette holds the four legal surface colors. Vertical-edge hits take the
// brighter wall shade, horizontal-edge hits the darker one, the classic
// side-shading cue.
type Palette struct {
	Ceiling        Color
	Floor          Color
	WallVertical   Color
	WallHorizontal Color
}

// spanColor picks the color band for one row of a column: ceiling above the
// wall slice, wall inside [DrawBegin, DrawEnd), floor below.
func spanColor(pal Palette, span ColumnSpan, row int) Color {
	switch {
	case row < span.DrawBegin:
		return pal.Ceiling
	case row < span.DrawEnd:
		if span.HorizontalSurface {
			return pal.WallHorizontal
		}
		return pal.WallVertical
	default:
		return pal.Floor
	}
}
