package image

import (
	"github.com/mrsinham/maskforge/internal/font"
)

// TextWidth returns the width in pixels of text drawn with DrawText. The
// spacing after the last glyph is not part of the width. Bytes outside the
// printable ASCII range count as '?'.
func TextWidth(text string) int {
	if text == "" {
		return 0
	}

	var width int
	var last font.Glyph
	for i := 0; i < len(text); i++ {
		last = font.Lookup(text[i])
		width += last.Width + last.Spacing
	}

	return width - last.Spacing
}

// DrawText draws text with the pen starting at (x0, y0). Each glyph is drawn
// at the pen position shifted down by its YShift, then the pen advances by
// the glyph's width and spacing. Text is treated as bytes; anything outside
// the printable ASCII range is drawn as '?'.
func (b *Buffer) DrawText(x0, y0 int, text string) {
	for i := 0; i < len(text); i++ {
		g := font.Lookup(text[i])
		b.DrawGlyph(font.Bits(g), g.Width, g.Height, x0, y0+g.YShift)
		x0 += g.Advance()
	}
}
