package image

// PutPixel sets the pixel at (x, y) to On on all three planes. Pixels outside
// the buffer are ignored.
func (b *Buffer) PutPixel(x, y int) {
	if 0 <= x && x < b.Width && 0 <= y && y < b.Height {
		b.SetIndex(x + y*b.Width)
	}
}

// DrawGlyph draws a packed 1 bit per pixel glyph with its top-left corner at
// (x0, y0). bits holds glyphWidth*glyphHeight bits, most significant bit
// first, rows packed without padding. Set bits become On pixels; clear bits
// leave the buffer untouched. Pixels falling outside the buffer are dropped.
func (b *Buffer) DrawGlyph(bits []byte, glyphWidth, glyphHeight, x0, y0 int) {
	if glyphWidth <= 0 || glyphHeight <= 0 {
		return
	}

	x, y := 0, 0
	for _, packed := range bits {
		for mask := byte(0x80); mask != 0; mask >>= 1 {
			if packed&mask != 0 {
				b.PutPixel(x0+x, y0+y)
			}

			x++
			if x >= glyphWidth {
				x = 0
				y++
				if y >= glyphHeight {
					return
				}
			}
		}
	}
}
