// Package font holds the fixed 18 point sans serif bitmap font used to draw
// text masks.
//
// The font covers the printable ASCII range (32 to 126). Glyph bitmaps are
// stored in a single packed blob, one bit per pixel, most significant bit
// first, with glyph rows packed back to back without padding.
package font

const (
	// FirstChar is the first character of the catalog (space).
	FirstChar = 32
	// LastChar is the last character of the catalog (tilde).
	LastChar = 126
	// NumGlyphs is the number of glyphs in the catalog.
	NumGlyphs = LastChar - FirstChar + 1

	// Fallback is drawn in place of any character outside the catalog.
	Fallback = '?'

	// Size is the nominal point size of the font.
	Size = 18
	// Baseline is the distance from the pen's y coordinate down to the
	// baseline. Capitals without YShift sit exactly on it.
	Baseline = 13
	// Ascent is the highest extent above the baseline, in pixels.
	Ascent = 17
	// Descent is the lowest extent below the baseline, in pixels.
	Descent = 5
)

// Glyph is the metric record of one character.
type Glyph struct {
	// Offset is the byte offset of the glyph bit stream in the bitmap blob.
	Offset int
	// Width and Height are the glyph dimensions in pixels.
	Width  int
	Height int
	// YShift is added to the pen's y coordinate before drawing.
	YShift int
	// Spacing is the gap left after the glyph when advancing the pen.
	Spacing int
}

// Advance is the horizontal distance the pen moves after drawing g.
func (g Glyph) Advance() int {
	return g.Width + g.Spacing
}

// Supported reports whether c has its own glyph in the catalog.
func Supported(c rune) bool {
	return FirstChar <= c && c <= LastChar
}

// Index returns the catalog index used for c. Unsupported characters map to
// the index of Fallback.
func Index(c rune) int {
	if !Supported(c) {
		c = Fallback
	}
	return int(c - FirstChar)
}

// Lookup returns the glyph for the byte c.
func Lookup(c byte) Glyph {
	return glyphs[Index(rune(c))]
}

// LookupRune returns the glyph for r.
func LookupRune(r rune) Glyph {
	return glyphs[Index(r)]
}

// Bits returns the packed bit stream of g. The slice extends to the end of
// the blob; only the first Width*Height bits belong to g.
func Bits(g Glyph) []byte {
	return bitmap[g.Offset:]
}

// All returns the characters of the catalog in order.
func All() string {
	b := make([]byte, 0, NumGlyphs)
	for c := FirstChar; c <= LastChar; c++ {
		b = append(b, byte(c))
	}
	return string(b)
}
