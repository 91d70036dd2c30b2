package font

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face exposes the catalog as a font.Face so it can be used with font.Drawer
// and the measuring helpers of golang.org/x/image/font.
//
// Glyph masks come from a single alpha atlas, one glyph under the other, in
// catalog order. Characters outside the catalog are drawn as Fallback.
type Face struct {
	atlas *image.Alpha
	tops  [NumGlyphs]int
}

var _ font.Face = (*Face)(nil)

// NewFace unpacks the bitmap blob into an atlas.
func NewFace() *Face {
	f := &Face{}

	maxWidth, total := 0, 0
	for i, g := range glyphs {
		f.tops[i] = total
		total += g.Height
		if g.Width > maxWidth {
			maxWidth = g.Width
		}
	}

	f.atlas = image.NewAlpha(image.Rect(0, 0, maxWidth, total))
	for i, g := range glyphs {
		bits := Bits(g)
		for n := 0; n < g.Width*g.Height; n++ {
			if bits[n/8]&(0x80>>(n%8)) != 0 {
				f.atlas.Pix[f.atlas.PixOffset(n%g.Width, f.tops[i]+n/g.Width)] = 0xff
			}
		}
	}

	return f
}

// Close implements font.Face.
func (f *Face) Close() error { return nil }

// Glyph implements font.Face. The dot is on the baseline, so the glyph's
// top-left corner is Baseline pixels above it, shifted down by YShift.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	i := Index(r)
	g := glyphs[i]

	x := dot.X.Floor()
	y := dot.Y.Floor() - Baseline + g.YShift
	dr = image.Rect(x, y, x+g.Width, y+g.Height)

	return dr, f.atlas, image.Pt(0, f.tops[i]), fixed.I(g.Advance()), true
}

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g := LookupRune(r)
	top := g.YShift - Baseline
	bounds = fixed.R(0, top, g.Width, top+g.Height)
	return bounds, fixed.I(g.Advance()), true
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	return fixed.I(LookupRune(r).Advance()), true
}

// Kern implements font.Face. The font has no kerning pairs.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(Ascent + Descent),
		Ascent:     fixed.I(Ascent),
		Descent:    fixed.I(Descent),
		XHeight:    fixed.I(LookupRune('x').Height),
		CapHeight:  fixed.I(LookupRune('H').Height),
		CaretSlope: image.Pt(0, 1),
	}
}
