package font

import (
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestFace_MeasureString(t *testing.T) {
	face := NewFace()

	tests := []string{"A", "Hello, World", "coalescent process", "\x01\x02"}
	for _, s := range tests {
		want := 0
		for i := 0; i < len(s); i++ {
			want += Lookup(s[i]).Advance()
		}
		got := font.MeasureString(face, s)
		if got != fixed.I(want) {
			t.Errorf("MeasureString(%q) = %v, want %v", s, got, fixed.I(want))
		}
	}
}

func TestFace_GlyphPlacement(t *testing.T) {
	face := NewFace()
	dot := fixed.P(10, 20)

	dr, mask, maskp, advance, ok := face.Glyph(dot, 'g')
	if !ok {
		t.Fatal("Glyph('g') should be ok")
	}

	g := LookupRune('g')
	want := image.Rect(10, 20-Baseline+g.YShift, 10+g.Width, 20-Baseline+g.YShift+g.Height)
	if dr != want {
		t.Errorf("dr = %v, want %v", dr, want)
	}
	if advance != fixed.I(g.Advance()) {
		t.Errorf("advance = %v, want %v", advance, fixed.I(g.Advance()))
	}

	// The mask must reproduce the packed bits.
	bits := Bits(g)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			n := y*g.Width + x
			on := bits[n/8]&(0x80>>(n%8)) != 0
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			if on != (a == 0xffff) {
				t.Errorf("mask pixel (%d,%d) alpha %d, bit %v", x, y, a, on)
			}
		}
	}
}

func TestFace_UnsupportedRuneUsesFallback(t *testing.T) {
	face := NewFace()

	_, _, maskp1, adv1, ok1 := face.Glyph(fixed.P(0, 0), 'é')
	_, _, maskp2, adv2, ok2 := face.Glyph(fixed.P(0, 0), '?')
	if !ok1 || !ok2 {
		t.Fatal("Glyph should always be ok")
	}
	if maskp1 != maskp2 || adv1 != adv2 {
		t.Errorf("'é' should render as '?': maskp %v/%v advance %v/%v", maskp1, maskp2, adv1, adv2)
	}
}

func TestFace_Metrics(t *testing.T) {
	m := NewFace().Metrics()
	if m.Ascent != fixed.I(17) || m.Descent != fixed.I(5) {
		t.Errorf("Ascent/Descent = %v/%v, want 17/5", m.Ascent, m.Descent)
	}

	// Every glyph must fit between ascent and descent.
	for _, c := range All() {
		g := LookupRune(c)
		top := g.YShift - Baseline
		bottom := top + g.Height
		if top < -Ascent || bottom > Descent {
			t.Errorf("Glyph %q spans %d..%d, outside -%d..%d", c, top, bottom, Ascent, Descent)
		}
	}
}

func TestFace_Kern(t *testing.T) {
	if k := NewFace().Kern('A', 'V'); k != 0 {
		t.Errorf("Kern = %v, want 0", k)
	}
}
