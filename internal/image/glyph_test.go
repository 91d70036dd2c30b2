package image

import (
	"math/rand/v2"
	"testing"

	"github.com/mrsinham/maskforge/internal/font"
)

func TestPutPixel_Bounds(t *testing.T) {
	b, _ := NewBuffer(5, 4)

	b.PutPixel(-1, 0)
	b.PutPixel(0, -1)
	b.PutPixel(5, 0)
	b.PutPixel(0, 4)
	if b.Count() != 0 {
		t.Errorf("Out of bounds PutPixel wrote %d pixels", b.Count())
	}

	b.PutPixel(4, 3)
	if !b.IsSet(4, 3) || b.Count() != 1 {
		t.Error("PutPixel(4, 3) should set exactly the bottom-right pixel")
	}

	b.PutPixel(4, 3)
	if b.Count() != 1 {
		t.Error("PutPixel should be idempotent")
	}
}

func TestDrawGlyph_Pattern(t *testing.T) {
	b, _ := NewBuffer(8, 8)

	// 3x3 cross: 010 111 010 packed MSB first without row padding.
	bits := []byte{0b01011101, 0b00000000}
	b.DrawGlyph(bits, 3, 3, 2, 2)

	want := map[[2]int]bool{{3, 2}: true, {2, 3}: true, {3, 3}: true, {4, 3}: true, {3, 4}: true}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if b.IsSet(x, y) != want[[2]int{x, y}] {
				t.Errorf("Pixel (%d,%d) set = %v, want %v", x, y, b.IsSet(x, y), want[[2]int{x, y}])
			}
		}
	}
}

func TestDrawGlyph_ZeroWidth(t *testing.T) {
	b, _ := NewBuffer(8, 8)
	b.DrawGlyph([]byte{0xff, 0xff}, 0, 5, 0, 0)
	b.DrawGlyph([]byte{0xff, 0xff}, 5, 0, 0, 0)
	if b.Count() != 0 {
		t.Errorf("Zero sized glyph drew %d pixels", b.Count())
	}
}

func TestDrawGlyph_StopsAfterLastRow(t *testing.T) {
	b, _ := NewBuffer(8, 8)
	// Only the first 2x2 bits belong to the glyph; the rest must be ignored.
	b.DrawGlyph([]byte{0xff, 0xff}, 2, 2, 0, 0)
	if b.Count() != 4 {
		t.Errorf("Expected 4 pixels, got %d", b.Count())
	}
}

// TestDrawGlyph_Clipping draws every catalog glyph at random offsets, many of
// them partly or fully outside a small buffer, and compares the result with
// the same glyph drawn well inside a larger buffer. Clipped pixels must be
// dropped, never wrapped into another row or plane.
func TestDrawGlyph_Clipping(t *testing.T) {
	const w, h, margin = 12, 9, 32
	rng := rand.New(rand.NewPCG(42, 42))

	for iter := 0; iter < 2000; iter++ {
		g := font.Lookup(byte(font.FirstChar + rng.IntN(font.NumGlyphs)))
		x0 := rng.IntN(w+2*20) - 20
		y0 := rng.IntN(h+2*20) - 20

		small, _ := NewBuffer(w, h)
		small.DrawGlyph(font.Bits(g), g.Width, g.Height, x0, y0)

		large, _ := NewBuffer(w+2*margin, h+2*margin)
		large.DrawGlyph(font.Bits(g), g.Width, g.Height, x0+margin, y0+margin)

		inside := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				want := large.IsSet(x+margin, y+margin)
				if want {
					inside++
				}
				if small.IsSet(x, y) != want {
					t.Fatalf("Glyph %+v at (%d,%d): pixel (%d,%d) = %v, want %v", g, x0, y0, x, y, small.IsSet(x, y), want)
				}
			}
		}
		if small.Count() != inside {
			t.Fatalf("Glyph %+v at (%d,%d): %d pixels set, want %d", g, x0, y0, small.Count(), inside)
		}

		n := w * h
		for i := 0; i < n; i++ {
			if small.Pix[i] != small.Pix[i+n] || small.Pix[i] != small.Pix[i+2*n] {
				t.Fatalf("Planes differ at index %d", i)
			}
		}
	}
}
