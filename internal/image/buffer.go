// Package image holds the planar mask buffer and the glyph rasterizer that
// draws text into it.
package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// On is the value of a set pixel. Unset pixels are 0.
const On = 255

// ErrInvalidDimensions is returned for non-positive or overflowing sizes.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Dimensions is the pixel size of a mask.
type Dimensions struct {
	Width  int
	Height int
}

// Pixels returns Width*Height.
func (d Dimensions) Pixels() int {
	return d.Width * d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Validate checks that d describes a non-empty image whose three planes can
// be addressed with an int.
func (d Dimensions) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, d.Width, d.Height)
	}

	maxSize := int(^uint(0) >> 1)
	if d.Width > maxSize/d.Height || d.Width*d.Height > maxSize/3 {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, d.Width, d.Height)
	}

	return nil
}

// Buffer is an RGB image stored as three contiguous float planes: all red
// values, then all green, then all blue. Masks only ever hold 0 or On, and
// the three planes are always written together.
type Buffer struct {
	Width  int
	Height int
	Pix    []float32
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	d := Dimensions{Width: width, Height: height}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]float32, 3*width*height),
	}, nil
}

// Dimensions returns the buffer size.
func (b *Buffer) Dimensions() Dimensions {
	return Dimensions{Width: b.Width, Height: b.Height}
}

// plane returns the size of one channel plane.
func (b *Buffer) plane() int {
	return b.Width * b.Height
}

// SetIndex sets the pixel at row-major index i on all three planes. i must
// be in [0, Width*Height).
func (b *Buffer) SetIndex(i int) {
	n := b.plane()
	b.Pix[i] = On
	b.Pix[i+n] = On
	b.Pix[i+2*n] = On
}

// IsSet reports whether the pixel at (x, y) is set. Out of bounds pixels are
// never set.
func (b *Buffer) IsSet(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.Pix[x+y*b.Width] != 0
}

// Count returns the number of set pixels.
func (b *Buffer) Count() int {
	n := 0
	for _, v := range b.Pix[:b.plane()] {
		if v != 0 {
			n++
		}
	}
	return n
}

// Coverage returns the fraction of set pixels.
func (b *Buffer) Coverage() float64 {
	return float64(b.Count()) / float64(b.plane())
}

// FromImage copies img into a new planar buffer. Channels are scaled to the
// 0-255 range and stored as they are. Masks are always generated into a fresh
// NewBuffer; FromImage only serves to load written masks back.
func FromImage(img image.Image) (*Buffer, error) {
	r := img.Bounds()
	b, err := NewBuffer(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}

	n := b.plane()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := color.RGBAModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.RGBA)
			i := x + y*b.Width
			b.Pix[i] = float32(c.R)
			b.Pix[i+n] = float32(c.G)
			b.Pix[i+2*n] = float32(c.B)
		}
	}

	return b, nil
}
