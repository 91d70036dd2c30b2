package image

import (
	"image"
	"image/color"
	"image/draw"
)

var _ draw.Image = (*Buffer)(nil)

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image. Plane values are clamped to 0-255.
func (b *Buffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.RGBA{}
	}

	n := b.plane()
	i := x + y*b.Width
	return color.RGBA{
		R: clamp(b.Pix[i]),
		G: clamp(b.Pix[i+n]),
		B: clamp(b.Pix[i+2*n]),
		A: 0xff,
	}
}

// Set implements draw.Image. The color is reduced to black or white at 50%
// luminance so the buffer stays a mask whatever is drawn into it.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}

	if color.Gray16Model.Convert(c).(color.Gray16).Y >= 0x8000 {
		b.SetIndex(x + y*b.Width)
		return
	}

	n := b.plane()
	i := x + y*b.Width
	b.Pix[i] = 0
	b.Pix[i+n] = 0
	b.Pix[i+2*n] = 0
}

func clamp(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
