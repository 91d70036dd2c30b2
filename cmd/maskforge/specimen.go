package main

import (
	stdimage "image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	mfont "github.com/mrsinham/maskforge/internal/font"
	"github.com/mrsinham/maskforge/internal/image"
)

const (
	specimenPerRow = 19
	specimenMargin = 4
	specimenGap    = 4
)

// renderSpecimen draws every glyph of the mask font, specimenPerRow per
// line, then scales the sheet up by scale with nearest neighbour sampling so
// single pixels stay visible.
func renderSpecimen(scale int) (*image.Buffer, error) {
	face := mfont.NewFace()
	chars := mfont.All()

	var rows []string
	for i := 0; i < len(chars); i += specimenPerRow {
		rows = append(rows, chars[i:min(i+specimenPerRow, len(chars))])
	}

	// Leave a space between glyphs so neighbours never touch.
	width := 0
	for i, row := range rows {
		rows[i] = spaced(row)
		width = max(width, font.MeasureString(face, rows[i]).Ceil())
	}
	lineHeight := mfont.Ascent + mfont.Descent + specimenGap

	sheet, err := image.NewBuffer(width+2*specimenMargin, len(rows)*lineHeight+2*specimenMargin)
	if err != nil {
		return nil, err
	}

	d := font.Drawer{
		Dst:  sheet,
		Src:  stdimage.White,
		Face: face,
	}
	for i, row := range rows {
		d.Dot = fixed.P(specimenMargin, specimenMargin+mfont.Ascent+i*lineHeight)
		d.DrawString(row)
	}

	if scale <= 1 {
		return sheet, nil
	}

	scaled, err := image.NewBuffer(sheet.Width*scale, sheet.Height*scale)
	if err != nil {
		return nil, err
	}
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), sheet, sheet.Bounds(), draw.Src, nil)

	return scaled, nil
}

func spaced(s string) string {
	out := make([]byte, 0, 2*len(s))
	for i := 0; i < len(s); i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i])
	}
	return string(out)
}
