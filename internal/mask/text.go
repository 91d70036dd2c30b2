package mask

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrsinham/maskforge/internal/font"
	"github.com/mrsinham/maskforge/internal/image"
)

// TextOptions controls the layout of the random text mask.
type TextOptions struct {
	// Top is the y coordinate of the first line. Negative values push the
	// first line partly above the image.
	Top int
	// Left is the x coordinate every line starts at.
	Left int
	// LineSpacing is the vertical distance between two lines.
	LineSpacing int
	// Overscan is how far past the right border a line must reach.
	Overscan int
	// MaxLineLength caps the number of characters of a line.
	MaxLineLength int
	// Corpus overrides the default paragraphs when not empty.
	Corpus []string
}

// DefaultTextOptions returns the default layout: 28 pixel lines starting at
// (-2, -4), reaching 5 pixels past the right border, at most 1023 characters.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		Top:           -4,
		Left:          -2,
		LineSpacing:   28,
		Overscan:      5,
		MaxLineLength: 1023,
	}
}

// WithDefaults returns o with every zero layout field replaced by its
// default. Top, Left and Overscan are only defaulted together, when all three
// are zero.
func (o TextOptions) WithDefaults() TextOptions {
	d := DefaultTextOptions()
	if o.LineSpacing == 0 {
		o.LineSpacing = d.LineSpacing
	}
	if o.MaxLineLength == 0 {
		o.MaxLineLength = d.MaxLineLength
	}
	if o.Top == 0 && o.Left == 0 && o.Overscan == 0 {
		o.Top, o.Left, o.Overscan = d.Top, d.Left, d.Overscan
	}
	return o
}

// Validate checks the options and the corpus they select.
func (o TextOptions) Validate() error {
	if o.LineSpacing <= 0 {
		return fmt.Errorf("line spacing must be > 0, got %d", o.LineSpacing)
	}
	if o.MaxLineLength <= 0 {
		return fmt.Errorf("max line length must be > 0, got %d", o.MaxLineLength)
	}
	for i, p := range o.corpus() {
		if p == "" {
			return fmt.Errorf("corpus paragraph %d is empty", i)
		}
	}
	if len(o.corpus()) == 0 {
		return errors.New("corpus is empty")
	}
	return nil
}

func (o TextOptions) corpus() []string {
	if len(o.Corpus) > 0 {
		return o.Corpus
	}
	return Corpus
}

// Line is one rendered line of the text mask.
type Line struct {
	Y     int
	Text  string
	Width int
}

// GenerateRandomText covers buf with lines of text cut from the corpus.
//
// For each line a paragraph and a starting character are drawn at random.
// Characters are then copied from the paragraph, wrapping around at its end,
// until the line is wide enough to reach Overscan pixels past the right
// border or holds MaxLineLength characters. Lines start and end wherever the
// cut falls, mid-word included.
func GenerateRandomText(buf *image.Buffer, rng Source, opts TextOptions) ([]Line, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("text options: %w", err)
	}

	corpus := opts.corpus()
	target := buf.Width + opts.Overscan

	var lines []Line
	var sb strings.Builder
	for y := opts.Top; y < buf.Height; y += opts.LineSpacing {
		text := corpus[rng.IntN(len(corpus))]
		i := rng.IntN(len(text))

		// The running advance minus the last glyph's spacing is TextWidth of
		// the line so far.
		sb.Reset()
		advance, width := 0, 0
		for {
			c := text[i%len(text)]
			sb.WriteByte(c)
			i++

			g := font.Lookup(c)
			advance += g.Advance()
			width = advance - g.Spacing

			if sb.Len() >= opts.MaxLineLength || width >= target {
				break
			}
		}

		line := Line{Y: y, Text: sb.String(), Width: width}
		buf.DrawText(opts.Left, y, line.Text)
		lines = append(lines, line)
	}

	return lines, nil
}
