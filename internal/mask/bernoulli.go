package mask

import (
	"github.com/mrsinham/maskforge/internal/image"
)

// GenerateBernoulli sets each pixel of buf independently with probability 1/2.
// Pixels are visited in row-major order, one draw per pixel. Pixels that lose
// the draw keep their current value.
func GenerateBernoulli(buf *image.Buffer, rng Source) {
	n := buf.Width * buf.Height
	for i := 0; i < n; i++ {
		if rng.IntN(2) == 1 {
			buf.SetIndex(i)
		}
	}
}
