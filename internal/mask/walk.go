package mask

import (
	"github.com/mrsinham/maskforge/internal/image"
)

// maxStepDivisor bounds the random divisor of the walk length: a walk takes
// between W*H/50 and W*H steps.
const maxStepDivisor = 50

// Walk describes a generated random walk.
type Walk struct {
	Steps  int // marks made, the start included
	StartX int
	StartY int
	EndX   int
	EndY   int
}

// GenerateRandomWalk traces a random walk on buf.
//
// The walk length is W*H / (1 + IntN(50)), at least 1. The walker starts on a
// uniformly random pixel, which is marked as the first step. Every further
// step moves one pixel up, left, down or right; a move that would leave the
// image is clamped to the border, so the walker can stay on an edge pixel for
// several steps. Marking is idempotent, so Steps bounds the number of
// distinct white pixels.
//
// Because the start counts as a step, a walk of length n makes n-1 moves,
// not n, and draws one direction fewer from rng than a walk that leaves its
// start unmarked.
func GenerateRandomWalk(buf *image.Buffer, rng Source) Walk {
	w, h := buf.Width, buf.Height

	steps := w * h / (1 + rng.IntN(maxStepDivisor))
	if steps < 1 {
		steps = 1
	}

	x := rng.IntN(w)
	y := rng.IntN(h)
	walk := Walk{Steps: steps, StartX: x, StartY: y}
	buf.PutPixel(x, y)

	for i := 1; i < steps; i++ {
		switch rng.IntN(4) {
		case 0:
			y++
		case 1:
			x--
		case 2:
			y--
		case 3:
			x++
		}
		x = min(max(x, 0), w-1)
		y = min(max(y, 0), h-1)
		buf.PutPixel(x, y)
	}

	walk.EndX, walk.EndY = x, y
	return walk
}
