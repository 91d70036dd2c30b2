package mask

import (
	"testing"

	"github.com/mrsinham/maskforge/internal/image"
)

func TestGenerateRandomWalk_Scripted(t *testing.T) {
	buf, _ := image.NewBuffer(10, 10)
	// divisor 1+19 gives 100/20 = 5 steps, start (5,5), then right, right, down, left.
	walk := GenerateRandomWalk(buf, &scripted{values: []int{19, 5, 5, 3, 3, 0, 1}})

	if walk.Steps != 5 {
		t.Errorf("Expected 5 steps, got %d", walk.Steps)
	}
	if walk.StartX != 5 || walk.StartY != 5 {
		t.Errorf("Expected start (5,5), got (%d,%d)", walk.StartX, walk.StartY)
	}
	if walk.EndX != 6 || walk.EndY != 6 {
		t.Errorf("Expected end (6,6), got (%d,%d)", walk.EndX, walk.EndY)
	}

	want := [][2]int{{5, 5}, {6, 5}, {7, 5}, {7, 6}, {6, 6}}
	for _, p := range want {
		if !buf.IsSet(p[0], p[1]) {
			t.Errorf("Expected pixel (%d,%d) to be set", p[0], p[1])
		}
	}
	if buf.Count() != len(want) {
		t.Errorf("Expected %d pixels, got %d", len(want), buf.Count())
	}
}

func TestGenerateRandomWalk_ClampsAtBorder(t *testing.T) {
	buf, _ := image.NewBuffer(3, 3)
	// 9 steps from (0,0): left and up are clamped, then four moves right.
	walk := GenerateRandomWalk(buf, &scripted{values: []int{0, 0, 0, 1, 2, 1, 2, 3, 3, 3, 3}})

	if walk.Steps != 9 {
		t.Errorf("Expected 9 steps, got %d", walk.Steps)
	}
	if walk.EndX != 2 || walk.EndY != 0 {
		t.Errorf("Expected end (2,0), got (%d,%d)", walk.EndX, walk.EndY)
	}
	if buf.Count() != 3 {
		t.Errorf("Expected 3 distinct pixels, got %d", buf.Count())
	}
	for x := 0; x < 3; x++ {
		if !buf.IsSet(x, 0) {
			t.Errorf("Expected top row pixel %d to be set", x)
		}
	}
}

func TestGenerateRandomWalk_SinglePixel(t *testing.T) {
	buf, _ := image.NewBuffer(1, 1)
	walk := GenerateRandomWalk(buf, NewSource(3))

	if walk.Steps != 1 {
		t.Errorf("Expected 1 step on a 1x1 image, got %d", walk.Steps)
	}
	if !buf.IsSet(0, 0) {
		t.Error("Expected the only pixel to be set")
	}
}

func TestGenerateRandomWalk_Properties(t *testing.T) {
	sizes := []image.Dimensions{
		{Width: 1, Height: 40},
		{Width: 40, Height: 1},
		{Width: 7, Height: 5},
		{Width: 64, Height: 64},
		{Width: 200, Height: 120},
	}

	for _, size := range sizes {
		for seed := uint64(0); seed < 20; seed++ {
			buf, _ := image.NewBuffer(size.Width, size.Height)
			walk := GenerateRandomWalk(buf, NewSource(seed))

			total := size.Width * size.Height
			if walk.Steps < 1 || walk.Steps > total {
				t.Errorf("%s seed %d: steps %d out of [1,%d]", size, seed, walk.Steps, total)
			}
			if walk.Steps < total/maxStepDivisor {
				t.Errorf("%s seed %d: steps %d below W*H/%d", size, seed, walk.Steps, maxStepDivisor)
			}
			if buf.Count() > walk.Steps {
				t.Errorf("%s seed %d: %d distinct pixels for %d steps", size, seed, buf.Count(), walk.Steps)
			}
			if buf.Count() < 1 {
				t.Errorf("%s seed %d: walk drew nothing", size, seed)
			}
			if !buf.IsSet(walk.StartX, walk.StartY) {
				t.Errorf("%s seed %d: start pixel (%d,%d) not set", size, seed, walk.StartX, walk.StartY)
			}
			if !buf.IsSet(walk.EndX, walk.EndY) {
				t.Errorf("%s seed %d: end pixel (%d,%d) not set", size, seed, walk.EndX, walk.EndY)
			}
		}
	}
}
