// Package mask generates random black and white masks.
package mask

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/mrsinham/maskforge/internal/image"
)

// Mode selects a mask generator.
type Mode string

const (
	Bernoulli   Mode = "bernoulli" // independent coin flip per pixel
	RandomWalk  Mode = "rw"        // trace of a clamped random walk
	RandomLines Mode = "rl"        // tiled lines of paragraph text
)

// ErrUnknownMode is returned for a mode name that is not one of AllModes.
var ErrUnknownMode = errors.New("unknown mask mode")

// AllModes returns all supported modes.
func AllModes() []Mode {
	return []Mode{Bernoulli, RandomWalk, RandomLines}
}

// IsValid checks if a mode string is valid.
func IsValid(m string) bool {
	for _, valid := range AllModes() {
		if string(valid) == m {
			return true
		}
	}
	return false
}

// ParseMode parses a mode name, ignoring case and surrounding spaces.
func ParseMode(s string) (Mode, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	if !IsValid(m) {
		return "", fmt.Errorf("%w %q, valid options: %v", ErrUnknownMode, s, AllModes())
	}
	return Mode(m), nil
}

// Description returns a short human readable description of the mode.
func (m Mode) Description() string {
	switch m {
	case Bernoulli:
		return "Bernoulli noise, each pixel white with probability 1/2"
	case RandomWalk:
		return "Random walk trace"
	case RandomLines:
		return "Random lines of paragraph text"
	default:
		return "Unknown"
	}
}

// Source is the random source generators draw from. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a PCG source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate draws a mask of the given mode into buf. opts is only used by
// RandomLines.
func Generate(mode Mode, buf *image.Buffer, rng Source, opts TextOptions) error {
	switch mode {
	case Bernoulli:
		GenerateBernoulli(buf, rng)
	case RandomWalk:
		GenerateRandomWalk(buf, rng)
	case RandomLines:
		if _, err := GenerateRandomText(buf, rng, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownMode, mode)
	}
	return nil
}
