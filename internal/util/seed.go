package util

import (
	"fmt"
	"hash/fnv"
	"time"
)

// DeriveSeed derives a deterministic per-item seed from a base seed, a label
// and an index: FNV-64a over "<base>_<label>_<index>".
func DeriveSeed(base uint64, label string, index int) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d_%s_%d", base, label, index) // hash.Write never returns an error
	return h.Sum64()
}

// ClockSeed returns a non-zero seed taken from the wall clock.
func ClockSeed() uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d", time.Now().UnixNano())
	if s := h.Sum64(); s != 0 {
		return s
	}
	return 1
}
