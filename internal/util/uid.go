package util

import (
	"fmt"
	"hash/fnv"
)

// uidRoot is the UID root used for generated DICOM identifiers.
const uidRoot = "1.2.826.0.1.3680043.8.498"

// GenerateDeterministicUID returns a DICOM UID derived from seed. The same
// seed always yields the same UID. UIDs are at most 64 characters and their
// components carry no leading zeros.
func GenerateDeterministicUID(seed string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	a := h.Sum64()

	_, _ = h.Write([]byte("_suffix"))
	b := h.Sum64() % 1_000_000_000

	// uint64 prints without leading zeros; 26 + 1 + 20 + 1 + 9 = 57 chars max.
	return fmt.Sprintf("%s.%d.%d", uidRoot, a, b+1)
}
