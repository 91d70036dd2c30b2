package util

import (
	"fmt"
	"regexp"
	"strconv"
)

var dimensionsPattern = regexp.MustCompile(`^(\d+)[xX](\d+)$`)

// ParseDimensions parses a "WIDTHxHEIGHT" string (e.g. "640x480").
//
// Both sides must be positive integers. Returns an error if the format is
// invalid.
func ParseDimensions(s string) (width, height int, err error) {
	matches := dimensionsPattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid dimensions: '%s'. Use format like '640x480'", s)
	}

	width, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	height, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("dimensions must be > 0, got %dx%d", width, height)
	}

	return width, height, nil
}

// IsDimensions reports whether s looks like a "WIDTHxHEIGHT" literal.
func IsDimensions(s string) bool {
	return dimensionsPattern.MatchString(s)
}
