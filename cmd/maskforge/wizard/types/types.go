// Package types holds the configuration shared by the wizard and its screens.
package types

// SetupConfig holds everything needed to generate masks.
type SetupConfig struct {
	Mode      string
	Reference string // image path or WIDTHxHEIGHT
	Output    string
	Seed      uint64
	Count     int
	Workers   int

	// Text layout for the rl mode (0 = default)
	LineSpacing   int
	MaxLineLength int
}
