package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"mode": {
		Title:       "MODE",
		Description: "Kind of random mask to draw.",
		Details: `bernoulli - every pixel white with probability 1/2
rw        - trace of a random walk, clamped to the borders
rl        - lines of paragraph text cut at random offsets`,
	},
	"reference": {
		Title:       "REFERENCE",
		Description: "Image whose size the mask copies.",
		Details:     "PNG, JPEG, GIF, BMP, TIFF, WebP or DICOM. A literal size such as 640x480 works too.",
	},
	"output": {
		Title:       "OUTPUT",
		Description: "File the mask is written to.",
		Details:     "The extension picks the format: .png, .jpg, .bmp, .tif or .dcm. Batches are numbered mask_0001.png, mask_0002.png, ...",
	},
	"seed": {
		Title:       "SEED",
		Description: "Seed of the random source.",
		Details:     "The same seed gives the same masks. 0 picks a seed from the clock and prints it.",
	},
	"count": {
		Title:       "COUNT",
		Description: "Number of masks to generate.",
		Details:     "Each mask gets its own seed derived from the base seed and its index.",
	},
	"workers": {
		Title:       "WORKERS",
		Description: "Number of masks rendered in parallel.",
		Details:     "0 uses one worker per CPU core.",
	},
	"line_spacing": {
		Title:       "LINE SPACING",
		Description: "Vertical distance between two text lines (rl only).",
		Details:     "Default: 28 pixels. Glyphs are up to 18 pixels high.",
	},
	"max_line_length": {
		Title:       "MAX LINE LENGTH",
		Description: "Maximum characters per text line (rl only).",
		Details:     "Default: 1023. Lines normally stop once they run past the right border.",
	},
}
