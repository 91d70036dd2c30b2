package wizard

import (
	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/types"
	"github.com/mrsinham/maskforge/internal/forge"
	"github.com/mrsinham/maskforge/internal/mask"
)

// ToGeneratorOptions converts WizardState to GeneratorOptions for generation.
// The options are filled in even when the returned error reports an invalid
// mode or path, so callers can complete them from other sources.
func ToGeneratorOptions(s *WizardState) (forge.GeneratorOptions, error) {
	opts := forge.GeneratorOptions{
		Reference: s.Setup.Reference,
		Output:    s.Setup.Output,
		Count:     s.Setup.Count,
		Seed:      s.Setup.Seed,
		Workers:   s.Setup.Workers,
		Text: mask.TextOptions{
			LineSpacing:   s.Setup.LineSpacing,
			MaxLineLength: s.Setup.MaxLineLength,
		}.WithDefaults(),
	}

	mode, err := mask.ParseMode(s.Setup.Mode)
	if err != nil {
		return opts, err
	}
	opts.Mode = mode

	return opts, opts.Validate()
}

// FromGeneratorOptions creates a WizardState from GeneratorOptions.
// Used for --save-config to export CLI options as YAML.
func FromGeneratorOptions(opts forge.GeneratorOptions) *WizardState {
	count := opts.Count
	if count == 0 {
		count = 1
	}

	state := &WizardState{
		Setup: types.SetupConfig{
			Mode:      string(opts.Mode),
			Reference: opts.Reference,
			Output:    opts.Output,
			Seed:      opts.Seed,
			Count:     count,
			Workers:   opts.Workers,
		},
	}
	if opts.Mode == mask.RandomLines {
		text := opts.Text.WithDefaults()
		state.Setup.LineSpacing = text.LineSpacing
		state.Setup.MaxLineLength = text.MaxLineLength
	}

	return state
}
