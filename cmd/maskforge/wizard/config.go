package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/types"
	"github.com/mrsinham/maskforge/internal/mask"
)

// Config represents the complete configuration for YAML serialization.
type Config struct {
	Mode      string         `yaml:"mode"`
	Reference string         `yaml:"reference"`
	Output    string         `yaml:"output"`
	Seed      uint64         `yaml:"seed"`
	Count     int            `yaml:"count"`
	Workers   int            `yaml:"workers"`
	Text      TextConfigYAML `yaml:"text,omitempty"`
}

// TextConfigYAML holds the text layout settings of the rl mode.
type TextConfigYAML struct {
	LineSpacing   int `yaml:"line_spacing,omitempty"`
	MaxLineLength int `yaml:"max_line_length,omitempty"`
}

// Validate checks values that can be checked without the file system.
func (c *Config) Validate() error {
	if c.Mode != "" {
		if _, err := mask.ParseMode(c.Mode); err != nil {
			return err
		}
	}
	if c.Count < 0 {
		return fmt.Errorf("count must be >= 0, got %d", c.Count)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Text.LineSpacing < 0 {
		return fmt.Errorf("text.line_spacing must be >= 0, got %d", c.Text.LineSpacing)
	}
	if c.Text.MaxLineLength < 0 {
		return fmt.Errorf("text.max_line_length must be >= 0, got %d", c.Text.MaxLineLength)
	}
	return nil
}

// LoadFromYAML reads a YAML config file into a WizardState.
func LoadFromYAML(path string) (*WizardState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return configToState(&cfg), nil
}

// SaveToYAML writes a WizardState to a YAML config file.
func SaveToYAML(state *WizardState, path string) error {
	data, err := yaml.Marshal(stateToConfig(state))
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func configToState(cfg *Config) *WizardState {
	mode := cfg.Mode
	if m, err := mask.ParseMode(cfg.Mode); err == nil {
		mode = string(m)
	}

	return &WizardState{
		Setup: types.SetupConfig{
			Mode:          mode,
			Reference:     cfg.Reference,
			Output:        cfg.Output,
			Seed:          cfg.Seed,
			Count:         cfg.Count,
			Workers:       cfg.Workers,
			LineSpacing:   cfg.Text.LineSpacing,
			MaxLineLength: cfg.Text.MaxLineLength,
		},
	}
}

func stateToConfig(state *WizardState) *Config {
	s := state.Setup
	return &Config{
		Mode:      s.Mode,
		Reference: s.Reference,
		Output:    s.Output,
		Seed:      s.Seed,
		Count:     s.Count,
		Workers:   s.Workers,
		Text: TextConfigYAML{
			LineSpacing:   s.LineSpacing,
			MaxLineLength: s.MaxLineLength,
		},
	}
}
