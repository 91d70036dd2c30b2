package screens

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/components"
	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/types"
	"github.com/mrsinham/maskforge/internal/imageio"
	"github.com/mrsinham/maskforge/internal/mask"
	"github.com/mrsinham/maskforge/internal/util"
)

// SetupScreen is the first wizard screen: what to generate and where
type SetupScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.SetupConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding (huh binds to strings)
	seedStr          string
	countStr         string
	workersStr       string
	lineSpacingStr   string
	maxLineLengthStr string
}

// NewSetupScreen creates a new setup screen
func NewSetupScreen(config *types.SetupConfig) *SetupScreen {
	// Set defaults if not provided
	if config.Mode == "" {
		config.Mode = string(mask.Bernoulli)
	}
	if config.Output == "" {
		config.Output = "mask.png"
	}
	if config.Count == 0 {
		config.Count = 1
	}
	defaults := mask.DefaultTextOptions()
	if config.LineSpacing == 0 {
		config.LineSpacing = defaults.LineSpacing
	}
	if config.MaxLineLength == 0 {
		config.MaxLineLength = defaults.MaxLineLength
	}

	s := &SetupScreen{
		helpPanel:        components.NewHelpPanel(),
		config:           config,
		seedStr:          strconv.FormatUint(config.Seed, 10),
		countStr:         strconv.Itoa(config.Count),
		workersStr:       strconv.Itoa(config.Workers),
		lineSpacingStr:   strconv.Itoa(config.LineSpacing),
		maxLineLengthStr: strconv.Itoa(config.MaxLineLength),
	}

	modeOptions := make([]huh.Option[string], 0, len(mask.AllModes()))
	for _, m := range mask.AllModes() {
		modeOptions = append(modeOptions, huh.NewOption(fmt.Sprintf("%s - %s", m, m.Description()), string(m)))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("mode").
				Title("Mode").
				Options(modeOptions...).
				Value(&config.Mode),

			huh.NewInput().
				Key("reference").
				Title("Reference Image").
				Placeholder("photo.png or 640x480").
				Value(&config.Reference).
				Validate(ValidateReference),

			huh.NewInput().
				Key("output").
				Title("Output File").
				Value(&config.Output).
				Validate(ValidateOutput),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("seed").
				Title("Seed").
				Value(&s.seedStr).
				Validate(ValidateSeed),

			huh.NewInput().
				Key("count").
				Title("Number of Masks").
				Value(&s.countStr).
				Validate(validatePositiveInt),

			huh.NewInput().
				Key("workers").
				Title("Workers").
				Value(&s.workersStr).
				Validate(validateNonNegativeInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("line_spacing").
				Title("Line Spacing").
				Value(&s.lineSpacingStr).
				Validate(validatePositiveInt),

			huh.NewInput().
				Key("max_line_length").
				Title("Max Line Length").
				Value(&s.maxLineLengthStr).
				Validate(validatePositiveInt),
		).WithHideFunc(func() bool {
			return config.Mode != string(mask.RandomLines)
		}),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// ValidateReference accepts a WIDTHxHEIGHT literal or an existing file.
func ValidateReference(s string) error {
	if s == "" {
		return errors.New("reference is required")
	}
	if util.IsDimensions(s) {
		_, _, err := util.ParseDimensions(s)
		return err
	}
	if _, err := os.Stat(s); err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	return nil
}

// ValidateOutput accepts a path with a supported image extension.
func ValidateOutput(s string) error {
	if s == "" {
		return errors.New("output file is required")
	}
	_, err := imageio.FormatFromPath(s)
	return err
}

// ValidateSeed accepts any unsigned 64-bit integer.
func ValidateSeed(s string) error {
	if _, err := strconv.ParseUint(s, 10, 64); err != nil {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 {
		return fmt.Errorf("must be 0 or more")
	}
	return nil
}

// Init implements tea.Model
func (s *SetupScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SetupScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/2, msg.Height/2)
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	// Update help panel based on focused field
	if focused := s.form.GetFocusedField(); focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncConfigFromForm()
	}

	return s, cmd
}

// syncConfigFromForm parses form values back to config
func (s *SetupScreen) syncConfigFromForm() {
	if n, err := strconv.ParseUint(s.seedStr, 10, 64); err == nil {
		s.config.Seed = n
	}
	if n, err := strconv.Atoi(s.countStr); err == nil {
		s.config.Count = n
	}
	if n, err := strconv.Atoi(s.workersStr); err == nil {
		s.config.Workers = n
	}
	if n, err := strconv.Atoi(s.lineSpacingStr); err == nil {
		s.config.LineSpacing = n
	}
	if n, err := strconv.Atoi(s.maxLineLengthStr); err == nil {
		s.config.MaxLineLength = n
	}
}

// View implements tea.Model
func (s *SetupScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("MASKFORGE WIZARD - Setup")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)
}

// Done returns true if the form was completed
func (s *SetupScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SetupScreen) Cancelled() bool {
	return s.cancelled
}

// Config returns the configured settings
func (s *SetupScreen) Config() *types.SetupConfig {
	return s.config
}
