package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/components"
	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/types"
	"github.com/mrsinham/maskforge/internal/forge"
	"github.com/mrsinham/maskforge/internal/mask"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the setup screen
	SummaryActionBack SummaryAction = iota
	// SummaryActionGenerate starts mask generation
	SummaryActionGenerate
	// SummaryActionSaveConfig saves configuration to YAML file
	SummaryActionSaveConfig
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionBack       = "back"
	actionGenerate   = "generate"
	actionSaveConfig = "save_config"
	actionCancel     = "cancel"
)

var (
	summaryPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(1, 2)

	summaryTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Bold(true).
				MarginBottom(1)

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	summaryValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)
)

// SummaryScreen displays the configuration before generation
type SummaryScreen struct {
	form      *huh.Form
	config    *types.SetupConfig
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen
func NewSummaryScreen(config *types.SetupConfig) *SummaryScreen {
	s := &SummaryScreen{
		config: config,
		action: actionGenerate,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Generate masks", actionGenerate),
					huh.NewOption("Save configuration to YAML", actionSaveConfig),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SUMMARY - Review Configuration")
	panel := summaryPanelStyle.Width(60).Render(s.buildParameterSummary())
	cli := "Equivalent command:\n" + components.CommandStyle.Render(CLICommand(s.config))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		panel,
		"",
		cli,
		"",
		s.form.View(),
		"",
		"Enter: Select action | Esc: Back",
	)
}

type summaryRow struct {
	label string
	value string
}

// buildParameterSummary lists the settings and the expected output
func (s *SummaryScreen) buildParameterSummary() string {
	var sb strings.Builder
	sb.WriteString(summaryTitleStyle.Render("Configuration Summary"))
	sb.WriteString("\n\n")

	size := "unknown"
	if d, err := forge.ResolveDimensions(s.config.Reference); err == nil {
		size = fmt.Sprintf("%s (%s pixels)", d, humanize.Comma(int64(d.Pixels())))
	}

	seed := "from clock"
	if s.config.Seed != 0 {
		seed = fmt.Sprintf("%d", s.config.Seed)
	}

	count := max(s.config.Count, 1)
	outputs := s.config.Output
	if count > 1 {
		outputs = fmt.Sprintf("%s ... %s",
			forge.OutputPath(s.config.Output, 0, count),
			forge.OutputPath(s.config.Output, count-1, count))
	}

	rows := []summaryRow{
		{"Mode", fmt.Sprintf("%s (%s)", s.config.Mode, mask.Mode(s.config.Mode).Description())},
		{"Reference", s.config.Reference},
		{"Size", size},
		{"Seed", seed},
		{"Masks", humanize.Comma(int64(count))},
		{"Output", outputs},
	}
	if s.config.Mode == string(mask.RandomLines) {
		rows = append(rows,
			summaryRow{"Line spacing", fmt.Sprintf("%d px", s.config.LineSpacing)},
			summaryRow{"Max line", fmt.Sprintf("%d chars", s.config.MaxLineLength)},
		)
	}

	for _, r := range rows {
		sb.WriteString(summaryLabelStyle.Render(r.label + ": "))
		sb.WriteString(summaryValueStyle.Render(r.value))
		sb.WriteString("\n")
	}

	return sb.String()
}

// CLICommand returns the maskforge command line equivalent to config
func CLICommand(config *types.SetupConfig) string {
	args := []string{"maskforge"}
	if config.Seed != 0 {
		args = append(args, fmt.Sprintf("--seed %d", config.Seed))
	}
	if config.Count > 1 {
		args = append(args, fmt.Sprintf("--count %d", config.Count))
	}
	if config.Workers > 0 {
		args = append(args, fmt.Sprintf("--workers %d", config.Workers))
	}
	if config.Mode == string(mask.RandomLines) {
		defaults := mask.DefaultTextOptions()
		if config.LineSpacing != 0 && config.LineSpacing != defaults.LineSpacing {
			args = append(args, fmt.Sprintf("--line-spacing %d", config.LineSpacing))
		}
		if config.MaxLineLength != 0 && config.MaxLineLength != defaults.MaxLineLength {
			args = append(args, fmt.Sprintf("--max-line %d", config.MaxLineLength))
		}
	}
	args = append(args, config.Mode, quoteArg(config.Reference), quoteArg(config.Output))
	return strings.Join(args, " ")
}

func quoteArg(s string) string {
	if strings.ContainsAny(s, " \t'\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

// Done returns true if an action was selected
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionBack:
		return SummaryActionBack
	case actionGenerate:
		return SummaryActionGenerate
	case actionSaveConfig:
		return SummaryActionSaveConfig
	default:
		return SummaryActionCancel
	}
}
