package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/components"
)

// ProgressMsg is sent to update the progress screen during generation
type ProgressMsg struct {
	Current int // Masks written so far
	Total   int // Masks to generate
}

// CompletionMsg is sent when generation completes successfully
type CompletionMsg struct {
	TotalFiles int           // Number of masks written
	TotalSize  int64         // Total size in bytes
	Coverage   float64       // Mean fraction of white pixels
	Duration   time.Duration // Time taken
	FirstPath  string        // Path of the first mask
}

// ErrorMsg is sent when an error occurs during generation
type ErrorMsg struct {
	Error error
}

var (
	progressBarStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63"))

	progressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	progressPercentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Bold(true)

	progressFileStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	cancelHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// ProgressScreen displays generation progress
type ProgressScreen struct {
	current   int
	total     int
	startTime time.Time
	cancelled bool
	width     int
	height    int
}

// NewProgressScreen creates a new progress screen
func NewProgressScreen(total int) *ProgressScreen {
	return &ProgressScreen{
		total:     total,
		startTime: time.Now(),
	}
}

// Init implements tea.Model
func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ProgressScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case ProgressMsg:
		s.SetProgress(msg.Current, msg.Total)
	}

	return s, nil
}

// Percent returns the completed share in [0, 100].
func (s *ProgressScreen) Percent() float64 {
	if s.total <= 0 {
		return 0
	}
	return float64(s.current) / float64(s.total) * 100
}

// View implements tea.Model
func (s *ProgressScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	barWidth := 40
	if s.width > 60 {
		barWidth = min(s.width/2, 60)
	}

	var sb strings.Builder
	sb.WriteString(components.TitleStyle.Render("Generating masks..."))
	sb.WriteString("\n\n")
	sb.WriteString(renderProgressBar(s.Percent(), barWidth))
	sb.WriteString(" ")
	sb.WriteString(progressPercentStyle.Render(fmt.Sprintf("%d%%", int(s.Percent()))))
	sb.WriteString("\n\n")
	sb.WriteString(progressFileStyle.Render(fmt.Sprintf("Mask %d/%d", s.current, s.total)))
	sb.WriteString("\n")
	sb.WriteString(progressFileStyle.Render(fmt.Sprintf("Elapsed: %.1fs", time.Since(s.startTime).Seconds())))
	sb.WriteString("\n\n")
	sb.WriteString(cancelHintStyle.Render("Press Ctrl+C to cancel"))

	return sb.String()
}

// renderProgressBar creates a visual progress bar
func renderProgressBar(percent float64, width int) string {
	filled := min(int(percent/100*float64(width)), width)
	empty := width - filled

	bar := progressBarStyle.Render("[" + strings.Repeat("█", filled))
	bar += progressBarEmptyStyle.Render(strings.Repeat("░", empty) + "]")

	return bar
}

// Cancelled returns true if the user cancelled
func (s *ProgressScreen) Cancelled() bool {
	return s.cancelled
}

// SetProgress updates the progress (for external updates)
func (s *ProgressScreen) SetProgress(current, total int) {
	s.current = current
	s.total = total
}

// Completion screen styles
var (
	completionSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	completionLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	completionValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	completionHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Italic(true)
)

// CompletionScreen displays the completion summary
type CompletionScreen struct {
	msg    CompletionMsg
	done   bool
	width  int
	height int
}

// NewCompletionScreen creates a new completion screen
func NewCompletionScreen(msg CompletionMsg) *CompletionScreen {
	return &CompletionScreen{msg: msg}
}

// Init implements tea.Model
func (s *CompletionScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *CompletionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *CompletionScreen) View() string {
	var sb strings.Builder

	sb.WriteString(completionSuccessStyle.Render("✓ Generation complete!"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Summary:"))
	sb.WriteString("\n")

	stats := []summaryRow{
		{"Masks created", humanize.Comma(int64(s.msg.TotalFiles))},
		{"Total size", humanize.Bytes(uint64(s.msg.TotalSize))},
		{"White pixels", fmt.Sprintf("%.1f%%", s.msg.Coverage*100)},
		{"Duration", fmt.Sprintf("%.1fs", s.msg.Duration.Seconds())},
		{"First mask", s.msg.FirstPath},
	}
	for _, stat := range stats {
		sb.WriteString("  ")
		sb.WriteString(completionLabelStyle.Render(stat.label + ":"))
		sb.WriteString(" ")
		sb.WriteString(completionValueStyle.Render(stat.value))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(completionHintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *CompletionScreen) Done() bool {
	return s.done
}

// ErrorScreen displays an error that occurred during generation
type ErrorScreen struct {
	err    error
	done   bool
	width  int
	height int
}

var (
	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	errorHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{err: err}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var sb strings.Builder

	sb.WriteString(errorTitleStyle.Render("✗ Generation failed"))
	sb.WriteString("\n\n")
	sb.WriteString(components.TitleStyle.Render("Error:"))
	sb.WriteString("\n  ")
	sb.WriteString(errorMessageStyle.Render(s.err.Error()))
	sb.WriteString("\n\n")
	sb.WriteString(errorHintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *ErrorScreen) Done() bool {
	return s.done
}

// Error returns the error
func (s *ErrorScreen) Error() error {
	return s.err
}
