package wizard

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/components"
	"github.com/mrsinham/maskforge/cmd/maskforge/wizard/screens"
	"github.com/mrsinham/maskforge/internal/forge"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseSummary
	PhaseSaveConfig
	PhaseProgress
	PhaseComplete
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *WizardState

	// Current phase
	phase Phase

	// Screen instances
	setupScreen      *screens.SetupScreen
	summaryScreen    *screens.SummaryScreen
	progressScreen   *screens.ProgressScreen
	completionScreen *screens.CompletionScreen
	errorScreen      *screens.ErrorScreen

	// Save config form
	saveConfigForm *huh.Form
	configPath     string
	savedPath      string

	// Generation feedback, fed by the generator's progress callback
	events chan tea.Msg

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a new wizard with default or loaded state.
func NewWizard(state *WizardState) *Wizard {
	if state == nil {
		state = &WizardState{}
	}

	w := &Wizard{
		state: state,
		phase: PhaseSetup,
	}
	w.setupScreen = screens.NewSetupScreen(&w.state.Setup)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.setupScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseSetup:
		return w.updateSetup(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseProgress:
		return w.updateProgress(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseSetup:
		return w.setupScreen.View()
	case PhaseSummary:
		view := w.summaryScreen.View()
		if w.savedPath != "" {
			view += "\n\n" + components.SubtitleStyle.Render("Configuration saved to "+w.savedPath)
		}
		return view
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	case PhaseProgress:
		return w.progressScreen.View()
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// Phase returns the current phase.
func (w *Wizard) Phase() Phase {
	return w.phase
}

// updateSetup handles updates in the setup phase.
func (w *Wizard) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.setupScreen.Update(msg)
	if ss, ok := model.(*screens.SetupScreen); ok {
		w.setupScreen = ss
	}

	if w.setupScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.setupScreen.Done() {
		return w.transitionToSummary()
	}

	return w, cmd
}

// transitionToSummary shows the summary screen.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(&w.state.Setup)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			w.phase = PhaseSetup
			w.setupScreen = screens.NewSetupScreen(&w.state.Setup)
			return w, w.setupScreen.Init()

		case screens.SummaryActionGenerate:
			return w.startGeneration()

		case screens.SummaryActionSaveConfig:
			return w.transitionToSaveConfig()

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// transitionToSaveConfig shows the save config dialog.
func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig
	if w.configPath == "" {
		w.configPath = "maskforge.yaml"
	}

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save configuration to").
				Description("Enter the path for the YAML config file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

// updateSaveConfig handles updates in the save config phase.
func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		if err := SaveToYAML(w.state, w.configPath); err != nil {
			w.err = err
			w.phase = PhaseError
			w.errorScreen = screens.NewErrorScreen(err)
			return w, nil
		}

		w.savedPath = w.configPath
		return w.transitionToSummary()
	}

	return w, cmd
}

// viewSaveConfig renders the save config dialog.
func (w *Wizard) viewSaveConfig() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render("Save Configuration"),
		"",
		w.saveConfigForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)
}

// startGeneration runs the generator in the background. Progress and the
// final result come back through w.events.
func (w *Wizard) startGeneration() (tea.Model, tea.Cmd) {
	opts, err := ToGeneratorOptions(w.state)
	if err != nil {
		w.phase = PhaseError
		w.err = err
		w.errorScreen = screens.NewErrorScreen(err)
		return w, nil
	}

	total := max(opts.Count, 1)
	w.phase = PhaseProgress
	w.progressScreen = screens.NewProgressScreen(total)

	// Buffered for every progress update plus the final message, so the
	// generator never blocks on the UI.
	w.events = make(chan tea.Msg, total+1)
	opts.Quiet = true
	opts.ProgressCallback = func(current, total int) {
		w.events <- screens.ProgressMsg{Current: current, Total: total}
	}

	go func(events chan<- tea.Msg) {
		events <- runGeneration(opts)
	}(w.events)

	return w, w.waitForEvent()
}

// runGeneration generates the masks and turns the result into a message.
func runGeneration(opts forge.GeneratorOptions) tea.Msg {
	start := time.Now()

	files, err := forge.GenerateMasks(opts)
	if err != nil {
		return screens.ErrorMsg{Error: err}
	}

	var size int64
	var coverage float64
	for _, f := range files {
		size += f.Bytes
		coverage += f.Coverage()
	}

	path := files[0].Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	return screens.CompletionMsg{
		TotalFiles: len(files),
		TotalSize:  size,
		Coverage:   coverage / float64(len(files)),
		Duration:   time.Since(start),
		FirstPath:  path,
	}
}

// waitForEvent delivers the next generation event to Update.
func (w *Wizard) waitForEvent() tea.Cmd {
	events := w.events
	return func() tea.Msg {
		return <-events
	}
}

// updateProgress handles updates in the progress phase.
func (w *Wizard) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.ProgressMsg:
		w.progressScreen.SetProgress(msg.Current, msg.Total)
		return w, w.waitForEvent()

	case screens.CompletionMsg:
		w.phase = PhaseComplete
		w.completionScreen = screens.NewCompletionScreen(msg)
		return w, nil

	case screens.ErrorMsg:
		w.phase = PhaseError
		w.err = msg.Error
		w.errorScreen = screens.NewErrorScreen(msg.Error)
		return w, nil
	}

	model, cmd := w.progressScreen.Update(msg)
	if ps, ok := model.(*screens.ProgressScreen); ok {
		w.progressScreen = ps
	}

	if w.progressScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateComplete handles updates in the completion phase.
func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.completionScreen.Update(msg)
	if cs, ok := model.(*screens.CompletionScreen); ok {
		w.completionScreen = cs
	}

	if w.completionScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// Run starts the interactive wizard for mask generation.
// If fromConfig is provided, it loads the configuration from that YAML file.
func Run(fromConfig string) error {
	var state *WizardState

	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		state = loaded
	}

	wizard := NewWizard(state)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
