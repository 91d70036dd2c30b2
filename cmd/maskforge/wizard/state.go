// Package wizard provides an interactive TUI for configuring mask generation.
package wizard

import "github.com/mrsinham/maskforge/cmd/maskforge/wizard/types"

// WizardState holds the complete state for the wizard interface.
type WizardState struct {
	Setup types.SetupConfig
}
