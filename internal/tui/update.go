package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trialiris/iris/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch m.UiState.Mode() {
		case state.SelectorMode:
			return m.handleSelectorMode(msg)
		case state.OverrideMode:
			return m.handleOverrideMode(msg)
		case state.FilterMode:
			return m.handleFilterMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleGridMode(msg)
		}

	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", " ", "space":
		m.UiState.SetMode(state.GridMode)
	}
	return m, nil
}
