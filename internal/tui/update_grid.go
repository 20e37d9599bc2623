package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/trialiris/iris/internal/tui/state"
)

func (m Model) handleGridMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.ToggleSelector:
		return m.handleOpenSelector()
	case km.NextRow, "down":
		m.UiState.MoveRow(1, len(m.filteredRows()), m.visibleRows())
		return m, nil
	case km.PrevRow, "up":
		m.UiState.MoveRow(-1, len(m.filteredRows()), m.visibleRows())
		return m, nil
	case km.ToggleChecked:
		return m.handleToggleChecked()
	case km.EditOverride:
		return m.handleOpenOverride()
	case "/":
		return m.handleEnterFilter()
	case "esc":
		if m.FilterState.Query != "" {
			return m.handleFilterCancel()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleOpenSelector() (tea.Model, tea.Cmd) {
	m.SelectorState.Clamp(len(m.Selection.Available()), len(m.Selection.Selected()))
	m.UiState.SetMode(state.SelectorMode)
	return m, nil
}

func (m Model) handleToggleChecked() (tea.Model, tea.Cmd) {
	row := m.currentRow()
	if row == nil {
		return m, nil
	}

	if err := m.Service.ToggleChecked(context.Background(), row.ID); err != nil {
		slog.Error("toggling checked", "criterion", row.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "failed to update rule")
		return m, nil
	}

	m.reloadRows()
	return m, nil
}
