package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/trialiris/iris/internal/dnd"
	"github.com/trialiris/iris/internal/tui/components"
	"github.com/trialiris/iris/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		return tea.NewView("Loading...")
	}

	switch m.UiState.Mode() {
	case state.FilterMode:
		return tea.NewView(m.viewGrid())
	case state.SelectorMode:
		return tea.NewView(m.viewSelector())
	case state.OverrideMode:
		return tea.NewView(m.viewOverride())
	case state.HelpMode:
		return tea.NewView(m.viewHelp())
	default:
		return tea.NewView(m.viewGrid())
	}
}

func (m Model) viewGrid() string {
	grid := components.RenderGrid(components.GridProps{
		Columns:     m.Selection.Selected(),
		Rows:        m.filteredRows(),
		SelectedRow: m.UiState.SelectedRow(),
		RowOffset:   m.UiState.RowOffset(),
		Visible:     m.visibleRows(),
		Width:       m.UiState.Width(),
	})

	body := lipgloss.NewStyle().
		Height(m.UiState.Height() - 1).
		Render(grid)

	return body + "\n" + m.statusBar()
}

func (m Model) viewSelector() string {
	selector := components.RenderSelector(components.SelectorProps{
		Available:   m.Selection.Available(),
		Selected:    m.Selection.Selected(),
		Focus:       m.SelectorState.Focus(),
		AvailCursor: m.SelectorState.Cursor(dnd.ZoneAvailable),
		SelCursor:   m.SelectorState.Cursor(dnd.ZoneSelected),
		Dragging:    m.Interp.Dragging(),
		Hover:       m.Interp.Hover(),
		Width:       m.UiState.Width(),
	})

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		selector,
	)
}

func (m Model) viewOverride() string {
	if m.Editor == nil {
		return m.viewGrid()
	}

	title := "Edit code override"
	if m.Editor.ruleID != "" {
		title += " · " + m.Editor.ruleID
	}

	body := components.TitleStyle.Render(title) + "\n\n" + m.Editor.ta.View()

	if res := m.Editor.completions(); res != nil {
		labels := make([]string, 0, len(res.Options))
		for _, opt := range res.Options {
			labels = append(labels, opt.Label)
		}
		if len(labels) > 6 {
			labels = labels[:6]
		}
		body += "\n" + components.SubtleStyle.Render("complete: "+strings.Join(labels, "  "))
	}

	body += "\n" + components.SubtleStyle.Render("ctrl+s: save   esc: cancel")

	box := components.EditorBoxStyle.
		Width(min(m.UiState.Width()-4, 72)).
		Render(body)

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

func (m Model) viewHelp() string {
	help := components.RenderHelp(components.HelpProps{
		Keys:  m.Config.KeyMappings,
		Width: min(m.UiState.Width()-4, 80),
	})

	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		help,
	)
}

func (m Model) statusBar() string {
	var trial string
	if row := m.currentRow(); row != nil {
		trial = row.Trial
	}

	var notification *state.Notification
	if latest, ok := m.NotificationState.Latest(); ok {
		notification = &latest
	}

	var filter string
	if m.UiState.Mode() == state.FilterMode {
		filter = "/" + m.FilterState.Query + "_"
	} else if m.FilterState.IsActive && m.FilterState.Query != "" {
		filter = "/" + m.FilterState.Query
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width:        m.UiState.Width(),
		Trial:        trial,
		Filter:       filter,
		Notification: notification,
	})
}
