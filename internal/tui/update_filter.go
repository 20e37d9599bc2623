package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/trialiris/iris/internal/columns"
	"github.com/trialiris/iris/internal/models"
	"github.com/trialiris/iris/internal/tui/components"
	"github.com/trialiris/iris/internal/tui/state"
)

// handleEnterFilter enters filter mode and clears any previous filter state.
func (m Model) handleEnterFilter() (tea.Model, tea.Cmd) {
	m.FilterState.Clear()
	m.FilterState.Deactivate()
	m.UiState.SetMode(state.FilterMode)
	return m, nil
}

// handleFilterMode handles keyboard input while the filter query is typed.
// The filter applies live; enter keeps it, esc clears it.
func (m Model) handleFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		return m.handleFilterConfirm()
	case "esc":
		return m.handleFilterCancel()
	case "backspace", "ctrl+h":
		if m.FilterState.Backspace() {
			m.UiState.ClampRow(len(m.filteredRows()))
		}
		return m, nil
	default:
		key := msg.String()
		if key == "space" {
			key = " "
		}
		if len([]rune(key)) == 1 {
			if m.FilterState.AppendChar([]rune(key)[0]) {
				m.UiState.ClampRow(len(m.filteredRows()))
			}
		}
		return m, nil
	}
}

// handleFilterConfirm keeps the filter applied and returns to the grid.
func (m Model) handleFilterConfirm() (tea.Model, tea.Cmd) {
	m.FilterState.Activate()
	m.UiState.SetMode(state.GridMode)
	return m, nil
}

// handleFilterCancel clears the filter and returns to the grid.
// All rows are shown again.
func (m Model) handleFilterCancel() (tea.Model, tea.Cmd) {
	m.FilterState.Clear()
	m.FilterState.Deactivate()
	m.UiState.SetMode(state.GridMode)
	m.UiState.ClampRow(len(m.Rows))
	return m, nil
}

// filteredRows returns the grid rows the current filter admits. An empty
// query admits everything.
func (m Model) filteredRows() []*models.CriterionRow {
	query := m.FilterState.Query
	if query == "" {
		return m.Rows
	}

	out := make([]*models.CriterionRow, 0, len(m.Rows))
	for _, row := range m.Rows {
		if rowMatchesFilter(row, query) {
			out = append(out, row)
		}
	}
	return out
}

// rowMatchesFilter reports whether a row matches the query on any filterable
// column. Text columns match by case-insensitive substring; bool columns
// match when they are set and the query is a prefix of the column name, so
// "age" finds the rows whose Age column is checked.
func rowMatchesFilter(row *models.CriterionRow, query string) bool {
	q := strings.ToLower(query)
	for _, def := range columns.Definitions() {
		if !def.Filterable {
			continue
		}

		value := components.CellValue(row, def.Name)
		if def.Kind == columns.KindBool {
			if value != "" && strings.HasPrefix(strings.ToLower(def.Name), q) {
				return true
			}
			continue
		}
		if strings.Contains(strings.ToLower(value), q) {
			return true
		}
	}
	return false
}
