package tui

import (
	"context"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/trialiris/iris/internal/complete"
	"github.com/trialiris/iris/internal/models"
	"github.com/trialiris/iris/internal/tui/state"
)

// overrideEditor is the transient state of the code-override editor: the
// criterion being edited and the textarea holding the draft.
type overrideEditor struct {
	criterionID int
	ruleID      string
	ta          textarea.Model
}

func newOverrideEditor(row *models.CriterionRow) *overrideEditor {
	ta := textarea.New()
	ta.Placeholder = "criterion code"
	ta.SetHeight(6)
	ta.SetValue(row.EffectiveCode())
	ta.Focus()

	return &overrideEditor{
		criterionID: row.ID,
		ruleID:      row.RuleID,
		ta:          ta,
	}
}

// completions returns the keyword candidates for the word before the cursor
// on the current line, or nil.
func (e *overrideEditor) completions() *complete.Result {
	lines := strings.Split(e.ta.Value(), "\n")
	row := e.ta.Line()
	if row < 0 || row >= len(lines) {
		return nil
	}
	line := lines[row]
	return complete.Complete(complete.CursorContext{Line: line, Pos: len([]rune(line))})
}

func (m Model) handleOpenOverride() (tea.Model, tea.Cmd) {
	row := m.currentRow()
	if row == nil {
		return m, nil
	}
	m.Editor = newOverrideEditor(row)
	m.UiState.SetMode(state.OverrideMode)
	return m, nil
}

// handleOverrideMode routes keys in the override editor: ctrl+s saves, esc
// discards, everything else feeds the textarea.
func (m Model) handleOverrideMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Editor == nil {
		m.UiState.SetMode(state.GridMode)
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.Editor = nil
		m.UiState.SetMode(state.GridMode)
		return m, nil

	case "ctrl+s":
		return m.handleSaveOverride()
	}

	var cmd tea.Cmd
	m.Editor.ta, cmd = m.Editor.ta.Update(msg)
	return m, cmd
}

func (m Model) handleSaveOverride() (tea.Model, tea.Cmd) {
	code := m.Editor.ta.Value()
	id := m.Editor.criterionID

	if err := m.Service.SaveOverride(context.Background(), id, code); err != nil {
		slog.Error("saving override", "criterion", id, "error", err)
		m.NotificationState.Add(state.LevelError, "failed to save override")
		return m, nil
	}

	m.Editor = nil
	m.UiState.SetMode(state.GridMode)
	m.reloadRows()
	m.NotificationState.Add(state.LevelInfo, "override saved")
	return m, nil
}
