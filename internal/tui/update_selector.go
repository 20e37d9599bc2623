package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/trialiris/iris/internal/dnd"
	"github.com/trialiris/iris/internal/tui/state"
)

// handleSelectorMode drives the column selector. The keyboard is the drag
// event source: grab starts a gesture, cursor movement produces enter/leave
// events, and release keys end the gesture with whatever target is hovered.
func (m Model) handleSelectorMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "space" {
		key = " "
	}
	km := m.Config.KeyMappings

	switch key {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.Interp.Dragging() != nil {
			// Cancelled gesture: no targets, classifies as a no-op.
			return m.dropOn(nil)
		}
		m.UiState.SetMode(state.GridMode)
		return m, nil

	case km.ToggleSelector:
		if m.Interp.Dragging() != nil {
			return m.dropOn(nil)
		}
		m.UiState.SetMode(state.GridMode)
		return m, nil

	case km.Grab, "enter":
		if m.Interp.Dragging() != nil {
			return m.dropOn([]dnd.Target{m.cursorTarget()})
		}
		if key == km.Grab {
			return m.handleGrab()
		}
		return m, nil

	case km.DropOnZone:
		if m.Interp.Dragging() != nil {
			return m.dropOn([]dnd.Target{dnd.ZoneTarget(m.SelectorState.ContainerID())})
		}
		return m, nil

	case km.NextItem, "down":
		return m.moveSelectorCursor(1)

	case km.PrevItem, "up":
		return m.moveSelectorCursor(-1)

	case km.SwitchZone:
		m.SelectorState.SwitchZone()
		if m.Interp.Dragging() != nil {
			m.Interp.DragEnter(m.cursorTarget())
		}
		return m, nil

	case km.MoveColumnUp:
		return m.nudgeColumn(-1)

	case km.MoveColumnDown:
		return m.nudgeColumn(1)

	case km.ResetColumns:
		if m.Interp.Dragging() == nil {
			m.Selection.Reset()
			m.SelectorState.Clamp(len(m.Selection.Available()), len(m.Selection.Selected()))
			m.NotificationState.Add(state.LevelInfo, "columns reset to defaults")
		}
		return m, nil
	}

	return m, nil
}

// handleGrab starts a drag gesture on the column under the cursor.
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	col, ok := m.SelectorState.CurrentColumn(m.Selection.Available(), m.Selection.Selected())
	if !ok {
		return m, nil
	}
	m.Interp.DragStart(dnd.Payload{
		ID:     dnd.ItemID(col),
		Source: m.SelectorState.Focus(),
	})
	m.Interp.DragEnter(m.cursorTarget())
	return m, nil
}

// dropOn ends the in-flight gesture against the given targets and re-clamps
// the cursors for the post-operation list sizes.
func (m Model) dropOn(targets []dnd.Target) (tea.Model, tea.Cmd) {
	drag := m.Interp.Dragging()
	if drag == nil {
		return m, nil
	}
	m.Interp.Drop(m.Selection.Selected(), dnd.Source{Data: *drag}, targets)
	m.SelectorState.Clamp(len(m.Selection.Available()), len(m.Selection.Selected()))
	return m, nil
}

// moveSelectorCursor moves the cursor within the focused zone, emitting
// enter/leave events when a gesture is in flight.
func (m Model) moveSelectorCursor(delta int) (tea.Model, tea.Cmd) {
	count := len(m.Selection.Selected())
	if m.SelectorState.Focus() == dnd.ZoneAvailable {
		count = len(m.Selection.Available())
	}

	if m.Interp.Dragging() != nil {
		m.Interp.DragLeave(m.cursorTarget())
	}
	m.SelectorState.MoveCursor(delta, count)
	if m.Interp.Dragging() != nil {
		m.Interp.DragEnter(m.cursorTarget())
	}
	return m, nil
}

// nudgeColumn shifts the selected column under the cursor one position,
// keeping the cursor on it. Only meaningful in the selected zone.
func (m Model) nudgeColumn(delta int) (tea.Model, tea.Cmd) {
	if m.Interp.Dragging() != nil || m.SelectorState.Focus() != dnd.ZoneSelected {
		return m, nil
	}
	col, ok := m.SelectorState.CurrentColumn(m.Selection.Available(), m.Selection.Selected())
	if !ok {
		return m, nil
	}

	moved := false
	if delta < 0 {
		moved = m.Selection.MoveUp(col)
	} else {
		moved = m.Selection.MoveDown(col)
	}
	if moved {
		m.SelectorState.MoveCursor(delta, len(m.Selection.Selected()))
	}
	return m, nil
}

// cursorTarget builds the drop target the cursor currently implies: the item
// under the cursor, carrying its containing zone so zone-level semantics
// still apply when item-level matching fails, or the bare zone container when
// the focused list is empty.
func (m Model) cursorTarget() dnd.Target {
	col, ok := m.SelectorState.CurrentColumn(m.Selection.Available(), m.Selection.Selected())
	if !ok {
		return dnd.ZoneTarget(m.SelectorState.ContainerID())
	}
	t := dnd.ItemTarget(col, m.SelectorState.Focus())
	t.ZoneID = m.SelectorState.ContainerID()
	return t
}
