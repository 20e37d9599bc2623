package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/trialiris/iris/internal/tui/state"
)

var (
	spaceKey = tea.Key{Code: tea.KeySpace, Text: " "}
	enterKey = tea.Key{Code: tea.KeyEnter}
	tabKey   = tea.Key{Code: tea.KeyTab}
	escKey   = tea.Key{Code: tea.KeyEsc}
)

func openSelector(t *testing.T, m Model) Model {
	t.Helper()
	m = pressRune(m, 'c')
	if m.UiState.Mode() != state.SelectorMode {
		t.Fatalf("Mode after toggle = %v, want SelectorMode", m.UiState.Mode())
	}
	return m
}

// A full keyboard gesture: grab the first selected column, walk the cursor
// down two items, and release on the item there. The column should land at
// the target's position with everything else shifted.
func TestSelectorReorderGesture(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)

	m = press(m, spaceKey) // grab TrialId
	if m.Interp.Dragging() == nil {
		t.Fatal("no drag in flight after grab")
	}

	m = pressRune(m, 'j')
	m = pressRune(m, 'j')  // hover Description
	m = press(m, enterKey) // drop

	if m.Interp.Dragging() != nil {
		t.Error("drag still in flight after drop")
	}

	want := []string{"Cohort", "Description", "TrialId", "Checked", "Code"}
	if diff := cmp.Diff(want, m.Selection.Selected()); diff != "" {
		t.Errorf("Selected after reorder mismatch (-want +got):\n%s", diff)
	}
}

// Dragging from the available list onto a selected item inserts at that
// item's index and removes the column from available.
func TestSelectorInsertGesture(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)

	m = press(m, tabKey)   // focus available, cursor on RuleNum
	m = press(m, spaceKey) // grab RuleNum
	m = press(m, tabKey)   // back to selected, hover TrialId
	m = press(m, enterKey) // drop on TrialId

	selected := m.Selection.Selected()
	if len(selected) == 0 || selected[0] != "RuleNum" {
		t.Fatalf("Selected after insert = %v, want RuleNum first", selected)
	}
	for _, name := range m.Selection.Available() {
		if name == "RuleNum" {
			t.Error("RuleNum still in available after insert")
		}
	}
}

// Dropping on a zone rather than an item appends at the end of that zone.
func TestSelectorMoveToZoneGesture(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)

	m = press(m, spaceKey) // grab TrialId from selected
	m = press(m, tabKey)   // focus available
	m = pressRune(m, 'z')  // drop on the available container

	for _, name := range m.Selection.Selected() {
		if name == "TrialId" {
			t.Error("TrialId still selected after move to available")
		}
	}
	available := m.Selection.Available()
	if available[len(available)-1] != "TrialId" {
		t.Errorf("available ends with %q, want TrialId appended", available[len(available)-1])
	}
}

// Escape during a drag cancels the gesture without touching the lists and
// keeps the selector open.
func TestSelectorEscapeCancelsDrag(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)
	before := m.Selection.Selected()

	m = press(m, spaceKey)
	m = pressRune(m, 'j')
	m = press(m, escKey)

	if m.Interp.Dragging() != nil {
		t.Error("drag still in flight after escape")
	}
	if m.UiState.Mode() != state.SelectorMode {
		t.Errorf("Mode after cancelled drag = %v, want SelectorMode", m.UiState.Mode())
	}
	if diff := cmp.Diff(before, m.Selection.Selected()); diff != "" {
		t.Errorf("Selected changed by cancelled drag (-want +got):\n%s", diff)
	}
	if latest, ok := m.NotificationState.Latest(); ok {
		t.Errorf("cancelled gesture produced notification %q, want silence", latest.Message)
	}
}

// Grab-then-release without moving lands on the grabbed item itself and
// changes nothing.
func TestSelectorSelfDropIsNoop(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)
	before := m.Selection.Selected()

	m = press(m, spaceKey)
	m = press(m, enterKey)

	if m.Interp.Dragging() != nil {
		t.Error("drag still in flight after self drop")
	}
	if diff := cmp.Diff(before, m.Selection.Selected()); diff != "" {
		t.Errorf("Selected changed by self drop (-want +got):\n%s", diff)
	}
	latest, ok := m.NotificationState.Latest()
	if !ok || latest.Level != state.LevelInfo {
		t.Error("degraded drop produced no status notification")
	}
}

func TestSelectorEscapeCloses(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)

	m = press(m, escKey)
	if m.UiState.Mode() != state.GridMode {
		t.Errorf("Mode after escape = %v, want GridMode", m.UiState.Mode())
	}
}

// K and J nudge the column under the cursor one position and drag the
// cursor along with it.
func TestSelectorNudgeColumn(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)

	m = pressRune(m, 'J') // TrialId down one
	want := []string{"Cohort", "TrialId", "Description", "Checked", "Code"}
	if diff := cmp.Diff(want, m.Selection.Selected()); diff != "" {
		t.Fatalf("Selected after nudge down mismatch (-want +got):\n%s", diff)
	}

	m = pressRune(m, 'K') // and back up
	want = []string{"TrialId", "Cohort", "Description", "Checked", "Code"}
	if diff := cmp.Diff(want, m.Selection.Selected()); diff != "" {
		t.Errorf("Selected after nudge up mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectorReset(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)

	m = pressRune(m, 'J')
	m = pressRune(m, 'R')

	want := []string{"TrialId", "Cohort", "Description", "Checked", "Code"}
	if diff := cmp.Diff(want, m.Selection.Selected()); diff != "" {
		t.Errorf("Selected after reset mismatch (-want +got):\n%s", diff)
	}
}

// A drop whose gesture ends over the still-focused zone while the grabbed
// column's own list emptied out underneath is the degenerate case: the
// cursor target falls back to the bare container.
func TestSelectorDropInEmptyZone(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})
	m = openSelector(t, m)

	// Empty the selected list by moving everything to available.
	for range 5 {
		m = press(m, spaceKey)
		m = press(m, tabKey)
		m = pressRune(m, 'z')
		m = press(m, tabKey) // focus back to selected for the next grab
	}
	if len(m.Selection.Selected()) != 0 {
		t.Fatalf("Selected not emptied, still %v", m.Selection.Selected())
	}

	// Bring one back: grab in available, drop on the empty selected zone.
	m = press(m, tabKey)
	m = press(m, spaceKey)
	m = press(m, tabKey)
	m = press(m, enterKey) // cursor target degrades to the zone container

	if diff := cmp.Diff([]string{"RuleNum"}, m.Selection.Selected()); diff != "" {
		t.Errorf("Selected after drop into empty zone (-want +got):\n%s", diff)
	}
}
