package tui

import (
	"testing"

	"github.com/trialiris/iris/internal/tui/state"
)

func TestGridRowNavigation(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})

	m = pressRune(m, 'j')
	m = pressRune(m, 'j')
	if m.UiState.SelectedRow() != 2 {
		t.Errorf("SelectedRow after jj = %d, want 2", m.UiState.SelectedRow())
	}

	// Clamped at the last row.
	m = pressRune(m, 'j')
	if m.UiState.SelectedRow() != 2 {
		t.Errorf("SelectedRow past the end = %d, want 2", m.UiState.SelectedRow())
	}

	m = pressRune(m, 'k')
	if m.UiState.SelectedRow() != 1 {
		t.Errorf("SelectedRow after k = %d, want 1", m.UiState.SelectedRow())
	}
}

func TestGridToggleChecked(t *testing.T) {
	svc := &fakeService{rows: testRows()}
	m := setupTestModel(svc)

	m = pressRune(m, 'j') // row with criterion id 2
	m = pressRune(m, 'x')

	if len(svc.toggled) != 1 || svc.toggled[0] != 2 {
		t.Fatalf("toggled = %v, want [2]", svc.toggled)
	}
	if !m.Rows[1].Checked {
		t.Error("row not refreshed after toggle")
	}
}

func TestGridToggleCheckedEmptyGrid(t *testing.T) {
	svc := &fakeService{}
	m := setupTestModel(svc)

	m = pressRune(m, 'x')
	if len(svc.toggled) != 0 {
		t.Errorf("toggled on empty grid = %v, want none", svc.toggled)
	}
}

func TestHelpModeRoundTrip(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})

	m = pressRune(m, '?')
	if m.UiState.Mode() != state.HelpMode {
		t.Fatalf("Mode after ? = %v, want HelpMode", m.UiState.Mode())
	}

	m = pressRune(m, 'q')
	if m.UiState.Mode() != state.GridMode {
		t.Errorf("Mode after q in help = %v, want GridMode", m.UiState.Mode())
	}
}
