package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/trialiris/iris/internal/tui/state"
)

func TestFilterNarrowsRows(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})

	m = pressRune(m, '/')
	if m.UiState.Mode() != state.FilterMode {
		t.Fatalf("Mode after / = %v, want FilterMode", m.UiState.Mode())
	}

	m = typeText(m, "nct002")
	if got := len(m.filteredRows()); got != 1 {
		t.Fatalf("filtered rows = %d, want 1", got)
	}
	if m.filteredRows()[0].Trial != "NCT002" {
		t.Errorf("filtered to %q, want NCT002", m.filteredRows()[0].Trial)
	}

	m = press(m, tea.Key{Code: tea.KeyEnter})
	if m.UiState.Mode() != state.GridMode {
		t.Errorf("Mode after enter = %v, want GridMode", m.UiState.Mode())
	}
	if !m.FilterState.IsActive {
		t.Error("filter not active after confirm")
	}
	if got := len(m.filteredRows()); got != 1 {
		t.Errorf("filter dropped after confirm, rows = %d", got)
	}
}

func TestFilterEscapeClears(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})

	m = pressRune(m, '/')
	m = typeText(m, "nct002")
	m = press(m, tea.Key{Code: tea.KeyEsc})

	if m.UiState.Mode() != state.GridMode {
		t.Errorf("Mode after esc = %v, want GridMode", m.UiState.Mode())
	}
	if m.FilterState.Query != "" {
		t.Errorf("query after esc = %q, want empty", m.FilterState.Query)
	}
	if got := len(m.filteredRows()); got != 3 {
		t.Errorf("rows after cleared filter = %d, want 3", got)
	}
}

func TestFilterEscapeInGridClearsActiveFilter(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})

	m = pressRune(m, '/')
	m = typeText(m, "nct001")
	m = press(m, tea.Key{Code: tea.KeyEnter})
	if got := len(m.filteredRows()); got != 2 {
		t.Fatalf("filtered rows = %d, want 2", got)
	}

	m = press(m, tea.Key{Code: tea.KeyEsc})
	if got := len(m.filteredRows()); got != 3 {
		t.Errorf("rows after esc in grid = %d, want 3", got)
	}
}

// Bool criterion-kind columns match when set, keyed by the column name.
func TestFilterMatchesKindColumn(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})

	m = pressRune(m, '/')
	m = typeText(m, "age")

	rows := m.filteredRows()
	if len(rows) != 1 || rows[0].Kind != "Age" {
		t.Errorf("filtered rows = %v, want only the Age row", rows)
	}
}

// Operations in grid mode act on the row the filtered cursor points at, not
// the unfiltered index.
func TestFilterToggleActsOnVisibleRow(t *testing.T) {
	svc := &fakeService{rows: testRows()}
	m := setupTestModel(svc)

	m = pressRune(m, '/')
	m = typeText(m, "nct002")
	m = press(m, tea.Key{Code: tea.KeyEnter})

	m = pressRune(m, 'x')
	if len(svc.toggled) != 1 || svc.toggled[0] != 3 {
		t.Errorf("toggled = %v, want [3]", svc.toggled)
	}
}

func TestFilterBackspace(t *testing.T) {
	m := setupTestModel(&fakeService{rows: testRows()})

	m = pressRune(m, '/')
	m = typeText(m, "nct002")
	for range 6 {
		m = press(m, tea.Key{Code: tea.KeyBackspace})
	}

	if m.FilterState.Query != "" {
		t.Errorf("query after backspaces = %q, want empty", m.FilterState.Query)
	}
	if got := len(m.filteredRows()); got != 3 {
		t.Errorf("rows after emptied query = %d, want 3", got)
	}
}
