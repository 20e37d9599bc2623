package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/trialiris/iris/internal/columns"
	"github.com/trialiris/iris/internal/config"
	"github.com/trialiris/iris/internal/dnd"
	"github.com/trialiris/iris/internal/models"
	"github.com/trialiris/iris/internal/services/criterion"
	"github.com/trialiris/iris/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	Config  *config.Config
	Service criterion.Service

	// Selection owns the column zones; the interpreter's operations are
	// applied to it through applyOperation.
	Selection *columns.Selection
	Interp    *dnd.Interpreter

	Rows []*models.CriterionRow

	// Editor is non-nil while the code-override editor is open.
	Editor *overrideEditor

	UiState           *state.UIState
	SelectorState     *state.SelectorState
	FilterState       *state.FilterState
	NotificationState *state.NotificationState
}

// InitialModel creates and initializes the TUI model with data from the store
func InitialModel(cfg *config.Config, svc criterion.Service) Model {
	ctx := context.Background()

	rows, err := svc.Rows(ctx)
	if err != nil {
		slog.Error("loading criterion rows", "error", err)
		rows = []*models.CriterionRow{}
	}

	m := Model{
		Config:            cfg,
		Service:           svc,
		Selection:         columns.DefaultSelection(),
		Interp:            &dnd.Interpreter{},
		Rows:              rows,
		UiState:           state.NewUIState(),
		SelectorState:     state.NewSelectorState(),
		FilterState:       state.NewFilterState(),
		NotificationState: state.NewNotificationState(),
	}

	// The interpreter reports every completed gesture here, no-ops included.
	// Selection and NotificationState are shared pointers, so the closure
	// observes the same state the handlers do.
	selection := m.Selection
	notifications := m.NotificationState
	m.Interp.OnOperation = func(op dnd.Operation) {
		if op.IsNone() {
			// A resolved gesture that degraded to nothing still gets a
			// status-line mention. Cancelled gestures (no target, no
			// column) stay silent.
			if op.Column != "" {
				notifications.Add(state.LevelInfo, "drop ignored")
			}
			return
		}
		if err := selection.Apply(op); err != nil {
			slog.Warn("rejected column operation", "kind", op.Kind, "column", op.Column, "error", err)
			notifications.Add(state.LevelError, "column layout changed underneath the drag, nothing applied")
			return
		}
		slog.Debug("applied column operation", "kind", op.Kind, "column", op.Column)
	}

	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// currentRow returns the grid row under the cursor, respecting the active
// row filter, or nil when nothing is visible.
func (m Model) currentRow() *models.CriterionRow {
	rows := m.filteredRows()
	if m.UiState.SelectedRow() >= len(rows) {
		return nil
	}
	return rows[m.UiState.SelectedRow()]
}

// reloadRows refreshes the grid rows from the store after a write.
func (m *Model) reloadRows() {
	rows, err := m.Service.Rows(context.Background())
	if err != nil {
		slog.Error("reloading criterion rows", "error", err)
		m.NotificationState.Add(state.LevelError, "failed to reload rows")
		return
	}
	m.Rows = rows
	m.UiState.ClampRow(len(m.filteredRows()))
}

// visibleRows is how many grid rows fit below the header and above the
// status line.
func (m Model) visibleRows() int {
	return max(m.UiState.Height()-4, 1)
}
