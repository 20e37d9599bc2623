package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/trialiris/iris/internal/config"
	"github.com/trialiris/iris/internal/models"
	"github.com/trialiris/iris/internal/services/criterion"
)

// fakeService is an in-memory criterion.Service for TUI tests.
type fakeService struct {
	rows      []*models.CriterionRow
	toggled   []int
	overrides map[int]string
}

var _ criterion.Service = (*fakeService)(nil)

func (f *fakeService) Rows(ctx context.Context) ([]*models.CriterionRow, error) {
	return f.rows, nil
}

func (f *fakeService) Trials(ctx context.Context) ([]*models.Trial, error) {
	return nil, nil
}

func (f *fakeService) Import(ctx context.Context, req criterion.ImportRequest) (int, error) {
	return 0, nil
}

func (f *fakeService) ToggleChecked(ctx context.Context, id int) error {
	f.toggled = append(f.toggled, id)
	for _, r := range f.rows {
		if r.ID == id {
			r.Checked = !r.Checked
		}
	}
	return nil
}

func (f *fakeService) SaveOverride(ctx context.Context, id int, code string) error {
	if f.overrides == nil {
		f.overrides = map[int]string{}
	}
	f.overrides[id] = code
	for _, r := range f.rows {
		if r.ID == id {
			r.OverrideCode = code
		}
	}
	return nil
}

func testRows() []*models.CriterionRow {
	return []*models.CriterionRow{
		{Criterion: models.Criterion{ID: 1, RuleNum: 1, Description: "Age >= 18", Kind: "Age"}, Trial: "NCT001", Cohort: "A"},
		{Criterion: models.Criterion{ID: 2, RuleNum: 2, Description: "EGFR mutation", Kind: "GeneAlteration"}, Trial: "NCT001", Cohort: "A"},
		{Criterion: models.Criterion{ID: 3, RuleNum: 1, Description: "No prior chemo", Kind: "PriorTreatment"}, Trial: "NCT002", Cohort: "B"},
	}
}

// setupTestModel builds a model with default config, a fake service, and a
// realistic terminal size.
func setupTestModel(svc *fakeService) Model {
	cfg := &config.Config{
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}
	m := InitialModel(cfg, svc)
	m.UiState.SetSize(120, 40)
	return m
}

func press(m Model, key tea.Key) Model {
	newModel, _ := m.Update(tea.KeyPressMsg(key))
	return newModel.(Model)
}

func pressRune(m Model, r rune) Model {
	return press(m, tea.Key{Text: string(r), Code: r})
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = pressRune(m, r)
	}
	return m
}
