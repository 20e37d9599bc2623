package criterion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/trialiris/iris/internal/database"
	"github.com/trialiris/iris/internal/models"
)

// Service defines all criterion-related business operations
type Service interface {
	// Read operations
	Rows(ctx context.Context) ([]*models.CriterionRow, error)
	Trials(ctx context.Context) ([]*models.Trial, error)

	// Write operations
	Import(ctx context.Context, req ImportRequest) (int, error)
	ToggleChecked(ctx context.Context, id int) error
	SaveOverride(ctx context.Context, id int, code string) error
}

// ImportRequest encapsulates data for importing curated trials from a file
type ImportRequest struct {
	Path string
}

// importFile is the on-disk shape of a curated-trials export.
type importFile struct {
	Trials []struct {
		TrialID  string `json:"trial_id"`
		Title    string `json:"title"`
		Cohort   string `json:"cohort"`
		Criteria []struct {
			RuleNum     int    `json:"rule_num"`
			RuleID      string `json:"rule_id"`
			Description string `json:"description"`
			Kind        string `json:"kind"`
			Code        string `json:"code"`
			LlmCode     string `json:"llm_code"`
		} `json:"criteria"`
	} `json:"trials"`
}

// service implements Service using the trial repository
type service struct {
	repo *database.TrialRepo
}

// NewService creates a new criterion service
func NewService(repo *database.TrialRepo) Service {
	return &service{repo: repo}
}

// Rows returns all grid rows.
func (s *service) Rows(ctx context.Context) ([]*models.CriterionRow, error) {
	return s.repo.GetCriterionRows(ctx)
}

// Trials returns all imported trials.
func (s *service) Trials(ctx context.Context) ([]*models.Trial, error) {
	return s.repo.GetTrials(ctx)
}

// Import loads a curated-trials JSON file into the store and returns the
// number of criteria imported.
func (s *service) Import(ctx context.Context, req ImportRequest) (int, error) {
	if req.Path == "" {
		return 0, ErrEmptyPath
	}

	data, err := os.ReadFile(req.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to read import file: %w", err)
	}

	var file importFile
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse import file: %w", err)
	}
	if len(file.Trials) == 0 {
		return 0, ErrNoTrials
	}

	total := 0
	for _, t := range file.Trials {
		if t.TrialID == "" {
			return total, ErrEmptyTrialID
		}
		trial := &models.Trial{TrialID: t.TrialID, Title: t.Title, Cohort: t.Cohort}
		criteria := make([]*models.Criterion, 0, len(t.Criteria))
		for _, c := range t.Criteria {
			criteria = append(criteria, &models.Criterion{
				RuleNum:     c.RuleNum,
				RuleID:      c.RuleID,
				Description: c.Description,
				Kind:        c.Kind,
				Code:        c.Code,
				LlmCode:     c.LlmCode,
			})
		}
		if _, err := s.repo.ImportTrial(ctx, trial, criteria); err != nil {
			return total, fmt.Errorf("failed to import trial %s: %w", t.TrialID, err)
		}
		total += len(criteria)
	}
	return total, nil
}

// ToggleChecked flips a criterion's reviewed flag.
func (s *service) ToggleChecked(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCriterionID
	}
	c, err := s.repo.GetCriterionByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.SetChecked(ctx, id, !c.Checked)
}

// SaveOverride stores a manual code override for a criterion.
func (s *service) SaveOverride(ctx context.Context, id int, code string) error {
	if id <= 0 {
		return ErrInvalidCriterionID
	}
	return s.repo.SaveOverrideCode(ctx, id, code)
}
