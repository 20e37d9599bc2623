package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/trialiris/iris/internal/models"
)

// TrialRepo handles all trial- and criterion-related database operations.
type TrialRepo struct {
	db *sql.DB
}

// NewTrialRepo creates a repository wrapping the database.
func NewTrialRepo(db *sql.DB) *TrialRepo {
	return &TrialRepo{db: db}
}

// ImportTrial inserts a trial and its criteria in one transaction.
// Criteria without a rule id are minted one.
func (r *TrialRepo) ImportTrial(ctx context.Context, trial *models.Trial, criteria []*models.Criterion) (*models.Trial, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO trials (trial_id, title, cohort) VALUES (?, ?, ?)`,
		trial.TrialID, trial.Title, trial.Cohort,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trial: %w", err)
	}
	newID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	trial.ID = int(newID)

	for i, c := range criteria {
		if c.RuleID == "" {
			c.RuleID = uuid.NewString()
		}
		if c.RuleNum == 0 {
			c.RuleNum = i + 1
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO criteria (trial_id, rule_num, rule_id, description, kind, code, llm_code, override_code, checked, error)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			trial.ID, c.RuleNum, c.RuleID, c.Description, c.Kind, c.Code, c.LlmCode, c.OverrideCode, c.Checked, c.Error,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert criterion %d: %w", c.RuleNum, err)
		}
		cid, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		c.ID = int(cid)
		c.TrialID = trial.ID
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return trial, nil
}

// GetTrials returns all trials ordered by registry id then cohort.
func (r *TrialRepo) GetTrials(ctx context.Context) ([]*models.Trial, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, trial_id, title, cohort, created_at FROM trials ORDER BY trial_id, cohort`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trials []*models.Trial
	for rows.Next() {
		t := &models.Trial{}
		if err := rows.Scan(&t.ID, &t.TrialID, &t.Title, &t.Cohort, &t.CreatedAt); err != nil {
			return nil, err
		}
		trials = append(trials, t)
	}
	return trials, rows.Err()
}

// GetCriterionRows returns every criterion joined with its trial's identity,
// in trial then rule order. This is the grid's backing query.
func (r *TrialRepo) GetCriterionRows(ctx context.Context) ([]*models.CriterionRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.trial_id, c.rule_num, c.rule_id, c.description, c.kind,
		       c.code, c.llm_code, c.override_code, c.checked, c.error,
		       t.trial_id, t.cohort
		FROM criteria c
		JOIN trials t ON t.id = c.trial_id
		ORDER BY t.trial_id, t.cohort, c.rule_num`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.CriterionRow
	for rows.Next() {
		row := &models.CriterionRow{}
		if err := rows.Scan(
			&row.ID, &row.TrialID, &row.RuleNum, &row.RuleID, &row.Description, &row.Kind,
			&row.Code, &row.LlmCode, &row.OverrideCode, &row.Checked, &row.Error,
			&row.Trial, &row.Cohort,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// GetCriterionByID fetches a single criterion.
func (r *TrialRepo) GetCriterionByID(ctx context.Context, id int) (*models.Criterion, error) {
	c := &models.Criterion{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, trial_id, rule_num, rule_id, description, kind,
		       code, llm_code, override_code, checked, error
		FROM criteria WHERE id = ?`, id).Scan(
		&c.ID, &c.TrialID, &c.RuleNum, &c.RuleID, &c.Description, &c.Kind,
		&c.Code, &c.LlmCode, &c.OverrideCode, &c.Checked, &c.Error,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrCriterionNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SetChecked updates a criterion's reviewed flag.
func (r *TrialRepo) SetChecked(ctx context.Context, id int, checked bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE criteria SET checked = ? WHERE id = ?`, checked, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// SaveOverrideCode stores a manual code override for a criterion.
// An empty string clears the override.
func (r *TrialRepo) SaveOverrideCode(ctx context.Context, id int, code string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE criteria SET override_code = ? WHERE id = ?`, code, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrCriterionNotFound
	}
	return nil
}
