package models

// Criterion is one curated eligibility rule belonging to a trial.
type Criterion struct {
	ID           int    // database id
	TrialID      int    // owning trial's database id
	RuleNum      int    // position of the rule within its trial
	RuleID       string // stable rule identifier
	Description  string // original eligibility text
	Kind         string // criterion category, e.g. "Age", "GeneAlteration"
	Code         string // curated criterion code shown in the grid
	LlmCode      string // code as originally produced by the curator
	OverrideCode string // manual override, empty when none
	Checked      bool   // reviewer has signed off on this rule
	Error        string // parse or validation error, empty when none
}

// EffectiveCode returns the code the grid should display: the manual
// override when present, otherwise the curated code.
func (c *Criterion) EffectiveCode() string {
	if c.OverrideCode != "" {
		return c.OverrideCode
	}
	return c.Code
}

// CriterionRow is a grid row: a criterion joined with its trial's identity.
type CriterionRow struct {
	Criterion
	Trial  string // registry identifier of the owning trial
	Cohort string // cohort label of the owning trial
}
