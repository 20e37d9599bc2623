package models

import "time"

// Trial represents one downloaded clinical trial whose eligibility rules are
// under curation.
type Trial struct {
	ID        int       // database id
	TrialID   string    // registry identifier, e.g. "NCT01234567"
	Title     string    // trial title
	Cohort    string    // cohort label, empty for single-cohort trials
	CreatedAt time.Time // when the trial was imported
}
