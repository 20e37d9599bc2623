package criterion

import "errors"

// Criterion-related errors
var (
	// Validation errors
	ErrEmptyPath          = errors.New("import path cannot be empty")
	ErrInvalidCriterionID = errors.New("invalid criterion ID")

	// Business logic errors
	ErrNoTrials     = errors.New("import file contains no trials")
	ErrEmptyTrialID = errors.New("trial is missing its registry identifier")
)
