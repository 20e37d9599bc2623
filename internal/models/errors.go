package models

import "errors"

// Domain-specific errors for trial and criterion lookups
var (
	// ErrTrialNotFound indicates the requested trial does not exist
	ErrTrialNotFound = errors.New("trial not found")

	// ErrCriterionNotFound indicates the requested criterion does not exist
	ErrCriterionNotFound = errors.New("criterion not found")
)
