package columns

import "errors"

// Selection-related errors
var (
	// ErrZoneOverlap indicates a column appears in both zones
	ErrZoneOverlap = errors.New("column appears in both available and selected")

	// ErrUnknownColumn indicates the column is not part of either zone
	ErrUnknownColumn = errors.New("column not found in either zone")

	// ErrStaleOperation indicates an operation computed against lists that
	// no longer match the current selection state
	ErrStaleOperation = errors.New("operation does not match current selection state")
)
