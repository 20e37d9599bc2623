package state

// FilterState manages the vim-style row filter state: the query text and
// whether the filter is currently applied to the grid.
type FilterState struct {
	// Query is the current filter text entered by the user
	Query string

	// IsActive indicates whether the filter is applied
	// When true, the grid shows only matching rows
	IsActive bool
}

// NewFilterState creates a new FilterState with default values.
func NewFilterState() *FilterState {
	return &FilterState{}
}

// AppendChar appends a character to the filter query.
// Returns true if the character was added, false if query is at max length.
func (s *FilterState) AppendChar(c rune) bool {
	const maxQueryLength = 100

	if len(s.Query) >= maxQueryLength {
		return false
	}

	s.Query += string(c)
	return true
}

// Backspace removes the last character from the filter query.
// Returns true if a character was removed, false if query was already empty.
func (s *FilterState) Backspace() bool {
	if len(s.Query) == 0 {
		return false
	}

	s.Query = s.Query[:len(s.Query)-1]
	return true
}

// Clear resets the filter query to empty string.
func (s *FilterState) Clear() {
	s.Query = ""
}

// Activate sets the filter as active.
func (s *FilterState) Activate() {
	s.IsActive = true
}

// Deactivate clears the filter.
func (s *FilterState) Deactivate() {
	s.IsActive = false
}
