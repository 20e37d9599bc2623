package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	GridMode     Mode = iota // Default navigation mode over the criterion grid
	SelectorMode             // Column selector overlay (dual-list drag and drop)
	OverrideMode             // Editing a criterion's code override
	FilterMode               // Typing a row filter query
	HelpMode                 // Displaying help screen
)

// UIState manages the user interface state: terminal dimensions, the current
// interaction mode, and grid row navigation.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// selectedRow is the index of the currently selected grid row
	selectedRow int

	// rowOffset is the index of the first visible grid row
	rowOffset int
}

// NewUIState creates a new UIState in GridMode.
func NewUIState() *UIState {
	return &UIState{mode: GridMode}
}

func (s *UIState) Width() int       { return s.width }
func (s *UIState) Height() int      { return s.height }
func (s *UIState) Mode() Mode       { return s.mode }
func (s *UIState) SelectedRow() int { return s.selectedRow }
func (s *UIState) RowOffset() int   { return s.rowOffset }

func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// MoveRow moves the row selection by delta, clamped to [0, rowCount).
// visible is how many rows fit on screen; the offset follows the selection.
func (s *UIState) MoveRow(delta, rowCount, visible int) {
	if rowCount == 0 {
		s.selectedRow = 0
		s.rowOffset = 0
		return
	}

	s.selectedRow += delta
	if s.selectedRow < 0 {
		s.selectedRow = 0
	}
	if s.selectedRow >= rowCount {
		s.selectedRow = rowCount - 1
	}

	if visible <= 0 {
		visible = 1
	}
	if s.selectedRow < s.rowOffset {
		s.rowOffset = s.selectedRow
	}
	if s.selectedRow >= s.rowOffset+visible {
		s.rowOffset = s.selectedRow - visible + 1
	}
}

// ClampRow re-clamps the selection after the row count changed.
func (s *UIState) ClampRow(rowCount int) {
	if rowCount == 0 {
		s.selectedRow = 0
		s.rowOffset = 0
		return
	}
	if s.selectedRow >= rowCount {
		s.selectedRow = rowCount - 1
	}
	if s.rowOffset > s.selectedRow {
		s.rowOffset = s.selectedRow
	}
}
