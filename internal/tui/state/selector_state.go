package state

import "github.com/trialiris/iris/internal/dnd"

// SelectorState manages the column selector overlay's component-local state:
// which zone has keyboard focus and where the cursor sits in each list.
// Drag-gesture state (what is grabbed, what is hovered) lives in the
// interpreter; everything here is purely visual.
type SelectorState struct {
	// focus is the zone the cursor currently operates in
	focus dnd.Zone

	// availCursor is the cursor index within the available list
	availCursor int

	// selCursor is the cursor index within the selected list
	selCursor int
}

// NewSelectorState creates a selector state focused on the selected zone.
func NewSelectorState() *SelectorState {
	return &SelectorState{focus: dnd.ZoneSelected}
}

// Focus returns the zone that has keyboard focus.
func (s *SelectorState) Focus() dnd.Zone {
	return s.focus
}

// SwitchZone toggles keyboard focus between the two zones.
func (s *SelectorState) SwitchZone() {
	if s.focus == dnd.ZoneSelected {
		s.focus = dnd.ZoneAvailable
	} else {
		s.focus = dnd.ZoneSelected
	}
}

// Cursor returns the cursor index for a zone.
func (s *SelectorState) Cursor(zone dnd.Zone) int {
	if zone == dnd.ZoneAvailable {
		return s.availCursor
	}
	return s.selCursor
}

// MoveCursor moves the focused zone's cursor by delta, clamped to the zone's
// item count.
func (s *SelectorState) MoveCursor(delta, count int) {
	cursor := s.Cursor(s.focus) + delta
	if cursor < 0 {
		cursor = 0
	}
	if count == 0 {
		cursor = 0
	} else if cursor >= count {
		cursor = count - 1
	}
	if s.focus == dnd.ZoneAvailable {
		s.availCursor = cursor
	} else {
		s.selCursor = cursor
	}
}

// Clamp re-clamps both cursors after the lists changed size.
func (s *SelectorState) Clamp(availCount, selCount int) {
	if s.availCursor >= availCount {
		s.availCursor = max(availCount-1, 0)
	}
	if s.selCursor >= selCount {
		s.selCursor = max(selCount-1, 0)
	}
}

// CurrentColumn returns the column name under the cursor in the focused
// zone, or false when that zone is empty.
func (s *SelectorState) CurrentColumn(available, selected []string) (string, bool) {
	list := selected
	if s.focus == dnd.ZoneAvailable {
		list = available
	}
	cursor := s.Cursor(s.focus)
	if cursor < 0 || cursor >= len(list) {
		return "", false
	}
	return list[cursor], true
}

// ContainerID returns the container id of the focused zone.
func (s *SelectorState) ContainerID() string {
	if s.focus == dnd.ZoneAvailable {
		return dnd.AvailableZoneID
	}
	return dnd.SelectedZoneID
}
