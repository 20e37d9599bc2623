package columns

import (
	"github.com/trialiris/iris/internal/dnd"
)

// Selection is the authoritative owner of the two column zones. The selected
// list is ordered and its order is meaningful (it becomes the grid's column
// order); the available list's order is only stable for display.
//
// Invariant: the two zones are disjoint and their union is the column
// universe. Operations that would break this are rejected.
type Selection struct {
	available []string
	selected  []string
}

// NewSelection builds a selection from explicit zone contents.
func NewSelection(available, selected []string) (*Selection, error) {
	seen := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		seen[name] = struct{}{}
	}
	for _, name := range available {
		if _, dup := seen[name]; dup {
			return nil, ErrZoneOverlap
		}
	}
	s := &Selection{}
	s.available = append(s.available, available...)
	s.selected = append(s.selected, selected...)
	return s, nil
}

// DefaultSelection builds the selection the grid starts with: every column
// that is not hidden by default is selected, in definition order.
func DefaultSelection() *Selection {
	s := &Selection{}
	for _, d := range Definitions() {
		if d.DefaultHidden {
			s.available = append(s.available, d.Name)
		} else {
			s.selected = append(s.selected, d.Name)
		}
	}
	return s
}

// Available returns a copy of the available zone.
func (s *Selection) Available() []string {
	out := make([]string, len(s.available))
	copy(out, s.available)
	return out
}

// Selected returns a copy of the selected zone.
func (s *Selection) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Zone returns the zone a column currently lives in.
func (s *Selection) Zone(name string) (dnd.Zone, bool) {
	if indexOf(s.selected, name) >= 0 {
		return dnd.ZoneSelected, true
	}
	if indexOf(s.available, name) >= 0 {
		return dnd.ZoneAvailable, true
	}
	return "", false
}

// Apply commits one interpreter operation atomically: either the whole
// operation takes effect, or the selection is left untouched and an error is
// returned. No-ops succeed without changing anything.
func (s *Selection) Apply(op dnd.Operation) error {
	switch op.Kind {
	case dnd.OpNone:
		return nil

	case dnd.OpReorder:
		if op.OldIndex < 0 || op.OldIndex >= len(s.selected) ||
			s.selected[op.OldIndex] != op.Column {
			return ErrStaleOperation
		}
		if len(op.Result) != len(s.selected) {
			return ErrStaleOperation
		}
		s.selected = append(s.selected[:0:0], op.Result...)
		return nil

	case dnd.OpInsert:
		idx := indexOf(s.available, op.Column)
		if idx < 0 {
			return ErrStaleOperation
		}
		if len(op.Result) != len(s.selected)+1 {
			return ErrStaleOperation
		}
		s.available = append(s.available[:idx], s.available[idx+1:]...)
		s.selected = append(s.selected[:0:0], op.Result...)
		return nil

	case dnd.OpMove:
		return s.move(op.Column, op.Dest)
	}

	return ErrStaleOperation
}

// move removes a column from whichever zone holds it and appends it to the
// end of dest. Moving within a single zone sends the column to that zone's
// end.
func (s *Selection) move(name string, dest dnd.Zone) error {
	// Validate the destination before touching either zone, so a rejected
	// move leaves the selection intact.
	if dest != dnd.ZoneSelected && dest != dnd.ZoneAvailable {
		return ErrUnknownColumn
	}

	if idx := indexOf(s.selected, name); idx >= 0 {
		s.selected = append(s.selected[:idx], s.selected[idx+1:]...)
	} else if idx := indexOf(s.available, name); idx >= 0 {
		s.available = append(s.available[:idx], s.available[idx+1:]...)
	} else {
		return ErrUnknownColumn
	}

	if dest == dnd.ZoneSelected {
		s.selected = append(s.selected, name)
	} else {
		s.available = append(s.available, name)
	}
	return nil
}

// MoveUp shifts a selected column one position toward the front.
// Returns false when the column is already first or not selected.
func (s *Selection) MoveUp(name string) bool {
	idx := indexOf(s.selected, name)
	if idx <= 0 {
		return false
	}
	s.selected[idx-1], s.selected[idx] = s.selected[idx], s.selected[idx-1]
	return true
}

// MoveDown shifts a selected column one position toward the back.
// Returns false when the column is already last or not selected.
func (s *Selection) MoveDown(name string) bool {
	idx := indexOf(s.selected, name)
	if idx < 0 || idx >= len(s.selected)-1 {
		return false
	}
	s.selected[idx], s.selected[idx+1] = s.selected[idx+1], s.selected[idx]
	return true
}

// Reset restores the default selection.
func (s *Selection) Reset() {
	def := DefaultSelection()
	s.available = def.available
	s.selected = def.selected
}

func indexOf(list []string, name string) int {
	for i, v := range list {
		if v == name {
			return i
		}
	}
	return -1
}
