package columns

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/trialiris/iris/internal/dnd"
)

func mustSelection(t *testing.T, available, selected []string) *Selection {
	t.Helper()
	s, err := NewSelection(available, selected)
	if err != nil {
		t.Fatalf("NewSelection() error = %v", err)
	}
	return s
}

func TestNewSelectionRejectsOverlap(t *testing.T) {
	_, err := NewSelection([]string{"A", "B"}, []string{"B", "C"})
	if !errors.Is(err, ErrZoneOverlap) {
		t.Errorf("NewSelection() error = %v, want ErrZoneOverlap", err)
	}
}

func TestApplyReorder(t *testing.T) {
	s := mustSelection(t, []string{"D"}, []string{"A", "B", "C"})

	target := dnd.ItemTarget("A", dnd.ZoneSelected)
	op := dnd.Classify(s.Selected(), dnd.Payload{ID: dnd.ItemID("B"), Source: dnd.ZoneSelected}, &target)

	if err := s.Apply(op); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff([]string{"B", "A", "C"}, s.Selected()); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"D"}, s.Available()); diff != "" {
		t.Errorf("available mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyInsert(t *testing.T) {
	s := mustSelection(t, []string{"D"}, []string{"A", "B", "C"})

	target := dnd.ItemTarget("B", dnd.ZoneSelected)
	op := dnd.Classify(s.Selected(), dnd.Payload{ID: dnd.ItemID("D"), Source: dnd.ZoneAvailable}, &target)

	if err := s.Apply(op); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff([]string{"A", "D", "B", "C"}, s.Selected()); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
	if len(s.Available()) != 0 {
		t.Errorf("available = %v, want empty", s.Available())
	}
}

func TestApplyMoveAppends(t *testing.T) {
	s := mustSelection(t, []string{"D"}, []string{"A", "B"})

	target := dnd.ZoneTarget(dnd.SelectedZoneID)
	op := dnd.Classify(s.Selected(), dnd.Payload{ID: dnd.ItemID("D"), Source: dnd.ZoneAvailable}, &target)

	if err := s.Apply(op); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff([]string{"A", "B", "D"}, s.Selected()); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
	if len(s.Available()) != 0 {
		t.Errorf("available = %v, want empty", s.Available())
	}
}

func TestApplyMoveWithinZoneSendsToEnd(t *testing.T) {
	s := mustSelection(t, nil, []string{"A", "B", "C"})

	target := dnd.ZoneTarget(dnd.SelectedZoneID)
	op := dnd.Classify(s.Selected(), dnd.Payload{ID: dnd.ItemID("A"), Source: dnd.ZoneSelected}, &target)

	if err := s.Apply(op); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff([]string{"B", "C", "A"}, s.Selected()); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyMoveToAvailable(t *testing.T) {
	s := mustSelection(t, []string{"D"}, []string{"A", "B"})

	target := dnd.ZoneTarget(dnd.AvailableZoneID)
	op := dnd.Classify(s.Selected(), dnd.Payload{ID: dnd.ItemID("B"), Source: dnd.ZoneSelected}, &target)

	if err := s.Apply(op); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if diff := cmp.Diff([]string{"A"}, s.Selected()); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"D", "B"}, s.Available()); diff != "" {
		t.Errorf("available mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyNoOpLeavesStateUntouched(t *testing.T) {
	s := mustSelection(t, []string{"D"}, []string{"A", "B"})

	op := dnd.Classify(s.Selected(), dnd.Payload{ID: dnd.ItemID("A"), Source: dnd.ZoneSelected}, nil)
	if err := s.Apply(op); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if diff := cmp.Diff([]string{"A", "B"}, s.Selected()); diff != "" {
		t.Errorf("selected mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"D"}, s.Available()); diff != "" {
		t.Errorf("available mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyRejectsStaleReorder(t *testing.T) {
	s := mustSelection(t, nil, []string{"A", "B", "C"})

	// Operation computed against an older selected list.
	op := dnd.Operation{
		Kind:     dnd.OpReorder,
		Column:   "Z",
		Source:   dnd.ZoneSelected,
		OldIndex: 1,
		NewIndex: 0,
		Result:   []string{"Z", "A", "B"},
	}

	if err := s.Apply(op); !errors.Is(err, ErrStaleOperation) {
		t.Errorf("Apply() error = %v, want ErrStaleOperation", err)
	}
	if diff := cmp.Diff([]string{"A", "B", "C"}, s.Selected()); diff != "" {
		t.Errorf("selected changed on rejected operation (-want +got):\n%s", diff)
	}
}

func TestApplyRejectsMoveWithoutDestination(t *testing.T) {
	s := mustSelection(t, []string{"D"}, []string{"A", "B"})

	// A move that never resolved a destination zone. The rejection must
	// leave the column in its original zone.
	op := dnd.Operation{Kind: dnd.OpMove, Column: "A", Source: dnd.ZoneSelected}

	if err := s.Apply(op); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("Apply() error = %v, want ErrUnknownColumn", err)
	}
	if diff := cmp.Diff([]string{"A", "B"}, s.Selected()); diff != "" {
		t.Errorf("selected changed on rejected move (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"D"}, s.Available()); diff != "" {
		t.Errorf("available changed on rejected move (-want +got):\n%s", diff)
	}
}

func TestApplyRejectsStaleInsert(t *testing.T) {
	s := mustSelection(t, []string{"D"}, []string{"A", "B"})

	op := dnd.Operation{
		Kind:   dnd.OpInsert,
		Column: "X", // not in available
		Source: dnd.ZoneAvailable,
		Index:  0,
		Result: []string{"X", "A", "B"},
	}

	if err := s.Apply(op); !errors.Is(err, ErrStaleOperation) {
		t.Errorf("Apply() error = %v, want ErrStaleOperation", err)
	}
}

func TestMoveUpDown(t *testing.T) {
	s := mustSelection(t, nil, []string{"A", "B", "C"})

	if !s.MoveUp("B") {
		t.Fatal("MoveUp(B) = false, want true")
	}
	if diff := cmp.Diff([]string{"B", "A", "C"}, s.Selected()); diff != "" {
		t.Errorf("after MoveUp (-want +got):\n%s", diff)
	}

	if s.MoveUp("B") {
		t.Error("MoveUp on first column should return false")
	}
	if s.MoveDown("C") {
		t.Error("MoveDown on last column should return false")
	}

	if !s.MoveDown("A") {
		t.Fatal("MoveDown(A) = false, want true")
	}
	if diff := cmp.Diff([]string{"B", "C", "A"}, s.Selected()); diff != "" {
		t.Errorf("after MoveDown (-want +got):\n%s", diff)
	}
}

func TestDefaultSelectionDisjoint(t *testing.T) {
	s := DefaultSelection()

	seen := make(map[string]string)
	for _, name := range s.Selected() {
		seen[name] = "selected"
	}
	for _, name := range s.Available() {
		if zone, dup := seen[name]; dup {
			t.Errorf("column %q in both available and %s", name, zone)
		}
	}

	total := len(s.Selected()) + len(s.Available())
	if total != len(Definitions()) {
		t.Errorf("zones cover %d columns, want %d", total, len(Definitions()))
	}
}

func TestReset(t *testing.T) {
	s := DefaultSelection()
	if err := s.Apply(dnd.Operation{
		Kind:   dnd.OpMove,
		Column: "TrialId",
		Source: dnd.ZoneSelected,
		Dest:   dnd.ZoneAvailable,
	}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	s.Reset()
	def := DefaultSelection()
	if diff := cmp.Diff(def.Selected(), s.Selected()); diff != "" {
		t.Errorf("selected after Reset (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(def.Available(), s.Available()); diff != "" {
		t.Errorf("available after Reset (-want +got):\n%s", diff)
	}
}
