package dnd

// Classification rules, in order:
//
//  1. no resolved target            -> no-op
//  2. item target, selected->item   -> reorder (both indices must resolve)
//  3. item target, available->item  -> insert at the target's index
//  4. any zone container match      -> move with append semantics
//  5. otherwise                     -> no-op
//
// The zone rule runs even when an item-level guard failed, so releasing an
// available item over a selected item that has since disappeared still lands
// in the selected container. The single exception is dropping an item onto
// itself, which is always a no-op.

// Classify turns one completed drop into an Operation. The selected list is
// read-only input; reorder and insert results are returned as fresh slices.
func Classify(selected []string, p Payload, t *Target) Operation {
	if t == nil {
		return Operation{Kind: OpNone}
	}

	column := StripItemID(p.ID)

	if t.Kind == TargetItem {
		target := StripItemID(t.ID)

		switch {
		case target == column:
			// Dropping an item onto itself never moves it, even when
			// the surrounding container also matched the drop.
			return Operation{Kind: OpNone, Column: column, Source: p.Source}

		case p.Source == ZoneSelected:
			oldIdx := indexOf(selected, column)
			newIdx := indexOf(selected, target)
			if oldIdx >= 0 && newIdx >= 0 {
				return Operation{
					Kind:     OpReorder,
					Column:   column,
					Source:   p.Source,
					OldIndex: oldIdx,
					NewIndex: newIdx,
					Result:   relocate(selected, oldIdx, newIdx),
				}
			}

		case p.Source == ZoneAvailable:
			if idx := indexOf(selected, target); idx >= 0 {
				return Operation{
					Kind:   OpInsert,
					Column: column,
					Source: p.Source,
					Index:  idx,
					Result: insertAt(selected, column, idx),
				}
			}
		}
	}

	if t.ZoneID != "" {
		if dest, ok := ZoneForContainer(t.ZoneID); ok {
			return Operation{
				Kind:   OpMove,
				Column: column,
				Source: p.Source,
				Dest:   dest,
			}
		}
	}

	return Operation{Kind: OpNone, Column: column, Source: p.Source}
}

// Resolve picks the drop target for a gesture from the list of elements the
// pointer was over at release time. First match wins; an empty list means the
// pointer was released over nothing.
func Resolve(targets []Target) *Target {
	if len(targets) == 0 {
		return nil
	}
	t := targets[0]
	return &t
}

// indexOf returns the index of name in list, or -1 when absent.
func indexOf(list []string, name string) int {
	for i, v := range list {
		if v == name {
			return i
		}
	}
	return -1
}

// relocate removes the element at oldIdx and re-inserts it at newIdx.
// This is a single-element move, not a swap: everything after the removal
// point shifts left by one before the insertion.
func relocate(list []string, oldIdx, newIdx int) []string {
	out := make([]string, 0, len(list))
	out = append(out, list[:oldIdx]...)
	out = append(out, list[oldIdx+1:]...)

	out = append(out, "")
	copy(out[newIdx+1:], out[newIdx:])
	out[newIdx] = list[oldIdx]
	return out
}

// insertAt splices name into list at idx; elements at and after idx shift
// right by one.
func insertAt(list []string, name string, idx int) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, list[:idx]...)
	out = append(out, name)
	out = append(out, list[idx:]...)
	return out
}
