// Package dnd classifies completed drag gestures over the column selector's
// two zones into concrete list operations. It is pure data-in/data-out: the
// authoritative column lists are owned by the caller and are never mutated
// here.
package dnd

import "strings"

// Zone identifies one of the two logical containers an item can live in.
type Zone string

const (
	// ZoneAvailable holds columns not currently shown in the grid.
	ZoneAvailable Zone = "available"
	// ZoneSelected holds the ordered columns shown in the grid.
	ZoneSelected Zone = "selected"
)

// ItemIDPrefix is prepended to raw column names when items are registered
// with the drag source, so item ids never collide with container ids.
const ItemIDPrefix = "col-"

// Container ids for whole-zone drop targets. These are distinct literals,
// unrelated to item ids.
const (
	AvailableZoneID = "available-columns"
	SelectedZoneID  = "selected-columns"
)

// ItemID returns the drag-source id for a column name.
func ItemID(column string) string {
	return ItemIDPrefix + column
}

// StripItemID recovers the column name from a drag-source item id.
// Ids without the synthetic prefix are returned unchanged; lookups on them
// simply fail and the gesture degrades to a no-op.
func StripItemID(id string) string {
	return strings.TrimPrefix(id, ItemIDPrefix)
}

// ZoneForContainer maps a zone container id to its Zone.
func ZoneForContainer(id string) (Zone, bool) {
	switch id {
	case AvailableZoneID:
		return ZoneAvailable, true
	case SelectedZoneID:
		return ZoneSelected, true
	}
	return "", false
}

// Payload is the ephemeral value attached to a drag session when a gesture
// starts on an item. It is consumed exactly once, when the gesture ends.
type Payload struct {
	ID     string // prefixed item id of the dragged column
	Source Zone   // zone the item was picked up from
}

// TargetKind discriminates the two shapes of drop target.
type TargetKind int

const (
	// TargetItem means the pointer was released over a specific item,
	// which anchors insertion or reordering.
	TargetItem TargetKind = iota
	// TargetZone means the pointer was released over a whole container,
	// with append semantics.
	TargetZone
)

// Target describes what the pointer is over at release time.
//
// An item target may additionally carry the container id of the zone it sits
// in (ZoneID); the zone rule is evaluated independently of item-level
// matching, so a drop whose item-level guards fail can still land in the
// surrounding container.
type Target struct {
	Kind   TargetKind
	ID     string // item targets: prefixed item id
	Source Zone   // item targets: zone the target item lives in
	ZoneID string // zone container id, when a container matched
}

// ItemTarget builds a drop target anchored on a specific item.
func ItemTarget(column string, zone Zone) Target {
	return Target{Kind: TargetItem, ID: ItemID(column), Source: zone}
}

// ZoneTarget builds a whole-container drop target.
func ZoneTarget(containerID string) Target {
	return Target{Kind: TargetZone, ZoneID: containerID}
}

// OpKind discriminates the classified result of a gesture.
type OpKind int

const (
	// OpNone means the gesture resolved to nothing and state is unchanged.
	OpNone OpKind = iota
	// OpReorder relocates a column within the selected list.
	OpReorder
	// OpInsert moves a column from available into selected at an index.
	OpInsert
	// OpMove moves a column into a zone with append semantics.
	OpMove
)

// Operation is the classified outcome of one completed drag gesture.
//
// For OpReorder and OpInsert, Result holds the would-be selected list so the
// host can apply or reject the change atomically. OpMove carries no index;
// the host appends at the end of Dest.
type Operation struct {
	Kind   OpKind
	Column string // raw column name, prefix already stripped
	Source Zone   // zone the column was dragged from

	OldIndex int // OpReorder: index the column is leaving
	NewIndex int // OpReorder: index the column lands on
	Index    int // OpInsert: insertion index in selected

	Dest Zone // OpMove: destination zone

	Result []string // OpReorder/OpInsert: resulting selected list
}

// IsNone reports whether the operation leaves all state unchanged.
func (o Operation) IsNone() bool {
	return o.Kind == OpNone
}
