package dnd

// Source is the drag-source half of a drop event: the payload that was
// attached when the gesture started.
type Source struct {
	Data Payload
}

// Interpreter consumes drag-lifecycle events for one gesture at a time and
// reports the classified operation of each completed drop through
// OnOperation.
//
// Only Drop affects classification. DragStart, DragEnter and DragLeave feed
// transient visual state (what is being dragged, what is hovered) that the
// rendering layer reads for styling; classification never consults it.
type Interpreter struct {
	// OnOperation is invoked at most once per completed gesture with the
	// classified result, including no-ops. May be nil.
	OnOperation func(Operation)

	dragging *Payload
	hover    *Target
}

// DragStart begins a gesture. The event source guarantees a new drag cannot
// start while another is in flight.
func (i *Interpreter) DragStart(p Payload) {
	i.dragging = &p
	i.hover = nil
}

// DragEnter records the target the pointer moved over.
func (i *Interpreter) DragEnter(t Target) {
	if i.dragging == nil {
		return
	}
	i.hover = &t
}

// DragLeave clears the hover state if it matches the departed target.
func (i *Interpreter) DragLeave(t Target) {
	if i.hover == nil {
		return
	}
	if i.hover.Kind == t.Kind && i.hover.ID == t.ID && i.hover.ZoneID == t.ZoneID {
		i.hover = nil
	}
}

// Drop ends the gesture: it resolves the drop target, classifies the result
// against the current selected list, resets transient state, and notifies
// OnOperation. An empty target list is the cancelled-gesture path and
// classifies as a no-op.
func (i *Interpreter) Drop(selected []string, src Source, targets []Target) Operation {
	op := Classify(selected, src.Data, Resolve(targets))

	i.dragging = nil
	i.hover = nil

	if i.OnOperation != nil {
		i.OnOperation(op)
	}
	return op
}

// Dragging returns the payload of the in-flight gesture, or nil when idle.
func (i *Interpreter) Dragging() *Payload {
	return i.dragging
}

// Hover returns the target currently under the pointer, or nil.
func (i *Interpreter) Hover() *Target {
	return i.hover
}
