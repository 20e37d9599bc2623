package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trialiris/iris/internal/columns"
	"github.com/trialiris/iris/internal/dnd"
)

// SelectorProps carries everything the column selector overlay needs to
// render one frame. Drag styling is derived from the interpreter's transient
// state; nothing here feeds back into classification.
type SelectorProps struct {
	Available []string
	Selected  []string

	Focus       dnd.Zone
	AvailCursor int
	SelCursor   int

	Dragging *dnd.Payload
	Hover    *dnd.Target

	Width int
}

// RenderSelector renders the dual-list column selector.
//
// Layout:
//
//	Available (n)        Selected (m)
//	  item                 item
//	▸ item               ⇅ item   <- ⇅ marks the dragged column
func RenderSelector(props SelectorProps) string {
	zoneWidth := max(props.Width/2-4, 24)

	available := renderZone(
		"Available", props.Available, dnd.ZoneAvailable, dnd.AvailableZoneID,
		props, zoneWidth,
	)
	selected := renderZone(
		"Selected", props.Selected, dnd.ZoneSelected, dnd.SelectedZoneID,
		props, zoneWidth,
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, available, " ", selected)

	hint := "space: grab/release   tab: switch list   z: drop at end   R: reset   esc: close"
	if props.Dragging != nil {
		hint = fmt.Sprintf("dragging %s   enter: drop on highlighted item   z: drop at end   esc: cancel",
			columns.DisplayName(dnd.StripItemID(props.Dragging.ID)))
	}

	return body + "\n" + SubtleStyle.Render(hint)
}

// renderZone renders one bordered list.
func renderZone(title string, items []string, zone dnd.Zone, containerID string, props SelectorProps, width int) string {
	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", title, len(items)))

	var lines []string
	lines = append(lines, header)

	if len(items) == 0 {
		lines = append(lines, SubtleStyle.Render("  (empty)"))
	}

	cursor := props.SelCursor
	if zone == dnd.ZoneAvailable {
		cursor = props.AvailCursor
	}

	for i, name := range items {
		lines = append(lines, renderItem(name, zone, i == cursor && props.Focus == zone, props))
	}

	content := strings.Join(lines, "\n")

	style := ZoneStyle
	if zoneCanReceiveDrop(zone, containerID, props) {
		style = DropZoneStyle
	}
	return style.Width(width).Render(content)
}

// renderItem renders one column entry with cursor, drag, and hover markers.
func renderItem(name string, zone dnd.Zone, underCursor bool, props SelectorProps) string {
	label := columns.DisplayName(name)

	marker := "  "
	if underCursor {
		marker = "▸ "
	}

	if props.Dragging != nil && dnd.StripItemID(props.Dragging.ID) == name && props.Dragging.Source == zone {
		return DraggingStyle.Render("⇅ " + label)
	}

	if props.Hover != nil && props.Hover.Kind == dnd.TargetItem &&
		dnd.StripItemID(props.Hover.ID) == name && props.Hover.Source == zone {
		return HoverStyle.Render(marker + label)
	}

	if underCursor {
		return CursorStyle.Render(marker + label)
	}
	return marker + label
}

// zoneCanReceiveDrop reports whether the zone border should light up as a
// drop target for the in-flight drag.
func zoneCanReceiveDrop(zone dnd.Zone, containerID string, props SelectorProps) bool {
	if props.Dragging == nil {
		return false
	}
	if props.Hover != nil && props.Hover.ZoneID == containerID {
		return true
	}
	// The focused zone is where item-level drops will land.
	return props.Focus == zone && props.Hover == nil
}
