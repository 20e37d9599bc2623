// Package components provides reusable UI components and styles.
// Call InitStyles() after theme initialization to populate the style
// variables.
package components

import (
	"charm.land/lipgloss/v2"

	"github.com/trialiris/iris/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle renders zone and grid headers
	TitleStyle lipgloss.Style

	// ZoneStyle is the border box around each selector zone
	ZoneStyle lipgloss.Style

	// DropZoneStyle marks a zone the in-flight drag can land in
	DropZoneStyle lipgloss.Style

	// CursorStyle marks the item under the selector cursor
	CursorStyle lipgloss.Style

	// DraggingStyle marks the item currently being dragged
	DraggingStyle lipgloss.Style

	// HoverStyle marks the drop anchor under the drag
	HoverStyle lipgloss.Style

	// SubtleStyle renders muted helper text
	SubtleStyle lipgloss.Style

	// SelectedRowStyle highlights the current grid row
	SelectedRowStyle lipgloss.Style

	// HeaderRowStyle renders the grid header line
	HeaderRowStyle lipgloss.Style

	// EditorBoxStyle frames the code-override editor dialog
	EditorBoxStyle lipgloss.Style
)

// InitStyles initializes all component styles from the current theme.
func InitStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	ZoneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ZoneBorder)).
		Padding(0, 1)

	DropZoneStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.DropBorder)).
		Padding(0, 1)

	CursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Bold(true)

	DraggingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.DraggingFg)).
		Italic(true)

	HoverStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.HoverBg)).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	SelectedRowStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(theme.SelectedBg)).
		Foreground(lipgloss.Color(theme.Title))

	HeaderRowStyle = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(theme.Title))

	EditorBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Padding(0, 1)
}

func init() {
	InitStyles()
}
