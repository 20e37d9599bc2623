package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/trialiris/iris/internal/tui/state"
	"github.com/trialiris/iris/internal/tui/theme"
)

type StatusBarProps struct {
	Width        int
	Trial        string // registry id of the trial under the grid cursor
	Filter       string // row filter indicator, empty when no filter
	Notification *state.Notification
}

// RenderStatusBar renders the bottom status line.
// Left side: app name plus the trial under the cursor, or the latest
// notification when one is pending. Right side: help hint.
func RenderStatusBar(props StatusBarProps) string {
	leftText := "Iris - Trial Criteria"
	if props.Trial != "" {
		leftText += " · " + props.Trial
	}
	if props.Filter != "" {
		leftText += " · " + props.Filter
	}
	rightText := "press ? for help"

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	leftRendered := style.Render(leftText)

	if props.Notification != nil {
		fg, bg := theme.InfoFg, theme.InfoBg
		if props.Notification.Level == state.LevelError {
			fg, bg = theme.ErrorFg, theme.ErrorBg
		}
		leftRendered = lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)).
			Background(lipgloss.Color(bg)).
			Padding(0, 1).
			Render(props.Notification.Message)
	}

	rightRendered := style.Render(rightText)

	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
