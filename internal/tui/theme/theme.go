package theme

import "github.com/trialiris/iris/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Title          string
	ZoneBorder     string
	DropBorder     string
	DraggingFg     string
	HoverBg        string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	ZoneBorder = colors.ZoneBorder
	DropBorder = colors.DropBorder
	DraggingFg = colors.DraggingFg
	HoverBg = colors.HoverBg
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}

func init() {
	// Sensible colors even if Init is never called (tests, tooling)
	Init(config.DefaultColorScheme())
}
