package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// UI element colors
	ZoneBorder     string `yaml:"zone_border"`
	DropBorder     string `yaml:"drop_border"`     // border of the zone a drag can land in
	DraggingFg     string `yaml:"dragging_fg"`     // the item being dragged
	HoverBg        string `yaml:"hover_bg"`        // item currently under the drag
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Accent:         "205",
		ZoneBorder:     "240",
		DropBorder:     "35",
		DraggingFg:     "213",
		HoverBg:        "57",
		SelectedBorder: "205",
		SelectedBg:     "236",
		Title:          "230",
		Subtle:         "240",
		Normal:         "252",
		InfoFg:         "230",
		InfoBg:         "24",
		ErrorFg:        "230",
		ErrorBg:        "124",
	}
}

// MergeFrom overrides this scheme's values with any non-empty values from
// other.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.ZoneBorder != "" {
		c.ZoneBorder = other.ZoneBorder
	}
	if other.DropBorder != "" {
		c.DropBorder = other.DropBorder
	}
	if other.DraggingFg != "" {
		c.DraggingFg = other.DraggingFg
	}
	if other.HoverBg != "" {
		c.HoverBg = other.HoverBg
	}
	if other.SelectedBorder != "" {
		c.SelectedBorder = other.SelectedBorder
	}
	if other.SelectedBg != "" {
		c.SelectedBg = other.SelectedBg
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
	if other.InfoFg != "" {
		c.InfoFg = other.InfoFg
	}
	if other.InfoBg != "" {
		c.InfoBg = other.InfoBg
	}
	if other.ErrorFg != "" {
		c.ErrorFg = other.ErrorFg
	}
	if other.ErrorBg != "" {
		c.ErrorBg = other.ErrorBg
	}
}

// applyDefaults fills in missing color values with the default scheme
func (c *ColorScheme) applyDefaults() {
	def := DefaultColorScheme()
	def.MergeFrom(*c)
	*c = def
}
