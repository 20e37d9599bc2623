package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Grid
	NextRow       string `yaml:"next_row"`
	PrevRow       string `yaml:"prev_row"`
	ToggleChecked string `yaml:"toggle_checked"`
	EditOverride  string `yaml:"edit_override"`

	// Column selector
	ToggleSelector string `yaml:"toggle_selector"`
	NextItem       string `yaml:"next_item"`
	PrevItem       string `yaml:"prev_item"`
	SwitchZone     string `yaml:"switch_zone"`
	Grab           string `yaml:"grab"`
	DropOnZone     string `yaml:"drop_on_zone"`
	MoveColumnUp   string `yaml:"move_column_up"`
	MoveColumnDown string `yaml:"move_column_down"`
	ResetColumns   string `yaml:"reset_columns"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Grid
		NextRow:       "j",
		PrevRow:       "k",
		ToggleChecked: "x",
		EditOverride:  "o",

		// Column selector
		ToggleSelector: "c",
		NextItem:       "j",
		PrevItem:       "k",
		SwitchZone:     "tab",
		Grab:           " ",
		DropOnZone:     "z",
		MoveColumnUp:   "K",
		MoveColumnDown: "J",
		ResetColumns:   "R",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	def := DefaultKeyMappings()
	if k.NextRow == "" {
		k.NextRow = def.NextRow
	}
	if k.PrevRow == "" {
		k.PrevRow = def.PrevRow
	}
	if k.ToggleChecked == "" {
		k.ToggleChecked = def.ToggleChecked
	}
	if k.EditOverride == "" {
		k.EditOverride = def.EditOverride
	}
	if k.ToggleSelector == "" {
		k.ToggleSelector = def.ToggleSelector
	}
	if k.NextItem == "" {
		k.NextItem = def.NextItem
	}
	if k.PrevItem == "" {
		k.PrevItem = def.PrevItem
	}
	if k.SwitchZone == "" {
		k.SwitchZone = def.SwitchZone
	}
	if k.Grab == "" {
		k.Grab = def.Grab
	}
	if k.DropOnZone == "" {
		k.DropOnZone = def.DropOnZone
	}
	if k.MoveColumnUp == "" {
		k.MoveColumnUp = def.MoveColumnUp
	}
	if k.MoveColumnDown == "" {
		k.MoveColumnDown = def.MoveColumnDown
	}
	if k.ResetColumns == "" {
		k.ResetColumns = def.ResetColumns
	}
	if k.ShowHelp == "" {
		k.ShowHelp = def.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = def.Quit
	}
}
