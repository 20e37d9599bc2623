package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/trialiris/iris/internal/config"
)

type HelpProps struct {
	Keys  config.KeyMappings
	Width int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderHelp renders the keymap reference as markdown.
func RenderHelp(props HelpProps) string {
	md := helpMarkdown(props.Keys)

	renderer, err := getRenderer(props.Width)
	if err == nil {
		if rendered, err := renderer.Render(md); err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return md
}

func helpMarkdown(k config.KeyMappings) string {
	grab := k.Grab
	if grab == " " {
		grab = "space"
	}
	return fmt.Sprintf(`# Iris

## Grid

| Key | Action |
|-----|--------|
| %s / %s | move between rows |
| %s | toggle checked on the current rule |
| %s | edit the current rule's code override |
| / | filter rows (enter keeps the filter, esc clears it) |
| %s | open the column selector |

## Column selector

| Key | Action |
|-----|--------|
| %s / %s | move the cursor |
| %s | switch between Available and Selected |
| %s | grab the column under the cursor, or drop it on the highlighted item |
| %s | drop the grabbed column at the end of the focused list |
| %s / %s | nudge the column under the cursor up or down |
| %s | reset columns to the default layout |
| esc | cancel a grab, or close the selector |

## General

| Key | Action |
|-----|--------|
| %s | this screen |
| %s | quit |
`,
		k.NextRow, k.PrevRow,
		k.ToggleChecked,
		k.EditOverride,
		k.ToggleSelector,
		k.NextItem, k.PrevItem,
		k.SwitchZone,
		grab,
		k.DropOnZone,
		k.MoveColumnUp, k.MoveColumnDown,
		k.ResetColumns,
		k.ShowHelp,
		k.Quit,
	)
}
