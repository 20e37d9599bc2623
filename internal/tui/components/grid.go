package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trialiris/iris/internal/columns"
	"github.com/trialiris/iris/internal/models"
)

// GridProps carries one frame of the criterion grid.
type GridProps struct {
	Columns []string // visible column names, in display order
	Rows    []*models.CriterionRow

	SelectedRow int
	RowOffset   int
	Visible     int // rows that fit on screen
	Width       int
}

const (
	thinWidth    = 4
	defaultWidth = 14
)

// RenderGrid renders the criterion grid: a header line followed by one line
// per visible row, selection highlighted.
func RenderGrid(props GridProps) string {
	if len(props.Columns) == 0 {
		return SubtleStyle.Render("no columns selected, press c to open the column selector")
	}

	widths := columnWidths(props.Columns)

	var b strings.Builder
	b.WriteString(HeaderRowStyle.Render(renderRowLine(props.Columns, widths, headerCell)))
	b.WriteString("\n")

	if len(props.Rows) == 0 {
		b.WriteString(SubtleStyle.Render("no criteria loaded, run: iris import <file>"))
		return b.String()
	}

	end := min(props.RowOffset+max(props.Visible, 1), len(props.Rows))
	for i := props.RowOffset; i < end; i++ {
		row := props.Rows[i]
		line := renderRowLine(props.Columns, widths, func(name string) string {
			return CellValue(row, name)
		})
		if i == props.SelectedRow {
			line = SelectedRowStyle.Render(line)
		}
		b.WriteString(line)
		if i != end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// columnWidths resolves a rendered width for each visible column.
func columnWidths(names []string) []int {
	widths := make([]int, len(names))
	for i, name := range names {
		def, ok := columns.Lookup(name)
		switch {
		case ok && def.Width > 0:
			widths[i] = def.Width
		case ok && def.Thin:
			widths[i] = thinWidth
		default:
			widths[i] = defaultWidth
		}
	}
	return widths
}

func renderRowLine(names []string, widths []int, cell func(string) string) string {
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = pad(cell(name), widths[i])
	}
	return strings.Join(parts, " ")
}

func headerCell(name string) string {
	def, ok := columns.Lookup(name)
	if ok && def.Thin {
		// Thin columns get an abbreviated header so the grid stays narrow.
		return abbreviate(columns.DisplayName(name), thinWidth)
	}
	return columns.DisplayName(name)
}

// CellValue formats one cell for a row. Criterion kind columns render a
// check when the row's category matches the column. The row filter matches
// against the same values the grid displays.
func CellValue(row *models.CriterionRow, name string) string {
	switch name {
	case "TrialId":
		return row.Trial
	case "Cohort":
		return row.Cohort
	case "RuleNum":
		return strconv.Itoa(row.RuleNum)
	case "RuleId":
		return row.RuleID
	case "Description":
		return row.Description
	case "Checked":
		return checkmark(row.Checked)
	case "Code":
		return row.EffectiveCode()
	case "Error":
		return row.Error
	case "LlmCode":
		return row.LlmCode
	case "OverrideCode":
		return row.OverrideCode
	default:
		return checkmark(row.Kind == name)
	}
}

func checkmark(on bool) string {
	if on {
		return "✓"
	}
	return ""
}

// pad truncates or right-pads s to exactly width cells.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return fmt.Sprintf("%-*s", width, s)
}

func abbreviate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
