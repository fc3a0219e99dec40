package components

import (
	"strings"

	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

var (
	rowEvenStyle = lipgloss.NewStyle()
	rowOddStyle  = lipgloss.NewStyle().Background(theme.ColorElevatedBg)
	cursorStyle  = lipgloss.NewStyle().Foreground(theme.ColorAmber)
	cursorActive = cursorStyle.Render("▶ ")
	cursorBlank  = "  "
	colHeadStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText).Bold(true)
)

// RowBackground returns a subtle background style for alternating rows.
// Even rows (0, 2, 4...) get no background, odd rows get ElevatedBg.
func RowBackground(index int) lipgloss.Style {
	if index%2 == 1 {
		return rowOddStyle
	}
	return rowEvenStyle
}

// CursorIndicator returns "▶ " in amber if selected, "  " otherwise.
func CursorIndicator(selected bool) string {
	if selected {
		return cursorActive
	}
	return cursorBlank
}

// Column describes one fixed-width table column. Numeric columns are
// right-aligned.
type Column struct {
	Title   string
	Width   int
	Numeric bool
}

func (c Column) cell(s string) string {
	if lipgloss.Width(s) > c.Width {
		s = lipgloss.NewStyle().MaxWidth(c.Width).Render(s)
	}
	if c.Numeric {
		return PadLeft(s, c.Width)
	}
	return PadRight(s, c.Width)
}

// HeaderRow renders column titles.
func HeaderRow(cols []Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = colHeadStyle.Render(c.cell(c.Title))
	}
	return cursorBlank + strings.Join(parts, "  ")
}

// Row renders one data row; cells beyond len(cols) are ignored.
func Row(cols []Column, cells []string, index int, selected bool) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		parts[i] = c.cell(v)
	}
	return CursorIndicator(selected) + RowBackground(index).Render(strings.Join(parts, "  "))
}
