package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func fill(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// PadRight pads s with spaces to width terminal cells.
func PadRight(s string, width int) string {
	return s + fill(width-lipgloss.Width(s))
}

// PadLeft right-aligns s in width terminal cells.
func PadLeft(s string, width int) string {
	return fill(width-lipgloss.Width(s)) + s
}

// CenterText centers a single line; the odd cell goes to the right.
func CenterText(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return fill(gap/2) + s + fill(gap-gap/2)
}

// JoinHorizontal lays blocks of lines side by side, gap cells apart. Short
// blocks are padded with blank lines so every row has the same width.
func JoinHorizontal(blocks [][]string, gap int) []string {
	rows := 0
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		rows = max(rows, len(b))
		for _, line := range b {
			widths[i] = max(widths[i], lipgloss.Width(line))
		}
	}

	out := make([]string, rows)
	for r := range rows {
		cols := make([]string, len(blocks))
		for i, b := range blocks {
			line := ""
			if r < len(b) {
				line = b[r]
			}
			cols[i] = PadRight(line, widths[i])
		}
		out[r] = strings.Join(cols, fill(gap))
	}
	return out
}

// ColoredSquare is the legend marker for a chart color.
func ColoredSquare(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}
