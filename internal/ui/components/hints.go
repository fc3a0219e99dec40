package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/theme"
)

// Hint pairs a key with what it does.
type Hint struct {
	Key, Desc string
}

var hintColors = []lipgloss.Color{
	theme.ColorBlue,
	theme.ColorTeal,
	theme.ColorViolet,
	theme.ColorPink,
	theme.ColorAmber,
}

// KeyHints renders hints on one indented line, keys bold and cycling
// through the accent colors.
func KeyHints(hints ...Hint) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		key := lipgloss.NewStyle().Foreground(hintColors[i%len(hintColors)]).Bold(true)
		parts[i] = key.Render(h.Key) + " " + theme.MutedStyle.Render(h.Desc)
	}
	return "  " + strings.Join(parts, "  ")
}
