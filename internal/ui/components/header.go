package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/theme"
)

var (
	tabOn = lipgloss.NewStyle().
		Foreground(theme.ColorAmber).
		Background(theme.ColorElevatedBg).
		Bold(true).
		Padding(0, 1)
	tabOff = lipgloss.NewStyle().
		Foreground(theme.ColorMutedText).
		Padding(0, 1)
)

// Header is the top line of the dashboard: brand, numbered view tabs and,
// on the right, the reporting period, the UI language and a pulsing
// recording marker while a backend is connected.
type Header struct {
	Brand     string
	Tabs      []string
	Active    int
	Width     int
	Period    string
	Language  string
	Recording string // hidden when empty
	Tick      uint
}

func (h Header) Render() string {
	left := h.tabs()
	right := h.status()

	line := left
	if gap := h.Width - 2 - lipgloss.Width(left) - lipgloss.Width(right); right != "" && gap > 0 {
		line += strings.Repeat(" ", gap) + right
	}
	row := lipgloss.NewStyle().Width(h.Width).MaxWidth(h.Width).Padding(0, 1).Render(line)
	return row + "\n" + theme.MutedStyle.Render(strings.Repeat("─", max(h.Width, 0)))
}

func (h Header) tabs() string {
	var b strings.Builder
	if h.Brand != "" {
		b.WriteString(theme.TitleText(h.Brand) + "  ")
	}
	for i, name := range h.Tabs {
		style := tabOff
		if i == h.Active {
			style = tabOn
		}
		b.WriteString(style.Render(strconv.Itoa(i+1) + " " + name))
	}
	return b.String()
}

func (h Header) status() string {
	var parts []string
	if h.Period != "" {
		parts = append(parts, theme.AccentStyle.Render(h.Period))
	}
	if h.Language != "" {
		parts = append(parts, theme.MutedStyle.Render(strings.ToUpper(h.Language)))
	}
	if h.Recording != "" {
		parts = append(parts, theme.PulseText("● "+h.Recording, h.Tick))
	}
	return strings.Join(parts, theme.MutedStyle.Render(" · "))
}
