package components

import (
	"fmt"
	"strings"

	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

var (
	statValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
	statEquivStyle = lipgloss.NewStyle().Foreground(theme.ColorAmber)
	statBadgeStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Background(theme.ColorRed).Bold(true).Padding(0, 1)
)

// StatPanel renders one dashboard meter card: title, big value with trend,
// equivalent line and a budget meter.
type StatPanel struct {
	Card    viewmodel.StatCard
	Width   int
	Focused bool
}

func trendText(t *viewmodel.Trend) string {
	if t == nil {
		return ""
	}
	if t.Up {
		return theme.DangerStyle.Render(fmt.Sprintf("▲ %d%%", t.Value))
	}
	return theme.SuccessStyle.Render(fmt.Sprintf("▼ %d%%", t.Value))
}

// Render returns the card wrapped in a Panel.
func (s StatPanel) Render() string {
	c := s.Card
	w := max(s.Width, 16)
	inner := w - 4

	value := statValueStyle.Render(c.Value)
	if tr := trendText(c.Trend); tr != "" {
		value += "  " + tr
	}
	if c.AlertCount > 0 {
		value += "  " + statBadgeStyle.Render(fmt.Sprintf("!%d", c.AlertCount))
	}

	equiv := statLabelStyle.Render(c.EquivalentLabel+" ") + statEquivStyle.Render(c.Equivalent)
	if c.Cyclable && s.Focused {
		equiv += statLabelStyle.Render(" ◂▸")
	}

	lines := []string{
		value,
		equiv,
		MeterBar(c.Meter, inner-5) + " " + PadLeft(statLabelStyle.Render(fmt.Sprintf("%d%%", c.Meter)), 4),
	}

	return Panel{
		Title:  c.Title,
		Width:  w,
		Body:   strings.Join(lines, "\n"),
		Active: s.Focused,
	}.Render()
}

// RenderStatRow renders panels side by side, splitting width evenly.
func RenderStatRow(cards []viewmodel.StatCard, width, focused, gap int) string {
	if len(cards) == 0 {
		return ""
	}
	each := (width - gap*(len(cards)-1)) / len(cards)
	var blocks [][]string
	for i, c := range cards {
		p := StatPanel{Card: c, Width: each, Focused: i == focused}
		blocks = append(blocks, strings.Split(p.Render(), "\n"))
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
