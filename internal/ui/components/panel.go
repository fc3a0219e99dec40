package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/theme"
)

// Panel is a rounded box with its title set into the top border:
//
//	╭─ Title · note ───────── badge ─╮
//	│ body                           │
//	╰────────────────────────────────╯
//
// The badge is dropped when the top border has no room for it.
type Panel struct {
	Title  string
	Note   string // muted, after the title
	Badge  string // pre-styled, right side of the top border
	Width  int
	Body   string
	Active bool // highlighted border
}

// InnerWidth is the usable width for Body lines.
func (p Panel) InnerWidth() int { return p.Width - 4 }

func (p Panel) Render() string {
	color := theme.ColorBorder
	if p.Active {
		color = theme.ColorAmber
	}
	edge := lipgloss.NewStyle().Foreground(color)
	inner := max(p.InnerWidth(), 0)

	lines := []string{p.top(edge, inner)}
	for _, line := range strings.Split(p.Body, "\n") {
		if lipgloss.Width(line) > inner {
			line = clip(line, inner)
		}
		lines = append(lines, edge.Render("│")+" "+PadRight(line, inner)+" "+edge.Render("│"))
	}
	lines = append(lines, edge.Render("╰"+strings.Repeat("─", inner+2)+"╯"))
	return strings.Join(lines, "\n")
}

func (p Panel) top(edge lipgloss.Style, inner int) string {
	var head string
	if p.Title != "" {
		head = theme.TitleText(p.Title)
		if p.Note != "" {
			head += theme.MutedStyle.Render(" · " + p.Note)
		}
		head = " " + head + " "
	}
	if lipgloss.Width(head) > inner {
		head = clip(head, inner)
	}

	var badge string
	if p.Badge != "" {
		badge = " " + p.Badge + " "
	}
	dashes := inner - lipgloss.Width(head) - lipgloss.Width(badge)
	if dashes < 1 {
		dashes += lipgloss.Width(badge)
		badge = ""
	}
	return edge.Render("╭─") + head + edge.Render(strings.Repeat("─", max(dashes, 0))) + badge + edge.Render("─╮")
}

func clip(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
