package components

import (
	"strconv"
	"strings"

	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

var gaugeLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorBodyText)

// ScoreGauge renders a 0-100 score as a braille semicircle arc.
type ScoreGauge struct {
	Label string // e.g. "Weekly Efficiency Rating"
	Score int    // 0..100
	Grade string // e.g. "A"
	Width int    // character width of the gauge area
}

// Render returns the gauge as a block of lines.
func (g ScoreGauge) Render() []string {
	w := max(g.Width, 10)

	arcH := min(max(w/4, 3), 6)

	canvas := NewBrailleCanvas(w, arcH)
	cx := float64(canvas.PixelWidth()) / 2
	cy := float64(canvas.PixelHeight()) - 1
	outerR := min(cy, cx-0.5)
	innerR := outerR * 0.62

	score := min(max(g.Score, 0), 100)
	pct := float64(score) / 100
	canvas.DrawArc(cx, cy, outerR, innerR, pct)

	// Green is a high score here, so the meter stops run backwards.
	stops := reversed(theme.MeterGradient)
	arcLines := canvas.RenderGradient(theme.ColorGaugeDim, stops)

	color := theme.MultiStopGradient(pct, stops)
	text := strconv.Itoa(score)
	if g.Grade != "" {
		text = g.Grade + "  " + text
	}
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(text)

	var block []string
	block = append(block, CenterText(gaugeLabelStyle.Render(g.Label), w))
	block = append(block, "")
	block = append(block, arcLines...)
	block = append(block, CenterText(styled, w))
	return block
}

func reversed(stops []string) []string {
	out := make([]string, len(stops))
	for i, s := range stops {
		out[len(stops)-1-i] = s
	}
	return out
}

// MeterBar renders a horizontal bar of width cells filled to percent (0..100),
// colored along the meter gradient.
func MeterBar(percent, width int) string {
	if width < 1 {
		return ""
	}
	percent = min(max(percent, 0), 100)
	filled := percent * width / 100
	if percent > 0 && filled == 0 {
		filled = 1
	}

	var sb strings.Builder
	for i := range width {
		if i >= filled {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorGaugeDim)).Render("━"))
			continue
		}
		t := float64(i) / float64(max(width-1, 1))
		hex := theme.MultiStopGradient(t, theme.MeterGradient)
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("━"))
	}
	return sb.String()
}
