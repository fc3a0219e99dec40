package components

import (
	"math"
	"strings"

	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// Series is one named line of a LineChart; Values align with the chart labels.
type Series struct {
	Name   string
	Values []float64
}

// LineChart draws series as braille polylines with a y-axis, date labels and
// a legend.
type LineChart struct {
	Series []Series
	Labels []string // x-axis labels, one per point
	Width  int      // total width including axis
	Height int      // plot rows
	Note   string   // optional muted line under the legend
}

const axisWidth = 8

// MaxValue is the largest value across all series, or 0.
func (lc LineChart) MaxValue() float64 {
	m := 0.0
	for _, s := range lc.Series {
		for _, v := range s.Values {
			m = math.Max(m, v)
		}
	}
	return m
}

// Render returns the chart block.
func (lc LineChart) Render() string {
	plotW := max(lc.Width-axisWidth-1, 4)
	plotH := max(lc.Height, 3)

	canvas := NewBrailleCanvas(plotW, plotH)
	pw, ph := canvas.PixelWidth(), canvas.PixelHeight()

	top := lc.MaxValue()
	if top <= 0 {
		top = 1
	}
	n := len(lc.Labels)
	xOf := func(i int) int {
		if n <= 1 {
			return 0
		}
		return int(math.Round(float64(i) * float64(pw-1) / float64(n-1)))
	}
	yOf := func(v float64) int {
		return ph - 1 - int(math.Round(v/top*float64(ph-1)))
	}

	// Baseline in the grid color.
	for x := 0; x < pw; x += 2 {
		canvas.Set(x, ph-1, -1)
	}

	for si, s := range lc.Series {
		color := si % len(theme.ChartColors)
		for i := range min(len(s.Values), n) {
			x, y := xOf(i), yOf(s.Values[i])
			if i == 0 {
				canvas.Set(x, y, color)
				continue
			}
			canvas.DrawLine(xOf(i-1), yOf(s.Values[i-1]), x, y, color)
		}
	}

	plot := canvas.Render(theme.ChartColors, theme.ColorGridLine)

	axisStyle := theme.MutedStyle
	var lines []string
	for row, l := range plot {
		label := ""
		switch row {
		case 0:
			label = FormatAxis(top)
		case len(plot) / 2:
			label = FormatAxis(top / 2)
		case len(plot) - 1:
			label = FormatAxis(0)
		}
		lines = append(lines, axisStyle.Render(PadLeft(label, axisWidth-1)+" ┤")+l)
	}
	lines = append(lines, strings.Repeat(" ", axisWidth+1)+axisStyle.Render(lc.xAxis(plotW)))
	if legend := lc.legend(); legend != "" {
		lines = append(lines, "", legend)
	}
	if lc.Note != "" {
		lines = append(lines, axisStyle.Render("  "+lc.Note))
	}
	return strings.Join(lines, "\n")
}

// xAxis spreads labels across width, dropping labels that would overlap.
func (lc LineChart) xAxis(width int) string {
	row := []rune(strings.Repeat(" ", width))
	n := len(lc.Labels)
	next := 0
	for i, label := range lc.Labels {
		pos := 0
		if n > 1 {
			pos = i * (width - 1) / (n - 1)
		}
		r := []rune(label)
		start := min(pos, width-len(r))
		if start < next || start < 0 {
			continue
		}
		copy(row[start:], r)
		next = start + len(r) + 1
	}
	return string(row)
}

func (lc LineChart) legend() string {
	if len(lc.Series) == 0 {
		return ""
	}
	var parts []string
	for i, s := range lc.Series {
		hex := theme.ChartColor(i)
		parts = append(parts, ColoredSquare(hex)+" "+lipgloss.NewStyle().Foreground(theme.ColorBodyText).Render(s.Name))
	}
	return "  " + strings.Join(parts, "   ")
}
