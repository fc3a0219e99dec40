package components

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/theme"
)

// UsageDonut draws a project's usage breakdown as a braille donut with a
// legend of whole percentages and USD amounts. Slices are expected to carry
// normalized percentages that sum to 100.
type UsageDonut struct {
	Slices []api.UsageSlice
	Size   int    // chart width in cells; height is half of it
	Empty  string // shown when nothing is left to draw
	Others string // label for the grouped tail
}

// minArcPixels keeps thin slices visible on the braille grid.
const minArcPixels = 4.0

func (d UsageDonut) Render() string {
	palette := theme.ChartColors
	slices := d.visibleSlices(len(palette))
	if len(slices) == 0 {
		return theme.MutedStyle.Render("  " + d.Empty)
	}

	size := max(d.Size, 8)
	canvas := NewBrailleCanvas(size, max(size/2, 4))
	cx := float64(canvas.PixelWidth()) / 2
	cy := float64(canvas.PixelHeight()) / 2
	outer := math.Min(cx, cy) - 0.5

	start := 0.0
	for i, share := range arcShares(slices, outer) {
		end := math.Min(start+share*2*math.Pi, 2*math.Pi)
		if end-start < 0.001 {
			continue
		}
		canvas.DrawRing(cx, cy, outer, outer*0.45, start, end, min(i, len(palette)-1))
		start = end
	}

	chart := canvas.Render(palette, theme.ColorDonutTrack)
	return strings.Join(JoinHorizontal([][]string{chart, d.legend(slices, palette)}, 3), "\n")
}

// visibleSlices drops empty categories, orders the rest largest first and
// folds everything past limit-1 into one Others slice.
func (d UsageDonut) visibleSlices(limit int) []api.UsageSlice {
	var out []api.UsageSlice
	for _, s := range d.Slices {
		if s.Percentage > 0 || s.Value > 0 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Percentage > out[j].Percentage })
	if len(out) <= limit {
		return out
	}

	name := d.Others
	if name == "" {
		name = "Others"
	}
	rest := api.UsageSlice{Name: name}
	for _, s := range out[limit-1:] {
		rest.Value += s.Value
		rest.Percentage += s.Percentage
	}
	return append(out[:limit-1:limit-1], rest)
}

// arcShares converts percentages to fractions of the circle, widening any
// slice thinner than minArcPixels at radius and taking the difference from
// the largest one. The legend keeps the real figures.
func arcShares(slices []api.UsageSlice, radius float64) []float64 {
	shares := make([]float64, len(slices))
	var total float64
	for i, s := range slices {
		shares[i] = s.Percentage
		total += s.Percentage
	}
	if total <= 0 {
		// Values without percentages: one even ring.
		for i := range shares {
			shares[i] = 1 / float64(len(shares))
		}
		return shares
	}
	for i := range shares {
		shares[i] /= total
	}
	if len(shares) == 1 {
		return shares
	}

	floor := minArcPixels / radius / (2 * math.Pi)
	largest, deficit := 0, 0.0
	for i, s := range shares {
		if s > shares[largest] {
			largest = i
		}
		if s > 0 && s < floor {
			deficit += floor - s
			shares[i] = floor
		}
	}
	shares[largest] -= deficit
	return shares
}

func (d UsageDonut) legend(slices []api.UsageSlice, palette []string) []string {
	nameW, pctW, costW := 0, 0, 0
	pcts := make([]string, len(slices))
	costs := make([]string, len(slices))
	for i, s := range slices {
		pcts[i] = fmt.Sprintf("%d%%", int(math.Round(s.Percentage)))
		costs[i] = FormatUSD(s.Value)
		nameW = max(nameW, lipgloss.Width(s.Name))
		pctW = max(pctW, len(pcts[i]))
		costW = max(costW, len(costs[i]))
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText)
	lines := make([]string, len(slices))
	for i, s := range slices {
		color := palette[min(i, len(palette)-1)]
		figures := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		lines[i] = ColoredSquare(color) + " " + nameStyle.Render(PadRight(s.Name, nameW)) + "  " +
			figures.Render(PadLeft(pcts[i], pctW)) + "  " + figures.Render(PadLeft(costs[i], costW))
	}
	return lines
}
