package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestLineChart_MaxValue(t *testing.T) {
	lc := LineChart{Series: []Series{
		{Name: "a", Values: []float64{1, 4, 2}},
		{Name: "b", Values: []float64{3, 0, 9}},
	}}
	if got := lc.MaxValue(); got != 9 {
		t.Errorf("MaxValue() = %v, want 9", got)
	}
	if got := (LineChart{}).MaxValue(); got != 0 {
		t.Errorf("empty MaxValue() = %v, want 0", got)
	}
}

func TestLineChart_RenderShape(t *testing.T) {
	lc := LineChart{
		Series: []Series{{Name: "gpt-4o", Values: []float64{1, 2, 3, 2, 1, 0, 5}}},
		Labels: []string{"01-01", "01-02", "01-03", "01-04", "01-05", "01-06", "01-07"},
		Width:  60,
		Height: 6,
		Note:   "estimated",
	}
	out := lc.Render()
	lines := strings.Split(out, "\n")
	// 6 plot rows + x axis + blank + legend + note
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10:\n%s", len(lines), out)
	}
	for i := 0; i < 6; i++ {
		if w := lipgloss.Width(lines[i]); w != 60 {
			t.Errorf("plot row %d width = %d, want 60", i, w)
		}
	}
	if !strings.Contains(lines[0], "$5.00") {
		t.Errorf("top axis label missing: %q", lines[0])
	}
	if !strings.Contains(out, "gpt-4o") || !strings.Contains(out, "estimated") {
		t.Error("legend or note missing")
	}
}

func TestLineChart_XAxisDropsOverlaps(t *testing.T) {
	lc := LineChart{Labels: []string{"01-01", "01-02", "01-03", "01-04"}}
	got := lc.xAxis(12)
	if len([]rune(got)) != 12 {
		t.Fatalf("axis width = %d", len([]rune(got)))
	}
	if !strings.HasPrefix(got, "01-01") {
		t.Errorf("first label missing: %q", got)
	}
	if strings.Count(got, "-") > 2 {
		t.Errorf("labels overlap: %q", got)
	}
}

func TestLineChart_EmptySeries(t *testing.T) {
	out := LineChart{Labels: []string{"a", "b"}, Width: 30, Height: 3}.Render()
	if strings.Contains(out, "■") {
		t.Error("legend rendered without series")
	}
}
