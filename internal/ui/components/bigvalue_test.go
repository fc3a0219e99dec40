package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBigValue_GlyphRowsAligned(t *testing.T) {
	for r, g := range BigDigits {
		if len(g) != 5 {
			t.Fatalf("glyph %q has %d rows", r, len(g))
		}
		w := lipgloss.Width(g[0])
		for i, row := range g {
			if lipgloss.Width(row) != w {
				t.Errorf("glyph %q row %d width %d, want %d", r, i, lipgloss.Width(row), w)
			}
		}
	}
}

func TestBigValue_Lines(t *testing.T) {
	lines := BigValue{Text: "$12.35", Caption: "total", Width: 60}.Lines()
	if len(lines) != 7 {
		t.Fatalf("len(lines) = %d, want 7", len(lines))
	}
	// $ 1 2 . 3 5 with single spaces between glyphs.
	want := 5 + 5 + 5 + 1 + 5 + 5 + 5
	got := lipgloss.Width(lines[0])
	if got < want {
		t.Errorf("row width = %d, want at least %d", got, want)
	}
}

func TestBigValue_SkipsUnknownRunes(t *testing.T) {
	a := BigValue{Text: "12", Width: 20}.Lines()
	b := BigValue{Text: "1x2", Width: 20}.Lines()
	if a[0] != b[0] {
		t.Errorf("unknown rune changed output:\n%q\n%q", a[0], b[0])
	}
}
