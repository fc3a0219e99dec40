package components

import (
	"strings"

	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// BigDigits maps each glyph of a dollar amount to 5-line block art.
// Digits are 5 cells wide; punctuation is narrower.
var BigDigits = map[rune][]string{
	'0': {"█▀▀▀█", "█   █", "█   █", "█   █", "█▄▄▄█"},
	'1': {"  ▄█ ", "   █ ", "   █ ", "   █ ", "  ▄█▄"},
	'2': {"▀▀▀▀█", "    █", "█▀▀▀▀", "█    ", "█▄▄▄▄"},
	'3': {"▀▀▀▀█", "    █", " ▀▀▀█", "    █", "▄▄▄▄█"},
	'4': {"█   █", "█   █", "▀▀▀▀█", "    █", "    █"},
	'5': {"█▀▀▀▀", "█    ", "▀▀▀▀█", "    █", "▄▄▄▄█"},
	'6': {"█▀▀▀▀", "█    ", "█▀▀▀█", "█   █", "█▄▄▄█"},
	'7': {"▀▀▀▀█", "    █", "   █ ", "  █  ", "  █  "},
	'8': {"█▀▀▀█", "█   █", "█▀▀▀█", "█   █", "█▄▄▄█"},
	'9': {"█▀▀▀█", "█   █", "▀▀▀▀█", "    █", "▄▄▄▄█"},
	'$': {"▄█▀▀▀", "▀█▄▄ ", "  ▀█▄", "▄▄▄█▀", " ▀█  "},
	'.': {" ", " ", " ", " ", "▄"},
	',': {" ", " ", " ", " ", "▜"},
	'-': {"   ", "   ", "▀▀▀", "   ", "   "},
}

// BigValue renders a short numeric string such as "$12.35" in block digits.
// Runes without a glyph are skipped.
type BigValue struct {
	Text     string
	Caption  string
	Width    int
	Gradient []string // optional; defaults to amber
}

// Lines returns the 5 glyph rows followed by the caption, centered.
func (b BigValue) Lines() []string {
	stops := b.Gradient
	if len(stops) == 0 {
		stops = []string{"#d4a019", "#f97316"}
	}

	var glyphs [][]string
	for _, r := range b.Text {
		if g, ok := BigDigits[r]; ok {
			glyphs = append(glyphs, g)
		}
	}

	rows := make([]string, 5)
	for i, g := range glyphs {
		t := float64(i) / float64(max(len(glyphs)-1, 1))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.MultiStopGradient(t, stops))).Bold(true)
		for row := range rows {
			if i > 0 {
				rows[row] += " "
			}
			rows[row] += style.Render(g[row])
		}
	}

	lines := make([]string, 0, 7)
	for _, r := range rows {
		lines = append(lines, CenterText(r, b.Width))
	}
	if b.Caption != "" {
		lines = append(lines, "", CenterText(theme.MutedStyle.Render(b.Caption), b.Width))
	}
	return lines
}

func (b BigValue) Render() string { return strings.Join(b.Lines(), "\n") }
