package theme

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base palette: instrument-panel amber on graphite.
var (
	ColorAmber  = lipgloss.Color("#d4a019") // primary
	ColorGreen  = lipgloss.Color("#4ade80")
	ColorOrange = lipgloss.Color("#f97316")
	ColorBlue   = lipgloss.Color("#3b82f6")
	ColorPink   = lipgloss.Color("#ec4899")
	ColorViolet = lipgloss.Color("#8b5cf6")
	ColorRed    = lipgloss.Color("#ef4444")
	ColorTeal   = lipgloss.Color("#14b8a6")
)

// Background tones (dark theme)
var (
	ColorBaseBg     = lipgloss.Color("#16171b")
	ColorCardBg     = lipgloss.Color("#1e1f24")
	ColorElevatedBg = lipgloss.Color("#272830")
	ColorBorder     = lipgloss.Color("#3a3b44")
	ColorMutedText  = lipgloss.Color("#7a7c88")
	ColorBodyText   = lipgloss.Color("#cfd0d6")
	ColorBrightText = lipgloss.Color("#f1f1f4")
)

// ChartColors assigns series colors in order; series beyond the end wrap.
var ChartColors = []string{
	"#d4a019", "#4ade80", "#f97316", "#3b82f6",
	"#ec4899", "#8b5cf6", "#ef4444", "#14b8a6",
}

// ChartColor returns the color for series i.
func ChartColor(i int) string {
	if i < 0 {
		i = -i
	}
	return ChartColors[i%len(ChartColors)]
}

// MeterGradient runs green (under budget) through amber to red (over budget).
var MeterGradient = []string{
	"#4ade80",
	"#a3c94a",
	"#d4a019",
	"#f97316",
	"#ef4444",
}

// levelColors index by activity level 0..4.
var levelColors = [...]lipgloss.Color{
	"#7a7c88", // info
	"#3b82f6", // notice
	"#d4a019", // similar
	"#f97316", // high similarity
	"#ef4444", // rate limited
}

// LevelColor returns the severity color for an activity level.
func LevelColor(level int) lipgloss.Color {
	if level < 0 || level >= len(levelColors) {
		return ColorMutedText
	}
	return levelColors[level]
}

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// GradientText applies a gradient color across a string.
func GradientText(text, fromHex, toHex string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text) * 20)
	style := lipgloss.NewStyle()
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		color := LerpColor(fromHex, toHex, t)
		sb.WriteString(style.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// TitleText renders a section title in the amber-to-orange accent.
func TitleText(text string) string {
	return GradientText(text, "#d4a019", "#f97316")
}

// PulseText renders text whose amber brightness pulses with tick.
// tick advances once per blink (250ms).
func PulseText(text string, tick uint) string {
	t := (math.Sin(float64(tick)*math.Pi/4) + 1) / 2
	color := LerpColor("#8a6a14", "#ffd166", t)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(text)
}

// MultiStopGradient interpolates through multiple color stops.
func MultiStopGradient(t float64, stops []string) string {
	if len(stops) < 2 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	segments := len(stops) - 1
	segment := int(t * float64(segments))
	if segment >= segments {
		segment = segments - 1
	}
	localT := t*float64(segments) - float64(segment)

	return LerpColor(stops[segment], stops[segment+1], localT)
}

// Semantic colors
var (
	ColorOverlayBg  = lipgloss.Color("#0c0c10")
	ColorGaugeDim   = "#2c2d36" // unlit meter arc (raw hex for Braille canvas)
	ColorDonutTrack = "#33343e" // dim dots of the usage donut
	ColorGridLine   = "#2c2d36"
)

// Common styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	AlertStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(ColorRed).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAmber)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	DangerStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)
)
