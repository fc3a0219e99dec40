package overlays

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/ui/components"
)

type HelpOverlay struct {
	tr       *i18n.Translator
	AnimTick uint
}

func NewHelpOverlay(tr *i18n.Translator) *HelpOverlay {
	return &HelpOverlay{tr: tr}
}

func (h *HelpOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.PulseText(h.tr.T(i18n.KeyboardShortcuts), h.AnimTick)

	bindings := []struct {
		key  string
		desc i18n.Key
	}{
		{"1 / 2 / 3", i18n.HelpSwitchViews},
		{"Tab / Shift+Tab", i18n.HelpCycleViews},
		{"", 0},
		{"j / k / Down / Up", i18n.HelpNavigate},
		{"h / l / Enter", i18n.HelpSelect},
		{"Esc", i18n.HelpGoBack},
		{"", 0},
		{"?", i18n.HelpToggleHelp},
		{"s", i18n.HelpOpenSettings},
		{"r", i18n.HelpForceRefresh},
		{"L", i18n.HelpToggleLanguage},
		{"p", i18n.HelpCyclePeriod},
		{"", 0},
		{"e", i18n.HelpCycleEquivalent},
		{"v / [ / ]", i18n.HelpPage},
		{"w", i18n.HelpWarnings},
		{"f", i18n.HelpFeedback},
		{"b", i18n.HelpPreferences},
		{"x", i18n.HelpExportCSV},
		{"a", i18n.HelpNewProject},
		{"d", i18n.HelpDeleteProject},
		{"", 0},
		{"q / Ctrl+C", i18n.HelpQuit},
	}

	maxKeyLen := 0
	for _, b := range bindings {
		maxKeyLen = max(maxKeyLen, len(b.key))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorAmber).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)

	var rows []string
	for _, b := range bindings {
		if b.key == "" {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, "  "+keyStyle.Render(components.PadRight(b.key, maxKeyLen))+descStyle.Render("  "+h.tr.T(b.desc)))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(h.tr.T(i18n.HelpClose))

	boxWidth := 65
	if width < 69 {
		boxWidth = width - 4
	}

	return theme.CardStyle.
		Width(boxWidth).
		Render(content)
}
