package components

import (
	"strings"

	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar renders the bottom status bar: key hints on the left and a
// transient message on the right.
type StatusBar struct {
	Width   int
	Tr      *i18n.Translator
	Message string // pre-styled
}

// Render returns the status bar: separator + key hints.
func (s StatusBar) Render() string {
	keys := s.renderKeyHints()
	if s.Message != "" {
		gap := s.Width - lipgloss.Width(keys) - lipgloss.Width(s.Message) - 2
		if gap >= 2 {
			keys += strings.Repeat(" ", gap) + s.Message
		}
	}
	sep := theme.MutedStyle.Render(strings.Repeat("─", s.Width))
	return sep + "\n" + keys
}

func (s StatusBar) renderKeyHints() string {
	return KeyHints(
		Hint{"?", s.Tr.T(i18n.StatusHelp)},
		Hint{"s", s.Tr.T(i18n.StatusSettings)},
		Hint{"L", s.Tr.T(i18n.StatusLanguage)},
		Hint{"r", s.Tr.T(i18n.StatusRefresh)},
		Hint{"q", s.Tr.T(i18n.StatusQuit)},
	)
}
