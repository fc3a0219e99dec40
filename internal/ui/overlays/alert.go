package overlays

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
)

// AlertOverlay is a blocking message dismissed with enter or esc.
type AlertOverlay struct {
	tr      *i18n.Translator
	Message string
}

func NewAlertOverlay(tr *i18n.Translator, message string) *AlertOverlay {
	return &AlertOverlay{tr: tr, Message: message}
}

func (a *AlertOverlay) Update(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "enter", "esc", " ":
		return true
	}
	return false
}

func (a *AlertOverlay) Render(width, height int) string {
	boxWidth := min(60, width-4)
	title := theme.DangerStyle.Render("⚠ " + a.tr.T(i18n.AlertTitle))
	body := lipgloss.NewStyle().
		Foreground(theme.ColorBodyText).
		Background(theme.ColorCardBg).
		Width(boxWidth - 6).
		Render(a.Message)
	hint := lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(theme.ColorCardBg).
		Render(a.tr.T(i18n.PressEnterToDismiss))
	return theme.AlertStyle.Width(boxWidth).Render(title + "\n\n" + body + "\n\n" + hint)
}
