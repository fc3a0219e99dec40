package overlays

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/ui/components"
	"github.com/Casper-hue/api-watchdog/internal/ui/views"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

// WarningsOverlay lists the warnings of the last 24 hours and lets the
// user report false positives.
type WarningsOverlay struct {
	tr       *i18n.Translator
	items    []viewmodel.ActivityItem
	total    int
	loaded   bool
	err      error
	cursor   int
	reported map[string]bool
	animTick uint
}

func NewWarningsOverlay(tr *i18n.Translator) *WarningsOverlay {
	return &WarningsOverlay{tr: tr, reported: make(map[string]bool)}
}

func (w *WarningsOverlay) SetAnimTick(tick uint) { w.animTick = tick }

func (w *WarningsOverlay) SetWarnings(list *api.WarningList, err error) {
	w.loaded, w.err = true, err
	w.items, w.total = nil, 0
	if list != nil {
		w.items = viewmodel.MapWarnings(list.Warnings)
		w.total = max(list.TotalCount, len(w.items))
	}
	w.cursor = max(0, min(w.cursor, len(w.items)-1))
}

// MarkReported records a submitted false-positive report.
func (w *WarningsOverlay) MarkReported(id string) { w.reported[id] = true }

func (w *WarningsOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc", "w", "q":
		return true, nil
	case "j", "down":
		if w.cursor < len(w.items)-1 {
			w.cursor++
		}
	case "k", "up":
		if w.cursor > 0 {
			w.cursor--
		}
	case "f":
		if w.cursor < len(w.items) {
			item := w.items[w.cursor]
			if item.CanFeedback && !w.reported[item.ID] {
				return false, func() tea.Msg { return SubmitFeedbackMsg{Item: item} }
			}
		}
	}
	return false, nil
}

func (w *WarningsOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.PulseText(w.tr.T(i18n.WarningsLast24h), w.animTick)
	if w.loaded && w.err == nil {
		title += theme.MutedStyle.Render(" · " + components.FormatNumber(w.total))
	}

	boxWidth := min(90, width-4)
	inner := boxWidth - 6

	var lines []string
	switch {
	case !w.loaded:
		lines = append(lines, theme.MutedStyle.Render(w.tr.T(i18n.Loading)))
	case w.err != nil:
		lines = append(lines, theme.DangerStyle.Render(w.tr.T(i18n.FailedToLoad)))
	case len(w.items) == 0:
		lines = append(lines, theme.MutedStyle.Render(w.tr.T(i18n.NoData)))
	}

	visible := max(2, (height-12)/2)
	start := max(0, min(w.cursor-visible/2, len(w.items)-visible))
	for i := start; i < len(w.items) && i < start+visible; i++ {
		item := w.items[i]
		lines = append(lines, views.ActivityLines(item, i == w.cursor, inner, w.tr)...)
		if item.CanFeedback && i == w.cursor && !w.reported[item.ID] {
			lines = append(lines, "     "+theme.AccentStyle.Render("f "+w.tr.T(i18n.ReportFalsePositive)))
		}
		if w.reported[item.ID] {
			lines = append(lines, "     "+theme.SuccessStyle.Render("✓ "+w.tr.T(i18n.FeedbackSent)))
		}
	}

	content := title + "\n\n" + strings.Join(lines, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(w.tr.T(i18n.WarningsHelp))
	return theme.AlertStyle.Width(boxWidth).Render(content)
}
