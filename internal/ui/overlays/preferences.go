package overlays

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/ui/components"
)

// PreferencesOverlay edits the budgets and limits the dashboard meters are
// drawn against.
type PreferencesOverlay struct {
	tr       *i18n.Translator
	prefs    api.UserPreferences
	cursor   int
	input    Input
	status   string
	animTick uint
}

func NewPreferencesOverlay(tr *i18n.Translator, prefs api.UserPreferences) *PreferencesOverlay {
	return &PreferencesOverlay{tr: tr, prefs: prefs}
}

func (p *PreferencesOverlay) SetAnimTick(tick uint) { p.animTick = tick }

func (p *PreferencesOverlay) Preferences() api.UserPreferences { return p.prefs }

type prefField struct {
	label i18n.Key
	get   func(api.UserPreferences) string
	set   func(*api.UserPreferences, string) error
}

func parseBudget(v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("invalid amount %q", v)
	}
	return f, nil
}

func parseCount(v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid count %q", v)
	}
	return n, nil
}

var prefFields = []prefField{
	{
		label: i18n.TodayBudget,
		get:   func(p api.UserPreferences) string { return strconv.FormatFloat(p.TodayBudget, 'f', -1, 64) },
		set: func(p *api.UserPreferences, v string) (err error) {
			p.TodayBudget, err = parseBudget(v)
			return err
		},
	},
	{
		label: i18n.WeekBudget,
		get:   func(p api.UserPreferences) string { return strconv.FormatFloat(p.WeekBudget, 'f', -1, 64) },
		set: func(p *api.UserPreferences, v string) (err error) {
			p.WeekBudget, err = parseBudget(v)
			return err
		},
	},
	{
		label: i18n.ActiveProjectsLimit,
		get:   func(p api.UserPreferences) string { return strconv.Itoa(p.ActiveProjLimit) },
		set: func(p *api.UserPreferences, v string) (err error) {
			p.ActiveProjLimit, err = parseCount(v)
			return err
		},
	},
	{
		label: i18n.WarningsCount,
		get:   func(p api.UserPreferences) string { return strconv.Itoa(p.WarningThreshold) },
		set: func(p *api.UserPreferences, v string) (err error) {
			p.WarningThreshold, err = parseCount(v)
			return err
		},
	},
}

func (p *PreferencesOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p.input.Active {
		if submitted, _ := p.input.Update(msg); submitted {
			next := p.prefs
			if err := prefFields[p.cursor].set(&next, p.input.Value); err != nil {
				p.status = theme.DangerStyle.Render(err.Error())
			} else {
				p.prefs, p.status = next, ""
			}
		}
		return false, nil
	}
	switch msg.String() {
	case "esc", "b":
		return true, nil
	case "j", "down":
		p.cursor = min(p.cursor+1, len(prefFields)-1)
	case "k", "up":
		p.cursor = max(p.cursor-1, 0)
	case "enter", "e":
		f := prefFields[p.cursor]
		p.input.Start(p.tr.T(f.label)+": ", f.get(p.prefs))
	case "w":
		prefs := p.prefs
		return true, func() tea.Msg { return SavePreferencesMsg{Prefs: prefs} }
	}
	return false, nil
}

func (p *PreferencesOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.PulseText(p.tr.T(i18n.ConfigureBaselineValues), p.animTick)

	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
	valueStyle := lipgloss.NewStyle().Foreground(theme.ColorBlue).Background(bg)
	activeStyle := lipgloss.NewStyle().Foreground(theme.ColorAmber).Bold(true).Background(bg)

	var rows []string
	for i, f := range prefFields {
		arrow, ls := "  ", labelStyle
		if i == p.cursor {
			arrow, ls = activeStyle.Render("> "), activeStyle
		}
		rows = append(rows, "  "+arrow+ls.Render(components.PadRight(p.tr.T(f.label), 26))+valueStyle.Render(" "+f.get(p.prefs)))
	}

	footer := p.tr.T(i18n.PreferencesHelp)
	if p.input.Active {
		footer = p.input.View()
	}
	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n"
	if p.status != "" {
		content += p.status + "\n"
	}
	content += lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(footer)

	return theme.CardStyle.Width(min(60, width-4)).Render(content)
}
