package overlays

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/config"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/pricing"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/ui/components"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

// settingsRow is one line of the settings list. Headers are skipped by the
// cursor. A row either cycles (choice/bool) or is edited as text.
type settingsRow struct {
	header string
	label  string
	value  string
	cycle  func(dir int)
	edit   func() (initial string, apply func(string) error)
	model  string // set on model pricing rows
}

// SettingsOverlay edits the backend settings (pricing, privacy,
// notifications) and the local client config.
type SettingsOverlay struct {
	tr      *i18n.Translator
	cfg     config.Config
	cfgPath string

	settings api.Settings
	models   pricing.Table
	loaded   bool
	loadErr  error

	rows   []settingsRow
	cursor int
	column int // on model rows: 0 name, 1 input, 2 output
	scroll int

	input   Input
	onInput func(string) error
	status  string
	saving  bool

	animTick uint
}

var intervalOptions = []string{"5", "10", "15", "30", "60", "120"}

func NewSettingsOverlay(tr *i18n.Translator, cfg config.Config, cfgPath string) *SettingsOverlay {
	s := &SettingsOverlay{tr: tr, cfg: cfg, cfgPath: cfgPath, settings: api.DefaultSettings()}
	s.models = pricing.Table{}
	s.buildRows()
	return s
}

func (s *SettingsOverlay) SetAnimTick(tick uint) { s.animTick = tick }

// SetRemote installs the backend settings. On failure the defaults stay in
// place and a notice is shown.
func (s *SettingsOverlay) SetRemote(st *api.Settings, err error) {
	s.loaded = true
	s.loadErr = err
	if err == nil && st != nil {
		s.settings = *st
	}
	s.models = pricing.Table(s.settings.Pricing.Models).Clone()
	if err != nil {
		s.status = theme.DangerStyle.Render(s.tr.T(i18n.FailedToLoad))
	}
	s.buildRows()
}

// ApplyOfficial merges or replaces the model table with official prices.
func (s *SettingsOverlay) ApplyOfficial(official map[string]api.ModelPrice, replace bool, err error) {
	if err != nil {
		s.status = theme.DangerStyle.Render(s.tr.T(i18n.OfficialFailed))
		return
	}
	if replace {
		s.models.Replace(official)
		s.status = theme.SuccessStyle.Render(s.tr.T(i18n.OfficialReplaced))
	} else {
		n := s.models.MergeMissing(official)
		s.status = theme.SuccessStyle.Render(fmt.Sprintf("%s (+%d)", s.tr.T(i18n.OfficialMerged), n))
	}
	s.buildRows()
}

// SaveDone reports the outcome of a save started with "w".
func (s *SettingsOverlay) SaveDone(err error) {
	s.saving = false
	if err == nil {
		s.status = theme.SuccessStyle.Render(s.tr.T(i18n.SettingsSaved))
	}
}

// Settings returns the edited backend settings.
func (s *SettingsOverlay) Settings() api.Settings {
	out := s.settings
	out.Pricing.Models = s.models.Clone()
	return out
}

func (s *SettingsOverlay) Config() config.Config { return s.cfg }

func cycleString(options []string, cur string, dir int) string {
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	return options[(idx+dir+len(options))%len(options)]
}

func onOff(b bool) string {
	if b {
		return "[x]"
	}
	return "[ ]"
}

func floatEdit(p *float64) func() (string, func(string) error) {
	return func() (string, func(string) error) {
		return strconv.FormatFloat(*p, 'f', -1, 64), func(v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid number %q", v)
			}
			*p = f
			return nil
		}
	}
}

func (s *SettingsOverlay) buildRows() {
	tr := s.tr
	cfg := &s.cfg
	st := &s.settings

	rows := []settingsRow{
		{header: tr.T(i18n.DashboardSettings)},
		{
			label: tr.T(i18n.LanguageLabel), value: cfg.General.Language,
			cycle: func(dir int) {
				cfg.General.Language = cycleString([]string{"en", "zh"}, cfg.General.Language, dir)
			},
		},
		{
			label: tr.T(i18n.RefreshInterval), value: strconv.Itoa(cfg.General.Interval),
			cycle: func(dir int) {
				n, _ := strconv.Atoi(cycleString(intervalOptions, strconv.Itoa(cfg.General.Interval), dir))
				cfg.General.Interval = n
			},
		},
		{
			label: tr.T(i18n.TimeRangeLabel), value: cfg.Period().Label(tr),
			cycle: func(dir int) {
				opts := make([]string, len(viewmodel.Periods))
				for i, p := range viewmodel.Periods {
					opts[i] = string(p)
				}
				cfg.General.Period = cycleString(opts, string(cfg.Period()), dir)
			},
		},
		{
			label: tr.T(i18n.Unit), value: cfg.Equivalent().Label(tr),
			cycle: func(dir int) {
				cfg.General.Equivalent = cycleString([]string{"coffee", "jianbing", "meal", "hotpot"}, cfg.Equivalent().String(), dir)
			},
		},
		{
			label: tr.T(i18n.BaseURL), value: cfg.Server.BaseURL,
			edit: func() (string, func(string) error) {
				return cfg.Server.BaseURL, func(v string) error {
					next := *cfg
					next.Server.BaseURL = strings.TrimSpace(v)
					if err := next.Validate(); err != nil {
						return err
					}
					cfg.Server.BaseURL = next.Server.BaseURL
					return nil
				}
			},
		},

		{header: tr.T(i18n.PricingCurrencySettings)},
		{label: tr.T(i18n.UsdToCnyExchangeRate), value: strconv.FormatFloat(st.Pricing.ExchangeRate, 'f', -1, 64), edit: floatEdit(&st.Pricing.ExchangeRate)},
		{label: tr.T(i18n.CoffeePrice), value: strconv.FormatFloat(st.Pricing.Equivalents.Coffee, 'f', -1, 64), edit: floatEdit(&st.Pricing.Equivalents.Coffee)},
		{label: tr.T(i18n.JianbingPrice), value: strconv.FormatFloat(st.Pricing.Equivalents.Jianbing, 'f', -1, 64), edit: floatEdit(&st.Pricing.Equivalents.Jianbing)},
		{label: tr.T(i18n.MealPrice), value: strconv.FormatFloat(st.Pricing.Equivalents.Meal, 'f', -1, 64), edit: floatEdit(&st.Pricing.Equivalents.Meal)},
		{label: tr.T(i18n.HotpotPrice), value: strconv.FormatFloat(st.Pricing.Equivalents.Hotpot, 'f', -1, 64), edit: floatEdit(&st.Pricing.Equivalents.Hotpot)},

		{header: tr.T(i18n.ModelPricingConfiguration)},
	}
	for _, name := range s.models.Names() {
		rows = append(rows, settingsRow{model: name})
	}

	method := st.Privacy.SimilarityMethod
	if method == "" {
		method = "hash"
	}
	methodLabel := tr.T(i18n.HashBased)
	if method == "text" {
		methodLabel = tr.T(i18n.TextBased)
	}
	rows = append(rows,
		settingsRow{header: tr.T(i18n.PrivacySecuritySettings)},
		settingsRow{
			label: tr.T(i18n.StoreRequestContent), value: onOff(st.Privacy.StoreRequestContent),
			cycle: func(int) { st.Privacy.StoreRequestContent = !st.Privacy.StoreRequestContent },
		},
		settingsRow{
			label: tr.T(i18n.SimilarityDetectionMethod), value: methodLabel,
			cycle: func(dir int) { st.Privacy.SimilarityMethod = cycleString([]string{"hash", "text"}, method, dir) },
		},
		settingsRow{
			label: tr.T(i18n.CacheTTL), value: strconv.Itoa(st.Privacy.CacheTTLSeconds),
			edit: func() (string, func(string) error) {
				return strconv.Itoa(st.Privacy.CacheTTLSeconds), func(v string) error {
					n, err := strconv.Atoi(strings.TrimSpace(v))
					if err != nil || n < 0 {
						return fmt.Errorf("invalid ttl %q", v)
					}
					st.Privacy.CacheTTLSeconds = n
					return nil
				}
			},
		},
		settingsRow{
			label: tr.T(i18n.AnonymizeProjectIDs), value: onOff(st.Privacy.AnonymizeProjectID),
			cycle: func(int) { st.Privacy.AnonymizeProjectID = !st.Privacy.AnonymizeProjectID },
		},

		settingsRow{header: tr.T(i18n.Notifications)},
		settingsRow{
			label: tr.T(i18n.EmailNotifications), value: onOff(st.Notification.EmailNotifications),
			cycle: func(int) { st.Notification.EmailNotifications = !st.Notification.EmailNotifications },
		},
		settingsRow{
			label: tr.T(i18n.SlackNotifications), value: onOff(st.Notification.SlackNotifications),
			cycle: func(int) { st.Notification.SlackNotifications = !st.Notification.SlackNotifications },
		},
		settingsRow{
			label: tr.T(i18n.WebhookEnabled), value: onOff(st.Notification.WebhookEnabled),
			cycle: func(int) { st.Notification.WebhookEnabled = !st.Notification.WebhookEnabled },
		},
	)

	s.rows = rows
	if s.cursor >= len(rows) || s.cursor < 0 || rows[s.cursor].header != "" {
		s.cursor = s.nextSelectable(min(max(s.cursor, 0), len(rows)-1), 1)
	}
}

func (s *SettingsOverlay) nextSelectable(from, dir int) int {
	for i := from; i >= 0 && i < len(s.rows); i += dir {
		if s.rows[i].header == "" {
			return i
		}
	}
	for i := from; i >= 0 && i < len(s.rows); i -= dir {
		if s.rows[i].header == "" {
			return i
		}
	}
	return 0
}

func (s *SettingsOverlay) current() settingsRow {
	if s.cursor < 0 || s.cursor >= len(s.rows) {
		return settingsRow{}
	}
	return s.rows[s.cursor]
}

func (s *SettingsOverlay) startInput(prompt, initial string, apply func(string) error) {
	s.input.Start(prompt, initial)
	s.onInput = apply
}

// Update handles a key. closed reports that the overlay should be dismissed.
func (s *SettingsOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if s.input.Active {
		submitted, _ := s.input.Update(msg)
		if submitted && s.onInput != nil {
			if err := s.onInput(s.input.Value); err != nil {
				s.status = theme.DangerStyle.Render(err.Error())
			} else {
				s.status = ""
			}
			s.buildRows()
		}
		return false, nil
	}

	row := s.current()
	switch msg.String() {
	case "esc":
		return true, nil
	case "j", "down":
		if s.cursor < len(s.rows)-1 {
			s.cursor = s.nextSelectable(s.cursor+1, 1)
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor = s.nextSelectable(s.cursor-1, -1)
		}
	case "h", "left":
		if row.model != "" {
			s.column = max(0, s.column-1)
		} else if row.cycle != nil {
			row.cycle(-1)
			s.buildRows()
		}
	case "l", "right", " ":
		if row.model != "" {
			s.column = min(2, s.column+1)
		} else if row.cycle != nil {
			row.cycle(1)
			s.buildRows()
		}
	case "enter", "e":
		switch {
		case row.model != "":
			s.editModel(row.model)
		case row.edit != nil:
			initial, apply := row.edit()
			s.startInput(row.label+": ", initial, apply)
		case row.cycle != nil:
			row.cycle(1)
			s.buildRows()
		}
	case "a":
		s.startInput(s.tr.T(i18n.ModelName)+": ", "", func(v string) error {
			name, err := s.models.Add(v)
			if err == nil {
				s.selectModel(name)
			}
			return err
		})
	case "R":
		if row.model != "" {
			s.column = 0
			s.editModel(row.model)
		}
	case "x":
		if row.model != "" {
			_ = s.models.Delete(row.model)
			s.buildRows()
		}
	case "o":
		return false, func() tea.Msg { return LoadOfficialMsg{Replace: false} }
	case "O":
		return false, func() tea.Msg { return LoadOfficialMsg{Replace: true} }
	case "w":
		return false, s.save()
	}
	return false, nil
}

func (s *SettingsOverlay) selectModel(name string) {
	s.buildRows()
	for i, r := range s.rows {
		if r.model == name {
			s.cursor = i
		}
	}
}

func (s *SettingsOverlay) editModel(name string) {
	price := s.models[name]
	switch s.column {
	case 0:
		s.startInput(s.tr.T(i18n.ModelName)+": ", name, func(v string) error {
			next := strings.TrimSpace(v)
			if err := s.models.Rename(name, next); err != nil {
				return err
			}
			s.selectModel(next)
			return nil
		})
	case 1:
		s.startInput(s.tr.T(i18n.InputPrice)+": ", strconv.FormatFloat(price.Input, 'f', -1, 64), func(v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || f < 0 {
				return fmt.Errorf("invalid price %q", v)
			}
			return s.models.SetInput(name, f)
		})
	case 2:
		s.startInput(s.tr.T(i18n.OutputPrice)+": ", strconv.FormatFloat(price.Output, 'f', -1, 64), func(v string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || f < 0 {
				return fmt.Errorf("invalid price %q", v)
			}
			return s.models.SetOutput(name, f)
		})
	}
}

// save writes the local config and asks the App to POST the backend settings.
func (s *SettingsOverlay) save() tea.Cmd {
	if err := s.cfg.Validate(); err != nil {
		s.status = theme.DangerStyle.Render(err.Error())
		return nil
	}
	settings := s.Settings()
	if err := settings.Validate(); err != nil {
		s.status = theme.DangerStyle.Render(err.Error())
		return nil
	}
	s.saving = true

	cmds := []tea.Cmd{func() tea.Msg { return SaveSettingsMsg{Settings: settings} }}
	if s.cfgPath != "" {
		if err := config.Save(s.cfg, s.cfgPath); err != nil {
			s.status = theme.DangerStyle.Render(err.Error())
		}
	}
	cfg := s.cfg
	cmds = append(cmds, func() tea.Msg { return ConfigChangedMsg{Config: cfg} })
	return tea.Batch(cmds...)
}

func (s *SettingsOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.PulseText(s.tr.T(i18n.Settings), s.animTick)

	boxWidth := min(72, width-4)
	inner := boxWidth - 6
	labelW := 30

	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
	valueStyle := lipgloss.NewStyle().Foreground(theme.ColorBlue).Background(bg)
	activeLabel := lipgloss.NewStyle().Foreground(theme.ColorAmber).Bold(true).Background(bg)
	activeValue := lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true).Background(bg)
	sectionStyle := lipgloss.NewStyle().Foreground(theme.ColorAmber).Background(bg).Underline(true)

	var lines []string
	if !s.loaded {
		lines = append(lines, theme.MutedStyle.Render("  "+s.tr.T(i18n.Loading)))
	}
	for i, r := range s.rows {
		if r.header != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, "  "+sectionStyle.Render(r.header))
			continue
		}
		sel := i == s.cursor
		arrow := "  "
		if sel {
			arrow = activeLabel.Render("> ")
		}
		if r.model != "" {
			lines = append(lines, "  "+arrow+s.renderModelRow(r.model, sel, inner-4))
			continue
		}
		ls, vs := labelStyle, valueStyle
		if sel {
			ls, vs = activeLabel, activeValue
		}
		lines = append(lines, "  "+arrow+ls.Render(components.PadRight(r.label, labelW))+vs.Render(" "+r.value))
	}

	// Keep the cursor in view.
	visible := max(5, height-12)
	if len(lines) > visible {
		pos := s.cursorLine(lines)
		if pos < s.scroll {
			s.scroll = pos
		}
		if pos >= s.scroll+visible {
			s.scroll = pos - visible + 1
		}
		s.scroll = min(s.scroll, len(lines)-visible)
		lines = lines[s.scroll : s.scroll+visible]
	}

	footer := s.tr.T(i18n.SettingsHelp)
	if s.input.Active {
		footer = s.input.View()
	}
	content := title + "\n\n" + strings.Join(lines, "\n") + "\n\n"
	if s.status != "" {
		content += s.status + "\n"
	}
	content += lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(footer)

	return theme.CardStyle.Width(boxWidth).Render(content)
}

// cursorLine maps the cursor row to its rendered line index.
func (s *SettingsOverlay) cursorLine(lines []string) int {
	n := 0
	if !s.loaded {
		n++
	}
	for i, r := range s.rows {
		if r.header != "" && i > 0 {
			n++
		}
		if i == s.cursor {
			return n
		}
		n++
	}
	return min(n, len(lines)-1)
}

func (s *SettingsOverlay) renderModelRow(name string, selected bool, width int) string {
	price := s.models[name]
	cells := []string{
		components.PadRight(name, max(12, width-24)),
		components.PadLeft(strconv.FormatFloat(price.Input, 'f', -1, 64), 10),
		components.PadLeft(strconv.FormatFloat(price.Output, 'f', -1, 64), 10),
	}
	base := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(theme.ColorCardBg)
	hot := lipgloss.NewStyle().Foreground(theme.ColorBaseBg).Background(theme.ColorAmber).Bold(true)
	for i := range cells {
		if selected && i == s.column {
			cells[i] = hot.Render(cells[i])
		} else {
			cells[i] = base.Render(cells[i])
		}
	}
	return strings.Join(cells, "  ")
}
