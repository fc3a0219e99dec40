package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/ui/components"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

var signKeys = []i18n.Key{
	i18n.FeedTheMachineMessage,
	i18n.AILandlordMessage,
	i18n.CountingCostMessage,
	i18n.AuditingPatriarchyMessage,
	i18n.ManicPixieMessage,
	i18n.NotJudgingMessage,
	i18n.CalculatingDistanceMessage,
	i18n.AnotherDayMessage,
	i18n.PercentProgressMessage,
}

// DashboardView shows the four meter cards, the consumption trend chart and
// the recent activity feed.
type DashboardView struct {
	tr  *i18n.Translator
	now func() time.Time

	Summary    Load[*api.DashboardSummary]
	Trend      Load[*api.ProjectStats]
	Activities Load[[]viewmodel.ActivityItem]
	prefs      api.UserPreferences

	period  viewmodel.Period
	todayEq viewmodel.Equivalent
	weekEq  viewmodel.Equivalent

	focus    int // stat card
	expanded bool
	page     int
	cursor   int // within the visible activities
	sign     int

	AnimTick uint
}

func NewDashboardView(tr *i18n.Translator, period viewmodel.Period, eq viewmodel.Equivalent) *DashboardView {
	return &DashboardView{
		tr:      tr,
		now:     time.Now,
		prefs:   api.DefaultUserPreferences(),
		period:  period,
		todayEq: eq,
		weekEq:  eq.Next(),
	}
}

func (v *DashboardView) SetPeriod(p viewmodel.Period) { v.period = p }

func (v *DashboardView) SetSummary(s *api.DashboardSummary, err error) { v.Summary.Set(s, err) }

func (v *DashboardView) SetTrend(s *api.ProjectStats, err error) { v.Trend.Set(s, err) }

// SetPreferences replaces the meter baselines. A failed load keeps defaults.
func (v *DashboardView) SetPreferences(p *api.UserPreferences) {
	if p != nil {
		v.prefs = *p
	}
}

func (v *DashboardView) Preferences() api.UserPreferences { return v.prefs }

func (v *DashboardView) SetActivities(feed *api.ActivityFeed, err error) {
	var items []viewmodel.ActivityItem
	if feed != nil {
		items = viewmodel.MapActivities(feed.Activities)
	}
	v.Activities.Set(items, err)
	v.clampCursor()
}

// NextSign rotates the tagline under the title.
func (v *DashboardView) NextSign() { v.sign = (v.sign + 1) % len(signKeys) }

func (v *DashboardView) visible() ([]viewmodel.ActivityItem, int) {
	return viewmodel.Page(v.Activities.Data, v.expanded, v.page)
}

func (v *DashboardView) clampCursor() {
	items, pages := v.visible()
	v.page = max(0, min(v.page, pages-1))
	v.cursor = max(0, min(v.cursor, len(items)-1))
}

// Selected returns the activity under the cursor.
func (v *DashboardView) Selected() (viewmodel.ActivityItem, bool) {
	items, _ := v.visible()
	if v.cursor < 0 || v.cursor >= len(items) {
		return viewmodel.ActivityItem{}, false
	}
	return items[v.cursor], true
}

func (v *DashboardView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "h", "left":
		v.focus = (v.focus + 3) % 4
	case "l", "right":
		v.focus = (v.focus + 1) % 4
	case "e":
		switch v.focus {
		case 0:
			v.todayEq = v.todayEq.Next()
		case 1:
			v.weekEq = v.weekEq.Next()
		default:
			return nil
		}
	case "j", "down":
		v.cursor++
		v.clampCursor()
	case "k", "up":
		v.cursor--
		v.clampCursor()
	case "v":
		v.expanded = !v.expanded
		v.page, v.cursor = 0, 0
	case "]", "pgdown":
		if !v.expanded {
			return nil
		}
		v.page++
		v.cursor = 0
		v.clampCursor()
	case "[", "pgup":
		if !v.expanded {
			return nil
		}
		v.page--
		v.cursor = 0
		v.clampCursor()
	case "f":
		item, ok := v.Selected()
		if !ok || !item.CanFeedback {
			return KeyHandledCmd
		}
		return emit(FeedbackMsg{Item: item})
	case "w":
		return emit(OpenWarningsMsg{})
	case "b":
		return emit(OpenPreferencesMsg{})
	case "enter":
		if v.focus == 3 {
			return emit(OpenWarningsMsg{})
		}
		return nil
	case "n":
		v.NextSign()
	default:
		return nil
	}
	return KeyHandledCmd
}

func (v *DashboardView) Render(width, height int, compact bool) string {
	var sections []string

	title := theme.TitleText(strings.ToUpper(v.tr.T(i18n.Dashboard)))
	sign := theme.MutedStyle.Render(v.tr.T(signKeys[v.sign%len(signKeys)]))
	sections = append(sections, "  "+title+"  "+sign)

	sections = append(sections, v.renderCards(width))

	chartH := max(4, height/3)
	if compact {
		chartH = 4
	}
	if width >= 140 {
		half := (width - 1) / 2
		left := strings.Split(v.renderTrend(half, chartH), "\n")
		right := strings.Split(v.renderActivity(width-half-1), "\n")
		sections = append(sections, strings.Join(components.JoinHorizontal([][]string{left, right}, 1), "\n"))
	} else {
		sections = append(sections, v.renderTrend(width, chartH))
		sections = append(sections, v.renderActivity(width))
	}
	return strings.Join(sections, "\n")
}

func (v *DashboardView) renderCards(width int) string {
	if ph := placeholder(v.Summary, v.tr); ph != "" {
		return ph
	}
	s := lo.FromPtr(v.Summary.Data)
	cards := viewmodel.BuildStatCards(s, v.prefs, v.todayEq, v.weekEq, v.tr)
	if width < 100 {
		top := components.RenderStatRow(cards[:2], width, v.focus, 1)
		bottom := components.RenderStatRow(cards[2:], width, v.focus-2, 1)
		return top + "\n" + bottom
	}
	return components.RenderStatRow(cards, width, v.focus, 1)
}

func (v *DashboardView) renderTrend(width, chartH int) string {
	var content string
	if v.Trend.Loaded && v.Trend.Err != nil {
		content = placeholder(v.Trend, v.tr)
	} else {
		content = TrendChart(v.Trend.Data, v.period, v.now(), width-4, chartH, v.tr)
	}
	return components.Panel{
		Title: v.tr.T(i18n.ConsumptionTrends),
		Note:  v.period.TrendTitle(v.tr),
		Width: width,
		Body:  content,
	}.Render()
}

// TrendChart draws the per-model estimated daily costs for stats, falling
// back to a zero line for the period when stats has no trend.
func TrendChart(stats *api.ProjectStats, p viewmodel.Period, now time.Time, width, height int, tr *i18n.Translator) string {
	days := viewmodel.TrendOrEmpty(stats, p, now)
	var models []api.ModelUsage
	if stats != nil {
		models = stats.TopModels
	}
	points := viewmodel.DistributeDaily(days, models)

	labels := lo.Map(points, func(d viewmodel.DailyModelCosts, _ int) string { return d.Date })
	var series []components.Series
	if len(models) == 0 {
		series = []components.Series{{
			Name:   tr.T(i18n.TotalCost),
			Values: lo.Map(points, func(d viewmodel.DailyModelCosts, _ int) float64 { return d.Total }),
		}}
	} else {
		series = lo.Map(models, func(m api.ModelUsage, _ int) components.Series {
			return components.Series{
				Name:   strings.ToUpper(m.Model),
				Values: lo.Map(points, func(d viewmodel.DailyModelCosts, _ int) float64 { return d.Models[m.Model] }),
			}
		})
	}

	note := ""
	if len(models) > 0 {
		note = tr.T(i18n.Estimated)
	}
	return components.LineChart{
		Series: series,
		Labels: labels,
		Width:  width,
		Height: height,
		Note:   note,
	}.Render()
}

func (v *DashboardView) renderActivity(width int) string {
	toggle := i18n.ViewAll
	if v.expanded {
		toggle = i18n.ShowLess
	}
	content := placeholder(v.Activities, v.tr)
	if content == "" {
		content = v.renderFeed(width - 4)
	}
	return components.Panel{
		Title: v.tr.T(i18n.RecentActivity),
		Note:  "v " + v.tr.T(toggle),
		Badge: theme.MutedStyle.Render(strconv.Itoa(len(v.Activities.Data))),
		Width: width,
		Body:  content,
	}.Render()
}

func (v *DashboardView) renderFeed(width int) string {
	if len(v.Activities.Data) == 0 {
		return theme.MutedStyle.Render(v.tr.T(i18n.NoData))
	}
	items, pages := v.visible()
	var lines []string
	for i, item := range items {
		lines = append(lines, ActivityLines(item, i == v.cursor, width, v.tr)...)
	}
	if v.expanded {
		lines = append(lines, theme.MutedStyle.Render("  "+v.tr.Tf(i18n.PageOf, v.page+1, pages)+"  [ ]"))
	}
	return strings.Join(lines, "\n")
}

// ActivityLines renders an activity as a headline and a detail line.
func ActivityLines(item viewmodel.ActivityItem, selected bool, width int, tr *i18n.Translator) []string {
	bar := lipgloss.NewStyle().Foreground(theme.LevelColor(int(item.Level))).Render("▍")
	ts := theme.MutedStyle.Render(shortTime(item.Timestamp))
	project := theme.AccentStyle.Render(item.Project)
	head := fmt.Sprintf("%s%s %s %s %s", components.CursorIndicator(selected), bar, ts, project, theme.BodyStyle.Render(item.Message))
	if item.Critical {
		head += " " + theme.DangerStyle.Render(tr.T(i18n.Critical))
	}
	head = lipgloss.NewStyle().MaxWidth(width).Render(head)

	var details []string
	if item.Cost != nil {
		details = append(details, theme.MutedStyle.Render(tr.T(i18n.CostLabel))+" "+*item.Cost)
	}
	if item.Similarity != nil {
		details = append(details, theme.MutedStyle.Render(tr.T(i18n.SimilarityLabel))+" "+viewmodel.SimilarityPercent(*item.Similarity))
	}
	if item.Efficiency != nil {
		details = append(details, theme.MutedStyle.Render(tr.T(i18n.EfficiencyLabel))+" "+*item.Efficiency)
	}
	if item.LimitDuration != nil {
		details = append(details, theme.WarningStyle.Render(tr.T(i18n.RateLimitedLabel))+" "+*item.LimitDuration)
	}
	if len(details) == 0 {
		return []string{head}
	}
	return []string{head, "     " + strings.Join(details, "  ")}
}

// shortTime trims an RFC 3339 timestamp to its clock time when it parses.
func shortTime(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Local().Format("15:04:05")
	}
	if t, err := time.Parse("2006-01-02T15:04:05", ts); err == nil {
		return t.Format("15:04:05")
	}
	return ts
}
