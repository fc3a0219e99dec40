package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/ui/components"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

// StatisticsView shows the aggregate model comparison, the estimated
// per-model trend and the efficiency report for the selected period.
type StatisticsView struct {
	tr  *i18n.Translator
	now func() time.Time

	Summary    Load[*api.DashboardSummary]
	Stats      Load[*api.ProjectStats]
	projects   []api.Project
	efficiency *api.EfficiencyReport

	period viewmodel.Period
	cursor int
	scroll int

	AnimTick uint
}

func NewStatisticsView(tr *i18n.Translator, period viewmodel.Period) *StatisticsView {
	return &StatisticsView{tr: tr, now: time.Now, period: period}
}

func (v *StatisticsView) SetPeriod(p viewmodel.Period) { v.period = p }

func (v *StatisticsView) SetSummary(s *api.DashboardSummary, err error) { v.Summary.Set(s, err) }

func (v *StatisticsView) SetStats(s *api.ProjectStats, err error) {
	v.Stats.Set(s, err)
	v.cursor = max(0, min(v.cursor, len(v.rows())-1))
}

func (v *StatisticsView) SetProjects(ps []api.Project) { v.projects = ps }

// SetEfficiency stores the backend report; nil selects the local heuristics.
func (v *StatisticsView) SetEfficiency(r *api.EfficiencyReport) { v.efficiency = r }

func (v *StatisticsView) rows() []viewmodel.ModelRow {
	if v.Stats.Data == nil {
		return nil
	}
	return viewmodel.ModelRows(v.Stats.Data.TopModels)
}

func (v *StatisticsView) warnings() int {
	if v.Summary.Data == nil {
		return 0
	}
	return v.Summary.Data.WarningCount
}

func (v *StatisticsView) activeProjects() int {
	if v.Summary.Data != nil && v.Summary.Data.ActiveProjects > 0 {
		return v.Summary.Data.ActiveProjects
	}
	return len(v.projects)
}

// ExportInput collects the figures written by the CSV export.
func (v *StatisticsView) ExportInput() viewmodel.ExportInput {
	var period *api.PeriodSummary
	if v.Summary.Data != nil {
		period = v.Summary.Data.ForRange(v.period.TimeRange())
	}
	return viewmodel.ExportInput{
		Period:         period,
		Stats:          v.Stats.Data,
		ActiveProjects: v.activeProjects(),
		Warnings:       v.warnings(),
	}
}

// Efficiency returns the panel content, estimated locally when the backend
// report is unavailable.
func (v *StatisticsView) Efficiency() viewmodel.Efficiency {
	return viewmodel.BuildEfficiency(v.efficiency, viewmodel.UsageFacts{
		Totals:         viewmodel.StatsTotals(v.Stats.Data),
		ActiveProjects: v.activeProjects(),
		Warnings:       v.warnings(),
		Models:         v.rows(),
	})
}

func (v *StatisticsView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := len(v.rows())
	switch key.String() {
	case "j", "down":
		if v.cursor < n-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g":
		v.cursor = 0
	case "G":
		v.cursor = max(0, n-1)
	case "x":
		return emit(ExportMsg{})
	default:
		return nil
	}
	return KeyHandledCmd
}

func (v *StatisticsView) Render(width, height int, compact bool) string {
	var sections []string

	title := theme.TitleText(strings.ToUpper(v.tr.T(i18n.Statistics)))
	sections = append(sections, "  "+title+"  "+theme.MutedStyle.Render(v.period.Label(v.tr)))

	if ph := placeholder(v.Stats, v.tr); ph != "" {
		sections = append(sections, ph)
		return strings.Join(sections, "\n")
	}

	if !compact {
		sections = append(sections, v.renderHeadline(width))
	}

	tableH := 3 + len(v.rows())
	if compact {
		tableH = min(tableH, 8)
	}
	sections = append(sections, v.renderModels(width, tableH))

	chartH := 5
	if width >= 140 {
		half := (width - 1) / 2
		left := strings.Split(v.renderTrend(half, chartH), "\n")
		right := strings.Split(v.renderEfficiency(width-half-1), "\n")
		sections = append(sections, strings.Join(components.JoinHorizontal([][]string{left, right}, 1), "\n"))
	} else {
		sections = append(sections, v.renderTrend(width, chartH))
		sections = append(sections, v.renderEfficiency(width))
	}
	return strings.Join(sections, "\n")
}

func (v *StatisticsView) renderHeadline(width int) string {
	t := viewmodel.StatsTotals(v.Stats.Data)
	caption := fmt.Sprintf("%s %s · %s %s · %s %s",
		v.tr.T(i18n.Requests), components.FormatNumber(t.Requests),
		v.tr.T(i18n.AvgCost), fmt.Sprintf("$%.4f", t.AvgCost),
		v.tr.T(i18n.WarningsCount), strconv.Itoa(v.warnings()))
	return components.BigValue{
		Text:    components.FormatUSD(t.TotalCost),
		Caption: caption,
		Width:   width,
	}.Render()
}

func (v *StatisticsView) renderModels(width, height int) string {
	rows := v.rows()
	inner := width - 4
	name := max(12, inner-2-(10+12+12+7)-8)
	cols := []components.Column{
		{Title: v.tr.T(i18n.Model), Width: name},
		{Title: v.tr.T(i18n.Requests), Width: 10, Numeric: true},
		{Title: v.tr.T(i18n.TotalCost), Width: 12, Numeric: true},
		{Title: v.tr.T(i18n.AvgCost), Width: 12, Numeric: true},
		{Title: v.tr.T(i18n.Share), Width: 7, Numeric: true},
	}

	lines := []string{components.HeaderRow(cols)}
	if len(rows) == 0 {
		lines = append(lines, theme.MutedStyle.Render("  "+v.tr.T(i18n.NoData)))
	}

	visible := max(1, height-3)
	if v.cursor < v.scroll {
		v.scroll = v.cursor
	}
	if v.cursor >= v.scroll+visible {
		v.scroll = v.cursor - visible + 1
	}
	for i := v.scroll; i < len(rows) && i < v.scroll+visible; i++ {
		r := rows[i]
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ChartColor(i))).Render("■ ")
		lines = append(lines, components.Row(cols, []string{
			swatch + r.Model,
			components.FormatNumber(r.Requests),
			components.FormatUSD(r.TotalCost),
			fmt.Sprintf("$%.4f", r.AvgCost),
			fmt.Sprintf("%d%%", r.Share),
		}, i, i == v.cursor))
	}

	return components.Panel{
		Title: v.tr.T(i18n.ModelCostComparison),
		Note:  v.tr.T(i18n.BreakdownByModelUsage),
		Width: width,
		Body:  strings.Join(lines, "\n"),
	}.Render()
}

func (v *StatisticsView) renderTrend(width, height int) string {
	return components.Panel{
		Title: v.tr.T(i18n.ConsumptionTrends),
		Note:  v.period.TrendTitle(v.tr),
		Badge: theme.AccentStyle.Render(v.period.Label(v.tr)),
		Width: width,
		Body:  TrendChart(v.Stats.Data, v.period, v.now(), width-4, height, v.tr),
	}.Render()
}

func (v *StatisticsView) renderEfficiency(width int) string {
	e := v.Efficiency()
	inner := width - 4

	gauge := components.ScoreGauge{
		Label: v.period.RatingTitle(v.tr),
		Score: int(e.Score),
		Grade: e.Grade,
		Width: min(28, inner/2),
	}.Render()

	var text []string
	text = append(text, theme.HeaderStyle.Render(v.tr.T(i18n.WhatYoureDoingWell)))
	for _, p := range e.Points {
		text = append(text, theme.SuccessStyle.Render("✓ ")+theme.BodyStyle.Render(p.Text))
	}
	text = append(text, "", theme.HeaderStyle.Render(v.tr.T(i18n.ImprovementSuggestions)))
	for _, s := range e.Suggestions {
		line := theme.AccentStyle.Render("→ ") + theme.BodyStyle.Render(s.Text)
		if s.Savings != nil {
			line += " " + theme.SuccessStyle.Render(*s.Savings)
		}
		text = append(text, line)
	}
	if e.Analysis != "" {
		text = append(text, "", theme.MutedStyle.Render(e.Analysis))
	} else if e.Estimated {
		text = append(text, "", theme.MutedStyle.Render(v.tr.T(i18n.SarcasticAccountantAssessment)))
	}

	textW := max(10, inner-lipgloss.Width(gauge[0])-2)
	wrapped := strings.Split(lipgloss.NewStyle().Width(textW).Render(strings.Join(text, "\n")), "\n")
	content := strings.Join(components.JoinHorizontal([][]string{gauge, wrapped}, 2), "\n")

	return components.Panel{
		Title: v.tr.T(i18n.EfficiencyReport),
		Width: width,
		Body:  content,
	}.Render()
}
