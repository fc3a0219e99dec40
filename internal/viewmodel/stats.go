package viewmodel

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
)

// ModelRow is one line of the model cost comparison table.
type ModelRow struct {
	Model     string
	Requests  int
	TotalCost float64
	AvgCost   float64
	Share     int
}

// ModelRows builds table rows in the order the backend ranked them, with
// display shares that sum to 100.
func ModelRows(models []api.ModelUsage) []ModelRow {
	shares := LargestRemainder(lo.Map(models, func(m api.ModelUsage, _ int) float64 { return m.Cost }))
	return lo.Map(models, func(m api.ModelUsage, i int) ModelRow {
		name := m.Model
		if name == "" {
			name = "Unknown"
		}
		return ModelRow{
			Model:     name,
			Requests:  m.Requests,
			TotalCost: m.Cost,
			AvgCost:   avg(m.Cost, m.Requests),
			Share:     shares[i],
		}
	})
}

func avg(cost float64, requests int) float64 {
	if requests <= 0 {
		return 0
	}
	return cost / float64(requests)
}

type Totals struct {
	Requests  int
	TotalCost float64
	AvgCost   float64
}

func StatsTotals(s *api.ProjectStats) Totals {
	if s == nil {
		return Totals{}
	}
	return Totals{
		Requests:  s.TotalRequests,
		TotalCost: s.TotalCostUSD,
		AvgCost:   avg(s.TotalCostUSD, s.TotalRequests),
	}
}

var breakdownKeys = map[string]i18n.Key{
	"Debug":        i18n.DebugMode,
	"Development":  i18n.DevelopmentMode,
	"Optimization": i18n.OptimizationMode,
}

// UsageBreakdown translates the known category names and recomputes the
// percentages from the values.
func UsageBreakdown(slices []api.UsageSlice, tr *i18n.Translator) []api.UsageSlice {
	pct := LargestRemainder(lo.Map(slices, func(s api.UsageSlice, _ int) float64 { return s.Value }))
	return lo.Map(slices, func(s api.UsageSlice, i int) api.UsageSlice {
		if k, ok := breakdownKeys[s.Name]; ok {
			s.Name = tr.T(k)
		}
		s.Percentage = float64(pct[i])
		return s
	})
}

// Point is a positive observation in the efficiency panel.
type Point struct {
	Text string
}

// Efficiency is the efficiency panel content.
type Efficiency struct {
	Score       float64
	Grade       string
	Analysis    string
	Points      []Point
	Suggestions []api.Suggestion
	Estimated   bool
}

// UsageFacts feed the efficiency heuristics when the backend report is unavailable.
type UsageFacts struct {
	Totals         Totals
	ActiveProjects int
	Warnings       int
	Models         []ModelRow
}

const (
	defaultPoint      = "Ready to analyze your API usage patterns"
	defaultSuggestion = "Start making API calls to get personalized efficiency insights"
)

// BuildEfficiency uses report when present and otherwise derives points and
// suggestions from facts.
func BuildEfficiency(report *api.EfficiencyReport, facts UsageFacts) Efficiency {
	if report != nil {
		return Efficiency{
			Score:       report.Score,
			Grade:       report.Grade,
			Analysis:    report.Analysis,
			Points:      lo.Map(report.PositivePoints, func(s string, _ int) Point { return Point{Text: s} }),
			Suggestions: report.Suggestions,
		}
	}
	return fallbackEfficiency(facts)
}

func fallbackEfficiency(f UsageFacts) Efficiency {
	e := Efficiency{Grade: "N/A", Estimated: true}
	t := f.Totals

	if t.Requests > 0 {
		e.Points = append(e.Points, Point{Text: fmt.Sprintf("Active usage with %d requests", t.Requests)})
		if t.AvgCost < 0.02 {
			e.Points = append(e.Points, Point{Text: "Good cost efficiency with low average request cost"})
		}
		if f.ActiveProjects > 1 {
			e.Points = append(e.Points, Point{Text: fmt.Sprintf("Managing %d projects effectively", f.ActiveProjects)})
		}

		if t.AvgCost > 0.05 {
			e.Suggestions = append(e.Suggestions, api.Suggestion{
				Text:    "Consider using cheaper models for non-critical tasks",
				Savings: weekly(t.AvgCost * float64(t.Requests) * 0.2),
			})
		}
		if f.Warnings > 0 {
			e.Suggestions = append(e.Suggestions, api.Suggestion{
				Text: "Review patterns that trigger warnings to improve efficiency",
			})
		}
		expensive := lo.Filter(f.Models, func(m ModelRow, _ int) bool { return m.AvgCost > 0.03 })
		if len(expensive) > 0 {
			names := lo.Map(expensive, func(m ModelRow, _ int) string { return m.Model })
			cost := lo.SumBy(expensive, func(m ModelRow) float64 { return m.TotalCost })
			e.Suggestions = append(e.Suggestions, api.Suggestion{
				Text:    fmt.Sprintf("Consider alternatives to %s for cost-sensitive tasks", strings.Join(names, ", ")),
				Savings: weekly(cost * 0.15),
			})
		}
	}

	if len(e.Points) == 0 {
		e.Points = []Point{{Text: defaultPoint}}
	}
	if len(e.Suggestions) == 0 {
		e.Suggestions = []api.Suggestion{{Text: defaultSuggestion}}
	}
	return e
}

func weekly(v float64) *string {
	return lo.ToPtr(fmt.Sprintf("$%.2f/week", v))
}
