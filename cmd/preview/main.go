// Command preview prints each dashboard view once with sample data, for
// checking layouts without a running backend.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/ui/views"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

func ptr[T any](v T) *T { return &v }

func sampleSummary() *api.DashboardSummary {
	return &api.DashboardSummary{
		Today: &api.PeriodSummary{TotalCostUSD: 12.4, TotalCostCNY: 89.3, ChangePercent: 8.5,
			Equivalents: api.Equivalents{CoffeeCups: 2.9, JianbingSets: 11.2, MealMeals: 3.6}},
		Week: &api.PeriodSummary{TotalCostUSD: 71.8, TotalCostCNY: 517.0, ChangePercent: -4.2,
			Equivalents: api.Equivalents{CoffeeCups: 17.2, JianbingSets: 64.6, MealMeals: 20.7}},
		ActiveProjects: 3,
		WarningCount:   2,
	}
}

func sampleStats() *api.ProjectStats {
	return &api.ProjectStats{
		Period:        "7d",
		TotalRequests: 1840,
		TotalCostUSD:  71.8,
		TotalCostCNY:  517.0,
		DebugRate:     0.12,
		TopModels: []api.ModelUsage{
			{Model: "gpt-4o", Requests: 920, Cost: 41.2},
			{Model: "claude-3-5-sonnet", Requests: 610, Cost: 26.1},
			{Model: "gpt-4o-mini", Requests: 310, Cost: 4.5},
		},
		DailyTrend: []api.DailyCost{
			{Date: "2025-06-01", Cost: 8.1}, {Date: "2025-06-02", Cost: 12.6},
			{Date: "2025-06-03", Cost: 9.4}, {Date: "2025-06-04", Cost: 15.0},
			{Date: "2025-06-05", Cost: 6.2}, {Date: "2025-06-06", Cost: 11.7},
			{Date: "2025-06-07", Cost: 8.8},
		},
		UsageBreakdown: []api.UsageSlice{
			{Name: "coding", Value: 40.1, Percentage: 55.8},
			{Name: "debugging", Value: 8.6, Percentage: 12.0},
			{Name: "docs", Value: 23.1, Percentage: 32.2},
		},
	}
}

func sampleActivities() *api.ActivityFeed {
	return &api.ActivityFeed{Activities: []api.Activity{
		{ID: "r-101", Timestamp: "2025-06-07T10:12:00Z", ProjectID: "chat-bot", Level: api.LevelInfo,
			Message: "Request completed", Details: &api.ActivityDetails{CostUSD: ptr(0.042)}},
		{ID: "r-102", Timestamp: "2025-06-07T10:15:00Z", ProjectID: "chat-bot", Level: api.LevelHighSimilarity,
			Message: "Repeated prompt detected", Details: &api.ActivityDetails{SimilarityScore: ptr(0.93)}},
		{ID: "r-103", Timestamp: "2025-06-07T10:21:00Z", ProjectID: "indexer", Level: api.LevelRateLimited,
			Message: "Rate limited", Details: &api.ActivityDetails{CooldownSeconds: ptr(120)}},
	}}
}

func sampleProjects() []api.Project {
	return []api.Project{
		{ID: "chat-bot", Name: "Chat Bot", CreatedAt: "2025-05-02", TotalCost: 48.2, Equivalent: "11 coffee cups"},
		{ID: "indexer", Name: "Indexer", CreatedAt: "2025-05-20", TotalCost: 23.6, Equivalent: "5 coffee cups"},
	}
}

func main() {
	width := flag.Int("width", 120, "render width")
	height := flag.Int("height", 40, "render height")
	lang := flag.String("lang", "en", "language: en, zh")
	view := flag.String("view", "all", "dashboard, statistics, projects or all")
	flag.Parse()

	tr := i18n.New(i18n.ParseLanguage(*lang))
	period := viewmodel.PeriodWeek

	render := map[string]func() string{
		"dashboard": func() string {
			v := views.NewDashboardView(tr, period, viewmodel.EquivCoffee)
			v.SetSummary(sampleSummary(), nil)
			v.SetTrend(sampleStats(), nil)
			v.SetActivities(sampleActivities(), nil)
			v.SetPreferences(ptr(api.DefaultUserPreferences()))
			return v.Render(*width, *height, false)
		},
		"statistics": func() string {
			v := views.NewStatisticsView(tr, period)
			v.SetSummary(sampleSummary(), nil)
			v.SetStats(sampleStats(), nil)
			v.SetProjects(sampleProjects())
			return v.Render(*width, *height, false)
		},
		"projects": func() string {
			v := views.NewProjectsView(tr)
			ps := sampleProjects()
			v.SetProjects(ps, nil)
			v.SetStats(ps[0].ID, sampleStats(), nil)
			return v.Render(*width, *height, false)
		},
	}

	order := []string{"dashboard", "statistics", "projects"}
	if *view != "all" {
		if _, ok := render[*view]; !ok {
			fmt.Fprintf(os.Stderr, "unknown view %q\n", *view)
			os.Exit(2)
		}
		order = []string{*view}
	}
	for _, name := range order {
		fmt.Printf("── %s ──\n%s\n\n", name, render[name]())
	}
}
