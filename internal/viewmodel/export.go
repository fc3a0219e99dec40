package viewmodel

import (
	"fmt"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/export"
)

// ExportInput gathers what the statistics export needs.
type ExportInput struct {
	Period         *api.PeriodSummary
	Stats          *api.ProjectStats
	ActiveProjects int
	Warnings       int
}

func metricRow(metric string, value any, unit string) export.Record {
	return export.Record{
		{Key: "metric", Value: metric},
		{Key: "value", Value: value},
		{Key: "unit", Value: unit},
	}
}

// ExportRecords builds the metric/value/unit rows of the statistics CSV.
func ExportRecords(in ExportInput) []export.Record {
	p := in.Period
	if p == nil {
		p = &api.PeriodSummary{}
	}
	s := in.Stats
	if s == nil {
		s = &api.ProjectStats{}
	}
	eq := p.Equivalents
	if s.Equivalents != nil {
		eq = *s.Equivalents
	}
	meal := eq.MealEquivalent
	if meal == "" {
		meal = "N/A"
	}

	rows := []export.Record{
		metricRow("Total Spend USD", p.TotalCostUSD, "USD"),
		metricRow("Total Spend CNY", p.TotalCostCNY, "CNY"),
		metricRow("Active Projects", in.ActiveProjects, "count"),
		metricRow("Total Requests", s.TotalRequests, "count"),
		metricRow("Warnings Count", in.Warnings, "count"),
		metricRow("Coffee Cups Equivalent", eq.CoffeeCups, "cups"),
		metricRow("Jianbing Sets Equivalent", eq.JianbingSets, "sets"),
		metricRow("Meal Equivalent", meal, "meal"),
	}
	for _, m := range s.TopModels {
		name := m.Model
		if name == "" {
			name = "Unknown"
		}
		rows = append(rows, metricRow(
			"Model: "+name,
			fmt.Sprintf("Requests: %d, Cost: $%s", m.Requests, FormatAmount(m.Cost)),
			"usage",
		))
	}
	return rows
}
