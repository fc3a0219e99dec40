package viewmodel

import (
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/Casper-hue/api-watchdog/internal/api"
)

// DailyModelCosts is one chart point: a day label and an estimated cost per model.
type DailyModelCosts struct {
	Date   string
	Total  float64
	Models map[string]float64
}

// DistributeDaily spreads each day's total over models by their share of the
// period cost, with a deterministic wobble so the lines are not parallel.
// The result is illustrative. The backend does not report the per-day,
// per-model cross product.
func DistributeDaily(days []api.DailyCost, models []api.ModelUsage) []DailyModelCosts {
	total := lo.SumBy(models, func(m api.ModelUsage) float64 { return m.Cost })
	out := make([]DailyModelCosts, len(days))
	for d, day := range days {
		entry := DailyModelCosts{
			Date:   day.Date,
			Total:  day.Cost,
			Models: make(map[string]float64, len(models)),
		}
		for m, model := range models {
			proportion := 1 / float64(len(models))
			if total > 0 {
				proportion = model.Cost / total
			}
			variation := 0.8 + 0.2*math.Sin(float64(d+m))
			entry.Models[model.Model] = round2(day.Cost * proportion * variation)
		}
		out[d] = entry
	}
	return out
}

// EmptyTrend returns n zero-cost days ending at now, labelled MM-DD.
func EmptyTrend(n int, now time.Time) []api.DailyCost {
	out := make([]api.DailyCost, n)
	for i := range n {
		day := now.AddDate(0, 0, i-n+1)
		out[i] = api.DailyCost{Date: day.Format("01-02")}
	}
	return out
}

// TrendOrEmpty returns the stats trend, zero-filled for the period when the
// backend sent none.
func TrendOrEmpty(stats *api.ProjectStats, p Period, now time.Time) []api.DailyCost {
	if stats == nil || len(stats.DailyTrend) == 0 {
		return EmptyTrend(p.Days(), now)
	}
	return stats.DailyTrend
}
