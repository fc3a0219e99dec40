package viewmodel

import (
	"math"
	"testing"
	"time"

	"github.com/Casper-hue/api-watchdog/internal/api"
)

func TestDistributeDaily(t *testing.T) {
	days := []api.DailyCost{{Date: "2025-01-01", Cost: 10}, {Date: "2025-01-02", Cost: 4}}
	models := []api.ModelUsage{{Model: "gpt-4", Cost: 3}, {Model: "claude", Cost: 1}}

	got := DistributeDaily(days, models)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	for d, day := range days {
		for m, model := range models {
			want := round2(day.Cost * model.Cost / 4 * (0.8 + 0.2*math.Sin(float64(d+m))))
			if v := got[d].Models[model.Model]; v != want {
				t.Errorf("day %d %s = %v, want %v", d, model.Model, v, want)
			}
		}
		if got[d].Total != day.Cost || got[d].Date != day.Date {
			t.Errorf("day %d = %+v", d, got[d])
		}
	}

	// day 0, model 0: sin(0) = 0 so the variation is exactly 0.8.
	if v := got[0].Models["gpt-4"]; v != 6 {
		t.Errorf("gpt-4 day 0 = %v, want 6", v)
	}
}

func TestDistributeDaily_ZeroModelCost(t *testing.T) {
	days := []api.DailyCost{{Date: "d", Cost: 9}}
	models := []api.ModelUsage{{Model: "a"}, {Model: "b"}, {Model: "c"}}

	got := DistributeDaily(days, models)
	if v := got[0].Models["a"]; v != 2.4 {
		t.Errorf("a = %v, want 2.4 (9 * 1/3 * 0.8)", v)
	}
}

func TestDistributeDaily_NoModels(t *testing.T) {
	got := DistributeDaily([]api.DailyCost{{Date: "d", Cost: 1}}, nil)
	if len(got) != 1 || len(got[0].Models) != 0 {
		t.Errorf("got %+v", got)
	}
}

func TestEmptyTrend(t *testing.T) {
	now := time.Date(2025, 3, 2, 15, 0, 0, 0, time.UTC)
	got := EmptyTrend(7, now)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	if got[0].Date != "02-24" || got[6].Date != "03-02" {
		t.Errorf("labels = %s .. %s, want 02-24 .. 03-02", got[0].Date, got[6].Date)
	}
	for _, d := range got {
		if d.Cost != 0 {
			t.Errorf("%s cost = %v", d.Date, d.Cost)
		}
	}
}

func TestTrendOrEmpty(t *testing.T) {
	now := time.Now()
	if got := TrendOrEmpty(nil, PeriodQuarter, now); len(got) != 90 {
		t.Errorf("nil stats: len = %d, want 90", len(got))
	}
	s := &api.ProjectStats{DailyTrend: []api.DailyCost{{Date: "x", Cost: 1}}}
	if got := TrendOrEmpty(s, PeriodMonth, now); len(got) != 1 {
		t.Errorf("len = %d, want backend trend", len(got))
	}
}
