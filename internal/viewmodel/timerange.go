package viewmodel

import (
	"fmt"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
)

// Period is the UI vocabulary for a reporting window.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
)

// Periods lists the selectable periods in cycle order.
var Periods = []Period{PeriodWeek, PeriodMonth, PeriodQuarter}

// TimeRange maps the period onto the backend vocabulary. Unknown periods map to 7d.
func (p Period) TimeRange() api.TimeRange {
	switch p {
	case PeriodMonth:
		return api.Range30d
	case PeriodQuarter:
		return api.Range90d
	default:
		return api.Range7d
	}
}

func (p Period) Days() int {
	switch p {
	case PeriodMonth:
		return 30
	case PeriodQuarter:
		return 90
	default:
		return 7
	}
}

// Next returns the following period in cycle order.
func (p Period) Next() Period {
	for i, q := range Periods {
		if q == p {
			return Periods[(i+1)%len(Periods)]
		}
	}
	return PeriodWeek
}

// Label is the translated period name.
func (p Period) Label(tr *i18n.Translator) string {
	switch p {
	case PeriodMonth:
		return tr.T(i18n.Month)
	case PeriodQuarter:
		return tr.T(i18n.Quarter)
	default:
		return tr.T(i18n.Week)
	}
}

// TrendTitle is the "past N days" heading for the period.
func (p Period) TrendTitle(tr *i18n.Translator) string {
	switch p {
	case PeriodMonth:
		return tr.T(i18n.Past30Days)
	case PeriodQuarter:
		return tr.T(i18n.Past90Days)
	default:
		return tr.T(i18n.Past7Days)
	}
}

// RatingTitle is the efficiency rating heading for the period.
func (p Period) RatingTitle(tr *i18n.Translator) string {
	switch p {
	case PeriodMonth:
		return tr.T(i18n.MonthlyEfficiencyRating)
	case PeriodQuarter:
		return tr.T(i18n.QuarterlyEfficiencyRating)
	default:
		return tr.T(i18n.WeeklyEfficiencyRating)
	}
}

// ParsePeriod accepts either "week"/"month"/"quarter" or "7d"/"30d"/"90d".
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "week", string(api.Range7d):
		return PeriodWeek, nil
	case "month", string(api.Range30d):
		return PeriodMonth, nil
	case "quarter", string(api.Range90d):
		return PeriodQuarter, nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}
