package viewmodel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
)

// Equivalent is one everyday-purchase unit a spend can be expressed in.
type Equivalent int

const (
	EquivCoffee Equivalent = iota
	EquivJianbing
	EquivMeal
	EquivHotpot
	equivCount
)

var equivalentUnits = [equivCount]struct {
	label i18n.Key
	unit  string
	key   string
}{
	EquivCoffee:   {i18n.Coffee, "cups", "coffee_cups"},
	EquivJianbing: {i18n.Jianbing, "pcs", "jianbing_sets"},
	EquivMeal:     {i18n.Meal, "meals", "meal_meals"},
	EquivHotpot:   {i18n.Hotpot, "meals", "hotpot_meals"},
}

// Next cycles coffee, jianbing, meal, hotpot.
func (e Equivalent) Next() Equivalent { return (e.normalize() + 1) % equivCount }

func (e Equivalent) normalize() Equivalent {
	if e < 0 || e >= equivCount {
		return EquivCoffee
	}
	return e
}

func (e Equivalent) Unit() string { return equivalentUnits[e.normalize()].unit }

// Key is the wire field name of the equivalent.
func (e Equivalent) Key() string { return equivalentUnits[e.normalize()].key }

func (e Equivalent) Label(tr *i18n.Translator) string {
	return tr.T(equivalentUnits[e.normalize()].label)
}

// ParseEquivalent accepts "coffee", "jianbing", "meal" or "hotpot".
func ParseEquivalent(s string) (Equivalent, error) {
	switch strings.ToLower(s) {
	case "coffee":
		return EquivCoffee, nil
	case "jianbing":
		return EquivJianbing, nil
	case "meal":
		return EquivMeal, nil
	case "hotpot":
		return EquivHotpot, nil
	}
	return 0, fmt.Errorf("unknown equivalent %q", s)
}

func (e Equivalent) String() string {
	return strings.SplitN(e.Key(), "_", 2)[0]
}

// Value picks the matching amount out of eq.
func (e Equivalent) Value(eq api.Equivalents) float64 {
	switch e.normalize() {
	case EquivJianbing:
		return eq.JianbingSets
	case EquivMeal:
		return eq.MealMeals
	case EquivHotpot:
		return eq.HotpotMeals
	default:
		return eq.CoffeeCups
	}
}

// Trend is a percentage of budget with a direction. Up means at or over budget.
type Trend struct {
	Value int
	Up    bool
}

// StatCard is one dashboard meter card.
type StatCard struct {
	Title           string
	Value           string
	Equivalent      string
	EquivalentLabel string
	Trend           *Trend
	AlertCount      int
	Meter           int // 0..100
	Cyclable        bool
}

// Meter returns min(100, round(value/limit*100)). A non-positive limit gives 0.
func Meter(value, limit float64) int {
	if limit <= 0 {
		return 0
	}
	return max(0, min(100, int(math.Round(value/limit*100))))
}

func budgetTrend(cost, budget float64) *Trend {
	if budget <= 0 {
		return &Trend{}
	}
	ratio := cost / budget
	return &Trend{
		Value: int(math.Abs(math.Round(ratio * 100))),
		Up:    ratio >= 1,
	}
}

// FormatAmount prints an equivalent amount without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func spendCard(title string, p *api.PeriodSummary, budget float64, eq Equivalent, tr *i18n.Translator) StatCard {
	if p == nil {
		p = &api.PeriodSummary{}
	}
	return StatCard{
		Title:           title,
		Value:           fmt.Sprintf("$%.2f", p.TotalCostUSD),
		Equivalent:      FormatAmount(eq.Value(p.Equivalents)) + " " + eq.Unit(),
		EquivalentLabel: eq.Label(tr),
		Trend:           budgetTrend(p.TotalCostUSD, budget),
		Meter:           Meter(p.TotalCostUSD, budget),
		Cyclable:        true,
	}
}

// BuildStatCards produces the four dashboard cards: today and week spend
// against budget, active projects against the limit, and warnings against
// the threshold. todayEq and weekEq select the equivalent shown on the
// spend cards.
func BuildStatCards(s api.DashboardSummary, prefs api.UserPreferences, todayEq, weekEq Equivalent, tr *i18n.Translator) []StatCard {
	teams := tr.T(i18n.Teams)
	return []StatCard{
		spendCard(tr.T(i18n.DailySpendVsBudget), s.Today, prefs.TodayBudget, todayEq, tr),
		spendCard(tr.T(i18n.WeeklySpendVsBudget), s.Week, prefs.WeekBudget, weekEq, tr),
		{
			Title:           tr.T(i18n.ActiveProjectsVsLimit),
			Value:           strconv.Itoa(s.ActiveProjects),
			Equivalent:      fmt.Sprintf("%d %s", s.ActiveProjects, teams),
			EquivalentLabel: strings.ToUpper(teams),
			Meter:           Meter(float64(s.ActiveProjects), float64(prefs.ActiveProjLimit)),
		},
		{
			Title:           tr.T(i18n.WarningsVsThreshold),
			Value:           strconv.Itoa(s.WarningCount),
			Equivalent:      tr.T(i18n.Week),
			EquivalentLabel: strings.ToUpper(tr.T(i18n.Period)),
			AlertCount:      s.WarningCount,
			Meter:           Meter(float64(s.WarningCount), float64(prefs.WarningThreshold)),
		},
	}
}
