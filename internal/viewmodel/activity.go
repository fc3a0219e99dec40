package viewmodel

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/Casper-hue/api-watchdog/internal/api"
)

const (
	// ActivitiesCollapsed is how many feed entries show before "view all".
	ActivitiesCollapsed = 3
	// ActivitiesPerPage is the page size of the expanded feed.
	ActivitiesPerPage = 5
)

// ActivityItem is a feed entry ready for display. Optional values are nil
// when the backend omitted them.
type ActivityItem struct {
	ID            string
	Level         api.Level
	Timestamp     string
	Project       string
	Message       string
	Cost          *string
	Similarity    *float64
	Efficiency    *string
	LimitDuration *string
	CanFeedback   bool
	Critical      bool
}

// MapActivity converts a backend activity. It never fails.
func MapActivity(a api.Activity) ActivityItem {
	item := ActivityItem{
		ID:          string(a.ID),
		Level:       a.Level,
		Timestamp:   a.Timestamp,
		Project:     a.ProjectID,
		Message:     a.Message,
		CanFeedback: a.Level >= api.LevelSimilar,
	}
	d := a.Details
	if d == nil {
		return item
	}
	if d.CostUSD != nil && *d.CostUSD != 0 {
		item.Cost = lo.ToPtr(fmt.Sprintf("$%.2f", *d.CostUSD))
	}
	if d.SimilarityScore != nil {
		item.Similarity = lo.ToPtr(*d.SimilarityScore)
	}
	if d.EfficiencyRating != nil {
		item.Efficiency = lo.ToPtr(*d.EfficiencyRating)
	}
	if d.CooldownSeconds != nil {
		mins := int(math.Round(float64(*d.CooldownSeconds) / 60))
		item.LimitDuration = lo.ToPtr(fmt.Sprintf("%d MIN", mins))
	}
	return item
}

// MapWarning maps a warning the same way and flags level 4 as critical.
func MapWarning(a api.Activity) ActivityItem {
	item := MapActivity(a)
	item.Critical = a.Level >= api.LevelRateLimited
	return item
}

func MapActivities(as []api.Activity) []ActivityItem {
	return lo.Map(as, func(a api.Activity, _ int) ActivityItem { return MapActivity(a) })
}

func MapWarnings(as []api.Activity) []ActivityItem {
	return lo.Map(as, func(a api.Activity, _ int) ActivityItem { return MapWarning(a) })
}

// SimilarityPercent renders a 0..1 similarity score as a whole percentage.
func SimilarityPercent(score float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(score*100)))
}

// Page returns the visible slice of items. Collapsed shows the first few;
// expanded shows page (0-based) of ActivitiesPerPage. pages is at least 1.
func Page(items []ActivityItem, expanded bool, page int) (visible []ActivityItem, pages int) {
	if !expanded {
		return items[:min(len(items), ActivitiesCollapsed)], 1
	}
	pages = max(1, (len(items)+ActivitiesPerPage-1)/ActivitiesPerPage)
	page = max(0, min(page, pages-1))
	start := page * ActivitiesPerPage
	end := min(start+ActivitiesPerPage, len(items))
	return items[start:end], pages
}

// FeedbackFor builds the false-positive report for an item.
func FeedbackFor(item ActivityItem) api.FeedbackRequest {
	return api.FeedbackRequest{
		RequestID:  item.ID,
		IsAccurate: 0,
		Message:    "False positive reported for: " + item.Message,
		ProjectID:  item.Project,
	}
}
