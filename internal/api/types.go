package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// TimeRange is the reporting window understood by the backend.
type TimeRange string

const (
	Range7d  TimeRange = "7d"
	Range30d TimeRange = "30d"
	Range90d TimeRange = "90d"
)

// Equivalents expresses a spend in everyday purchases.
type Equivalents struct {
	CoffeeCups     float64 `json:"coffee_cups" yaml:"coffee_cups"`
	JianbingSets   float64 `json:"jianbing_sets" yaml:"jianbing_sets"`
	MealMeals      float64 `json:"meal_meals" yaml:"meal_meals"`
	MealEquivalent string  `json:"meal_equivalent,omitempty" yaml:"meal_equivalent,omitempty"`
	HotpotMeals    float64 `json:"hotpot_meals" yaml:"hotpot_meals"`
}

// PeriodSummary is one period block of the dashboard summary.
type PeriodSummary struct {
	TotalCostUSD  float64     `json:"total_cost_usd" yaml:"total_cost_usd"`
	TotalCostCNY  float64     `json:"total_cost_cny" yaml:"total_cost_cny"`
	Equivalents   Equivalents `json:"equivalents" yaml:"equivalents"`
	ChangePercent float64     `json:"change_percent" yaml:"change_percent"`
}

// DashboardSummary is the body of GET /api/dashboard/summary. The backend
// keys the requested period by its label and always includes week.
type DashboardSummary struct {
	Today          *PeriodSummary `json:"today,omitempty" yaml:"today,omitempty"`
	Week           *PeriodSummary `json:"week,omitempty" yaml:"week,omitempty"`
	Month          *PeriodSummary `json:"month,omitempty" yaml:"month,omitempty"`
	Quarter        *PeriodSummary `json:"quarter,omitempty" yaml:"quarter,omitempty"`
	CurrentPeriod  *PeriodSummary `json:"current_period,omitempty" yaml:"current_period,omitempty"`
	ActiveProjects int            `json:"active_projects" yaml:"active_projects"`
	WarningCount   int            `json:"warning_count" yaml:"warning_count"`
}

// ForRange returns the period block matching tr, falling back to the
// unlabelled current period.
func (s DashboardSummary) ForRange(tr TimeRange) *PeriodSummary {
	var p *PeriodSummary
	switch tr {
	case Range7d:
		p = s.Week
	case Range30d:
		p = s.Month
	case Range90d:
		p = s.Quarter
	}
	if p == nil {
		p = s.CurrentPeriod
	}
	return p
}

func (s DashboardSummary) Validate() error {
	for name, p := range map[string]*PeriodSummary{
		"today": s.Today, "week": s.Week, "month": s.Month,
		"quarter": s.Quarter, "current_period": s.CurrentPeriod,
	} {
		if p == nil {
			continue
		}
		if p.TotalCostUSD < 0 || p.TotalCostCNY < 0 {
			return invalidf("summary %s: negative cost", name)
		}
	}
	if s.ActiveProjects < 0 {
		return invalidf("summary: active_projects %d", s.ActiveProjects)
	}
	if s.WarningCount < 0 {
		return invalidf("summary: warning_count %d", s.WarningCount)
	}
	return nil
}

// Project is one entry of GET /api/projects.
type Project struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	CreatedAt    string  `json:"createdAt" yaml:"created_at"`
	TotalCost    float64 `json:"totalCost" yaml:"total_cost"`
	TotalCostCNY float64 `json:"totalCostCNY" yaml:"total_cost_cny"`
	Equivalent   string  `json:"equivalent" yaml:"equivalent"`
}

func validateProjects(ps []Project) error {
	seen := make(map[string]bool, len(ps))
	for i, p := range ps {
		if p.ID == "" {
			return invalidf("project %d: empty id", i)
		}
		if seen[p.ID] {
			return invalidf("project %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

type ModelUsage struct {
	Model    string  `json:"model" yaml:"model"`
	Requests int     `json:"requests" yaml:"requests"`
	Cost     float64 `json:"cost" yaml:"cost"`
}

type DailyCost struct {
	Date string  `json:"date" yaml:"date"`
	Cost float64 `json:"cost" yaml:"cost"`
}

type UsageSlice struct {
	Name       string  `json:"name" yaml:"name"`
	Value      float64 `json:"value" yaml:"value"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// ProjectStats is returned by both the per-project and aggregate stats endpoints.
type ProjectStats struct {
	ProjectID      string       `json:"project_id" yaml:"project_id"`
	Period         string       `json:"period" yaml:"period"`
	TotalRequests  int          `json:"total_requests" yaml:"total_requests"`
	TotalCostUSD   float64      `json:"total_cost_usd" yaml:"total_cost_usd"`
	TotalCostCNY   float64      `json:"total_cost_cny" yaml:"total_cost_cny"`
	Equivalents    *Equivalents `json:"equivalents,omitempty" yaml:"equivalents,omitempty"`
	DebugRate      float64      `json:"debug_rate" yaml:"debug_rate"`
	TopModels      []ModelUsage `json:"top_models" yaml:"top_models"`
	DailyTrend     []DailyCost  `json:"daily_trend" yaml:"daily_trend"`
	UsageBreakdown []UsageSlice `json:"usage_breakdown" yaml:"usage_breakdown"`
}

func (s ProjectStats) Validate() error {
	if s.TotalRequests < 0 {
		return invalidf("stats: total_requests %d", s.TotalRequests)
	}
	if s.TotalCostUSD < 0 || s.TotalCostCNY < 0 {
		return invalidf("stats: negative total cost")
	}
	for _, m := range s.TopModels {
		if m.Requests < 0 || m.Cost < 0 {
			return invalidf("stats: model %q has negative usage", m.Model)
		}
	}
	return nil
}

// Level is the severity tier of an activity, 0 (informational) to 4 (rate limited).
type Level int

const (
	LevelInfo Level = iota
	LevelNotice
	LevelSimilar
	LevelHighSimilarity
	LevelRateLimited
)

func (l Level) Valid() bool { return l >= LevelInfo && l <= LevelRateLimited }

// UnmarshalJSON rejects anything outside 0..4.
func (l *Level) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if !Level(n).Valid() {
		return invalidf("level %d out of range", n)
	}
	*l = Level(n)
	return nil
}

// ID is an opaque identifier the backend may send as a string or a number.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

type ActivityDetails struct {
	CostUSD          *float64 `json:"cost_usd,omitempty" yaml:"cost_usd,omitempty"`
	CostCNY          *float64 `json:"cost_cny,omitempty" yaml:"cost_cny,omitempty"`
	SimilarityScore  *float64 `json:"similarity_score,omitempty" yaml:"similarity_score,omitempty"`
	EfficiencyRating *string  `json:"efficiency_rating,omitempty" yaml:"efficiency_rating,omitempty"`
	CooldownSeconds  *int     `json:"cooldown_seconds,omitempty" yaml:"cooldown_seconds,omitempty"`
}

// Activity is one feed entry. Warnings share the same shape.
type Activity struct {
	ID        ID               `json:"id" yaml:"id"`
	Timestamp string           `json:"timestamp" yaml:"timestamp"`
	ProjectID string           `json:"project_id" yaml:"project_id"`
	Level     Level            `json:"level" yaml:"level"`
	Message   string           `json:"message" yaml:"message"`
	Details   *ActivityDetails `json:"details,omitempty" yaml:"details,omitempty"`
}

func validateActivities(as []Activity) error {
	for i, a := range as {
		if a.ID == "" {
			return invalidf("activity %d: empty id", i)
		}
		if a.Details != nil && a.Details.CooldownSeconds != nil && *a.Details.CooldownSeconds < 0 {
			return invalidf("activity %s: negative cooldown", a.ID)
		}
	}
	return nil
}

type ActivityFeed struct {
	Activities []Activity `json:"activities" yaml:"activities"`
	HasMore    bool       `json:"has_more" yaml:"has_more"`
}

type WarningList struct {
	Warnings   []Activity `json:"warnings" yaml:"warnings"`
	TotalCount int        `json:"total_count" yaml:"total_count"`
	TimeRange  string     `json:"time_range" yaml:"time_range"`
}

type FeedbackRequest struct {
	RequestID  string `json:"request_id"`
	IsAccurate int    `json:"is_accurate"`
	Message    string `json:"message"`
	ProjectID  string `json:"project_id"`
}

// Result is the generic {success, message} acknowledgement.
type Result struct {
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message" yaml:"message"`
}

// DeleteResult is the body of DELETE /api/projects/{id}.
type DeleteResult struct {
	Success         bool   `json:"success" yaml:"success"`
	DeletedRequests int    `json:"deleted_requests" yaml:"deleted_requests"`
	DeletedFeedback int    `json:"deleted_feedback" yaml:"deleted_feedback"`
	Message         string `json:"message" yaml:"message"`
}

type ModelPrice struct {
	Input  float64 `json:"input" yaml:"input"`
	Output float64 `json:"output" yaml:"output"`
}

type EquivalentPrices struct {
	Coffee   float64 `json:"coffee" yaml:"coffee"`
	Jianbing float64 `json:"jianbing" yaml:"jianbing"`
	Meal     float64 `json:"meal" yaml:"meal"`
	Hotpot   float64 `json:"hotpot" yaml:"hotpot"`
}

type PricingConfig struct {
	ExchangeRate float64               `json:"exchange_rate_usd_to_cny" yaml:"exchange_rate_usd_to_cny"`
	Equivalents  EquivalentPrices      `json:"equivalents" yaml:"equivalents"`
	Models       map[string]ModelPrice `json:"models" yaml:"models"`
}

func (p PricingConfig) Validate() error {
	if p.ExchangeRate <= 0 {
		return invalidf("pricing: exchange rate %v", p.ExchangeRate)
	}
	e := p.Equivalents
	if e.Coffee <= 0 || e.Jianbing <= 0 || e.Meal <= 0 || e.Hotpot <= 0 {
		return invalidf("pricing: equivalent prices must be positive")
	}
	for name, m := range p.Models {
		if m.Input < 0 || m.Output < 0 {
			return invalidf("pricing: model %q has a negative price", name)
		}
	}
	return nil
}

type PrivacyConfig struct {
	StoreRequestContent bool   `json:"store_request_content" yaml:"store_request_content"`
	SimilarityMethod    string `json:"similarity_method" yaml:"similarity_method"`
	CacheTTLSeconds     int    `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`
	AnonymizeProjectID  bool   `json:"anonymize_project_id" yaml:"anonymize_project_id"`
}

type NotificationConfig struct {
	EmailNotifications bool `json:"email_notifications" yaml:"email_notifications"`
	SlackNotifications bool `json:"slack_notifications" yaml:"slack_notifications"`
	WebhookEnabled     bool `json:"webhook_enabled" yaml:"webhook_enabled"`
}

// Settings is the body of GET and POST /api/settings.
type Settings struct {
	Pricing      PricingConfig      `json:"pricing" yaml:"pricing"`
	Privacy      PrivacyConfig      `json:"privacy" yaml:"privacy"`
	Notification NotificationConfig `json:"notification" yaml:"notification"`
}

// DefaultSettings mirrors the values the backend ships with.
func DefaultSettings() Settings {
	return Settings{
		Pricing: PricingConfig{
			ExchangeRate: 7.3,
			Equivalents:  EquivalentPrices{Coffee: 15, Jianbing: 8, Meal: 50, Hotpot: 120},
			Models:       map[string]ModelPrice{},
		},
		Privacy: PrivacyConfig{
			SimilarityMethod:   "hash",
			CacheTTLSeconds:    3600,
			AnonymizeProjectID: true,
		},
	}
}

func (s Settings) Validate() error {
	if err := s.Pricing.Validate(); err != nil {
		return err
	}
	switch s.Privacy.SimilarityMethod {
	case "", "hash", "text":
	default:
		return invalidf("privacy: similarity method %q", s.Privacy.SimilarityMethod)
	}
	if s.Privacy.CacheTTLSeconds < 0 {
		return invalidf("privacy: cache ttl %d", s.Privacy.CacheTTLSeconds)
	}
	return nil
}

// UserPreferences are the baselines the dashboard meters are drawn against.
type UserPreferences struct {
	TodayBudget      float64 `json:"today_budget" yaml:"today_budget"`
	WeekBudget       float64 `json:"week_budget" yaml:"week_budget"`
	ActiveProjLimit  int     `json:"active_proj_limit" yaml:"active_proj_limit"`
	WarningThreshold int     `json:"warning_threshold" yaml:"warning_threshold"`
}

func DefaultUserPreferences() UserPreferences {
	return UserPreferences{TodayBudget: 50, WeekBudget: 300, ActiveProjLimit: 10, WarningThreshold: 20}
}

func (p UserPreferences) Validate() error {
	if p.TodayBudget < 0 || p.WeekBudget < 0 || p.ActiveProjLimit < 0 || p.WarningThreshold < 0 {
		return invalidf("preferences: negative baseline")
	}
	return nil
}

type Suggestion struct {
	Text    string  `json:"text" yaml:"text"`
	Savings *string `json:"savings,omitempty" yaml:"savings,omitempty"`
}

// EfficiencyReport is the data block of GET /api/analyzer/efficiency.
type EfficiencyReport struct {
	Score          float64      `json:"score" yaml:"score"`
	Grade          string       `json:"grade" yaml:"grade"`
	Analysis       string       `json:"analysis" yaml:"analysis"`
	Suggestions    []Suggestion `json:"suggestions" yaml:"suggestions"`
	PositivePoints []string     `json:"positive_points" yaml:"positive_points"`
}

func (r EfficiencyReport) Validate() error {
	if r.Score < 0 || r.Score > 100 {
		return invalidf("efficiency: score %v", r.Score)
	}
	return nil
}

// UnmarshalJSON accepts savings sent either as text or as a number.
func (s *Suggestion) UnmarshalJSON(b []byte) error {
	var raw struct {
		Text    string          `json:"text"`
		Savings json.RawMessage `json:"savings"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Text = raw.Text
	s.Savings = nil
	v := bytes.TrimSpace(raw.Savings)
	if len(v) == 0 || string(v) == "null" {
		return nil
	}
	if v[0] == '"' {
		var str string
		if err := json.Unmarshal(v, &str); err != nil {
			return err
		}
		s.Savings = &str
		return nil
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil {
		return fmt.Errorf("savings: %w", err)
	}
	str := fmt.Sprintf("$%.2f", f)
	s.Savings = &str
	return nil
}
