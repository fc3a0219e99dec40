package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

func rangeQuery(tr TimeRange) url.Values {
	if tr == "" {
		return nil
	}
	return url.Values{"time_range": {string(tr)}}
}

// localized makes sure ctx carries an Accept-Language, defaulting to the
// client's language.
func (c *Client) localized(ctx context.Context) context.Context {
	if languageFrom(ctx) != "" {
		return ctx
	}
	return ContextWithLanguage(ctx, c.language)
}

// DashboardSummary fetches today/week spend, equivalents and counters.
// An empty tr lets the backend pick its default window.
func (c *Client) DashboardSummary(ctx context.Context, tr TimeRange) (*DashboardSummary, error) {
	var s DashboardSummary
	if err := c.getJSON(ctx, "/api/dashboard/summary", "/api/dashboard/summary", rangeQuery(tr), &s); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}

func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var ps []Project
	if err := c.getJSON(ctx, "/api/projects", "/api/projects", nil, &ps); err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}
	if err := validateProjects(ps); err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}
	return ps, nil
}

// CreateProject posts a new project. The backend contract for this call is
// unconfirmed; callers keep the local entry when it fails.
func (c *Client) CreateProject(ctx context.Context, p Project) (*Project, error) {
	var out Project
	if err := c.sendJSON(ctx, "/api/projects", http.MethodPost, "/api/projects", p, &out); err != nil {
		return nil, fmt.Errorf("create project %s: %w", p.ID, err)
	}
	if out.ID == "" {
		out = p
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) (*DeleteResult, error) {
	var r DeleteResult
	path := "/api/projects/" + url.PathEscape(id)
	if err := c.sendJSON(ctx, "/api/projects/{id}", http.MethodDelete, path, nil, &r); err != nil {
		return nil, fmt.Errorf("delete project %s: %w", id, err)
	}
	if !r.Success {
		return &r, fmt.Errorf("delete project %s: %w: %s", id, ErrRejected, r.Message)
	}
	return &r, nil
}

func (c *Client) ProjectStats(ctx context.Context, id string, tr TimeRange) (*ProjectStats, error) {
	var s ProjectStats
	path := "/api/projects/" + url.PathEscape(id) + "/stats"
	if err := c.getJSON(ctx, "/api/projects/{id}/stats", path, rangeQuery(tr), &s); err != nil {
		return nil, fmt.Errorf("project stats %s: %w", id, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("project stats %s: %w", id, err)
	}
	return &s, nil
}

// AllProjectsStats fetches stats aggregated over every project.
func (c *Client) AllProjectsStats(ctx context.Context, tr TimeRange) (*ProjectStats, error) {
	var s ProjectStats
	if err := c.getJSON(ctx, "/api/projects/stats", "/api/projects/stats", rangeQuery(tr), &s); err != nil {
		return nil, fmt.Errorf("all projects stats: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("all projects stats: %w", err)
	}
	return &s, nil
}

// RecentActivities fetches the feed; messages come back in the
// Accept-Language carried by ctx or the client default.
func (c *Client) RecentActivities(ctx context.Context) (*ActivityFeed, error) {
	var f ActivityFeed
	if err := c.getJSON(c.localized(ctx), "/api/activities/recent", "/api/activities/recent", nil, &f); err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	if err := validateActivities(f.Activities); err != nil {
		return nil, fmt.Errorf("recent activities: %w", err)
	}
	return &f, nil
}

// Warnings fetches level >= 2 events of the last 24 hours.
func (c *Client) Warnings(ctx context.Context) (*WarningList, error) {
	var w WarningList
	if err := c.getJSON(ctx, "/api/warnings", "/api/warnings", nil, &w); err != nil {
		return nil, fmt.Errorf("warnings: %w", err)
	}
	if err := validateActivities(w.Warnings); err != nil {
		return nil, fmt.Errorf("warnings: %w", err)
	}
	return &w, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, fb FeedbackRequest) (*Result, error) {
	var r Result
	if err := c.sendJSON(ctx, "/api/feedback", http.MethodPost, "/api/feedback", fb, &r); err != nil {
		return nil, fmt.Errorf("feedback %s: %w", fb.RequestID, err)
	}
	if !r.Success {
		return &r, fmt.Errorf("feedback %s: %w: %s", fb.RequestID, ErrRejected, r.Message)
	}
	return &r, nil
}

// Settings fetches system settings. Sections the backend leaves out keep
// their defaults.
func (c *Client) Settings(ctx context.Context) (*Settings, error) {
	s := DefaultSettings()
	if err := c.getJSON(ctx, "/api/settings", "/api/settings", nil, &s); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	if s.Pricing.Models == nil {
		s.Pricing.Models = map[string]ModelPrice{}
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return &s, nil
}

func (c *Client) SaveSettings(ctx context.Context, s Settings) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	var r Result
	if err := c.sendJSON(ctx, "/api/settings", http.MethodPost, "/api/settings", s, &r); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	if !r.Success {
		return &r, fmt.Errorf("save settings: %w: %s", ErrRejected, r.Message)
	}
	return &r, nil
}

// OfficialPricing fetches the vendor price table.
func (c *Client) OfficialPricing(ctx context.Context) (map[string]ModelPrice, error) {
	var body struct {
		Success     bool                  `json:"success"`
		Data        map[string]ModelPrice `json:"data"`
		LastUpdated string                `json:"last_updated"`
	}
	if err := c.getJSON(ctx, "/api/models/pricing/fetch-official", "/api/models/pricing/fetch-official", nil, &body); err != nil {
		return nil, fmt.Errorf("official pricing: %w", err)
	}
	if !body.Success {
		return nil, fmt.Errorf("official pricing: %w", ErrRejected)
	}
	for name, p := range body.Data {
		if p.Input < 0 || p.Output < 0 {
			return nil, fmt.Errorf("official pricing: %w", invalidf("model %q has a negative price", name))
		}
	}
	c.log.Debugf("official pricing: %d models, updated %s", len(body.Data), body.LastUpdated)
	return body.Data, nil
}

func (c *Client) UserPreferences(ctx context.Context) (*UserPreferences, error) {
	p := DefaultUserPreferences()
	if err := c.getJSON(ctx, "/api/user/preferences", "/api/user/preferences", nil, &p); err != nil {
		return nil, fmt.Errorf("user preferences: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("user preferences: %w", err)
	}
	return &p, nil
}

func (c *Client) SaveUserPreferences(ctx context.Context, p UserPreferences) (*UserPreferences, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("save user preferences: %w", err)
	}
	var body struct {
		Success     bool            `json:"success"`
		Preferences UserPreferences `json:"preferences"`
	}
	if err := c.sendJSON(ctx, "/api/user/preferences", http.MethodPost, "/api/user/preferences", p, &body); err != nil {
		return nil, fmt.Errorf("save user preferences: %w", err)
	}
	if !body.Success {
		return nil, fmt.Errorf("save user preferences: %w", ErrRejected)
	}
	return &body.Preferences, nil
}

// Efficiency fetches the backend's efficiency analysis for a project.
func (c *Client) Efficiency(ctx context.Context, projectID string, tr TimeRange) (*EfficiencyReport, error) {
	q := rangeQuery(tr)
	if q == nil {
		q = url.Values{}
	}
	q.Set("project_id", projectID)

	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := c.getJSON(c.localized(ctx), "/api/analyzer/efficiency", "/api/analyzer/efficiency", q, &body); err != nil {
		return nil, fmt.Errorf("efficiency %s: %w", projectID, err)
	}
	if !body.Success || len(body.Data) == 0 {
		return nil, fmt.Errorf("efficiency %s: %w", projectID, ErrRejected)
	}
	var r EfficiencyReport
	if err := json.Unmarshal(body.Data, &r); err != nil {
		return nil, fmt.Errorf("efficiency %s: %w: %v", projectID, ErrDecode, err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("efficiency %s: %w", projectID, err)
	}
	return &r, nil
}
