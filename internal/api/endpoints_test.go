package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func serveJSON(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDashboardSummary(t *testing.T) {
	srv := serveJSON(t, map[string]string{
		"GET /api/dashboard/summary": `{
			"today": {"total_cost_usd": 12.35, "total_cost_cny": 90.16,
				"equivalents": {"coffee_cups": 6.01, "jianbing_sets": 11.27, "meal_meals": 1.8, "hotpot_meals": 0.75, "meal_equivalent": "一顿大餐"},
				"change_percent": 12.5},
			"week": {"total_cost_usd": 84.5, "total_cost_cny": 616.85, "equivalents": {}, "change_percent": -3},
			"active_projects": 3,
			"warning_count": 5
		}`,
	})
	c := newTestClient(t, srv.URL, fastPolicy())

	s, err := c.DashboardSummary(context.Background(), "")
	if err != nil {
		t.Fatalf("DashboardSummary: %v", err)
	}
	if s.Today == nil || s.Today.TotalCostUSD != 12.35 {
		t.Errorf("today = %+v, want total 12.35", s.Today)
	}
	if s.Today.Equivalents.MealEquivalent != "一顿大餐" {
		t.Errorf("meal equivalent = %q", s.Today.Equivalents.MealEquivalent)
	}
	if s.ActiveProjects != 3 || s.WarningCount != 5 {
		t.Errorf("counters = %d/%d, want 3/5", s.ActiveProjects, s.WarningCount)
	}
	if got := s.ForRange(Range7d); got != s.Week {
		t.Errorf("ForRange(7d) did not return week block")
	}
}

func TestDashboardSummary_SendsTimeRange(t *testing.T) {
	var gotRange string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.URL.Query().Get("time_range")
		io.WriteString(w, `{"active_projects":0,"warning_count":0}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, fastPolicy())
	if _, err := c.DashboardSummary(context.Background(), Range30d); err != nil {
		t.Fatalf("DashboardSummary: %v", err)
	}
	if gotRange != "30d" {
		t.Errorf("time_range = %q, want 30d", gotRange)
	}
}

func TestRecentActivities_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name: "valid",
			body: `{"activities":[{"id":"act_1","timestamp":"2025-01-15T14:30:00","project_id":"my-app","level":2,"message":"m","details":{"cost_usd":0.5,"similarity_score":0.92}}],"has_more":false}`,
		},
		{
			name: "numeric id",
			body: `{"activities":[{"id":42,"timestamp":"t","project_id":"p","level":0,"message":"m"}],"has_more":true}`,
		},
		{
			name:    "level out of range",
			body:    `{"activities":[{"id":"a","level":7,"message":"m"}],"has_more":false}`,
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "missing id",
			body:    `{"activities":[{"level":1,"message":"m"}],"has_more":false}`,
			wantErr: ErrInvalidPayload,
		},
		{
			name:    "not json",
			body:    `<html>`,
			wantErr: ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveJSON(t, map[string]string{"GET /api/activities/recent": tt.body})
			c := newTestClient(t, srv.URL, fastPolicy())
			feed, err := c.RecentActivities(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(feed.Activities) != 1 {
				t.Errorf("activities = %d, want 1", len(feed.Activities))
			}
		})
	}
}

func TestRecentActivities_AcceptLanguage(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Accept-Language")
		io.WriteString(w, `{"activities":[],"has_more":false}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, fastPolicy(), WithLanguage("zh"))
	if _, err := c.RecentActivities(context.Background()); err != nil {
		t.Fatalf("RecentActivities: %v", err)
	}
	if got != "zh" {
		t.Errorf("Accept-Language = %q, want zh", got)
	}

	if _, err := c.RecentActivities(ContextWithLanguage(context.Background(), "en")); err != nil {
		t.Fatalf("RecentActivities: %v", err)
	}
	if got != "en" {
		t.Errorf("Accept-Language = %q, want en", got)
	}
}

func TestSubmitFeedback(t *testing.T) {
	var got FeedbackRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/feedback" {
			http.NotFound(w, r)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		io.WriteString(w, `{"success":true,"message":"Feedback recorded"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, fastPolicy())
	fb := FeedbackRequest{RequestID: "act_1", IsAccurate: 0, Message: "False positive reported for: m", ProjectID: "my-app"}
	res, err := c.SubmitFeedback(context.Background(), fb)
	if err != nil {
		t.Fatalf("SubmitFeedback: %v", err)
	}
	if !res.Success {
		t.Errorf("success = false")
	}
	if got != fb {
		t.Errorf("posted %+v, want %+v", got, fb)
	}
}

func TestSaveSettings_Rejected(t *testing.T) {
	srv := serveJSON(t, map[string]string{
		"POST /api/settings": `{"success":false,"message":"invalid exchange rate"}`,
	})
	c := newTestClient(t, srv.URL, fastPolicy())

	_, err := c.SaveSettings(context.Background(), DefaultSettings())
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("err = %v, want ErrRejected", err)
	}
}

func TestSaveSettings_ValidatesBeforeSending(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		io.WriteString(w, `{"success":true}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, fastPolicy())
	s := DefaultSettings()
	s.Pricing.ExchangeRate = 0
	if _, err := c.SaveSettings(context.Background(), s); !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("err = %v, want ErrInvalidPayload", err)
	}
	if hits != 0 {
		t.Errorf("backend hit %d times, want 0", hits)
	}
}

func TestSettings_DefaultsForMissingSections(t *testing.T) {
	srv := serveJSON(t, map[string]string{
		"GET /api/settings": `{"pricing":{"exchange_rate_usd_to_cny":7.1,"equivalents":{"coffee":15,"jianbing":8,"meal":50,"hotpot":120}}}`,
	})
	c := newTestClient(t, srv.URL, fastPolicy())

	s, err := c.Settings(context.Background())
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.Pricing.ExchangeRate != 7.1 {
		t.Errorf("exchange rate = %v, want 7.1", s.Pricing.ExchangeRate)
	}
	if s.Pricing.Models == nil {
		t.Errorf("models map is nil")
	}
	if s.Privacy.SimilarityMethod != "hash" || s.Privacy.CacheTTLSeconds != 3600 {
		t.Errorf("privacy defaults lost: %+v", s.Privacy)
	}
}

func TestOfficialPricing(t *testing.T) {
	srv := serveJSON(t, map[string]string{
		"GET /api/models/pricing/fetch-official": `{"success":true,"data":{"gpt-4o":{"input":2.5,"output":10}},"last_updated":"2025-01-01"}`,
	})
	c := newTestClient(t, srv.URL, fastPolicy())

	table, err := c.OfficialPricing(context.Background())
	if err != nil {
		t.Fatalf("OfficialPricing: %v", err)
	}
	if p := table["gpt-4o"]; p.Input != 2.5 || p.Output != 10 {
		t.Errorf("gpt-4o = %+v", p)
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		grade   string
	}{
		{
			name:  "success",
			body:  `{"success":true,"data":{"score":82,"grade":"B+","analysis":"ok","suggestions":[{"text":"batch","savings":"$1.20/week"},{"text":"cache","savings":0.5}],"positive_points":["low error rate"]}}`,
			grade: "B+",
		},
		{
			name:    "not successful",
			body:    `{"success":false}`,
			wantErr: ErrRejected,
		},
		{
			name:    "score out of range",
			body:    `{"success":true,"data":{"score":140,"grade":"A"}}`,
			wantErr: ErrInvalidPayload,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveJSON(t, map[string]string{"GET /api/analyzer/efficiency": tt.body})
			c := newTestClient(t, srv.URL, fastPolicy())
			r, err := c.Efficiency(context.Background(), "my-app", Range7d)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Efficiency: %v", err)
			}
			if r.Grade != tt.grade {
				t.Errorf("grade = %q, want %q", r.Grade, tt.grade)
			}
			if len(r.Suggestions) != 2 || r.Suggestions[1].Savings == nil || *r.Suggestions[1].Savings != "$0.50" {
				t.Errorf("suggestions = %+v", r.Suggestions)
			}
		})
	}
}

func TestDeleteProject_EscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		io.WriteString(w, `{"success":true,"deleted_requests":4,"deleted_feedback":1,"message":"deleted"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, fastPolicy())
	res, err := c.DeleteProject(context.Background(), "team a/b")
	if err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if gotPath != "/api/projects/team%20a%2Fb" {
		t.Errorf("path = %q", gotPath)
	}
	if res.DeletedRequests != 4 {
		t.Errorf("deleted_requests = %d, want 4", res.DeletedRequests)
	}
}

func TestTypedGet_ClientErrorIsStatusError(t *testing.T) {
	srv := serveJSON(t, map[string]string{})
	c := newTestClient(t, srv.URL, fastPolicy())

	_, err := c.ProjectStats(context.Background(), "nope", Range7d)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if !se.IsClientError() || se.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", se.Code)
	}
}

func TestProjects_DuplicateIDRejected(t *testing.T) {
	srv := serveJSON(t, map[string]string{
		"GET /api/projects": `[{"id":"a","name":"A"},{"id":"a","name":"A again"}]`,
	})
	c := newTestClient(t, srv.URL, fastPolicy())

	if _, err := c.Projects(context.Background()); !errors.Is(err, ErrInvalidPayload) {
		t.Errorf("err = %v, want ErrInvalidPayload", err)
	}
}
