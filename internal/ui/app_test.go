package ui

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/config"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/ui/overlays"
	"github.com/Casper-hue/api-watchdog/internal/ui/views"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// backend serves canned JSON bodies keyed by "METHOD /path".
func backend(t *testing.T, routes map[string]string) *api.Client {
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

	c, err := api.New(srv.URL, api.WithRetryPolicy(api.RetryPolicy{
		Retries:        1,
		AttemptTimeout: time.Second,
		BaseDelay:      time.Millisecond,
	}))
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}
	return c
}

func newTestApp(c *api.Client) App {
	cfg := config.DefaultConfig()
	return NewApp(Options{Config: cfg, Client: c})
}

// collect runs cmd and any batched commands, returning their messages.
// Only use it on load and mutation commands; ticks would block.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send applies msg and keeps feeding resulting messages back in until no
// commands remain.
func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		m, cmd := a.Update(queue[0])
		a = m.(App)
		queue = append(queue[1:], collect(cmd)...)
	}
	return a
}

func TestApp_SwitchToProjectsLoadsListAndStats(t *testing.T) {
	c := backend(t, map[string]string{
		"GET /api/projects":         `[{"id":"a","name":"Alpha","createdAt":"2025-01-01"},{"id":"b","name":"Beta","createdAt":"2025-02-01"}]`,
		"GET /api/projects/a/stats": `{"project_id":"a","total_requests":4,"total_cost_usd":3.25,"total_cost_cny":23.7}`,
	})
	a := send(t, newTestApp(c), key("3"))

	if a.activeView != ViewProjects {
		t.Fatalf("active view = %d, want projects", a.activeView)
	}
	list := a.projectsView.List()
	if len(list) != 2 {
		t.Fatalf("projects = %d, want 2", len(list))
	}
	if list[0].TotalCost != 3.25 {
		t.Errorf("first project cost = %v, want stats total 3.25", list[0].TotalCost)
	}
}

func TestApp_SwitchViewWithoutClient(t *testing.T) {
	m, cmd := newTestApp(nil).Update(key("2"))
	a := m.(App)
	if a.activeView != ViewStatistics {
		t.Errorf("active view = %d, want statistics", a.activeView)
	}
	if cmd != nil {
		t.Error("no client should mean no loads")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.(App).activeView; got != ViewDashboard {
		t.Errorf("shift+tab from statistics = %d, want dashboard", got)
	}
}

func TestApp_DropsStaleResponses(t *testing.T) {
	a := newTestApp(nil)
	old := a.gens.Next(resSummary)
	latest := a.gens.Next(resSummary)

	m, _ := a.Update(summaryMsg{gen: old, data: &api.DashboardSummary{ActiveProjects: 1}})
	a = m.(App)
	if a.dashboardView.Summary.Loaded {
		t.Fatal("superseded response was applied")
	}

	m, _ = a.Update(summaryMsg{gen: latest, data: &api.DashboardSummary{ActiveProjects: 2}})
	a = m.(App)
	if !a.dashboardView.Summary.Loaded || a.dashboardView.Summary.Data.ActiveProjects != 2 {
		t.Errorf("latest response not applied: %+v", a.dashboardView.Summary)
	}
}

func TestApp_LoadFailureRaisesNotification(t *testing.T) {
	a := newTestApp(nil)
	gen := a.gens.Next(resActivities)
	m, _ := a.Update(activitiesMsg{gen: gen, err: errors.New("connection refused")})
	a = m.(App)

	n := a.notifications.Active()
	if n == nil || !n.Error {
		t.Fatalf("notification = %+v, want error", n)
	}
	if !strings.Contains(n.Message, "connection refused") {
		t.Errorf("message = %q", n.Message)
	}
	if a.dashboardView.Activities.Err == nil {
		t.Error("view should keep the failure")
	}
}

func TestApp_SettingsSaveFailureShowsAlert(t *testing.T) {
	a := newTestApp(nil)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)

	m, _ = a.Update(settingsSavedMsg{err: errors.New("boom")})
	a = m.(App)
	if a.alert == nil {
		t.Fatal("expected a blocking alert")
	}
	if !strings.Contains(a.View(), "boom") {
		t.Error("alert text missing from view")
	}

	m, _ = a.Update(key("2"))
	a = m.(App)
	if a.activeView != ViewDashboard {
		t.Error("keys should not reach the app while the alert is shown")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(App).alert != nil {
		t.Error("enter should dismiss the alert")
	}
}

func TestApp_SettingsWithoutClient(t *testing.T) {
	m, cmd := newTestApp(nil).Update(key("s"))
	a := m.(App)
	if a.overlay != OverlaySettings || a.settingsOverlay == nil {
		t.Fatalf("overlay = %d, want settings", a.overlay)
	}
	if cmd != nil {
		t.Error("settings fetch issued without a client")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = m.(App)
	if a.overlay != OverlayNone || a.settingsOverlay != nil {
		t.Error("esc should close the settings overlay")
	}
}

func TestApp_CreateProjectIsLocalFirst(t *testing.T) {
	// The backend rejects the POST; the project stays.
	c := backend(t, map[string]string{})
	a := send(t, newTestApp(c), overlays.CreateProjectMsg{Name: "New Bot"})

	sel, ok := a.projectsView.Selected()
	if !ok || sel.ID != "new-bot" || sel.Name != "New Bot" {
		t.Fatalf("selected = %+v", sel)
	}

	a = send(t, a, overlays.CreateProjectMsg{Name: "new bot"})
	if n := len(a.projectsView.List()); n != 1 {
		t.Errorf("duplicate slug added: %d projects", n)
	}
	if n := a.notifications.Active(); n == nil || !n.Error {
		t.Error("duplicate should raise an error notification")
	}
}

func TestApp_DeleteProject(t *testing.T) {
	c := backend(t, map[string]string{
		"DELETE /api/projects/b":    `{"success":true,"deleted_requests":12,"deleted_feedback":2}`,
		"DELETE /api/projects/a":    `{"success":false,"message":"locked"}`,
		"GET /api/projects/a/stats": `{"project_id":"a","total_cost_usd":1}`,
	})
	a := newTestApp(c)
	a.projectsView.SetProjects([]api.Project{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}, nil)

	a = send(t, a, overlays.ConfirmDeleteMsg{Project: api.Project{ID: "b", Name: "Beta"}})
	list := a.projectsView.List()
	if len(list) != 1 || list[0].ID != "a" {
		t.Fatalf("after delete: %+v", list)
	}
	if list[0].TotalCost != 1 {
		t.Error("stats for the next selection should be loaded")
	}

	a = send(t, a, overlays.ConfirmDeleteMsg{Project: api.Project{ID: "a", Name: "Alpha"}})
	if len(a.projectsView.List()) != 1 {
		t.Error("rejected delete removed the project")
	}
	if n := a.notifications.Active(); n == nil || !n.Error {
		t.Error("rejected delete should raise an error notification")
	}
}

func TestApp_FeedbackMarksWarning(t *testing.T) {
	c := backend(t, map[string]string{
		"GET /api/warnings":  `{"warnings":[{"id":7,"level":3,"message":"dup","project_id":"p"}],"total_count":1}`,
		"POST /api/feedback": `{"success":true,"message":"ok"}`,
	})
	a := send(t, newTestApp(c), views.OpenWarningsMsg{})
	if a.overlay != OverlayWarnings {
		t.Fatalf("overlay = %d, want warnings", a.overlay)
	}

	a = send(t, a, key("f"))
	n := a.notifications.Active()
	if n == nil || n.Error {
		t.Fatalf("notification = %+v, want success", n)
	}
	if !strings.Contains(a.warningsOverlay.Render(100, 40), a.tr.T(i18n.FeedbackSent)) {
		t.Error("warning should be marked as reported")
	}
}

func TestApp_ExportWritesCSV(t *testing.T) {
	a := newTestApp(nil)
	a.ExportDir = t.TempDir()
	a.now = func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }
	a.statisticsView.SetStats(&api.ProjectStats{TotalRequests: 3, TotalCostUSD: 1.5}, nil)

	m, cmd := a.Update(views.ExportMsg{})
	a = m.(App)
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	done, ok := msgs[0].(exportedMsg)
	if !ok || done.err != nil {
		t.Fatalf("export result = %#v", msgs[0])
	}
	data, err := os.ReadFile(done.path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "metric,value,unit") {
		t.Errorf("csv starts with %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestApp_ConfigChange(t *testing.T) {
	var built []string
	factory := func(cfg config.Config) (*api.Client, error) {
		built = append(built, cfg.Server.BaseURL)
		return api.New(cfg.Server.BaseURL)
	}
	a := NewApp(Options{Config: config.DefaultConfig(), NewClient: factory})

	cfg := a.Config
	cfg.General.Language = "zh"
	cfg.General.Period = "month"
	m, _ := a.Update(overlays.ConfigChangedMsg{Config: cfg})
	a = m.(App)
	if len(built) != 0 {
		t.Errorf("client rebuilt without a server change: %v", built)
	}
	if a.tr.Language() != i18n.ZH {
		t.Errorf("language = %s, want zh", a.tr.Language())
	}
	if a.period != viewmodel.PeriodMonth {
		t.Errorf("period = %s, want month", a.period)
	}

	cfg.Server.BaseURL = "http://127.0.0.1:9"
	m, _ = a.Update(overlays.ConfigChangedMsg{Config: cfg})
	a = m.(App)
	if len(built) != 1 || a.client == nil {
		t.Errorf("client not rebuilt: %v", built)
	}
}

func TestApp_PeriodKeyCycles(t *testing.T) {
	m, _ := newTestApp(nil).Update(key("p"))
	a := m.(App)
	if a.period != viewmodel.PeriodMonth || a.Config.General.Period != "month" {
		t.Errorf("period = %s (config %s), want month", a.period, a.Config.General.Period)
	}
}

func TestApp_ViewStates(t *testing.T) {
	a := newTestApp(nil)
	if got := a.View(); got != a.tr.T(i18n.Initializing) {
		t.Errorf("before size: %q", got)
	}

	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	a = m.(App)
	if !strings.Contains(a.View(), "60") {
		t.Error("too-small view should report the current size")
	}

	m, _ = a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = m.(App)
	if !strings.Contains(a.View(), "API WATCHDOG") {
		t.Error("tab bar brand missing")
	}
}
