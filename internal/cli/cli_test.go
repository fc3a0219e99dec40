package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Casper-hue/api-watchdog/internal/api"
)

type fakeBackend struct {
	mu     sync.Mutex
	routes map[string]string
	posted map[string][]byte
}

func newBackend(t *testing.T, routes map[string]string) (*fakeBackend, string) {
	t.Helper()
	b := &fakeBackend{routes: routes, posted: make(map[string][]byte)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		k := r.Method + " " + r.URL.Path
		if r.Method != http.MethodGet {
			body, _ := io.ReadAll(r.Body)
			b.mu.Lock()
			b.posted[k] = body
			b.mu.Unlock()
		}
		body, ok := b.routes[k]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return b, srv.URL
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf(`[server]
base_url = %q
retries = 1
timeout = "2s"
retry_delay = "10ms"

[log]
level = "error"
`, baseURL)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd("1.2.3")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const summaryJSON = `{
	"today": {"total_cost_usd": 4.5, "total_cost_cny": 32.8, "equivalents": {"coffee_cups": 2.2}, "change_percent": 10},
	"week": {"total_cost_usd": 30, "total_cost_cny": 219, "equivalents": {"coffee_cups": 14.6}, "change_percent": -5},
	"active_projects": 2,
	"warning_count": 1
}`

const statsJSON = `{
	"project_id": "all", "period": "7d", "total_requests": 30,
	"total_cost_usd": 30, "total_cost_cny": 219,
	"top_models": [{"model": "gpt-4o", "requests": 20, "cost": 24}, {"model": "gpt-4o-mini", "requests": 10, "cost": 6}]
}`

func TestVersion_JSON(t *testing.T) {
	out, err := run(t, "version", "-o", "json")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var v versionInfo
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if v.Version != "1.2.3" || v.Go == "" {
		t.Errorf("version info = %+v", v)
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	_, url := newBackend(t, nil)
	_, err := run(t, "summary", "--config", writeConfig(t, url), "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("err = %v", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "summary", "--config", writeConfig(t, "not a url"))
	if err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Errorf("err = %v", err)
	}
}

func TestSummary_JSONAndTable(t *testing.T) {
	_, url := newBackend(t, map[string]string{
		"GET /api/dashboard/summary": summaryJSON,
	})
	cfg := writeConfig(t, url)

	out, err := run(t, "summary", "--config", cfg, "-o", "json")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	var s api.DashboardSummary
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if s.ActiveProjects != 2 || s.Today == nil || s.Today.TotalCostUSD != 4.5 {
		t.Errorf("summary = %+v", s)
	}

	// Preferences are missing on this backend; defaults are used.
	out, err = run(t, "summary", "--config", cfg)
	if err != nil {
		t.Fatalf("summary table: %v", err)
	}
	for _, want := range []string{"METRIC", "$4.50", "$30.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestSummary_BadPeriod(t *testing.T) {
	_, url := newBackend(t, nil)
	if _, err := run(t, "summary", "--config", writeConfig(t, url), "-p", "decade"); err == nil {
		t.Error("expected an error for an unknown period")
	}
}

func TestStats_Table(t *testing.T) {
	_, url := newBackend(t, map[string]string{"GET /api/projects/stats": statsJSON})
	out, err := run(t, "stats", "--config", writeConfig(t, url))
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"gpt-4o-mini", "$24.00", "80%", "30 requests"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProjects_YAML(t *testing.T) {
	_, url := newBackend(t, map[string]string{
		"GET /api/projects": `[{"id":"a","name":"Alpha","createdAt":"2025-01-01","totalCost":3}]`,
	})
	out, err := run(t, "projects", "list", "--config", writeConfig(t, url), "-o", "yaml")
	if err != nil {
		t.Fatalf("projects list: %v", err)
	}
	if !strings.Contains(out, "name: Alpha") || !strings.Contains(out, "total_cost: 3") {
		t.Errorf("yaml output:\n%s", out)
	}
}

func TestProjectsCreate_RejectsDuplicate(t *testing.T) {
	_, url := newBackend(t, map[string]string{
		"GET /api/projects": `[{"id":"my-bot","name":"My Bot","createdAt":"2025-01-01"}]`,
	})
	_, err := run(t, "projects", "create", "my bot", "--config", writeConfig(t, url))
	if err == nil || !strings.Contains(err.Error(), "my-bot") {
		t.Errorf("err = %v", err)
	}
}

func TestPrefsSet(t *testing.T) {
	b, url := newBackend(t, map[string]string{
		"GET /api/user/preferences":  `{"today_budget":100,"week_budget":500,"active_proj_limit":10,"warning_threshold":5}`,
		"POST /api/user/preferences": `{"success":true,"preferences":{"today_budget":25,"week_budget":500,"active_proj_limit":10,"warning_threshold":5}}`,
	})
	out, err := run(t, "prefs", "set", "--today-budget", "25", "--config", writeConfig(t, url))
	if err != nil {
		t.Fatalf("prefs set: %v", err)
	}
	if !strings.Contains(out, "$25.00") {
		t.Errorf("output:\n%s", out)
	}

	var sent api.UserPreferences
	if err := json.Unmarshal(b.posted["POST /api/user/preferences"], &sent); err != nil {
		t.Fatalf("decode posted body: %v", err)
	}
	if sent.TodayBudget != 25 || sent.WeekBudget != 500 {
		t.Errorf("posted %+v, want only today budget changed", sent)
	}
}

func TestPrefsSet_NoFlags(t *testing.T) {
	_, err := run(t, "prefs", "set")
	if !errors.Is(err, errNoPrefsChange) {
		t.Errorf("err = %v, want errNoPrefsChange", err)
	}
}

func TestSettingsOfficial_FlagsExclusive(t *testing.T) {
	_, url := newBackend(t, nil)
	_, err := run(t, "settings", "official", "--merge", "--replace", "--config", writeConfig(t, url))
	if err == nil {
		t.Error("--merge and --replace together should fail")
	}
}

func TestSettingsOfficial_Merge(t *testing.T) {
	b, url := newBackend(t, map[string]string{
		"GET /api/settings": `{"pricing":{"exchange_rate_usd_to_cny":7.2,"equivalents":{"coffee":15,"jianbing":8,"meal":50,"hotpot":120},
			"models":{"gpt-4o":{"input":2.5,"output":10}}},"privacy":{"similarity_method":"hash","cache_ttl_seconds":3600}}`,
		"GET /api/models/pricing/fetch-official": `{"success":true,"data":{"gpt-4o":{"input":9,"output":9},"o1":{"input":15,"output":60}}}`,
		"POST /api/settings": `{"success":true,"message":"saved"}`,
	})
	out, err := run(t, "settings", "official", "--config", writeConfig(t, url))
	if err != nil {
		t.Fatalf("settings official: %v", err)
	}
	if !strings.Contains(out, "Added 1 official models (2 total)") {
		t.Errorf("output: %q", out)
	}

	var sent api.Settings
	if err := json.Unmarshal(b.posted["POST /api/settings"], &sent); err != nil {
		t.Fatalf("decode posted settings: %v", err)
	}
	if got := sent.Pricing.Models["gpt-4o"]; got.Input != 2.5 {
		t.Errorf("existing price overwritten: %+v", got)
	}
	if _, ok := sent.Pricing.Models["o1"]; !ok {
		t.Error("missing model not added")
	}
}

func TestExport_WritesCSV(t *testing.T) {
	_, url := newBackend(t, map[string]string{
		"GET /api/dashboard/summary": summaryJSON,
		"GET /api/projects/stats":    statsJSON,
		"GET /api/warnings":          `{"warnings":[],"total_count":3}`,
	})
	dir := t.TempDir()
	out, err := run(t, "export", "--dir", dir, "--config", writeConfig(t, url), "-o", "json")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	var res exportResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if filepath.Dir(res.Path) != dir || res.Records == 0 {
		t.Errorf("result = %+v", res)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"3"`) {
		t.Errorf("warning count missing from csv:\n%s", data)
	}
}

func TestExport_FailsWhenAnyFetchFails(t *testing.T) {
	_, url := newBackend(t, map[string]string{
		"GET /api/dashboard/summary": summaryJSON,
		"GET /api/projects/stats":    statsJSON,
	})
	_, err := run(t, "export", "--dir", t.TempDir(), "--config", writeConfig(t, url))
	if err == nil {
		t.Error("expected the warnings failure to abort the export")
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "http://127.0.0.1:1")
	opts := &rootOptions{logLevel: "debug", metricsAddr: ":9100"}

	for i := range 2 {
		cfg, err := loadConfig(path, opts)
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if cfg.Log.Level != "debug" || cfg.Metrics.Addr != ":9100" {
			t.Errorf("load %d: level %q, metrics %q; flags should win", i, cfg.Log.Level, cfg.Metrics.Addr)
		}
	}

	cfg, err := loadConfig(path, &rootOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("without flags level = %q, want file value", cfg.Log.Level)
	}
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := writeConfig(t, "ftp://nowhere")
	if _, err := loadConfig(path, &rootOptions{}); err == nil {
		t.Error("expected invalid base_url to be rejected")
	}
}
