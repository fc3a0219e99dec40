package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
	"github.com/Casper-hue/api-watchdog/internal/watcher"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.General.Interval != 30 {
		t.Errorf("default interval = %d, want 30", cfg.General.Interval)
	}
	if cfg.General.Language != "en" {
		t.Errorf("default language = %q, want en", cfg.General.Language)
	}
	if cfg.Server.Timeout.Std() != 5*time.Second || cfg.Server.Retries != 3 {
		t.Errorf("default server = %+v", cfg.Server)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Server.BaseURL = "https://watchdog.example.com"
	cfg.Server.Timeout = Duration(2500 * time.Millisecond)
	cfg.Server.RateLimit = 4
	cfg.General.Language = "zh"
	cfg.General.Period = "quarter"
	cfg.Metrics.Addr = ":9100"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `timeout = "2.5s"`) {
		t.Errorf("timeout not written as a duration string:\n%s", data)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("round trip:\n got %+v\nwant %+v", loaded, cfg)
	}
	if loaded.Period() != viewmodel.PeriodQuarter {
		t.Errorf("Period() = %s", loaded.Period())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	os.WriteFile(path, []byte("[general]\ninterval = 60\n"), 0644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Interval != 60 {
		t.Errorf("interval = %d, want 60", cfg.General.Interval)
	}
	if cfg.Server.BaseURL != "http://localhost:8000" || cfg.General.Language != "en" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("API_WATCHDOG_SERVER_BASE_URL", "http://10.0.0.5:9000")
	t.Setenv("API_WATCHDOG_GENERAL_INTERVAL", "45")
	t.Setenv("API_WATCHDOG_SERVER_RETRY_DELAY", "250ms")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != "http://10.0.0.5:9000" {
		t.Errorf("base_url = %q", cfg.Server.BaseURL)
	}
	if cfg.General.Interval != 45 {
		t.Errorf("interval = %d, want 45", cfg.General.Interval)
	}
	if cfg.Server.RetryDelay.Std() != 250*time.Millisecond {
		t.Errorf("retry_delay = %s", cfg.Server.RetryDelay.Std())
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	os.WriteFile(path, []byte("{{invalid toml}}"), 0644)

	_, err := Load(path)
	if err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestSave_FilePermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perms.toml")

	if err := Save(DefaultConfig(), path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}
}

func TestSave_WatcherNeverLoadsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.General.Language = "zh"
	cfg.Server.BaseURL = "http://watchdog.internal:9000"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var loads, defaults atomic.Int32
	w := watcher.New([]string{path}, 5*time.Millisecond, func(p string) {
		got, err := Load(p)
		if err != nil {
			t.Errorf("Load during save: %v", err)
			return
		}
		loads.Add(1)
		if got.General.Language != "zh" || got.Server.BaseURL != cfg.Server.BaseURL {
			defaults.Add(1)
		}
	})
	w.Snapshot()
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	periods := []string{"week", "month", "quarter"}
	for i := range 30 {
		cfg.General.Period = periods[i%len(periods)]
		cfg.General.Interval = 30 + i
		if err := Save(cfg, path); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
		time.Sleep(2 * time.Millisecond)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && loads.Load() == 0 {
		time.Sleep(10 * time.Millisecond)
	}
	w.Stop()

	if loads.Load() == 0 {
		t.Fatal("watcher reported no change")
	}
	if n := defaults.Load(); n > 0 {
		t.Errorf("%d reloads saw a partial or default config", n)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ftp base url", func(c *Config) { c.Server.BaseURL = "ftp://x" }},
		{"no host", func(c *Config) { c.Server.BaseURL = "http://" }},
		{"zero retries", func(c *Config) { c.Server.Retries = 0 }},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }},
		{"negative rate", func(c *Config) { c.Server.RateLimit = -1 }},
		{"zero interval", func(c *Config) { c.General.Interval = 0 }},
		{"unknown language", func(c *Config) { c.General.Language = "fr" }},
		{"unknown period", func(c *Config) { c.General.Period = "year" }},
		{"unknown equivalent", func(c *Config) { c.General.Equivalent = "tea" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRetryPolicy(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.RetryPolicy()
	if p.Retries != 3 || p.AttemptTimeout != 5*time.Second || p.BaseDelay != time.Second {
		t.Errorf("RetryPolicy = %+v", p)
	}
}

func TestDefaultPath_NotEmpty(t *testing.T) {
	p := DefaultPath()
	if p == "" {
		t.Error("DefaultPath should not be empty")
	}
}
