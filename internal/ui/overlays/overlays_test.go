package overlays

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/config"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	bksp  = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestInput_Editing(t *testing.T) {
	var in Input
	in.Start("name: ", "ab")
	in.Update(runes("c"))
	in.Update(tea.KeyMsg{Type: tea.KeySpace})
	in.Update(runes("界"))
	in.Update(bksp)
	if in.Value != "abc " {
		t.Errorf("value = %q, want %q", in.Value, "abc ")
	}
	if submitted, _ := in.Update(enter); !submitted || in.Active {
		t.Errorf("enter: submitted=%v active=%v", submitted, in.Active)
	}

	in.Start("", "x")
	in.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if in.Value != "" {
		t.Errorf("ctrl+u left %q", in.Value)
	}
	if _, cancelled := in.Update(esc); !cancelled {
		t.Error("esc should cancel")
	}
}

func TestCreateProjectPrompt(t *testing.T) {
	p := NewCreateProjectPrompt(i18n.New(i18n.EN))
	for _, r := range "  My Bot " {
		p.Update(runes(string(r)))
	}
	closed, cmd := p.Update(enter)
	if !closed || cmd == nil {
		t.Fatalf("closed=%v cmd=%v", closed, cmd)
	}
	msg, ok := cmd().(CreateProjectMsg)
	if !ok || msg.Name != "My Bot" {
		t.Errorf("got %#v, want CreateProjectMsg{My Bot}", msg)
	}
}

func TestCreateProjectPrompt_BlankClosesSilently(t *testing.T) {
	p := NewCreateProjectPrompt(i18n.New(i18n.EN))
	p.Update(runes(" "))
	if closed, cmd := p.Update(enter); !closed || cmd != nil {
		t.Errorf("blank name: closed=%v cmd=%v", closed, cmd != nil)
	}

	p = NewCreateProjectPrompt(i18n.New(i18n.EN))
	p.Update(runes("x"))
	if closed, cmd := p.Update(esc); !closed || cmd != nil {
		t.Errorf("esc: closed=%v cmd=%v", closed, cmd != nil)
	}
}

func TestDeleteProjectPrompt(t *testing.T) {
	tr := i18n.New(i18n.EN)
	project := api.Project{ID: "p1", Name: "Bot"}

	p := NewDeleteProjectPrompt(tr, project)
	if closed, _ := p.Update(runes("x")); closed {
		t.Error("unrelated key closed the confirmation")
	}
	if !strings.Contains(p.Render(80, 24), "Bot") {
		t.Error("confirmation should name the project")
	}
	closed, cmd := p.Update(runes("y"))
	if !closed || cmd == nil {
		t.Fatalf("y: closed=%v cmd=%v", closed, cmd != nil)
	}
	if msg, ok := cmd().(ConfirmDeleteMsg); !ok || msg.Project.ID != "p1" {
		t.Errorf("got %#v", msg)
	}

	p = NewDeleteProjectPrompt(tr, project)
	if closed, cmd := p.Update(runes("n")); !closed || cmd != nil {
		t.Errorf("n: closed=%v cmd=%v", closed, cmd != nil)
	}
}

func TestParseBudgetAndCount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"10", 10, false},
		{" 2.5 ", 2.5, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"ten", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseBudget(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseBudget(%q) = %v, %v", tt.in, got, err)
		}
	}

	if n, err := parseCount("7"); err != nil || n != 7 {
		t.Errorf("parseCount(7) = %d, %v", n, err)
	}
	if _, err := parseCount("1.5"); err == nil {
		t.Error("parseCount(1.5) should fail")
	}
}

func TestPreferencesOverlay_EditAndSave(t *testing.T) {
	p := NewPreferencesOverlay(i18n.New(i18n.EN), api.DefaultUserPreferences())

	p.Update(runes("j"))
	p.Update(enter)
	p.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	p.Update(runes("42.5"))
	p.Update(enter)
	if got := p.Preferences().WeekBudget; got != 42.5 {
		t.Fatalf("week budget = %v, want 42.5", got)
	}

	closed, cmd := p.Update(runes("w"))
	if !closed || cmd == nil {
		t.Fatalf("w: closed=%v cmd=%v", closed, cmd != nil)
	}
	msg, ok := cmd().(SavePreferencesMsg)
	if !ok || msg.Prefs.WeekBudget != 42.5 {
		t.Errorf("got %#v", msg)
	}
}

func TestPreferencesOverlay_RejectsInvalid(t *testing.T) {
	start := api.DefaultUserPreferences()
	p := NewPreferencesOverlay(i18n.New(i18n.EN), start)

	p.Update(runes("j"))
	p.Update(runes("j"))
	p.Update(enter)
	p.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	p.Update(runes("-3"))
	p.Update(enter)

	if got := p.Preferences(); got != start {
		t.Errorf("invalid input changed prefs to %+v", got)
	}
	if !strings.Contains(p.Render(80, 30), "invalid count") {
		t.Error("error should be shown")
	}
	if closed, cmd := p.Update(esc); !closed || cmd != nil {
		t.Errorf("esc: closed=%v cmd=%v", closed, cmd != nil)
	}
}

func sampleWarnings() *api.WarningList {
	return &api.WarningList{
		Warnings: []api.Activity{
			{ID: "w1", Level: api.LevelNotice, Message: "slow"},
			{ID: "w2", Level: api.LevelRateLimited, Message: "limited"},
		},
		TotalCount: 1,
	}
}

func TestWarningsOverlay_Feedback(t *testing.T) {
	w := NewWarningsOverlay(i18n.New(i18n.EN))
	w.SetWarnings(sampleWarnings(), nil)

	if _, cmd := w.Update(runes("f")); cmd != nil {
		t.Error("notice-level warning should not accept feedback")
	}

	w.Update(runes("j"))
	_, cmd := w.Update(runes("f"))
	if cmd == nil {
		t.Fatal("expected feedback cmd")
	}
	msg, ok := cmd().(SubmitFeedbackMsg)
	if !ok || msg.Item.ID != "w2" || !msg.Item.Critical {
		t.Errorf("got %#v", msg)
	}

	w.MarkReported("w2")
	if _, cmd := w.Update(runes("f")); cmd != nil {
		t.Error("already reported warning accepted feedback again")
	}
	if !strings.Contains(w.Render(100, 40), "Feedback") {
		t.Error("reported warning should be marked")
	}
}

func TestWarningsOverlay_TotalIsAtLeastListed(t *testing.T) {
	w := NewWarningsOverlay(i18n.New(i18n.EN))
	w.SetWarnings(sampleWarnings(), nil)
	if w.total != 2 {
		t.Errorf("total = %d, want 2", w.total)
	}
	if closed, _ := w.Update(esc); !closed {
		t.Error("esc should close")
	}
}

func TestAlertOverlay_Dismiss(t *testing.T) {
	a := NewAlertOverlay(i18n.New(i18n.EN), "save failed: boom")
	if a.Update(runes("x")) {
		t.Error("x should not dismiss the alert")
	}
	if !strings.Contains(a.Render(80, 24), "boom") {
		t.Error("alert should show its message")
	}
	if !a.Update(enter) {
		t.Error("enter should dismiss")
	}
}

func TestSettingsOverlay_OfficialMerge(t *testing.T) {
	s := NewSettingsOverlay(i18n.New(i18n.EN), config.DefaultConfig(), "")
	remote := api.DefaultSettings()
	remote.Pricing.Models = map[string]api.ModelPrice{"gpt-4o": {Input: 1, Output: 2}}
	s.SetRemote(&remote, nil)

	_, cmd := s.Update(runes("o"))
	if cmd == nil {
		t.Fatal("o should request official pricing")
	}
	if msg, ok := cmd().(LoadOfficialMsg); !ok || msg.Replace {
		t.Errorf("got %#v, want merge", msg)
	}

	s.ApplyOfficial(map[string]api.ModelPrice{
		"gpt-4o":      {Input: 9, Output: 9},
		"gpt-4o-mini": {Input: 0.15, Output: 0.6},
	}, false, nil)
	got := s.Settings().Pricing.Models
	if len(got) != 2 {
		t.Fatalf("models = %v, want 2 entries", got)
	}
	if got["gpt-4o"].Input != 1 {
		t.Errorf("merge overwrote an existing price: %+v", got["gpt-4o"])
	}
	if remote.Pricing.Models["gpt-4o-mini"] != (api.ModelPrice{}) {
		t.Error("editing mutated the loaded settings")
	}
}

func TestSettingsOverlay_LoadFailureKeepsDefaults(t *testing.T) {
	s := NewSettingsOverlay(i18n.New(i18n.EN), config.DefaultConfig(), "")
	s.SetRemote(nil, errTest)
	if got := s.Settings().Pricing.ExchangeRate; got != api.DefaultSettings().Pricing.ExchangeRate {
		t.Errorf("exchange rate = %v, want default", got)
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("unavailable")
