package viewmodel

import (
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"

	"github.com/Casper-hue/api-watchdog/internal/api"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"My Project":          "my-project",
		"  Team\tA   Bot  ":   "team-a-bot",
		"already-slugged":     "already-slugged",
		"中文 项目":               "中文-项目",
		"":                    "",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewLocalProject(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	existing := []api.Project{{ID: "alpha", Name: "Alpha"}}

	p, err := NewLocalProject(existing, " New Bot ", now)
	if err != nil {
		t.Fatalf("NewLocalProject: %v", err)
	}
	want := api.Project{ID: "new-bot", Name: "New Bot", CreatedAt: "2025-06-01", Equivalent: "N/A"}
	if p != want {
		t.Errorf("project = %+v, want %+v", p, want)
	}

	if _, err := NewLocalProject(existing, "   ", now); !errors.Is(err, ErrBlankProjectName) {
		t.Errorf("blank name err = %v", err)
	}
	if _, err := NewLocalProject(existing, "ALPHA", now); !errors.Is(err, ErrDuplicateProject) {
		t.Errorf("duplicate err = %v", err)
	}
}

func TestRemoveProject(t *testing.T) {
	list := []api.Project{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	tests := []struct {
		name     string
		id       string
		selected string
		wantIDs  []string
		wantIdx  int
	}{
		{"remove selected falls back to first", "b", "b", []string{"a", "c"}, 0},
		{"keep other selection", "a", "c", []string{"b", "c"}, 1},
		{"unknown id", "z", "b", []string{"a", "b", "c"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, idx := RemoveProject(list, tt.id, tt.selected)
			ids := lo.Map(got, func(p api.Project, _ int) string { return p.ID })
			if !equalStrings(ids, tt.wantIDs) || idx != tt.wantIdx {
				t.Errorf("got %v idx %d, want %v idx %d", ids, idx, tt.wantIDs, tt.wantIdx)
			}
		})
	}

	if got, idx := RemoveProject([]api.Project{{ID: "a"}}, "a", "a"); len(got) != 0 || idx != -1 {
		t.Errorf("last project: %v idx %d", got, idx)
	}
}

func TestEquivalentLabel(t *testing.T) {
	if got := EquivalentLabel(&api.ProjectStats{Equivalents: &api.Equivalents{CoffeeCups: 4.5}}); got != "4.5 coffee cups" {
		t.Errorf("label = %q", got)
	}
	if got := EquivalentLabel(&api.ProjectStats{}); got != "N/A" {
		t.Errorf("label = %q", got)
	}
}
