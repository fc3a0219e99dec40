package viewmodel

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/samber/lo"

	"github.com/Casper-hue/api-watchdog/internal/api"
)

var (
	ErrBlankProjectName = errors.New("project name is blank")
	ErrDuplicateProject = errors.New("project already exists")
)

// Slugify lowercases name and replaces every whitespace run with a hyphen.
func Slugify(name string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(name), unicode.IsSpace), "-")
}

// NewLocalProject creates a project entry before the backend knows about it.
func NewLocalProject(existing []api.Project, name string, now time.Time) (api.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return api.Project{}, ErrBlankProjectName
	}
	id := Slugify(name)
	if lo.ContainsBy(existing, func(p api.Project) bool { return p.ID == id }) {
		return api.Project{}, fmt.Errorf("%w: %s", ErrDuplicateProject, id)
	}
	return api.Project{
		ID:         id,
		Name:       name,
		CreatedAt:  now.Format("2006-01-02"),
		Equivalent: "N/A",
	}, nil
}

// RemoveProject drops id from list and returns the new list with the index
// to select. selected is kept when it still exists, otherwise the first
// project is selected. An empty list yields -1.
func RemoveProject(list []api.Project, id string, selected string) ([]api.Project, int) {
	out := lo.Reject(list, func(p api.Project, _ int) bool { return p.ID == id })
	if len(out) == 0 {
		return out, -1
	}
	_, idx, ok := lo.FindIndexOf(out, func(p api.Project) bool { return p.ID == selected })
	if !ok {
		return out, 0
	}
	return out, idx
}

// EquivalentLabel renders the stats coffee equivalent, or "N/A".
func EquivalentLabel(s *api.ProjectStats) string {
	if s == nil || s.Equivalents == nil {
		return "N/A"
	}
	return FormatAmount(s.Equivalents.CoffeeCups) + " coffee cups"
}
