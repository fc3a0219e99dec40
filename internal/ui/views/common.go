package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

// KeyHandledCmd is returned by view Update methods to signal that a key
// was consumed and should not propagate to app-level scroll or global
// handlers. It is a no-op cmd: bubbletea discards nil messages.
var KeyHandledCmd tea.Cmd = func() tea.Msg { return nil }

// Intent messages. Views never call the backend; they ask the App to.
type (
	OpenWarningsMsg    struct{}
	OpenPreferencesMsg struct{}
	ExportMsg          struct{}
	NewProjectMsg      struct{}
	FeedbackMsg        struct{ Item viewmodel.ActivityItem }
	SelectProjectMsg   struct{ ID string }
	DeleteProjectMsg   struct{ Project api.Project }
)

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Load tracks one backend resource as seen by a view.
type Load[T any] struct {
	Data   T
	Err    error
	Loaded bool
}

// Set stores a completed load.
func (l *Load[T]) Set(data T, err error) {
	l.Data, l.Err, l.Loaded = data, err, true
}

// placeholder returns the loading or failure text for a load that has no
// usable data, or "" when the data should be rendered.
func placeholder[T any](l Load[T], tr *i18n.Translator) string {
	switch {
	case !l.Loaded:
		return theme.MutedStyle.Render("  " + tr.T(i18n.Loading))
	case l.Err != nil:
		return theme.DangerStyle.Render("  " + tr.T(i18n.FailedToLoad))
	}
	return ""
}
