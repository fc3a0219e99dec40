package overlays

import (
	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/config"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

// ConfigChangedMsg signals that the local config has been updated.
type ConfigChangedMsg struct {
	Config config.Config
}

// SaveSettingsMsg asks the App to POST the backend settings.
type SaveSettingsMsg struct {
	Settings api.Settings
}

// LoadOfficialMsg asks the App to fetch official pricing, merging new
// models or replacing the table.
type LoadOfficialMsg struct {
	Replace bool
}

// SubmitFeedbackMsg reports an activity as a false positive.
type SubmitFeedbackMsg struct {
	Item viewmodel.ActivityItem
}

type SavePreferencesMsg struct {
	Prefs api.UserPreferences
}

type CreateProjectMsg struct {
	Name string
}

type ConfirmDeleteMsg struct {
	Project api.Project
}
