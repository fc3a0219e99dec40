package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/config"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/reqgen"
	"github.com/Casper-hue/api-watchdog/internal/ui/overlays"
	"github.com/Casper-hue/api-watchdog/internal/ui/views"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

type ViewType int

const (
	ViewDashboard ViewType = iota
	ViewStatistics
	ViewProjects
	ViewCount // sentinel: number of views
)

type OverlayType int

const (
	OverlayNone OverlayType = iota
	OverlayHelp
	OverlaySettings
	OverlayWarnings
	OverlayPreferences
	OverlayPrompt
)

// Resources tracked by the request-generation tracker.
const (
	resSummary      = "summary"
	resTrend        = "trend"
	resActivities   = "activities"
	resPreferences  = "preferences"
	resStatistics   = "statistics"
	resProjects     = "projects"
	resProjectStats = "project-stats"
	resWarnings     = "warnings"
	resSettings     = "settings"
	resOfficial     = "official"
)

// TickMsg triggers periodic data refresh.
type TickMsg time.Time

// BlinkMsg triggers UI-only refresh for smooth animation (250ms).
type BlinkMsg time.Time

// Load results. gen is the generation issued when the request started.
type (
	summaryMsg struct {
		gen  uint64
		data *api.DashboardSummary
		err  error
	}
	trendMsg struct {
		gen  uint64
		data *api.ProjectStats
		err  error
	}
	activitiesMsg struct {
		gen  uint64
		data *api.ActivityFeed
		err  error
	}
	preferencesMsg struct {
		gen  uint64
		data *api.UserPreferences
		err  error
	}
	statisticsMsg struct {
		gen        uint64
		summary    *api.DashboardSummary
		summaryErr error
		stats      *api.ProjectStats
		statsErr   error
		projects   []api.Project
		efficiency *api.EfficiencyReport
	}
	projectsMsg struct {
		gen      uint64
		projects []api.Project
		err      error

		// first project's stats, fetched in the same command
		statsGen uint64
		statsID  string
		stats    *api.ProjectStats
		statsErr error
	}
	projectStatsMsg struct {
		gen  uint64
		id   string
		data *api.ProjectStats
		err  error
	}
	warningsMsg struct {
		gen  uint64
		data *api.WarningList
		err  error
	}
	settingsMsg struct {
		gen  uint64
		data *api.Settings
		err  error
	}
	officialMsg struct {
		gen     uint64
		replace bool
		data    map[string]api.ModelPrice
		err     error
	}
)

// Mutation results.
type (
	settingsSavedMsg struct {
		err error
	}
	preferencesSavedMsg struct {
		data *api.UserPreferences
		err  error
	}
	feedbackMsg struct {
		id  string
		err error
	}
	exportedMsg struct {
		path string
		err  error
	}
	projectCreatedMsg struct {
		project api.Project
		err     error
	}
	projectDeletedMsg struct {
		project api.Project
		result  *api.DeleteResult
		err     error
	}
)

// ClientFactory builds a backend client for cfg. It is used again when the
// base URL changes at runtime.
type ClientFactory func(cfg config.Config) (*api.Client, error)

// Options wires the App to its collaborators.
type Options struct {
	Config     config.Config
	ConfigPath string // where the settings overlay saves; empty disables saving
	ExportDir  string // CSV export destination
	Client     *api.Client
	NewClient  ClientFactory
	Translator *i18n.Translator
	Logger     *zap.SugaredLogger
}

type App struct {
	activeView ViewType
	overlay    OverlayType

	// Views
	dashboardView  *views.DashboardView
	statisticsView *views.StatisticsView
	projectsView   *views.ProjectsView

	// Overlays
	helpOverlay        *overlays.HelpOverlay
	settingsOverlay    *overlays.SettingsOverlay
	warningsOverlay    *overlays.WarningsOverlay
	preferencesOverlay *overlays.PreferencesOverlay
	promptOverlay      *overlays.ProjectPrompt
	alert              *overlays.AlertOverlay // drawn above everything, blocks input

	// Backend
	client    *api.Client
	newClient ClientFactory
	gens      *reqgen.Tracker

	Config     config.Config
	ConfigPath string
	ExportDir  string
	period     viewmodel.Period
	tr         *i18n.Translator
	log        *zap.SugaredLogger

	// Animation state
	animTick uint

	// Notifications
	notifications *NotificationManager

	// Terminal
	width  int
	height int

	// State
	ready bool
	now   func() time.Time
}

func NewApp(opts Options) App {
	cfg := opts.Config
	tr := opts.Translator
	if tr == nil {
		tr = i18n.New(i18n.ParseLanguage(cfg.General.Language))
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	period := cfg.Period()

	return App{
		activeView:     ViewDashboard,
		overlay:        OverlayNone,
		dashboardView:  views.NewDashboardView(tr, period, cfg.Equivalent()),
		statisticsView: views.NewStatisticsView(tr, period),
		projectsView:   views.NewProjectsView(tr),
		helpOverlay:    overlays.NewHelpOverlay(tr),
		client:         opts.Client,
		newClient:      opts.NewClient,
		gens:           &reqgen.Tracker{},
		Config:         cfg,
		ConfigPath:     opts.ConfigPath,
		ExportDir:      opts.ExportDir,
		period:         period,
		tr:             tr,
		log:            log,
		notifications:  NewNotificationManager(cfg.Notifications.Enabled, cfg.Notifications.Bell),
		now:            time.Now,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("api-watchdog"),
		a.loadView(a.activeView),
		doBlink(),
	)
}

func doBlink() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return BlinkMsg(t)
	})
}

func doTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
