package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Casper-hue/api-watchdog/internal/config"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/ui/overlays"
	"github.com/Casper-hue/api-watchdog/internal/ui/views"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if !a.ready {
			a.ready = true
			return a, doTick(a.Config.Interval())
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.alert != nil {
			if a.alert.Update(msg) {
				a.alert = nil
			}
			return a, nil
		}
		if a.overlay != OverlayNone {
			return a.updateOverlay(msg)
		}
		return a.handleGlobalKey(msg)

	case BlinkMsg:
		a.animTick++
		a.propagateAnimTick()
		return a, doBlink()

	case TickMsg:
		a.notifications.Expire()
		return a, tea.Batch(
			a.loadView(a.activeView),
			doTick(a.Config.Interval()),
		)

	case overlays.ConfigChangedMsg:
		return a.applyConfig(msg.Config)
	}

	if cmd, ok := a.handleIntent(msg); ok {
		return a, cmd
	}
	return a.handleResult(msg)
}

// handleIntent routes requests raised by views and overlays.
func (a *App) handleIntent(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case views.OpenWarningsMsg:
		a.warningsOverlay = overlays.NewWarningsOverlay(a.tr)
		a.overlay = OverlayWarnings
		return a.fetchWarnings(), true

	case views.OpenPreferencesMsg:
		a.preferencesOverlay = overlays.NewPreferencesOverlay(a.tr, a.dashboardView.Preferences())
		a.overlay = OverlayPreferences
		return nil, true

	case views.FeedbackMsg:
		return a.submitFeedback(msg.Item), true

	case overlays.SubmitFeedbackMsg:
		return a.submitFeedback(msg.Item), true

	case views.ExportMsg:
		return a.exportStatistics(), true

	case views.NewProjectMsg:
		a.promptOverlay = overlays.NewCreateProjectPrompt(a.tr)
		a.overlay = OverlayPrompt
		return nil, true

	case views.DeleteProjectMsg:
		a.promptOverlay = overlays.NewDeleteProjectPrompt(a.tr, msg.Project)
		a.overlay = OverlayPrompt
		return nil, true

	case views.SelectProjectMsg:
		return a.fetchProjectStats(msg.ID), true

	case overlays.CreateProjectMsg:
		p, err := viewmodel.NewLocalProject(a.projectsView.List(), msg.Name, a.now())
		if err != nil {
			a.notifications.Error(err.Error())
			return nil, true
		}
		a.projectsView.Add(p)
		a.notifications.SetMessage(a.tr.Tf(i18n.ProjectCreated, p.Name))
		return tea.Batch(a.createProject(p), a.fetchProjectStats(p.ID)), true

	case overlays.ConfirmDeleteMsg:
		return a.deleteProject(msg.Project), true

	case overlays.SavePreferencesMsg:
		return a.savePreferences(msg.Prefs), true

	case overlays.SaveSettingsMsg:
		return a.saveSettings(msg.Settings), true

	case overlays.LoadOfficialMsg:
		return a.fetchOfficial(msg.Replace), true
	}
	return nil, false
}

// current reports whether a load result is still wanted, logging the drop
// when it is not.
func (a *App) current(resource string, gen uint64) bool {
	if a.gens.Current(resource, gen) {
		return true
	}
	a.log.Debugw("dropping stale response", "resource", resource, "generation", gen)
	return false
}

// loadFailed logs a failed load and raises the banner.
func (a *App) loadFailed(what string, err error) {
	a.log.Warnw("load failed", "resource", what, "error", err)
	a.notifications.Error(what + ": " + err.Error())
}

func (a App) handleResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case summaryMsg:
		if !a.current(resSummary, msg.gen) {
			return a, nil
		}
		a.dashboardView.SetSummary(msg.data, msg.err)
		if msg.err != nil {
			a.loadFailed(resSummary, msg.err)
		}

	case trendMsg:
		if !a.current(resTrend, msg.gen) {
			return a, nil
		}
		a.dashboardView.SetTrend(msg.data, msg.err)
		if msg.err != nil {
			a.loadFailed(resTrend, msg.err)
		}

	case activitiesMsg:
		if !a.current(resActivities, msg.gen) {
			return a, nil
		}
		a.dashboardView.SetActivities(msg.data, msg.err)
		if msg.err != nil {
			a.loadFailed(resActivities, msg.err)
		}

	case preferencesMsg:
		if !a.current(resPreferences, msg.gen) {
			return a, nil
		}
		if msg.err != nil {
			// Defaults stay in place.
			a.log.Warnw("load failed", "resource", resPreferences, "error", msg.err)
			return a, nil
		}
		a.dashboardView.SetPreferences(msg.data)

	case statisticsMsg:
		if !a.current(resStatistics, msg.gen) {
			return a, nil
		}
		a.statisticsView.SetSummary(msg.summary, msg.summaryErr)
		a.statisticsView.SetStats(msg.stats, msg.statsErr)
		a.statisticsView.SetProjects(msg.projects)
		a.statisticsView.SetEfficiency(msg.efficiency)
		if msg.statsErr != nil {
			a.loadFailed(resStatistics, msg.statsErr)
		} else if msg.summaryErr != nil {
			a.log.Warnw("load failed", "resource", resSummary, "error", msg.summaryErr)
		}

	case projectsMsg:
		if !a.current(resProjects, msg.gen) {
			return a, nil
		}
		a.projectsView.SetProjects(msg.projects, msg.err)
		if msg.err != nil {
			a.loadFailed(resProjects, msg.err)
			break
		}
		if msg.statsID != "" && a.current(resProjectStats, msg.statsGen) {
			a.projectsView.SetStats(msg.statsID, msg.stats, msg.statsErr)
			if msg.statsErr != nil {
				a.log.Warnw("load failed", "resource", resProjectStats, "project", msg.statsID, "error", msg.statsErr)
			}
		}

	case projectStatsMsg:
		if !a.current(resProjectStats, msg.gen) {
			return a, nil
		}
		a.projectsView.SetStats(msg.id, msg.data, msg.err)
		if msg.err != nil {
			a.log.Warnw("load failed", "resource", resProjectStats, "project", msg.id, "error", msg.err)
		}

	case warningsMsg:
		if !a.current(resWarnings, msg.gen) || a.warningsOverlay == nil {
			return a, nil
		}
		a.warningsOverlay.SetWarnings(msg.data, msg.err)
		if msg.err != nil {
			a.log.Warnw("load failed", "resource", resWarnings, "error", msg.err)
		}

	case settingsMsg:
		if !a.current(resSettings, msg.gen) || a.settingsOverlay == nil {
			return a, nil
		}
		a.settingsOverlay.SetRemote(msg.data, msg.err)
		if msg.err != nil {
			a.log.Warnw("load failed", "resource", resSettings, "error", msg.err)
		}

	case officialMsg:
		if !a.current(resOfficial, msg.gen) || a.settingsOverlay == nil {
			return a, nil
		}
		a.settingsOverlay.ApplyOfficial(msg.data, msg.replace, msg.err)
		if msg.err != nil {
			a.log.Warnw("official pricing failed", "error", msg.err)
		}

	case settingsSavedMsg:
		if a.settingsOverlay != nil {
			a.settingsOverlay.SaveDone(msg.err)
		}
		if msg.err != nil {
			a.log.Errorw("save settings failed", "error", msg.err)
			a.alert = overlays.NewAlertOverlay(a.tr, a.tr.Tf(i18n.SettingsSaveFailed, msg.err.Error()))
			break
		}
		a.log.Infow("settings saved")

	case preferencesSavedMsg:
		if msg.err != nil {
			a.log.Warnw("save preferences failed", "error", msg.err)
			a.notifications.Error(msg.err.Error())
			break
		}
		a.dashboardView.SetPreferences(msg.data)
		a.notifications.SetMessage(a.tr.T(i18n.PreferencesSaved))

	case feedbackMsg:
		if msg.err != nil {
			a.log.Warnw("feedback failed", "request_id", msg.id, "error", msg.err)
			a.notifications.Error(a.tr.Tf(i18n.FeedbackFailed, msg.err.Error()))
			break
		}
		if a.warningsOverlay != nil {
			a.warningsOverlay.MarkReported(msg.id)
		}
		a.notifications.SetMessage(a.tr.T(i18n.FeedbackSent))

	case exportedMsg:
		if msg.err != nil {
			a.log.Errorw("export failed", "error", msg.err)
			a.notifications.Error(a.tr.Tf(i18n.ExportFailed, msg.err.Error()))
			break
		}
		a.log.Infow("exported statistics", "path", msg.path)
		a.notifications.SetMessage(a.tr.Tf(i18n.ExportedTo, msg.path))

	case projectCreatedMsg:
		// The project stays in the local list either way.
		if msg.err != nil {
			a.log.Warnw("create project failed", "project", msg.project.ID, "error", msg.err)
		}

	case projectDeletedMsg:
		if msg.err != nil {
			a.log.Warnw("delete project failed", "project", msg.project.ID, "error", msg.err)
			a.notifications.Error(msg.err.Error())
			break
		}
		if msg.result != nil {
			a.log.Infow("project deleted", "project", msg.project.ID,
				"requests", msg.result.DeletedRequests, "feedback", msg.result.DeletedFeedback)
		}
		a.notifications.SetMessage(a.tr.Tf(i18n.ProjectDeleted, msg.project.Name))
		if next := a.projectsView.Remove(msg.project.ID); next != "" {
			cmd = a.fetchProjectStats(next)
		}
	}
	return a, cmd
}

// applyConfig re-applies a changed config: language, interval, period and
// the backend address.
func (a App) applyConfig(cfg config.Config) (tea.Model, tea.Cmd) {
	prev := a.Config
	a.Config = cfg
	a.tr.SetLanguage(i18n.ParseLanguage(cfg.General.Language))
	a.notifications.Configure(cfg.Notifications.Enabled, cfg.Notifications.Bell)
	a.setPeriod(cfg.Period())

	if cfg.Server != prev.Server && a.newClient != nil {
		c, err := a.newClient(cfg)
		if err != nil {
			a.log.Errorw("rebuild client", "base_url", cfg.Server.BaseURL, "error", err)
			a.notifications.Error(err.Error())
			return a, nil
		}
		a.client = c
	}
	a.log.Infow("config applied", "language", cfg.General.Language, "period", cfg.General.Period, "interval", cfg.General.Interval)
	return a, a.loadView(a.activeView)
}

func (a *App) setPeriod(p viewmodel.Period) {
	a.period = p
	a.Config.General.Period = string(p)
	a.dashboardView.SetPeriod(p)
	a.statisticsView.SetPeriod(p)
}

func (a App) switchView(v ViewType) (tea.Model, tea.Cmd) {
	if v == a.activeView {
		return a, nil
	}
	a.activeView = v
	return a, a.loadView(v)
}

func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case ViewDashboard:
		cmd = a.dashboardView.Update(msg)
	case ViewStatistics:
		cmd = a.statisticsView.Update(msg)
	case ViewProjects:
		cmd = a.projectsView.Update(msg)
	}
	if cmd != nil {
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "1":
		return a.switchView(ViewDashboard)
	case "2":
		return a.switchView(ViewStatistics)
	case "3":
		return a.switchView(ViewProjects)
	case "tab":
		return a.switchView((a.activeView + 1) % ViewCount)
	case "shift+tab":
		return a.switchView((a.activeView + ViewCount - 1) % ViewCount)
	case "?":
		a.overlay = OverlayHelp
	case "s":
		a.settingsOverlay = overlays.NewSettingsOverlay(a.tr, a.Config, a.ConfigPath)
		a.overlay = OverlaySettings
		if a.client != nil {
			return a, a.fetchSettings()
		}
		a.settingsOverlay.SetRemote(nil, errNoClient)
	case "r":
		return a, a.loadView(a.activeView)
	case "L":
		lang := a.tr.Toggle()
		a.Config.General.Language = string(lang)
		// Activities and efficiency are localized by the backend.
		return a, a.loadView(a.activeView)
	case "p":
		a.setPeriod(a.period.Next())
		return a, a.loadView(a.activeView)
	}
	return a, nil
}

func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		closed bool
		cmd    tea.Cmd
	)
	switch a.overlay {
	case OverlayHelp:
		switch msg.String() {
		case "esc", "?", "q":
			closed = true
		}
	case OverlaySettings:
		closed, cmd = a.settingsOverlay.Update(msg)
	case OverlayWarnings:
		closed, cmd = a.warningsOverlay.Update(msg)
	case OverlayPreferences:
		closed, cmd = a.preferencesOverlay.Update(msg)
	case OverlayPrompt:
		closed, cmd = a.promptOverlay.Update(msg)
	}
	if closed {
		a.closeOverlay()
	}
	return a, cmd
}

func (a *App) closeOverlay() {
	switch a.overlay {
	case OverlaySettings:
		a.settingsOverlay = nil
	case OverlayWarnings:
		a.warningsOverlay = nil
	case OverlayPreferences:
		a.preferencesOverlay = nil
	case OverlayPrompt:
		a.promptOverlay = nil
	}
	a.overlay = OverlayNone
}

func (a *App) propagateAnimTick() {
	a.dashboardView.AnimTick = a.animTick
	a.statisticsView.AnimTick = a.animTick
	a.projectsView.AnimTick = a.animTick
	a.helpOverlay.AnimTick = a.animTick
	if a.settingsOverlay != nil {
		a.settingsOverlay.SetAnimTick(a.animTick)
	}
	if a.warningsOverlay != nil {
		a.warningsOverlay.SetAnimTick(a.animTick)
	}
	if a.preferencesOverlay != nil {
		a.preferencesOverlay.SetAnimTick(a.animTick)
	}
}
