package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/export"
	"github.com/Casper-hue/api-watchdog/internal/ui/views"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

// loadTimeout bounds one load including its retries.
const loadTimeout = time.Minute

var errNoClient = errors.New("no backend client configured")

// requestContext carries the active UI language so localized endpoints
// answer in it.
func requestContext(lang string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	return api.ContextWithLanguage(ctx, lang), cancel
}

func (a App) lang() string { return a.tr.Language().AcceptLanguage() }

// loadView issues the fetches a view needs when it is shown or refreshed.
func (a App) loadView(v ViewType) tea.Cmd {
	if a.client == nil {
		return nil
	}
	switch v {
	case ViewDashboard:
		return tea.Batch(a.fetchSummary(), a.fetchTrend(), a.fetchActivities(), a.fetchPreferences())
	case ViewStatistics:
		return a.fetchStatistics()
	case ViewProjects:
		return a.fetchProjects()
	}
	return nil
}

func (a App) fetchSummary() tea.Cmd {
	gen := a.gens.Next(resSummary)
	c, lang, rng := a.client, a.lang(), a.period.TimeRange()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		s, err := c.DashboardSummary(ctx, rng)
		return summaryMsg{gen: gen, data: s, err: err}
	}
}

// fetchTrend loads the aggregate stats for the chart. When the aggregate
// endpoint fails, the first project's stats stand in.
func (a App) fetchTrend() tea.Cmd {
	gen := a.gens.Next(resTrend)
	c, lang, rng := a.client, a.lang(), a.period.TimeRange()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		s, err := c.AllProjectsStats(ctx, rng)
		if err == nil {
			return trendMsg{gen: gen, data: s}
		}
		ps, perr := c.Projects(ctx)
		if perr != nil || len(ps) == 0 {
			return trendMsg{gen: gen, err: err}
		}
		s, serr := c.ProjectStats(ctx, ps[0].ID, rng)
		if serr != nil {
			return trendMsg{gen: gen, err: err}
		}
		return trendMsg{gen: gen, data: s}
	}
}

func (a App) fetchActivities() tea.Cmd {
	gen := a.gens.Next(resActivities)
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		f, err := c.RecentActivities(ctx)
		return activitiesMsg{gen: gen, data: f, err: err}
	}
}

func (a App) fetchPreferences() tea.Cmd {
	gen := a.gens.Next(resPreferences)
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		p, err := c.UserPreferences(ctx)
		return preferencesMsg{gen: gen, data: p, err: err}
	}
}

// fetchStatistics loads the summary, the aggregate stats, the project list
// and the first project's efficiency report, in that order.
func (a App) fetchStatistics() tea.Cmd {
	gen := a.gens.Next(resStatistics)
	c, lang, rng := a.client, a.lang(), a.period.TimeRange()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		msg := statisticsMsg{gen: gen}
		msg.summary, msg.summaryErr = c.DashboardSummary(ctx, rng)
		msg.stats, msg.statsErr = c.AllProjectsStats(ctx, rng)
		if ps, err := c.Projects(ctx); err == nil {
			msg.projects = ps
		}
		if len(msg.projects) > 0 {
			// A missing report falls back to the local estimate.
			if r, err := c.Efficiency(ctx, msg.projects[0].ID, rng); err == nil {
				msg.efficiency = r
			}
		}
		return msg
	}
}

// fetchProjects loads the list and then the first project's stats.
func (a App) fetchProjects() tea.Cmd {
	gen := a.gens.Next(resProjects)
	statsGen := a.gens.Next(resProjectStats)
	c, lang := a.client, a.lang()
	selected := a.projectsView.SelectedID()
	rng := views.ProjectStatsRange.TimeRange()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		ps, err := c.Projects(ctx)
		msg := projectsMsg{gen: gen, projects: ps, err: err, statsGen: statsGen}
		if err != nil || len(ps) == 0 {
			return msg
		}
		msg.statsID = ps[0].ID
		for _, p := range ps {
			if p.ID == selected {
				msg.statsID = selected
			}
		}
		msg.stats, msg.statsErr = c.ProjectStats(ctx, msg.statsID, rng)
		return msg
	}
}

func (a App) fetchProjectStats(id string) tea.Cmd {
	gen := a.gens.Next(resProjectStats)
	c, lang := a.client, a.lang()
	rng := views.ProjectStatsRange.TimeRange()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		s, err := c.ProjectStats(ctx, id, rng)
		return projectStatsMsg{gen: gen, id: id, data: s, err: err}
	}
}

func (a App) fetchWarnings() tea.Cmd {
	gen := a.gens.Next(resWarnings)
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		w, err := c.Warnings(ctx)
		return warningsMsg{gen: gen, data: w, err: err}
	}
}

func (a App) fetchSettings() tea.Cmd {
	gen := a.gens.Next(resSettings)
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		s, err := c.Settings(ctx)
		return settingsMsg{gen: gen, data: s, err: err}
	}
}

func (a App) fetchOfficial(replace bool) tea.Cmd {
	gen := a.gens.Next(resOfficial)
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		m, err := c.OfficialPricing(ctx)
		return officialMsg{gen: gen, replace: replace, data: m, err: err}
	}
}

func (a App) saveSettings(s api.Settings) tea.Cmd {
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		_, err := c.SaveSettings(ctx, s)
		return settingsSavedMsg{err: err}
	}
}

func (a App) savePreferences(p api.UserPreferences) tea.Cmd {
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		saved, err := c.SaveUserPreferences(ctx, p)
		return preferencesSavedMsg{data: saved, err: err}
	}
}

func (a App) submitFeedback(item viewmodel.ActivityItem) tea.Cmd {
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		_, err := c.SubmitFeedback(ctx, viewmodel.FeedbackFor(item))
		return feedbackMsg{id: item.ID, err: err}
	}
}

func (a App) createProject(p api.Project) tea.Cmd {
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		_, err := c.CreateProject(ctx, p)
		return projectCreatedMsg{project: p, err: err}
	}
}

func (a App) deleteProject(p api.Project) tea.Cmd {
	c, lang := a.client, a.lang()
	return func() tea.Msg {
		ctx, cancel := requestContext(lang)
		defer cancel()
		res, err := c.DeleteProject(ctx, p.ID)
		return projectDeletedMsg{project: p, result: res, err: err}
	}
}

// exportStatistics writes the statistics page figures as CSV.
func (a App) exportStatistics() tea.Cmd {
	records := viewmodel.ExportRecords(a.statisticsView.ExportInput())
	dir, now := a.ExportDir, a.now()
	return func() tea.Msg {
		path, err := export.WriteFile(dir, now, records)
		return exportedMsg{path: path, err: err}
	}
}
