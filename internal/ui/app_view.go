package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/ui/components"
)

func (a App) View() string {
	if !a.ready {
		return a.tr.T(i18n.Initializing)
	}

	if a.width < 80 || a.height < 24 {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ColorOrange).Render(
				a.tr.T(i18n.TerminalTooSmall)+"\n"+
					a.tr.Tf(i18n.CurrentSize, a.width, a.height),
			),
		)
	}

	if a.alert != nil {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.alert.Render(a.width, a.height),
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	if a.overlay != OverlayNone {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			a.renderOverlay(),
			lipgloss.WithWhitespaceBackground(theme.ColorOverlayBg),
		)
	}

	compact := a.height < 30

	tabBar := a.renderTabs()
	statusBar := a.renderStatusBar()

	contentHeight := a.height - 4 // 2 tab + 2 status
	if contentHeight < 5 {
		contentHeight = 5
	}

	content := lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(a.renderActiveView(contentHeight, compact))

	return tabBar + "\n" + content + "\n" + statusBar
}

func (a App) renderTabs() string {
	h := components.Header{
		Brand:    "API WATCHDOG",
		Tabs:     []string{a.tr.T(i18n.Dashboard), a.tr.T(i18n.Statistics), a.tr.T(i18n.Projects)},
		Active:   int(a.activeView),
		Width:    a.width,
		Period:   a.period.Label(a.tr),
		Language: string(a.tr.Language()),
		Tick:     a.animTick,
	}
	if a.client != nil {
		h.Recording = a.tr.T(i18n.Recording)
	}
	return h.Render()
}

func (a App) renderActiveView(contentHeight int, compact bool) string {
	switch a.activeView {
	case ViewDashboard:
		return a.dashboardView.Render(a.width, contentHeight, compact)
	case ViewStatistics:
		return a.statisticsView.Render(a.width, contentHeight, compact)
	case ViewProjects:
		return a.projectsView.Render(a.width, contentHeight, compact)
	}
	return ""
}

func (a App) renderStatusBar() string {
	return components.StatusBar{
		Width:   a.width,
		Tr:      a.tr,
		Message: a.notifications.Render(a.width / 2),
	}.Render()
}

func (a App) renderOverlay() string {
	switch a.overlay {
	case OverlayHelp:
		return a.helpOverlay.Render(a.width, a.height)
	case OverlaySettings:
		return a.settingsOverlay.Render(a.width, a.height)
	case OverlayWarnings:
		return a.warningsOverlay.Render(a.width, a.height)
	case OverlayPreferences:
		return a.preferencesOverlay.Render(a.width, a.height)
	case OverlayPrompt:
		return a.promptOverlay.Render(a.width, a.height)
	}
	return ""
}
