package views

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
	"github.com/Casper-hue/api-watchdog/internal/ui/components"
	"github.com/Casper-hue/api-watchdog/internal/viewmodel"
)

// ProjectStatsRange is the window the projects page reports on.
const ProjectStatsRange = viewmodel.PeriodMonth

// ProjectsView lists projects and shows the selected project's spend,
// monthly trend and usage breakdown.
type ProjectsView struct {
	tr  *i18n.Translator
	now func() time.Time

	Projects Load[[]api.Project]
	Stats    Load[*api.ProjectStats]
	statsFor string
	selected int

	AnimTick uint
}

func NewProjectsView(tr *i18n.Translator) *ProjectsView {
	return &ProjectsView{tr: tr, now: time.Now}
}

// SetProjects replaces the list, keeping the selection by id when possible.
func (v *ProjectsView) SetProjects(ps []api.Project, err error) {
	prev := v.SelectedID()
	v.Projects.Set(ps, err)
	_, idx, ok := lo.FindIndexOf(ps, func(p api.Project) bool { return p.ID == prev })
	if !ok {
		idx = 0
	}
	v.selected = idx
}

// SetStats stores stats for project id, enriching the list entry the way
// the backend list does not.
func (v *ProjectsView) SetStats(id string, s *api.ProjectStats, err error) {
	v.statsFor = id
	v.Stats.Set(s, err)
	if err != nil || s == nil {
		return
	}
	for i := range v.Projects.Data {
		p := &v.Projects.Data[i]
		if p.ID == id {
			p.TotalCost = s.TotalCostUSD
			p.TotalCostCNY = s.TotalCostCNY
			p.Equivalent = viewmodel.EquivalentLabel(s)
		}
	}
}

// Add appends a locally created project and selects it.
func (v *ProjectsView) Add(p api.Project) {
	v.Projects.Data = append(v.Projects.Data, p)
	v.Projects.Loaded = true
	v.selected = len(v.Projects.Data) - 1
}

// Remove drops the project locally. It returns the id now selected, or "".
func (v *ProjectsView) Remove(id string) string {
	list, idx := viewmodel.RemoveProject(v.Projects.Data, id, v.SelectedID())
	v.Projects.Data = list
	v.selected = max(idx, 0)
	if v.statsFor == id {
		v.Stats = Load[*api.ProjectStats]{}
		v.statsFor = ""
	}
	return v.SelectedID()
}

// List returns the current projects.
func (v *ProjectsView) List() []api.Project { return v.Projects.Data }

func (v *ProjectsView) Selected() (api.Project, bool) {
	if v.selected < 0 || v.selected >= len(v.Projects.Data) {
		return api.Project{}, false
	}
	return v.Projects.Data[v.selected], true
}

func (v *ProjectsView) SelectedID() string {
	p, _ := v.Selected()
	return p.ID
}

func (v *ProjectsView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := len(v.Projects.Data)
	switch key.String() {
	case "j", "down":
		if v.selected < n-1 {
			v.selected++
			return emit(SelectProjectMsg{ID: v.SelectedID()})
		}
	case "k", "up":
		if v.selected > 0 {
			v.selected--
			return emit(SelectProjectMsg{ID: v.SelectedID()})
		}
	case "a":
		return emit(NewProjectMsg{})
	case "d", "delete":
		if p, ok := v.Selected(); ok {
			return emit(DeleteProjectMsg{Project: p})
		}
	default:
		return nil
	}
	return KeyHandledCmd
}

func (v *ProjectsView) Render(width, height int, compact bool) string {
	title := theme.TitleText(strings.ToUpper(v.tr.T(i18n.Projects)))
	header := "  " + title + "  " + theme.MutedStyle.Render(v.tr.T(i18n.MonitorProjectSpending))

	if ph := placeholder(v.Projects, v.tr); ph != "" {
		return header + "\n" + ph
	}

	listW := min(40, width/3)
	list := strings.Split(v.renderList(listW, height-2), "\n")
	detail := strings.Split(v.renderDetail(width-listW-1, compact), "\n")
	body := components.JoinHorizontal([][]string{list, detail}, 1)
	return header + "\n" + strings.Join(body, "\n")
}

func (v *ProjectsView) renderList(width, height int) string {
	var lines []string
	if len(v.Projects.Data) == 0 {
		lines = append(lines, theme.MutedStyle.Render(v.tr.T(i18n.NoData)))
	}
	for i, p := range v.Projects.Data {
		sel := i == v.selected
		name := theme.BodyStyle.Render(p.Name)
		if sel {
			name = theme.AccentStyle.Bold(true).Render(p.Name)
		}
		lines = append(lines, components.CursorIndicator(sel)+name)
		lines = append(lines, "  "+theme.MutedStyle.Render(p.CreatedAt+"  "+components.FormatUSD(p.TotalCost)))
	}
	lines = append(lines, "", components.KeyHints(
		components.Hint{Key: "a", Desc: v.tr.T(i18n.HelpNewProject)},
		components.Hint{Key: "d", Desc: v.tr.T(i18n.HelpDeleteProject)},
	))

	if len(lines) > height-2 && height > 4 {
		// Keep the selection visible.
		start := max(0, min(v.selected*2, len(lines)-(height-2)))
		lines = lines[start : start+height-2]
	}

	return components.Panel{
		Title: v.tr.T(i18n.Projects),
		Badge: theme.MutedStyle.Render(strconv.Itoa(len(v.Projects.Data))),
		Width: width,
		Body:  strings.Join(lines, "\n"),
	}.Render()
}

func (v *ProjectsView) renderDetail(width int, compact bool) string {
	p, ok := v.Selected()
	if !ok {
		return ""
	}

	var stats *api.ProjectStats
	if v.statsFor == p.ID {
		stats = v.Stats.Data
	}

	summary := []string{
		theme.HeaderStyle.Render(p.Name) + theme.MutedStyle.Render("  "+v.tr.T(i18n.CreatedDate)+" "+p.CreatedAt+"  ") +
			theme.SuccessStyle.Render("● "+v.tr.T(i18n.ActiveStatus)),
		"",
		theme.MutedStyle.Render(v.tr.T(i18n.TotalConsumption)+"  ") +
			theme.AccentStyle.Bold(true).Render(components.FormatUSD(p.TotalCost)) +
			theme.MutedStyle.Render("  "+components.FormatCNY(p.TotalCostCNY)),
		theme.MutedStyle.Render(v.tr.T(i18n.EquivalentTo)+"  ") + theme.BodyStyle.Render(p.Equivalent),
	}
	if v.statsFor == p.ID && v.Stats.Err != nil {
		summary = append(summary, "", theme.DangerStyle.Render(v.tr.T(i18n.FailedToLoad)))
	}

	sections := []string{components.Panel{
		Title: v.tr.T(i18n.TotalConsumption),
		Width: width,
		Body:  strings.Join(summary, "\n"),
	}.Render()}

	chartH := 5
	if compact {
		chartH = 3
	}
	sections = append(sections, components.Panel{
		Title: v.tr.T(i18n.MonthlyTrend),
		Width: width,
		Body:  TrendChart(stats, ProjectStatsRange, v.now(), width-4, chartH, v.tr),
	}.Render())

	if !compact {
		sections = append(sections, components.Panel{
			Title: v.tr.T(i18n.UsageAnalysis),
			Width: width,
			Body:  v.renderUsage(stats, width-4),
		}.Render())
	}
	return strings.Join(sections, "\n")
}

func (v *ProjectsView) renderUsage(stats *api.ProjectStats, width int) string {
	var slices []api.UsageSlice
	if stats != nil {
		slices = viewmodel.UsageBreakdown(stats.UsageBreakdown, v.tr)
	}
	return components.UsageDonut{
		Slices: slices,
		Size:   min(16, width/3),
		Empty:  v.tr.T(i18n.NoData),
	}.Render()
}
