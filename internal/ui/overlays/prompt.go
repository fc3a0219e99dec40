package overlays

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Casper-hue/api-watchdog/internal/api"
	"github.com/Casper-hue/api-watchdog/internal/i18n"
	"github.com/Casper-hue/api-watchdog/internal/theme"
)

// ProjectPrompt asks for a new project name, or confirms deleting one.
type ProjectPrompt struct {
	tr      *i18n.Translator
	input   Input
	confirm *api.Project
}

// NewCreateProjectPrompt opens the name editor.
func NewCreateProjectPrompt(tr *i18n.Translator) *ProjectPrompt {
	p := &ProjectPrompt{tr: tr}
	p.input.Start(tr.T(i18n.NewProjectPrompt), "")
	return p
}

// NewDeleteProjectPrompt asks for y/n before deleting project.
func NewDeleteProjectPrompt(tr *i18n.Translator, project api.Project) *ProjectPrompt {
	return &ProjectPrompt{tr: tr, confirm: &project}
}

// Update returns true when the prompt should close.
func (p *ProjectPrompt) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if p.confirm != nil {
		switch msg.String() {
		case "y", "Y":
			project := *p.confirm
			return true, func() tea.Msg { return ConfirmDeleteMsg{Project: project} }
		case "n", "N", "esc", "q":
			return true, nil
		}
		return false, nil
	}

	submitted, cancelled := p.input.Update(msg)
	switch {
	case cancelled:
		return true, nil
	case submitted:
		name := strings.TrimSpace(p.input.Value)
		if name == "" {
			return true, nil
		}
		return true, func() tea.Msg { return CreateProjectMsg{Name: name} }
	}
	return false, nil
}

func (p *ProjectPrompt) Render(width, height int) string {
	boxWidth := min(60, width-4)
	var content string
	if p.confirm != nil {
		content = theme.WarningStyle.Render(p.tr.Tf(i18n.ConfirmDelete, p.confirm.Name))
	} else {
		content = theme.TitleText(p.tr.T(i18n.HelpNewProject)) + "\n\n" + p.input.View()
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
