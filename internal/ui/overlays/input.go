package overlays

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Casper-hue/api-watchdog/internal/theme"
)

// Input is a single-line editor driven by key messages.
type Input struct {
	Prompt string
	Value  string
	Active bool
}

// Start activates the editor with an initial value.
func (in *Input) Start(prompt, initial string) {
	in.Prompt = prompt
	in.Value = initial
	in.Active = true
}

// Update applies a key. submitted is true on enter, cancelled on esc; both
// deactivate the editor.
func (in *Input) Update(msg tea.KeyMsg) (submitted, cancelled bool) {
	switch msg.Type {
	case tea.KeyEnter:
		in.Active = false
		return true, false
	case tea.KeyEsc:
		in.Active = false
		return false, true
	case tea.KeyBackspace:
		if r := []rune(in.Value); len(r) > 0 {
			in.Value = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		in.Value = ""
	case tea.KeySpace:
		in.Value += " "
	case tea.KeyRunes:
		in.Value += string(msg.Runes)
	}
	return false, false
}

var inputValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Background(theme.ColorElevatedBg)

func (in Input) View() string {
	return theme.AccentStyle.Render(in.Prompt) + inputValueStyle.Render(in.Value+"▏")
}
