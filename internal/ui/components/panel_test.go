package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func assertWidth(t *testing.T, out string, want int) {
	t.Helper()
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d: %q", i, w, want, line)
		}
	}
}

func TestPanel_InnerWidth(t *testing.T) {
	if got := (Panel{Width: 80}).InnerWidth(); got != 76 {
		t.Errorf("InnerWidth() = %d, want 76", got)
	}
}

func TestPanel_Render(t *testing.T) {
	out := Panel{Title: "Model Cost", Note: "by usage", Badge: "3", Width: 50, Body: "gpt-4o\nclaude"}.Render()
	for _, want := range []string{"╭─", "╯", "Model Cost", "· by usage", " 3 ", "gpt-4o", "claude"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if n := len(strings.Split(out, "\n")); n != 4 {
		t.Errorf("got %d lines, want 4", n)
	}
	assertWidth(t, out, 50)
}

func TestPanel_EmptyBody(t *testing.T) {
	out := Panel{Title: "Empty", Width: 30}.Render()
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╰") {
		t.Errorf("borders missing:\n%s", out)
	}
	assertWidth(t, out, 30)
}

func TestPanel_ClipsLongContent(t *testing.T) {
	out := Panel{Title: strings.Repeat("T", 40), Width: 20, Body: strings.Repeat("x", 60)}.Render()
	assertWidth(t, out, 20)
}

func TestPanel_DropsBadgeWithoutRoom(t *testing.T) {
	out := Panel{Title: "Recent Activity", Badge: "BADGE", Width: 24}.Render()
	if strings.Contains(out, "BADGE") {
		t.Errorf("badge should be dropped:\n%s", out)
	}
	assertWidth(t, out, 24)
}

func TestPanel_ActiveKeepsWidth(t *testing.T) {
	assertWidth(t, Panel{Title: "Focus", Width: 30, Body: "a\nb", Active: true}.Render(), 30)
}
