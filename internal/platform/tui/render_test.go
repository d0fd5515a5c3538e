package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/penguin-arcade/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	scr := core.NewScreen(12, 3)
	scr.DrawText(0, 0, "Score: 10")
	scr.SetColored(3, 1, '@', core.ColorRed)
	scr.SetColored(4, 1, '@', core.ColorBlue)
	scr.SetColored(5, 2, '│', core.ColorGray)

	lines := strings.Split(RenderScreen(scr), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", i, w)
		}
	}
	if !strings.Contains(lines[0], "Score: 10") {
		t.Errorf("line 0 = %q, expected the HUD text", lines[0])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, expected plain text", got)
	}
}
