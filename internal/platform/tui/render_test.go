package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/botrun/internal/core"
)

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(2, 1, "Score: 42", core.ColorBrightWhite)
	s.SetColored(0, 2, '▓', core.ColorBrown)

	out := RenderScreen(s)

	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("rendered %d lines, expected 3", lines)
	}
	if !strings.Contains(out, "Score: 42") {
		t.Error("same-colour text should stay in one run")
	}
	if !strings.Contains(out, "▓") {
		t.Error("missing ground cell")
	}
}

func TestRenderScreenWithBackground(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.SetBackground("#87ceeb")
	s.DrawTextColored(0, 0, "sky", core.ColorDimGray)

	out := RenderScreen(s)
	if !strings.Contains(out, "sky") {
		t.Error("text lost when a background is set")
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	// Unknown colours fall back to the default style
	got := styleFor(core.Color(200), "").Render("x")
	if got != colorStyles[core.ColorDefault].Render("x") {
		t.Errorf("unknown colour rendered %q", got)
	}
}
