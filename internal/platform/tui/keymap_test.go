package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/botrun/internal/core"
	"github.com/vovakirdan/botrun/internal/games/botrun"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		mode   botrun.Mode
		want   core.Action
		isQuit bool
	}{
		{"space jumps while playing", runeKey(" "), botrun.ModePlaying, core.ActionJump, false},
		{"w jumps while playing", runeKey("w"), botrun.ModePlaying, core.ActionJump, false},
		{"up jumps while playing", tea.KeyMsg{Type: tea.KeyUp}, botrun.ModePlaying, core.ActionJump, false},
		{"p pauses", runeKey("p"), botrun.ModePlaying, core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, botrun.ModePlaying, core.ActionPause, false},
		{"clear ignored while playing", runeKey("c"), botrun.ModePlaying, core.ActionNone, false},
		{"space starts", runeKey(" "), botrun.ModeStart, core.ActionRestart, false},
		{"enter restarts", tea.KeyMsg{Type: tea.KeyEnter}, botrun.ModeGameOver, core.ActionRestart, false},
		{"r restarts", runeKey("r"), botrun.ModeGameOver, core.ActionRestart, false},
		{"up does not jump on start", tea.KeyMsg{Type: tea.KeyUp}, botrun.ModeStart, core.ActionNone, false},
		{"c clears", runeKey("c"), botrun.ModeGameOver, core.ActionClear, false},
		{"m mutes anywhere", runeKey("m"), botrun.ModePlaying, core.ActionMute, false},
		{"q quits", runeKey("q"), botrun.ModePlaying, core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, botrun.ModeStart, core.ActionQuit, true},
		{"unbound key", runeKey("x"), botrun.ModePlaying, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg, tt.mode)
			if got != tt.want || quit != tt.isQuit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", got, quit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey(" "), botrun.ModePlaying, &frame) {
		t.Fatal("space should not quit")
	}
	if !frame.Has(core.ActionJump) {
		t.Error("expected jump in frame")
	}

	if !km.MapKeyToFrame(runeKey("q"), botrun.ModePlaying, &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is reported, not queued")
	}
}

func TestKeyMapHelpFollowsMode(t *testing.T) {
	keys := DefaultKeyMap()

	playing := keys.ForMode(botrun.ModePlaying).ShortHelp()
	start := keys.ForMode(botrun.ModeStart).ShortHelp()

	if playing[0].Help().Desc != "jump" {
		t.Errorf("playing help starts with %q", playing[0].Help().Desc)
	}
	if start[0].Help().Desc != "start" {
		t.Errorf("start help starts with %q", start[0].Help().Desc)
	}
}
