package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/botrun/internal/core"
	"github.com/vovakirdan/botrun/internal/games/botrun"
)

// KeyMap holds the runner key bindings. It also feeds the help view.
type KeyMap struct {
	Jump    key.Binding
	Pause   key.Binding
	Start   key.Binding
	Clear   key.Binding
	Mute    key.Binding
	Scores  key.Binding
	Name    key.Binding
	Quit    key.Binding
	playing bool
}

// ShortHelp returns the bindings relevant to the current screen.
func (k KeyMap) ShortHelp() []key.Binding {
	if k.playing {
		return []key.Binding{k.Jump, k.Pause, k.Mute, k.Quit}
	}
	return []key.Binding{k.Start, k.Name, k.Scores, k.Clear, k.Mute, k.Quit}
}

// FullHelp returns every binding grouped by screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Pause},
		{k.Start, k.Name, k.Scores, k.Clear},
		{k.Mute, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "space", "enter", "r"),
			key.WithHelp("space", "start"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear scores"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Scores: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Name: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit name"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForMode returns a copy whose short help matches the screen.
func (k KeyMap) ForMode(mode botrun.Mode) KeyMap {
	k.playing = mode == botrun.ModePlaying
	return k
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action for the given screen.
// Space jumps while playing and restarts elsewhere.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, mode botrun.Mode) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.ActionQuit, true
	}
	if key.Matches(msg, km.keys.Mute) {
		return core.ActionMute, false
	}

	if mode == botrun.ModePlaying {
		switch {
		case key.Matches(msg, km.keys.Jump):
			return core.ActionJump, false
		case key.Matches(msg, km.keys.Pause):
			return core.ActionPause, false
		}
		return core.ActionNone, false
	}

	switch {
	case key.Matches(msg, km.keys.Start):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Clear):
		return core.ActionClear, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, mode botrun.Mode, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg, mode)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
