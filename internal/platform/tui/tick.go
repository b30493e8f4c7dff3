// Package tui drives the runner in a terminal with Bubble Tea: the tick
// loop, key mapping, cell rendering, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// timestampMs converts a tick time to the millisecond clock the ticker expects.
func timestampMs(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Millisecond)
}
