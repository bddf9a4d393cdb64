// Package tui runs games in a terminal with Bubble Tea: the tick loop,
// held-key input, color rendering, the menu screens and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick loop that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGen hands out tick loop generations. Zero is never used.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next tick of loop gen at the given rate (60 Hz if unset).
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
