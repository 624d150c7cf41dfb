// Package tui drives games in a terminal with Bubble Tea. It owns the tick
// loop, key mapping, rendering of the game's screen buffer, the game menu,
// the scoreboard and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// TickMsg advances the running game by one step.
type TickMsg time.Time

func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
