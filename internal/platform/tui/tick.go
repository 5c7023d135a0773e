// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick message
// after the given interval. The interval doubles as the game's speed
// control: boosting shortens it.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
