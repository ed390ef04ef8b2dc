// Package tui provides the Bubble Tea host for the game.
// It handles the terminal UI loop, input mapping, and run journaling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// HoldMsg fires when a mouse press has been held for the long-press
// duration. ID ties it to the press that armed it.
type HoldMsg struct {
	ID int
}

// holdCmd arms the long-press timer for press id.
func holdCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HoldMsg{ID: id}
	})
}
