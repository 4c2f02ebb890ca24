// Package tui runs the snake game as a Bubble Tea program. It provides the
// clock, input and render collaborators around a snake.Session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame and carries the wall-clock time of the frame.
type TickMsg time.Time

// graceMsg is sent when the game-over screen starts accepting keys.
type graceMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func graceCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return graceMsg{}
	})
}
