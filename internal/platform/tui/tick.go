// Package tui provides the Bubble Tea integration for the defense game.
// It runs the terminal frame loop, maps keys and mouse clicks to actions
// and stores finished sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per render frame. Simulation ticks are gated by the
// game's pacer, not by the frame rate.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after the
// given interval.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
