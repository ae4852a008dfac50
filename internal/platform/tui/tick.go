// Package tui provides the Bubble Tea front end for skyflyer.
// It handles the terminal UI loop, input mapping, the HUD and the
// title menu, scoreboard and SSH session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyflyer/internal/config"
)

// TickMsg is sent to trigger a game simulation tick. ID names the game
// screen that scheduled it so a stale tick loop dies out after leaving
// the screen.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// configMsg carries a reloaded tuning from the watcher.
type configMsg struct {
	cfg config.SkyflyerConfig
}

// configErrMsg carries a reload failure from the watcher.
type configErrMsg struct {
	err error
}

// waitForConfig blocks on the watcher until it reports something.
// Returns nil once the watcher is closed.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}
