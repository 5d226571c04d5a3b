// Package tui provides the Bubble Tea host for the game.
// It handles the terminal UI loop, input mapping, and resize debouncing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/viewport"
)

// TickMsg is sent to trigger an animation frame.
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

// resizeMsg fires when a resize token's quiet period has elapsed.
type resizeMsg struct {
	token viewport.Token
}

// resizeCmd wakes the model after delay to apply token.
func resizeCmd(delay time.Duration, token viewport.Token) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return resizeMsg{token: token}
	})
}

// assetsLoadedMsg reports that a theme's sprites can be resolved.
type assetsLoadedMsg struct {
	set *assets.Set
}

// loadAssetsCmd completes the load step of a freshly created set. Terminal
// sprites need no decoding, so the handles resolve on the next update.
func loadAssetsCmd(set *assets.Set) tea.Cmd {
	return func() tea.Msg {
		return assetsLoadedMsg{set: set}
	}
}

// statusTimeout is how long a status line stays in the footer.
const statusTimeout = 3 * time.Second
