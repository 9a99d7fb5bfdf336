package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/carousel"
)

// waitForChannel blocks on one receive from ch and hands the value to onResult.
// ok is false once ch is closed. A nil channel yields no command.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// watchRemote waits for the next MPRIS navigation request.
func (m Model) watchRemote() tea.Cmd {
	if m.requests == nil {
		return nil
	}
	return waitForChannel(m.requests, func(d carousel.Direction, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return RemoteMsg{Direction: d}
	})
}
