package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/keymap"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.keys.Resolve(msg.String(), m.Focused() != nil) {
	case keymap.ActionQuit:
		m.Shutdown()
		return tea.Quit

	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	case keymap.ActionFocusNext:
		m.cycleFocus(1)

	case keymap.ActionFocusPrev:
		m.cycleFocus(-1)

	case keymap.ActionNext:
		return m.press(carousel.Next)

	case keymap.ActionPrev:
		return m.press(carousel.Prev)
	}
	return nil
}

func (m *Model) press(dir carousel.Direction) tea.Cmd {
	if c := m.Focused(); c != nil {
		return c.Press(dir)
	}
	return nil
}

func (m *Model) cycleFocus(delta int) {
	n := len(m.carousels)
	if n < 2 {
		return
	}
	m.setFocus(((m.focus+delta)%n + n) % n)
}

func (m *Model) setFocus(i int) {
	m.carousels[m.focus].SetFocused(false)
	m.focus = i
	m.carousels[i].SetFocused(true)
	m.layout()
}
