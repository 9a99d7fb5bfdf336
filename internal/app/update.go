package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/carousel"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.publish()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		for _, c := range m.carousels {
			c.Blur()
		}
		return nil

	case RemoteMsg:
		var cmd tea.Cmd
		if c := m.Focused(); c != nil {
			cmd = c.Press(msg.Direction)
		}
		return tea.Batch(cmd, m.watchRemote())

	case carousel.SliderMsg:
		for _, c := range m.carousels {
			if c.ID() == msg.Target() {
				return c.Update(msg)
			}
		}
		m.logger.Debug("message for unknown carousel", "target", msg.Target())
	}
	return nil
}

// handleMouse forwards the event to every carousel and moves focus to the
// one clicked.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.carousels))
	for i, c := range m.carousels {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			c.Panel().Contains(msg.X, msg.Y) && i != m.focus {
			m.setFocus(i)
		}
		cmds = append(cmds, c.HandleMouse(msg))
	}
	return tea.Batch(cmds...)
}
