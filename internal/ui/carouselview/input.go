package carouselview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/marquee/internal/carousel"
)

// HandleMouse applies a mouse event given in window coordinates. Every
// carousel sees every event: hover is tracked from motion anywhere, and a
// drag started in this carousel ends on release wherever it happens.
func (m *Model) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	p := m.Panel()
	m.setHover(p.Contains(msg.X, msg.Y))

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if p.InViewport(msg.X, msg.Y) {
			m.slider.PointerDown(msg.X)
			return nil
		}
		if msg.Y == p.ControlsRow() {
			if dir, ok := m.controlAt(msg.X); ok {
				return m.slider.Press(dir)
			}
		}
	case tea.MouseActionRelease:
		if m.slider.Dragging() {
			return m.slider.PointerUp(msg.X)
		}
	}
	return nil
}

// Blur handles the terminal losing focus: the pointer is gone, so hover is
// cleared and an open drag is dropped without navigating.
func (m *Model) Blur() {
	m.setHover(false)
	m.slider.PointerCancel()
}

func (m *Model) setHover(hover bool) {
	if hover == m.hover {
		return
	}
	m.hover = hover
	m.slider.SetHover(hover)
}

// controlAt returns the control under column x of the controls row. The
// prev label sits at the left edge of the panel interior, next at the right.
func (m *Model) controlAt(x int) (carousel.Direction, bool) {
	p := m.Panel()
	left := p.X + 1
	right := p.X + p.Width - 1

	if w := lipgloss.Width(m.def.Prev); x >= left && x < left+w {
		return carousel.Prev, true
	}
	if w := lipgloss.Width(m.def.Next); x >= right-w && x < right {
		return carousel.Next, true
	}
	return 0, false
}
