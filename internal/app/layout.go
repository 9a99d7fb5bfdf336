package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/marquee/internal/ui/headerbar"
	"github.com/llehouerou/marquee/internal/ui/layout"
)

// offscreen is the row given to carousels scrolled out of view so no
// pointer event can reach them.
const offscreen = -1 << 16

// layout stacks the carousels under the header bar, scrolling so the
// focused one is always drawn.
func (m *Model) layout() {
	if m.width == 0 || len(m.carousels) == 0 {
		return
	}
	avail := layout.ContentHeight(m.height, m.helpHeight())

	heights := make([]int, len(m.carousels))
	for i, c := range m.carousels {
		heights[i] = c.ViewportHeight()
	}

	m.first = min(m.first, m.focus)
	var panels []layout.Panel
	for {
		panels = layout.Stack(headerbar.Height, m.width, heights[m.first:])
		m.visible = layout.Fit(panels, headerbar.Height, avail)
		if m.focus < m.first+m.visible {
			break
		}
		m.first++
	}

	for i, c := range m.carousels {
		if i >= m.first && i < m.first+m.visible {
			c.SetPanel(panels[i-m.first])
			continue
		}
		c.SetPanel(layout.Panel{Y: offscreen, Width: m.width, ViewportHeight: heights[i]})
	}
}

func (m *Model) helpHeight() int {
	return lipgloss.Height(m.help.View(m.helpKeys))
}
