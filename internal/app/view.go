package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/marquee/internal/ui/headerbar"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if len(m.carousels) == 0 {
		msg := styles.T().S().Muted.Render("no carousels configured")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	names := make([]string, len(m.carousels))
	for i, c := range m.carousels {
		names[i] = c.Name()
	}

	sections := []string{headerbar.Render(names, m.focus, m.width)}
	for _, c := range m.carousels[m.first : m.first+m.visible] {
		sections = append(sections, c.View())
	}
	body := strings.Join(sections, "\n")

	helpView := m.help.View(m.helpKeys)
	if pad := m.height - lipgloss.Height(body) - lipgloss.Height(helpView); pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + helpView
}
