// Package headerbar renders the title bar listing the carousels.
package headerbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/marquee/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const appTitle = "marquee"

// Styles
var (
	activeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	activeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	inactiveNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar for the given width: the application title
// followed by one numbered tab per carousel, the focused one highlighted.
// Tabs that do not fit are dropped from the end.
func Render(names []string, focused, width int) string {
	if width < 20 {
		return ""
	}

	title := styles.T().Accent().Render(appTitle, true)
	separator := separatorStyle.Render(" │ ")
	content := title
	used := lipgloss.Width(title)

	for i, name := range names {
		keyStyle, nameStyle := inactiveKeyStyle, inactiveNameStyle
		if i == focused {
			keyStyle, nameStyle = activeKeyStyle, activeNameStyle
		}
		label := runewidth.Truncate(name, 24, "…")
		part := keyStyle.Render(strconv.Itoa(i+1)) + " " + nameStyle.Render(label)
		partWidth := lipgloss.Width(separator) + lipgloss.Width(part)
		if used+partWidth > width {
			break
		}
		content += separator + part
		used += partWidth
	}

	if used < width {
		content += strings.Repeat(" ", width-used)
	}
	return content
}
