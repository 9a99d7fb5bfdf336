package carouselview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// status summarizes autoplay: the interval, what is holding it back and
// when it last advanced. An error replaces the line until the next one.
func (m *Model) status(w int) string {
	s := styles.T().S()
	if m.errMsg != "" {
		return padRight(s.Error.Render(m.errMsg), w)
	}

	sl := m.slider
	parts := []string{s.Muted.Render("autoplay " + sl.Interval().String())}

	switch {
	case !sl.Running():
		parts = append(parts, s.Subtle.Render("stopped"))
	case sl.AdvanceAllowed():
		parts = append(parts, s.Success.Render("running"))
	default:
		parts = append(parts, s.Warning.Render("paused: "+strings.Join(sl.Suspended(), ", ")))
	}

	if last := sl.LastAdvance(); !last.IsZero() {
		parts = append(parts, s.Subtle.Render("advanced "+humanize.RelTime(last, m.now(), "ago", "from now")))
	}
	if sl.Variant() == carousel.MediaBearing {
		parts = append(parts, s.Subtle.Render(playersLabel(sl.Players())))
	}

	// Least important parts go first; interval and state always stay.
	sep := s.Subtle.Render(" · ")
	line := strings.Join(parts, sep)
	for len(parts) > 2 && lipgloss.Width(line) > w {
		parts = parts[:len(parts)-1]
		line = strings.Join(parts, sep)
	}
	return padRight(line, w)
}

func playersLabel(n int) string {
	switch n {
	case 0:
		return "no players"
	case 1:
		return "1 player"
	}
	return fmt.Sprintf("%d players", n)
}
