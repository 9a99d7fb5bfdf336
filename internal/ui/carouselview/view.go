package carouselview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// maxDots is the largest track drawn as one dot per card; longer tracks
// show a counter instead.
const maxDots = 12

// View renders the panel: header, viewport, controls and status rows
// inside a border.
func (m *Model) View() string {
	p := m.Panel()
	w := p.InnerWidth()
	if w <= 0 || p.ViewportHeight <= 0 {
		return ""
	}

	lines := make([]string, 0, p.ViewportHeight+3)
	lines = append(lines, m.header(w))
	lines = append(lines, m.viewport(w, p.ViewportHeight)...)
	lines = append(lines, m.controls(w), m.status(w))

	return styles.PanelStyle(m.IsFocused()).Render(strings.Join(lines, "\n"))
}

func (m *Model) header(w int) string {
	t := styles.T()
	dots := indicator(m.slider.Index(), len(m.items))
	room := w - lipgloss.Width(dots) - 1

	name := runewidth.Truncate(m.def.Name, max(room, 0), "…")
	title := t.Accent().Render(name, true)
	if !m.IsFocused() {
		title = t.S().Muted.Render(name)
	}
	gap := max(w-lipgloss.Width(title)-lipgloss.Width(dots), 0)
	return padRight(title+strings.Repeat(" ", gap)+dots, w)
}

// indicator draws one dot per card with the current one highlighted.
func indicator(index, count int) string {
	s := styles.T().S()
	if count == 0 {
		return ""
	}
	if count > maxDots {
		return s.Muted.Render(fmt.Sprintf("%d/%d", index+1, count))
	}
	var b strings.Builder
	for i := range count {
		if i > 0 {
			b.WriteString(" ")
		}
		style := s.Dot
		if i == index {
			style = s.DotActive.Foreground(styles.T().Accent().Step(i, count))
		}
		b.WriteString(style.Render(icons.Dot(i, index)))
	}
	return b.String()
}

func (m *Model) viewport(w, h int) []string {
	if len(m.items) == 0 {
		rows := renderTrack(nil, 0, w, m.def.Gap, 0, w, h)
		rows[h/2] = padRight(lipgloss.PlaceHorizontal(w, lipgloss.Center, styles.T().S().Subtle.Render("no cards")), w)
		return rows
	}
	card := func(i int) []string {
		return m.cards.lines(i, m.items[i], w, h)
	}
	return renderTrack(card, len(m.items), w, m.def.Gap, m.offset, w, h)
}

// controls draws the prev label flush left, the next label flush right and
// the position counter centered between them. Both controls are always
// active since the carousel loops.
func (m *Model) controls(w int) string {
	s := styles.T().S()
	prev := s.Control.Render(m.def.Prev)
	next := s.Control.Render(m.def.Next)

	counter := ""
	if n := len(m.items); n > 0 {
		counter = s.Muted.Render(fmt.Sprintf("%d / %d", m.slider.Index()+1, n))
	}
	middle := w - lipgloss.Width(prev) - lipgloss.Width(next)
	if middle < 0 {
		return padRight(prev, w)
	}
	center := lipgloss.PlaceHorizontal(middle, lipgloss.Center, counter)
	return padRight(prev+center+next, w)
}
