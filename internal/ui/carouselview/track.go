package carouselview

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// surface exposes the model as the slider's track and layout metrics.
// Every card is as wide as the viewport, so one card is shown per step.
type surface struct {
	m *Model
}

func (s surface) Len() int { return len(s.m.items) }

func (s surface) Translate(offset int) { s.m.offset = offset }

func (s surface) FirstItemWidth() (int, bool) {
	if len(s.m.items) == 0 {
		return 0, false
	}
	return s.m.Panel().InnerWidth(), true
}

func (s surface) Gap() int { return s.m.def.Gap }

func (s surface) ViewportWidth() int { return s.m.Panel().InnerWidth() }

// renderTrack lays the cards side by side, gap columns apart, and returns
// the height rows seen through a viewport of width columns placed at
// -offset on the track. Only the cards overlapping the viewport are drawn.
func renderTrack(card func(i int) []string, count, cardWidth, gap, offset, width, height int) []string {
	rows := make([]string, height)
	if count == 0 || cardWidth <= 0 || width <= 0 {
		for r := range rows {
			rows[r] = strings.Repeat(" ", max(width, 0))
		}
		return rows
	}

	step := cardWidth + gap
	start := max(-offset, 0)
	first := min(start/step, count-1)
	last := min((start+width-1)/step, count-1)

	blocks := make([][]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		blocks = append(blocks, card(i))
	}
	spacer := strings.Repeat(" ", gap)
	local := start - first*step

	for r := range rows {
		var b strings.Builder
		for bi, block := range blocks {
			if bi > 0 {
				b.WriteString(spacer)
			}
			if r < len(block) {
				b.WriteString(padRight(block[r], cardWidth))
			} else {
				b.WriteString(strings.Repeat(" ", cardWidth))
			}
		}
		rows[r] = padRight(ansi.Cut(b.String(), local, local+width), width)
	}
	return rows
}

// padRight pads s with spaces to width columns, truncating if wider.
func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Truncate(s, width, "")
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
