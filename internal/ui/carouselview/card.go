package carouselview

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/marquee/internal/deck"
	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

type cardKey struct {
	index, width, height int
}

// cardRenderer renders cards and caches the result per index and size.
// Markdown bodies go through glamour, whose renderer is bound to a wrap
// width and is rebuilt when the width changes.
type cardRenderer struct {
	logger    *slog.Logger
	width     int
	markdown  *glamour.TermRenderer
	cache     map[cardKey][]string
	cacheSize [2]int
	renderErr bool
}

func newCardRenderer(logger *slog.Logger) *cardRenderer {
	return &cardRenderer{logger: logger, cache: make(map[cardKey][]string)}
}

// reset drops every cached card, after the items changed.
func (r *cardRenderer) reset() {
	clear(r.cache)
}

func (r *cardRenderer) lines(index int, item deck.Item, width, height int) []string {
	if size := [2]int{width, height}; size != r.cacheSize {
		clear(r.cache)
		r.cacheSize = size
	}
	key := cardKey{index, width, height}
	if lines, ok := r.cache[key]; ok {
		return lines
	}
	lines := renderCard(item, width, height, r.body)
	r.cache[key] = lines
	return lines
}

func (r *cardRenderer) body(md string, width int) string {
	if r.markdown == nil || r.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			r.logOnce("markdown renderer unavailable", err)
			return plainBody(md, width)
		}
		r.markdown, r.width = tr, width
	}
	out, err := r.markdown.Render(md)
	if err != nil {
		r.logOnce("markdown render failed", err)
		return plainBody(md, width)
	}
	return out
}

func (r *cardRenderer) logOnce(msg string, err error) {
	if r.renderErr {
		return
	}
	r.renderErr = true
	r.logger.Warn(msg, "error", err)
}

func plainBody(md string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(md)
}

// renderCard returns exactly height lines of exactly width columns: the
// title, an optional byline, then the body.
func renderCard(item deck.Item, width, height int, body func(md string, width int) string) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	t := styles.T()
	s := t.S()

	lines := make([]string, 0, height)
	if item.Title != "" {
		title := runewidth.Truncate(item.Title, width, "…")
		lines = append(lines, t.Accent().Render(title, true))
	}
	if by := byline(item); by != "" {
		lines = append(lines, s.Muted.Render(runewidth.Truncate(by, width, "…")))
	}
	if item.Body != "" {
		lines = append(lines, trimBlankLines(body(item.Body, width))...)
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, l := range lines {
		lines[i] = padRight(l, width)
	}
	return lines
}

func byline(item deck.Item) string {
	var parts []string
	if item.Author != "" {
		parts = append(parts, "by "+item.Author)
	}
	if item.HasMedia() {
		parts = append(parts, icons.FormatMedia(strings.TrimPrefix(item.Media, "org.mpris.MediaPlayer2.")))
	}
	return strings.Join(parts, "  ")
}

func trimBlankLines(s string) []string {
	lines := strings.Split(s, "\n")
	isBlank := func(l string) bool { return strings.TrimSpace(ansi.Strip(l)) == "" }
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return lines
}
