package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/deck"
)

const (
	defaultGap            = 2
	defaultViewportHeight = 8
)

// Carousel is a fully resolved carousel definition.
type Carousel struct {
	Name           string
	Variant        carousel.Variant
	Interval       time.Duration
	Gap            int
	DeckPath       string
	Items          []deck.Item
	Prev           string
	Next           string
	ViewportHeight int
}

// Discover resolves the configured carousels. Definitions missing their
// track, either control or their viewport are skipped without error.
// When only is non-empty, carousels whose name is not listed are skipped too.
func (c *Config) Discover(logger *slog.Logger, only ...string) []Carousel {
	var out []Carousel
	for i, cc := range c.Carousels {
		name := strings.TrimSpace(cc.Name)
		if name == "" {
			name = fmt.Sprintf("carousel-%d", i+1)
		}
		if missing := cc.missing(); missing != "" {
			logger.Debug("skipping incomplete carousel", "carousel", name, "missing", missing)
			continue
		}
		if len(only) > 0 && !slices.Contains(only, name) {
			continue
		}
		out = append(out, cc.resolve(name))
	}
	return out
}

func (cc CarouselConfig) missing() string {
	switch {
	case cc.Track == nil:
		return "track"
	case strings.TrimSpace(cc.Controls.Prev) == "":
		return "controls.prev"
	case strings.TrimSpace(cc.Controls.Next) == "":
		return "controls.next"
	case cc.Viewport == nil:
		return "viewport"
	}
	return ""
}

func (cc CarouselConfig) resolve(name string) Carousel {
	variant := carousel.ParseVariant(cc.Variant)

	interval := cc.Interval
	if interval <= 0 {
		interval = variant.DefaultInterval()
	}

	gap := defaultGap
	if cc.Gap != nil && *cc.Gap >= 0 {
		gap = *cc.Gap
	}

	height := cc.Viewport.Height
	if height <= 0 {
		height = defaultViewportHeight
	}

	return Carousel{
		Name:           name,
		Variant:        variant,
		Interval:       interval,
		Gap:            gap,
		DeckPath:       cc.Track.Deck,
		Items:          cc.Track.Items,
		Prev:           cc.Controls.Prev,
		Next:           cc.Controls.Next,
		ViewportHeight: height,
	}
}

