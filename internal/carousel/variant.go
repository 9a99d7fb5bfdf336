// Package carousel implements the autoplay coordination of a one-card-per-view
// carousel: index navigation with wraparound, suspension of autoplay and the
// interval scheduler that ties them together.
//
// Everything here runs on the bubbletea update loop. Timers are tea.Tick
// commands tagged with a generation number, so restarting a timer simply
// makes the previous delivery stale.
package carousel

import (
	"strings"
	"time"
)

// Variant selects the autoplay interval and whether playback suspension applies.
type Variant int

const (
	Standard Variant = iota
	MediaBearing
)

// Default timings.
const (
	DefaultStandardInterval = 4200 * time.Millisecond
	DefaultMediaInterval    = 5000 * time.Millisecond
	DefaultUserPause        = 2500 * time.Millisecond
	DefaultDragThreshold    = 60
)

// ParseVariant maps a configuration value to a Variant.
// "video" is the only media-bearing value; everything else is Standard.
func ParseVariant(s string) Variant {
	if strings.EqualFold(strings.TrimSpace(s), "video") {
		return MediaBearing
	}
	return Standard
}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Standard:
		return "Standard"
	case MediaBearing:
		return "MediaBearing"
	default:
		return "Unknown"
	}
}

// DefaultInterval returns the autoplay interval used when none is configured.
func (v Variant) DefaultInterval() time.Duration {
	if v == MediaBearing {
		return DefaultMediaInterval
	}
	return DefaultStandardInterval
}

// Direction is a navigation step.
type Direction int

const (
	Next Direction = iota
	Prev
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Next:
		return "Next"
	case Prev:
		return "Prev"
	default:
		return "Unknown"
	}
}

func (d Direction) delta() int {
	if d == Prev {
		return -1
	}
	return 1
}
