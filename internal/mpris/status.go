// Package mpris talks to media players over the MPRIS D-Bus interface and
// exposes the focused carousel as an MPRIS player of its own.
package mpris

import (
	"strings"

	"github.com/llehouerou/marquee/internal/carousel"
)

const (
	busPrefix   = "org.mpris.MediaPlayer2."
	playerIface = "org.mpris.MediaPlayer2.Player"
	rootIface   = "org.mpris.MediaPlayer2"
)

// PlayerInfo describes a player found on the bus.
type PlayerInfo struct {
	BusName  string
	Identity string
	State    carousel.PlaybackState
	Err      error
}

// ParseStatus maps an MPRIS PlaybackStatus value to a playback state.
func ParseStatus(s string) carousel.PlaybackState {
	switch s {
	case "Playing":
		return carousel.PlaybackPlaying
	case "Paused":
		return carousel.PlaybackPaused
	case "Stopped":
		return carousel.PlaybackStopped
	}
	return carousel.PlaybackUnknown
}

// BusName returns the well-known bus name for id. Short names such as
// "mpv" are expanded to "org.mpris.MediaPlayer2.mpv".
func BusName(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, busPrefix) {
		return id
	}
	return busPrefix + id
}

// Status is the snapshot of the focused carousel published over MPRIS.
type Status struct {
	Carousel string
	Title    string
	Author   string
	Index    int
	Len      int
	Playing  bool
}

// Remote receives MPRIS navigation requests.
type Remote interface {
	Next()
	Previous()
}
