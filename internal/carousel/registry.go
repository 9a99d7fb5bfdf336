package carousel

import "context"

// PlaybackState is the state reported by an external player.
type PlaybackState int

const (
	PlaybackUnknown PlaybackState = iota
	PlaybackPlaying
	PlaybackPaused
	PlaybackStopped
)

// String returns the state name.
func (s PlaybackState) String() string {
	switch s {
	case PlaybackUnknown:
		return "Unknown"
	case PlaybackPlaying:
		return "Playing"
	case PlaybackPaused:
		return "Paused"
	case PlaybackStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state ends playback (paused or stopped).
func (s PlaybackState) Terminal() bool {
	return s == PlaybackPaused || s == PlaybackStopped
}

// Player is a handle on one external player.
type Player interface {
	ID() string
	// PlaybackState queries the player synchronously.
	PlaybackState() (PlaybackState, error)
}

// PlayerEvent is a state-change notification from one player.
type PlayerEvent struct {
	PlayerID string
	State    PlaybackState
}

// PlayerFeed is an established subscription: the player handles plus the
// notifications they emit. Events is closed when the subscription ends.
type PlayerFeed struct {
	Players []Player
	Events  <-chan PlayerEvent
}

// PlayerSource subscribes to the players identified by ids.
// The subscription lasts until ctx is cancelled.
type PlayerSource interface {
	Connect(ctx context.Context, ids []string) (*PlayerFeed, error)
}

// PlaybackRegistry derives "any player is playing" from player notifications.
type PlaybackRegistry struct {
	players    []Player
	anyPlaying bool
}

// Attach registers the players and derives the initial aggregate from them.
func (r *PlaybackRegistry) Attach(players []Player) bool {
	r.players = append(r.players[:0], players...)
	r.anyPlaying = r.requery()
	return r.anyPlaying
}

// Observe folds one notification into the aggregate and returns it.
// A playing notification is sufficient on its own; a terminal one re-queries
// every player because another may still be playing.
func (r *PlaybackRegistry) Observe(ev PlayerEvent) bool {
	switch {
	case ev.State == PlaybackPlaying:
		r.anyPlaying = true
	case ev.State.Terminal():
		r.anyPlaying = r.requery()
	}
	return r.anyPlaying
}

// AnyPlaying returns the aggregate.
func (r *PlaybackRegistry) AnyPlaying() bool {
	return r.anyPlaying
}

// Len returns the number of registered players.
func (r *PlaybackRegistry) Len() int {
	return len(r.players)
}

// Reset forgets every player.
func (r *PlaybackRegistry) Reset() {
	r.players = nil
	r.anyPlaying = false
}

// requery asks every player; a failed query counts as not playing.
func (r *PlaybackRegistry) requery() bool {
	for _, p := range r.players {
		state, err := p.PlaybackState()
		if err == nil && state == PlaybackPlaying {
			return true
		}
	}
	return false
}
