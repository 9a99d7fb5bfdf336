package carousel

// Every message carries the ID of the slider it belongs to so the app can
// route it when several carousels share the update loop.

// TickMsg is delivered when an autoplay interval elapses.
type TickMsg struct {
	SliderID string
	Gen      int
}

// UserResumeMsg is delivered when a transient user suspension expires.
type UserResumeMsg struct {
	SliderID string
	Gen      int
}

// PlaybackReadyMsg is delivered once the player subscription is established.
// Gen identifies the subscription; it changes whenever the set of players does.
type PlaybackReadyMsg struct {
	SliderID string
	Gen      int
	Feed     *PlayerFeed
}

// PlaybackUnavailableMsg is delivered when the player subscription failed.
// The slider keeps working without playback suspension.
type PlaybackUnavailableMsg struct {
	SliderID string
	Gen      int
	Err      error
}

// PlayerStateMsg carries one player notification. Closed is set when the
// feed has ended and no further notifications will arrive.
type PlayerStateMsg struct {
	SliderID string
	Gen      int
	Event    PlayerEvent
	Closed   bool
}

// SliderMsg is implemented by all slider-addressed messages.
type SliderMsg interface {
	Target() string
}

// Target implements SliderMsg.
func (m TickMsg) Target() string { return m.SliderID }

// Target implements SliderMsg.
func (m UserResumeMsg) Target() string { return m.SliderID }

// Target implements SliderMsg.
func (m PlaybackReadyMsg) Target() string { return m.SliderID }

// Target implements SliderMsg.
func (m PlaybackUnavailableMsg) Target() string { return m.SliderID }

// Target implements SliderMsg.
func (m PlayerStateMsg) Target() string { return m.SliderID }
