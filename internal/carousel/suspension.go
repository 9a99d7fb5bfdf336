package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Gate answers whether autoplay may advance right now.
type Gate interface {
	AdvanceAllowed() bool
}

// Suspension aggregates the independent reasons to hold autoplay.
// It only knows the flags, not what sets them.
type Suspension struct {
	sliderID  string
	variant   Variant
	userPause time.Duration

	hover    bool
	user     bool
	userGen  int
	playback bool
}

var _ Gate = (*Suspension)(nil)

// NewSuspension creates an aggregator with every source released.
func NewSuspension(sliderID string, variant Variant, userPause time.Duration) *Suspension {
	if userPause <= 0 {
		userPause = DefaultUserPause
	}
	return &Suspension{
		sliderID:  sliderID,
		variant:   variant,
		userPause: userPause,
	}
}

// SetHover sets the pointer-hover source.
func (s *Suspension) SetHover(hover bool) {
	s.hover = hover
}

// PulseUser asserts the transient user source and (re)arms its expiry.
// Only the expiry of the latest pulse clears the flag.
func (s *Suspension) PulseUser() tea.Cmd {
	s.user = true
	s.userGen++
	gen := s.userGen
	id := s.sliderID
	return tea.Tick(s.userPause, func(time.Time) tea.Msg {
		return UserResumeMsg{SliderID: id, Gen: gen}
	})
}

// Resume clears the transient user source if msg belongs to the latest pulse.
func (s *Suspension) Resume(msg UserResumeMsg) {
	if msg.Gen != s.userGen {
		return
	}
	s.user = false
}

// SetPlayback sets the playback source. Ignored for Standard sliders.
func (s *Suspension) SetPlayback(playing bool) {
	if s.variant != MediaBearing {
		return
	}
	s.playback = playing
}

// Reset releases every source and invalidates a pending user expiry.
func (s *Suspension) Reset() {
	s.userGen++
	s.hover = false
	s.user = false
	s.playback = false
}

// AdvanceAllowed implements Gate.
func (s *Suspension) AdvanceAllowed() bool {
	return !s.hover && !s.user && !(s.variant == MediaBearing && s.playback)
}

// Reasons lists the active sources in a fixed order.
func (s *Suspension) Reasons() []string {
	var reasons []string
	if s.hover {
		reasons = append(reasons, "hover")
	}
	if s.user {
		reasons = append(reasons, "interaction")
	}
	if s.variant == MediaBearing && s.playback {
		reasons = append(reasons, "playback")
	}
	return reasons
}

// UserPause returns the transient suspension duration.
func (s *Suspension) UserPause() time.Duration {
	return s.userPause
}
