package carousel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlider(t *testing.T, items int, variant Variant, src PlayerSource, media ...string) (*Slider, *fakeTrack) {
	t.Helper()
	track := newFakeTrack(items)
	s := New(Options{
		Name:    "test",
		Variant: variant,
		Track:   track,
		Metrics: track,
		Players: src,
		Media:   func() []string { return media },
	})
	return s, track
}

func (s *Slider) liveTick() TickMsg {
	return TickMsg{SliderID: s.id, Gen: s.scheduler.gen}
}

func TestSlider_DefaultsFromVariant(t *testing.T) {
	std, _ := newTestSlider(t, 3, Standard, nil)
	media, _ := newTestSlider(t, 3, MediaBearing, nil)

	assert.Equal(t, 4200*time.Millisecond, std.Interval())
	assert.Equal(t, 5000*time.Millisecond, media.Interval())
	assert.Equal(t, DefaultDragThreshold, std.dragThreshold)
	assert.NotEqual(t, std.ID(), media.ID())
}

func TestSlider_StartRunsAutoplay(t *testing.T) {
	s, track := newTestSlider(t, 3, Standard, nil)

	cmd := s.Start()

	assert.NotNil(t, cmd)
	assert.True(t, s.Running())
	assert.Equal(t, 1, track.translations, "initial position is applied")
}

func TestSlider_DragThreshold(t *testing.T) {
	tests := []struct {
		name      string
		dx        int
		wantIndex int
	}{
		{"drag right past threshold goes to previous", 61, 4},
		{"drag left past threshold goes to next", -61, 1},
		{"short drag does not navigate", 30, 0},
		{"exactly the threshold does not navigate", 60, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSlider(t, 5, Standard, nil)

			s.PointerDown(100)
			cmd := s.PointerUp(100 + tt.dx)

			assert.Equal(t, tt.wantIndex, s.Index())
			assert.NotNil(t, cmd, "every completed drag pulses the user suspension")
			assert.Contains(t, s.Suspended(), "interaction")
			assert.False(t, s.Dragging())
		})
	}
}

func TestSlider_PointerUpWithoutDownDoesNothing(t *testing.T) {
	s, _ := newTestSlider(t, 5, Standard, nil)

	cmd := s.PointerUp(500)

	assert.Nil(t, cmd)
	assert.Equal(t, 0, s.Index())
	assert.True(t, s.AdvanceAllowed())
}

func TestSlider_PointerCancelLeaksNothing(t *testing.T) {
	s, _ := newTestSlider(t, 5, Standard, nil)
	s.PointerDown(10)

	s.PointerCancel()

	assert.False(t, s.Dragging())
	assert.True(t, s.AdvanceAllowed())
	assert.Nil(t, s.PointerUp(200))
	assert.Equal(t, 0, s.Index())
}

func TestSlider_PressSuspendsBeforeMoving(t *testing.T) {
	var allowedDuringMove []bool
	track := newFakeTrack(3)
	var s *Slider
	s = New(Options{
		Name:    "test",
		Track:   track,
		Metrics: track,
		OnIndexChange: func(int) {
			allowedDuringMove = append(allowedDuringMove, s.AdvanceAllowed())
		},
	})

	cmd := s.Press(Prev)

	require.NotNil(t, cmd)
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, []bool{false}, allowedDuringMove)
}

func TestSlider_SuspendedTickDoesNotMoveOrStop(t *testing.T) {
	s, _ := newTestSlider(t, 4, Standard, nil)
	s.Start()
	s.SetHover(true)

	cmd := s.Update(s.liveTick())

	assert.NotNil(t, cmd)
	assert.Equal(t, 0, s.Index())
	assert.True(t, s.Running())

	s.SetHover(false)
	s.Update(s.liveTick())
	assert.Equal(t, 1, s.Index())
}

func TestSlider_IgnoresOtherSlidersMessages(t *testing.T) {
	s, _ := newTestSlider(t, 4, Standard, nil)
	s.Start()
	msg := s.liveTick()
	msg.SliderID = "someone-else"

	assert.Nil(t, s.Update(msg))
	assert.Equal(t, 0, s.Index())
	assert.Nil(t, s.Update("not a slider message"))
}

func TestSlider_UserResumeReleases(t *testing.T) {
	s, _ := newTestSlider(t, 4, Standard, nil)
	s.Press(Next)
	require.False(t, s.AdvanceAllowed())

	s.Update(UserResumeMsg{SliderID: s.ID(), Gen: s.susp.userGen})

	assert.True(t, s.AdvanceAllowed())
}

func TestSlider_PlaybackSuspendsMediaSlider(t *testing.T) {
	src := newFakeSource("a", "b")
	s, _ := newTestSlider(t, 3, MediaBearing, src, "a", "b")

	connect := s.connectPlayback()
	require.NotNil(t, connect)
	wait := s.Update(connect())
	require.NotNil(t, wait)
	assert.Equal(t, 2, s.Players())
	assert.True(t, s.AdvanceAllowed())

	src.players["a"].state = PlaybackPlaying
	src.events <- PlayerEvent{PlayerID: "a", State: PlaybackPlaying}
	wait = s.Update(wait())
	assert.False(t, s.AdvanceAllowed())
	assert.Contains(t, s.Suspended(), "playback")

	src.players["b"].state = PlaybackPaused
	src.events <- PlayerEvent{PlayerID: "b", State: PlaybackPaused}
	wait = s.Update(wait())
	assert.False(t, s.AdvanceAllowed(), "a still plays")

	src.players["a"].state = PlaybackStopped
	src.events <- PlayerEvent{PlayerID: "a", State: PlaybackStopped}
	s.Update(wait())
	assert.True(t, s.AdvanceAllowed())
}

func TestSlider_ContentChangedKeepsSubscriptionForSamePlayers(t *testing.T) {
	src := newFakeSource("a")
	s, _ := newTestSlider(t, 3, MediaBearing, src, "a", "a")

	require.NotNil(t, s.Update(s.connectPlayback()()))

	assert.Nil(t, s.ContentChanged())
	assert.Equal(t, 1, src.calls)
}

func TestSlider_ContentChangedWatchesNewPlayers(t *testing.T) {
	src := newFakeSource("a", "b")
	s, track := newTestSlider(t, 2, MediaBearing, src, "a")
	require.NotNil(t, s.Update(s.connectPlayback()()))
	s.Start()
	require.Equal(t, 1, s.Players())
	first := src.ctx

	track.items = 4
	s.media = func() []string { return []string{"a", "b"} }
	connect := s.ContentChanged()
	require.NotNil(t, connect)
	assert.Error(t, first.Err(), "previous subscription is cancelled")

	wait := s.Update(connect())
	require.NotNil(t, wait)
	assert.Equal(t, 2, s.Players())
	assert.Equal(t, 2, src.calls)

	src.players["b"].state = PlaybackPlaying
	src.events <- PlayerEvent{PlayerID: "b", State: PlaybackPlaying}
	s.Update(wait())

	assert.False(t, s.AdvanceAllowed())
	s.Update(s.liveTick())
	assert.Equal(t, 0, s.Index(), "autoplay holds while b plays")
}

func TestSlider_StaleSubscriptionDeliveriesIgnored(t *testing.T) {
	src := newFakeSource("a", "b")
	s, _ := newTestSlider(t, 3, MediaBearing, src, "a")
	require.NotNil(t, s.Update(s.connectPlayback()()))
	oldGen := s.playbackGen

	s.media = func() []string { return []string{"a", "b"} }
	require.NotNil(t, s.Update(s.ContentChanged()()))

	assert.Nil(t, s.Update(PlayerStateMsg{SliderID: s.ID(), Gen: oldGen, Closed: true}))
	assert.NotNil(t, s.playbackEvents, "old feed closing leaves the new one in place")

	assert.Nil(t, s.Update(PlaybackReadyMsg{SliderID: s.ID(), Gen: oldGen, Feed: &PlayerFeed{}}))
	assert.Equal(t, 2, s.Players())
}

func TestSlider_StandardNeverConnects(t *testing.T) {
	src := newFakeSource("a")
	s, _ := newTestSlider(t, 3, Standard, src, "a")

	assert.Nil(t, s.connectPlayback())
}

func TestSlider_NoMediaNoConnect(t *testing.T) {
	src := newFakeSource()
	s, _ := newTestSlider(t, 3, MediaBearing, src)

	assert.Nil(t, s.connectPlayback())
}

func TestSlider_PlaybackUnavailableDegrades(t *testing.T) {
	src := newFakeSource("a")
	src.err = errors.New("no session bus")
	s, _ := newTestSlider(t, 3, MediaBearing, src, "a")
	s.Start()

	assert.Nil(t, s.connectPlayback(), "already requested by Start")

	s.Update(PlaybackUnavailableMsg{SliderID: s.ID(), Gen: s.playbackGen, Err: src.err})
	s.Update(s.liveTick())

	assert.Equal(t, 1, s.Index())
}

func TestSlider_ClosedFeedStopsWaiting(t *testing.T) {
	src := newFakeSource("a")
	s, _ := newTestSlider(t, 3, MediaBearing, src, "a")
	wait := s.Update(s.connectPlayback()())
	require.NotNil(t, wait)

	close(src.events)

	assert.Nil(t, s.Update(wait()))
}

func TestSlider_TeardownReleasesEverything(t *testing.T) {
	src := newFakeSource("a")
	s, _ := newTestSlider(t, 3, MediaBearing, src, "a")
	require.NotNil(t, s.Update(s.connectPlayback()()))
	s.Start()
	tick := s.liveTick()
	s.SetHover(true)
	s.PointerDown(5)

	s.Teardown()

	assert.False(t, s.Running())
	assert.False(t, s.Dragging())
	assert.True(t, s.AdvanceAllowed())
	assert.Nil(t, s.Update(tick))
	assert.Equal(t, 0, s.Index())
	require.NotNil(t, src.ctx)
	assert.Error(t, src.ctx.Err(), "player subscription is cancelled")
}
