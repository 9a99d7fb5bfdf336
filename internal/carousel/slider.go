package carousel

import (
	"context"
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/logging"
)

// Options configures a Slider.
type Options struct {
	Name          string
	Variant       Variant
	Interval      time.Duration // zero selects the variant default
	UserPause     time.Duration // zero selects DefaultUserPause
	DragThreshold int           // zero selects DefaultDragThreshold

	Track   Track
	Metrics Metrics

	// Players is consulted only for MediaBearing sliders. Nil disables
	// playback suspension.
	Players PlayerSource
	// Media returns the IDs of the players embedded in the current items.
	Media func() []string

	// OnIndexChange is called after the index moved.
	OnIndexChange func(index int)

	Logger *slog.Logger
}

// Slider is one carousel instance: navigation, suspension, autoplay, drag
// and playback registry wired together.
type Slider struct {
	id            string
	name          string
	variant       Variant
	dragThreshold int
	logger        *slog.Logger

	nav       *Navigator
	susp      *Suspension
	scheduler *Scheduler
	drag      DragSession
	registry  PlaybackRegistry

	players        PlayerSource
	media          func() []string
	playbackCancel context.CancelFunc
	playbackEvents <-chan PlayerEvent
	// playbackGen tags the current subscription; deliveries from an
	// earlier one are dropped.
	playbackGen int
	watched     []string
	tornDown    bool
}

// New creates a stopped slider. Call Start to begin autoplay.
func New(opts Options) *Slider {
	id := uuid.NewString()

	interval := opts.Interval
	if interval <= 0 {
		interval = opts.Variant.DefaultInterval()
	}
	threshold := opts.DragThreshold
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Slider{
		id:            id,
		name:          opts.Name,
		variant:       opts.Variant,
		dragThreshold: threshold,
		logger:        logger.With("carousel", opts.Name, "slider", id),
		players:       opts.Players,
		media:         opts.Media,
	}
	s.nav = NewNavigator(opts.Track, opts.Metrics, opts.OnIndexChange)
	s.susp = NewSuspension(id, opts.Variant, opts.UserPause)
	s.scheduler = NewScheduler(id, interval, s.susp, s.nav)
	return s
}

// ID returns the routing identifier of this slider.
func (s *Slider) ID() string { return s.id }

// Name returns the configured name.
func (s *Slider) Name() string { return s.name }

// Variant returns the slider variant.
func (s *Slider) Variant() Variant { return s.variant }

// Index returns the current index.
func (s *Slider) Index() int { return s.nav.Index() }

// Offset returns the current track translation.
func (s *Slider) Offset() int { return s.nav.Offset() }

// Len returns the number of items.
func (s *Slider) Len() int { return s.nav.Len() }

// AdvanceAllowed reports whether autoplay may currently advance.
func (s *Slider) AdvanceAllowed() bool { return s.susp.AdvanceAllowed() }

// Suspended lists the active suspension sources.
func (s *Slider) Suspended() []string { return s.susp.Reasons() }

// Running reports whether autoplay is running.
func (s *Slider) Running() bool { return s.scheduler.Running() }

// Interval returns the autoplay interval.
func (s *Slider) Interval() time.Duration { return s.scheduler.Interval() }

// LastAdvance returns when autoplay last advanced.
func (s *Slider) LastAdvance() time.Time { return s.scheduler.LastAdvance() }

// Players returns the number of players feeding playback suspension.
func (s *Slider) Players() int { return s.registry.Len() }

// Dragging reports whether a drag session is open.
func (s *Slider) Dragging() bool { return s.drag.Active() }

// Start applies the initial position, starts autoplay and, for media
// sliders, begins connecting to players without waiting for them.
func (s *Slider) Start() tea.Cmd {
	s.tornDown = false
	s.nav.Relayout()
	return tea.Batch(s.scheduler.Start(), s.connectPlayback())
}

// Relayout re-derives the offset after a resize.
func (s *Slider) Relayout() {
	s.nav.Relayout()
}

// ContentChanged re-derives the layout after items were (re)loaded and
// connects to players that became known.
func (s *Slider) ContentChanged() tea.Cmd {
	s.nav.Relayout()
	if s.tornDown {
		return nil
	}
	return s.connectPlayback()
}

// SetIndex jumps to i, clamped into range.
func (s *Slider) SetIndex(i int) {
	s.nav.SetIndex(i)
}

// Press handles a prev/next control. Suspension is asserted before moving.
func (s *Slider) Press(dir Direction) tea.Cmd {
	cmd := s.susp.PulseUser()
	s.nav.Advance(dir)
	return cmd
}

// SetHover sets the hover suspension source.
func (s *Slider) SetHover(hover bool) {
	s.susp.SetHover(hover)
}

// PointerDown opens a drag session at x.
func (s *Slider) PointerDown(x int) {
	s.drag.Begin(x)
}

// PointerUp completes the drag session at x. Any completed drag pulses the
// user suspension; one past the threshold also navigates.
func (s *Slider) PointerUp(x int) tea.Cmd {
	dir, navigate, ok := s.drag.End(x, s.dragThreshold)
	if !ok {
		return nil
	}
	cmd := s.susp.PulseUser()
	if navigate {
		s.nav.Advance(dir)
	}
	return cmd
}

// PointerCancel drops an open drag session without side effects.
func (s *Slider) PointerCancel() {
	s.drag.Discard()
}

// Update handles the slider's own messages. Messages for other sliders are
// ignored.
func (s *Slider) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(SliderMsg)
	if !ok || m.Target() != s.id {
		return nil
	}

	switch msg := msg.(type) {
	case TickMsg:
		return s.scheduler.HandleTick(msg)

	case UserResumeMsg:
		s.susp.Resume(msg)

	case PlaybackReadyMsg:
		if s.tornDown || msg.Gen != s.playbackGen {
			return nil
		}
		playing := s.registry.Attach(msg.Feed.Players)
		s.susp.SetPlayback(playing)
		s.playbackEvents = msg.Feed.Events
		s.logger.Debug("playback subscription ready", "players", len(msg.Feed.Players), "playing", playing)
		return s.waitPlayback()

	case PlaybackUnavailableMsg:
		if msg.Gen != s.playbackGen {
			return nil
		}
		s.logger.Warn(errmsg.Format(errmsg.OpPlayersConnect, msg.Err), "slider", s.name)

	case PlayerStateMsg:
		if msg.Gen != s.playbackGen {
			return nil
		}
		if msg.Closed || s.tornDown {
			s.playbackEvents = nil
			return nil
		}
		playing := s.registry.Observe(msg.Event)
		s.susp.SetPlayback(playing)
		s.logger.Debug("player state", "player", msg.Event.PlayerID, "state", msg.Event.State, "playing", playing)
		return s.waitPlayback()
	}
	return nil
}

// Teardown stops autoplay, releases every suspension timer and ends the
// player subscription. Later deliveries for this slider are ignored.
func (s *Slider) Teardown() {
	s.tornDown = true
	s.scheduler.Stop()
	s.susp.Reset()
	s.drag.Discard()
	s.cancelPlayback()
	s.registry.Reset()
	s.watched = nil
}

func (s *Slider) cancelPlayback() {
	if s.playbackCancel != nil {
		s.playbackCancel()
		s.playbackCancel = nil
	}
	s.playbackEvents = nil
	s.playbackGen++
}

// connectPlayback subscribes to the players of the current items. It does
// nothing while that set is unchanged; otherwise the previous subscription
// is replaced by one covering the whole set.
func (s *Slider) connectPlayback() tea.Cmd {
	if s.variant != MediaBearing || s.players == nil || s.media == nil {
		return nil
	}
	ids := slices.Clone(s.media())
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) == 0 || slices.Equal(ids, s.watched) {
		return nil
	}
	if s.watched != nil {
		s.logger.Debug("player set changed, resubscribing", "players", ids)
	}
	s.cancelPlayback()
	s.watched = ids

	ctx, cancel := context.WithCancel(context.Background())
	s.playbackCancel = cancel
	id, gen := s.id, s.playbackGen
	source := s.players
	return func() tea.Msg {
		feed, err := source.Connect(ctx, ids)
		if err != nil {
			return PlaybackUnavailableMsg{SliderID: id, Gen: gen, Err: err}
		}
		return PlaybackReadyMsg{SliderID: id, Gen: gen, Feed: feed}
	}
}

func (s *Slider) waitPlayback() tea.Cmd {
	ch := s.playbackEvents
	if ch == nil {
		return nil
	}
	id, gen := s.id, s.playbackGen
	return func() tea.Msg {
		ev, ok := <-ch
		return PlayerStateMsg{SliderID: id, Gen: gen, Event: ev, Closed: !ok}
	}
}
