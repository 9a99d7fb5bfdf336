package carousel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Advancer moves a carousel one step.
type Advancer interface {
	Advance(dir Direction)
}

// Scheduler drives autoplay. It is either running (a tick is armed every
// interval) or stopped. Suspended ticks are skipped but keep re-arming.
type Scheduler struct {
	sliderID string
	interval time.Duration
	gate     Gate
	nav      Advancer

	running     bool
	gen         int
	lastAdvance time.Time
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(sliderID string, interval time.Duration, gate Gate, nav Advancer) *Scheduler {
	return &Scheduler{
		sliderID: sliderID,
		interval: interval,
		gate:     gate,
		nav:      nav,
	}
}

// Start moves to running. Calling it while running restarts the interval:
// ticks armed before the restart are discarded.
func (s *Scheduler) Start() tea.Cmd {
	s.gen++
	s.running = true
	return s.arm()
}

// Stop moves to stopped and discards any armed tick.
func (s *Scheduler) Stop() {
	s.gen++
	s.running = false
}

// Running reports whether the scheduler is running.
func (s *Scheduler) Running() bool {
	return s.running
}

// Interval returns the autoplay interval.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// LastAdvance returns when autoplay last moved the carousel (zero if never).
func (s *Scheduler) LastAdvance() time.Time {
	return s.lastAdvance
}

// HandleTick processes a tick. Stale ticks (from before a restart or after
// a stop) return nil. Live ticks advance when the gate allows it and always
// arm the next tick.
func (s *Scheduler) HandleTick(msg TickMsg) tea.Cmd {
	if !s.running || msg.Gen != s.gen {
		return nil
	}
	if s.gate.AdvanceAllowed() {
		s.nav.Advance(Next)
		s.lastAdvance = time.Now()
	}
	return s.arm()
}

func (s *Scheduler) arm() tea.Cmd {
	gen := s.gen
	id := s.sliderID
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{SliderID: id, Gen: gen}
	})
}
