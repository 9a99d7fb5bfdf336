// Package carouselview renders one carousel as a terminal panel and turns
// keys, clicks, drags and hover into slider operations.
package carouselview

import (
	"log/slog"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/config"
	"github.com/llehouerou/marquee/internal/deck"
	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/logging"
	"github.com/llehouerou/marquee/internal/state"
	"github.com/llehouerou/marquee/internal/ui"
	"github.com/llehouerou/marquee/internal/ui/layout"
)

// Deps are the services shared by every carousel.
type Deps struct {
	UserPause     time.Duration
	DragThreshold int
	Players       carousel.PlayerSource // nil disables playback suspension
	Store         state.Interface       // nil disables position persistence
	Logger        *slog.Logger
	Now           func() time.Time
}

// Model is one carousel panel.
type Model struct {
	ui.Base

	def    config.Carousel
	slider *carousel.Slider
	items  []deck.Item
	offset int
	cards  *cardRenderer
	store  state.Interface
	logger *slog.Logger
	now    func() time.Time

	hover    bool
	restored bool
	errMsg   string
}

// New builds the carousel described by def. Call Start once it is placed.
func New(def config.Carousel, deps Deps) *Model {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	m := &Model{
		def:    def,
		items:  slices.Clone(def.Items),
		cards:  newCardRenderer(logger),
		store:  deps.Store,
		logger: logger,
		now:    now,
	}
	surf := surface{m: m}
	m.slider = carousel.New(carousel.Options{
		Name:          def.Name,
		Variant:       def.Variant,
		Interval:      def.Interval,
		UserPause:     deps.UserPause,
		DragThreshold: deps.DragThreshold,
		Track:         surf,
		Metrics:       surf,
		Players:       deps.Players,
		Media:         m.mediaIDs,
		OnIndexChange: m.indexChanged,
		Logger:        logger,
	})
	return m
}

// ID returns the slider ID messages are routed by.
func (m *Model) ID() string { return m.slider.ID() }

// Name returns the configured carousel name.
func (m *Model) Name() string { return m.def.Name }

// ViewportHeight returns the configured number of card rows.
func (m *Model) ViewportHeight() int { return m.def.ViewportHeight }

// Slider exposes the underlying state machine.
func (m *Model) Slider() *carousel.Slider { return m.slider }

// Items returns the cards currently in the track.
func (m *Model) Items() []deck.Item { return m.items }

// Current returns the card at the current index.
func (m *Model) Current() (deck.Item, bool) {
	i := m.slider.Index()
	if i < 0 || i >= len(m.items) {
		return deck.Item{}, false
	}
	return m.items[i], true
}

// Err returns the last user-facing error, if any.
func (m *Model) Err() string { return m.errMsg }

// Start begins autoplay and loads the deck file, if any. Without a deck the
// saved position is restored right away.
func (m *Model) Start() tea.Cmd {
	cmd := m.slider.Start()
	if m.def.DeckPath == "" {
		m.restore()
		return cmd
	}
	return tea.Batch(cmd, loadDeck(m.ID(), m.def.DeckPath))
}

// SetPanel places the carousel and re-derives its offset, since the card
// width follows the panel width.
func (m *Model) SetPanel(p layout.Panel) {
	m.Base.SetPanel(p)
	m.slider.Relayout()
}

// Update handles messages addressed to this carousel.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ContentLoadedMsg); ok {
		if msg.SliderID != m.ID() {
			return nil
		}
		return m.contentLoaded(msg)
	}
	return m.slider.Update(msg)
}

// Press navigates as if the prev/next control was activated.
func (m *Model) Press(dir carousel.Direction) tea.Cmd {
	return m.slider.Press(dir)
}

// Teardown stops the carousel for good.
func (m *Model) Teardown() {
	m.slider.Teardown()
}

func (m *Model) contentLoaded(msg ContentLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		m.errMsg = errmsg.FormatWith(errmsg.OpDeckLoad, m.def.DeckPath, msg.Err)
		m.logger.Warn("deck load failed", "carousel", m.def.Name, "path", m.def.DeckPath, "error", msg.Err)
	} else {
		m.items = append(slices.Clone(m.def.Items), msg.Items...)
		m.cards.reset()
		m.logger.Debug("deck loaded", "carousel", m.def.Name, "items", len(m.items))
	}
	cmd := m.slider.ContentChanged()
	m.restore()
	return cmd
}

func (m *Model) restore() {
	if m.restored || m.store == nil {
		return
	}
	m.restored = true

	p, err := m.store.GetPosition(m.def.Name)
	if err != nil {
		m.errMsg = errmsg.FormatWith(errmsg.OpStateLoad, m.def.Name, err)
		m.logger.Warn("restore position failed", "carousel", m.def.Name, "error", err)
		return
	}
	if p != nil {
		m.slider.SetIndex(p.Index)
	}
}

func (m *Model) indexChanged(i int) {
	if m.store != nil {
		m.store.SavePosition(m.def.Name, i)
	}
}

func (m *Model) mediaIDs() []string {
	return deck.MediaIDs(m.items)
}
