// Package app wires the carousels into the root bubbletea model.
package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/config"
	"github.com/llehouerou/marquee/internal/keymap"
	"github.com/llehouerou/marquee/internal/logging"
	"github.com/llehouerou/marquee/internal/mpris"
	"github.com/llehouerou/marquee/internal/ui/carouselview"
)

// StatusPublisher receives the focused carousel state after every update.
type StatusPublisher interface {
	Publish(mpris.Status)
}

// Options configures the root model.
type Options struct {
	Carousels []config.Carousel
	Deps      carouselview.Deps

	// Remote, when set, is kept informed of the focused carousel.
	Remote StatusPublisher
	// Requests delivers MPRIS navigation requests.
	Requests <-chan carousel.Direction

	Logger *slog.Logger
}

// Model is the root application model.
type Model struct {
	carousels []*carouselview.Model
	focus     int
	first     int // first carousel drawn; earlier ones are scrolled off
	visible   int

	width, height int

	keys     *keymap.Resolver
	help     help.Model
	helpKeys keymap.Help

	remote   StatusPublisher
	requests <-chan carousel.Direction
	logger   *slog.Logger
}

// New creates the root model. Carousels start in Init.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	deps := opts.Deps
	if deps.Logger == nil {
		deps.Logger = logger
	}

	m := Model{
		keys:     keymap.NewResolver(keymap.All),
		help:     help.New(),
		helpKeys: keymap.NewHelp(keymap.All),
		remote:   opts.Remote,
		requests: opts.Requests,
		logger:   logger,
	}
	if keys := keymap.Conflicts(keymap.All); len(keys) > 0 {
		logger.Warn("conflicting key bindings", "keys", keys)
	}
	for _, def := range opts.Carousels {
		m.carousels = append(m.carousels, carouselview.New(def, deps))
	}
	if len(m.carousels) > 0 {
		m.carousels[0].SetFocused(true)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.carousels)+1)
	for _, c := range m.carousels {
		cmds = append(cmds, c.Start())
	}
	cmds = append(cmds, m.watchRemote())
	m.publish()
	return tea.Batch(cmds...)
}

// Carousels returns the carousels in display order.
func (m Model) Carousels() []*carouselview.Model {
	return m.carousels
}

// Focused returns the focused carousel, or nil when there is none.
func (m Model) Focused() *carouselview.Model {
	if len(m.carousels) == 0 {
		return nil
	}
	return m.carousels[m.focus]
}

// Shutdown tears every carousel down.
func (m Model) Shutdown() {
	for _, c := range m.carousels {
		c.Teardown()
	}
}

// publish hands the focused carousel state to the MPRIS server.
func (m Model) publish() {
	c := m.Focused()
	if m.remote == nil || c == nil {
		return
	}
	sl := c.Slider()
	st := mpris.Status{
		Carousel: c.Name(),
		Index:    sl.Index(),
		Len:      sl.Len(),
		Playing:  sl.Running() && sl.AdvanceAllowed(),
	}
	if item, ok := c.Current(); ok {
		st.Title = item.Title
		st.Author = item.Author
	}
	m.remote.Publish(st)
}
