//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync/atomic"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/marquee/internal/errmsg"
)

// Server exposes the focused carousel as the "marquee" MPRIS player, so
// media keys and playerctl can step through it.
type Server struct {
	server *server.Server
	status *atomic.Pointer[Status]
	logger *slog.Logger
}

// NewServer creates a server forwarding navigation to remote.
func NewServer(remote Remote, logger *slog.Logger) *Server {
	status := &atomic.Pointer[Status]{}
	status.Store(&Status{})

	return &Server{
		server: server.NewServer("marquee", &rootAdapter{}, &playerAdapter{remote: remote, status: status}),
		status: status,
		logger: logger.With("component", "mpris-server"),
	}
}

// Start listens on the session bus in the background.
func (s *Server) Start() {
	go func() {
		if err := s.server.Listen(); err != nil {
			s.logger.Warn(errmsg.Format(errmsg.OpRemoteStart, err))
		}
	}()
}

// Publish replaces the snapshot returned to MPRIS clients.
func (s *Server) Publish(st Status) {
	s.status.Store(&st)
}

// Close stops the server and releases D-Bus resources.
func (s *Server) Close() error {
	return s.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Marquee", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and LoopStatus.
// Only navigation is controllable; autoplay follows its own suspension rules.
type playerAdapter struct {
	remote Remote
	status *atomic.Pointer[Status]
}

func (p *playerAdapter) snapshot() Status {
	return *p.status.Load()
}

func (p *playerAdapter) Next() error {
	p.remote.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.remote.Previous()
	return nil
}

func (p *playerAdapter) Pause() error     { return nil }
func (p *playerAdapter) PlayPause() error { return nil }
func (p *playerAdapter) Stop() error      { return nil }
func (p *playerAdapter) Play() error      { return nil }

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	st := p.snapshot()
	switch {
	case st.Len == 0:
		return types.PlaybackStatusStopped, nil
	case st.Playing:
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.snapshot()
	if st.Len == 0 {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(formatTrackID(st.Carousel, st.Index)),
		Title:       st.Title,
		Album:       st.Carousel,
		TrackNumber: st.Index + 1,
	}
	if st.Author != "" {
		meta.Artist = []string{st.Author}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

// Carousels loop, so both directions are always available once there is
// more than one card.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.snapshot().Len > 1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.snapshot().Len > 1, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return types.LoopStatusPlaylist, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Looping cannot be turned off.
func (p *playerAdapter) SetLoopStatus(_ types.LoopStatus) error {
	return nil
}

func formatTrackID(carouselName string, index int) string {
	h := fnv.New64a()
	h.Write([]byte(carouselName))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x_%d", h.Sum64(), index)
}
