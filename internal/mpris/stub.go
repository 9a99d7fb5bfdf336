//go:build !linux

package mpris

import (
	"context"
	"errors"
	"log/slog"

	"github.com/llehouerou/marquee/internal/carousel"
)

var errUnsupported = errors.New("mpris is only available on linux")

// Source always fails to connect on non-Linux platforms.
type Source struct{}

// NewSource returns a Source that never connects.
func NewSource(_ *slog.Logger) *Source {
	return &Source{}
}

// Connect implements carousel.PlayerSource.
func (s *Source) Connect(_ context.Context, _ []string) (*carousel.PlayerFeed, error) {
	return nil, errUnsupported
}

// ListPlayers is unsupported on non-Linux platforms.
func ListPlayers(_ context.Context) ([]PlayerInfo, error) {
	return nil, errUnsupported
}

// Server is a no-op on non-Linux platforms.
type Server struct{}

// NewServer returns a no-op server on non-Linux platforms.
func NewServer(_ Remote, _ *slog.Logger) *Server {
	return &Server{}
}

// Start is a no-op on non-Linux platforms.
func (s *Server) Start() {}

// Publish is a no-op on non-Linux platforms.
func (s *Server) Publish(_ Status) {}

// Close is a no-op on non-Linux platforms.
func (s *Server) Close() error {
	return nil
}
