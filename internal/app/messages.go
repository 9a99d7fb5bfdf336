package app

import "github.com/llehouerou/marquee/internal/carousel"

// RemoteMsg is a navigation request received over MPRIS, applied to the
// focused carousel.
type RemoteMsg struct {
	Direction carousel.Direction
}
