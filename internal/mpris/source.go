package mpris

import "github.com/llehouerou/marquee/internal/carousel"

var _ carousel.PlayerSource = (*Source)(nil)
