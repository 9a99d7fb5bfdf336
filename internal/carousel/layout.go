package carousel

// Metrics exposes the current layout of a carousel.
// Values are read fresh on every call; item width follows the viewport size.
type Metrics interface {
	// FirstItemWidth returns the width of the first item, ok is false when
	// the track is empty.
	FirstItemWidth() (width int, ok bool)
	// Gap returns the spacing between two adjacent items.
	Gap() int
	// ViewportWidth returns the visible width of the carousel.
	ViewportWidth() int
}

// StepSize returns the distance between the starts of two adjacent items.
// With no items it falls back to the viewport width so offsets stay defined.
func StepSize(m Metrics) int {
	w, ok := m.FirstItemWidth()
	if !ok {
		return m.ViewportWidth()
	}
	return w + m.Gap()
}
