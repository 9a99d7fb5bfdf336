package carousel

// Track is the strip of items the navigator moves.
type Track interface {
	// Len returns the current number of items.
	Len() int
	// Translate shifts the track horizontally to offset (zero or negative).
	Translate(offset int)
}

// Navigator owns the current index and applies the resulting offset.
type Navigator struct {
	track    Track
	metrics  Metrics
	index    int
	offset   int
	onChange func(index int)
}

// NewNavigator creates a navigator positioned on the first item.
// onChange, if set, is called whenever the index actually changes.
func NewNavigator(track Track, metrics Metrics, onChange func(index int)) *Navigator {
	return &Navigator{
		track:    track,
		metrics:  metrics,
		onChange: onChange,
	}
}

// Index returns the current index.
func (n *Navigator) Index() int {
	return n.index
}

// Offset returns the last translation applied to the track.
func (n *Navigator) Offset() int {
	return n.offset
}

// Len returns the number of items on the track.
func (n *Navigator) Len() int {
	return n.track.Len()
}

// Advance moves one step with wraparound: Next past the last item returns to
// the first, Prev before the first goes to the last. No-op on an empty track.
func (n *Navigator) Advance(dir Direction) {
	count := n.track.Len()
	if count == 0 {
		return
	}
	prev := n.index
	n.index = n.clamp(n.index, count)
	n.index = ((n.index+dir.delta())%count + count) % count
	n.apply(prev)
}

// SetIndex moves to i, clamped into [0, Len-1].
func (n *Navigator) SetIndex(i int) {
	prev := n.index
	n.index = i
	n.apply(prev)
}

// Relayout re-derives the offset after a resize or a content change.
func (n *Navigator) Relayout() {
	n.apply(n.index)
}

func (n *Navigator) apply(prev int) {
	n.index = n.clamp(n.index, n.track.Len())
	n.offset = -(n.index * StepSize(n.metrics))
	n.track.Translate(n.offset)
	if n.index != prev && n.onChange != nil {
		n.onChange(n.index)
	}
}

func (n *Navigator) clamp(i, count int) int {
	maxIndex := max(0, count-1)
	return min(max(i, 0), maxIndex)
}
