package carousel

// DragSession tracks one pointer press until its release.
type DragSession struct {
	startX int
	active bool
}

// Begin opens a session at x, replacing any open one.
func (d *DragSession) Begin(x int) {
	d.startX = x
	d.active = true
}

// Active reports whether a session is open.
func (d *DragSession) Active() bool {
	return d.active
}

// End closes the session at x. ok is false when no session was open.
// A displacement beyond threshold to the right means Prev, to the left Next.
func (d *DragSession) End(x, threshold int) (dir Direction, navigate, ok bool) {
	if !d.active {
		return Next, false, false
	}
	d.active = false

	dx := x - d.startX
	switch {
	case dx > threshold:
		return Prev, true, true
	case dx < -threshold:
		return Next, true, true
	default:
		return Next, false, true
	}
}

// Discard drops an open session without producing anything.
func (d *DragSession) Discard() {
	d.active = false
}
