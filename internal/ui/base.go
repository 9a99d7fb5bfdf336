// Package ui provides shared UI component plumbing.
package ui

import "github.com/llehouerou/marquee/internal/ui/layout"

// Base provides focus and placement for components drawn as a panel.
// Embed this in component models to get standard methods automatically.
type Base struct {
	panel   layout.Panel
	focused bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetPanel places the component in the window.
func (b *Base) SetPanel(p layout.Panel) {
	b.panel = p
}

// Panel returns the component placement.
func (b Base) Panel() layout.Panel {
	return b.panel
}

// Width returns the component width.
func (b Base) Width() int {
	return b.panel.Width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.panel.Height()
}
