// Package layout provides pure functions for UI dimension calculations.
package layout

const (
	// BorderWidth is the width of one side of a panel border.
	BorderWidth = 1

	// PanelChrome is the vertical space a carousel panel uses around its
	// viewport: top and bottom borders, the header, controls and status rows.
	PanelChrome = 5

	// HeaderHeight is the height of the application title bar.
	HeaderHeight = 1
)

// ContentHeight returns the rows left for carousel panels once the title bar
// and the help footer are drawn.
func ContentHeight(windowHeight, helpHeight int) int {
	return max(windowHeight-HeaderHeight-helpHeight, 0)
}

// Panel is a carousel panel placed in the window. X and Y are the
// coordinates of its top-left border corner.
type Panel struct {
	X, Y           int
	Width          int
	ViewportHeight int
}

// Height returns the total panel height including borders.
func (p Panel) Height() int {
	return p.ViewportHeight + PanelChrome
}

// InnerWidth returns the width inside the borders, which is also the width
// of one card.
func (p Panel) InnerWidth() int {
	return max(p.Width-2*BorderWidth, 0)
}

// Contains reports whether (x, y) falls on the panel, borders included.
func (p Panel) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height()
}

// ViewportTop returns the first row of the card viewport.
func (p Panel) ViewportTop() int {
	return p.Y + BorderWidth + 1
}

// InViewport reports whether (x, y) falls on the card viewport.
func (p Panel) InViewport(x, y int) bool {
	top := p.ViewportTop()
	return y >= top && y < top+p.ViewportHeight &&
		x >= p.X+BorderWidth && x < p.X+BorderWidth+p.InnerWidth()
}

// ControlsRow returns the row holding the prev/next controls.
func (p Panel) ControlsRow() int {
	return p.ViewportTop() + p.ViewportHeight
}

// StatusRow returns the row holding the status line.
func (p Panel) StatusRow() int {
	return p.ControlsRow() + 1
}

// Stack places full-width panels top to bottom starting at row top.
func Stack(top, width int, viewportHeights []int) []Panel {
	panels := make([]Panel, len(viewportHeights))
	y := top
	for i, vh := range viewportHeights {
		panels[i] = Panel{X: 0, Y: y, Width: width, ViewportHeight: vh}
		y += panels[i].Height()
	}
	return panels
}

// Fit returns how many of the stacked panels are fully visible within
// height rows starting at top. At least one panel is always reported when
// there are any, so a tiny terminal still shows the focused carousel.
func Fit(panels []Panel, top, height int) int {
	n := 0
	for _, p := range panels {
		if p.Y+p.Height() > top+height {
			break
		}
		n++
	}
	if n == 0 && len(panels) > 0 {
		return 1
	}
	return n
}
