package ui

import (
	"testing"

	"github.com/llehouerou/marquee/internal/ui/layout"
)

func TestBase(t *testing.T) {
	var b Base
	b.SetFocused(true)
	b.SetPanel(layout.Panel{Y: 3, Width: 60, ViewportHeight: 4})

	if !b.IsFocused() {
		t.Error("IsFocused() = false, want true")
	}
	if b.Width() != 60 {
		t.Errorf("Width() = %d, want 60", b.Width())
	}
	if b.Height() != 4+layout.PanelChrome {
		t.Errorf("Height() = %d, want %d", b.Height(), 4+layout.PanelChrome)
	}
	if b.Panel().Y != 3 {
		t.Errorf("Panel().Y = %d, want 3", b.Panel().Y)
	}
}
