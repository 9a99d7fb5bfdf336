package carouselview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/marquee/internal/deck"
)

// ContentLoadedMsg is delivered when a carousel's deck file was read.
type ContentLoadedMsg struct {
	SliderID string
	Items    []deck.Item
	Err      error
}

// Target implements carousel.SliderMsg.
func (m ContentLoadedMsg) Target() string { return m.SliderID }

func loadDeck(id, path string) tea.Cmd {
	return func() tea.Msg {
		items, err := deck.Load(path)
		return ContentLoadedMsg{SliderID: id, Items: items, Err: err}
	}
}
