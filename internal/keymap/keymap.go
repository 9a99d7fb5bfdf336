package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding maps keys to an action, with a description for help.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Binding contexts.
const (
	ContextGlobal   = "global"
	ContextCarousel = "carousel"
)

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "quit", ContextGlobal},
	{ActionFocusNext, []string{"tab"}, "next carousel", ContextGlobal},
	{ActionFocusPrev, []string{"shift+tab"}, "previous carousel", ContextGlobal},
	{ActionHelp, []string{"?"}, "toggle help", ContextGlobal},

	// Carousel
	{ActionPrev, []string{"left", "h"}, "previous card", ContextCarousel},
	{ActionNext, []string{"right", "l"}, "next card", ContextCarousel},
}

// Help adapts bindings to the bubbles help.KeyMap interface.
type Help struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelp builds the help key map for the given bindings. The short view
// keeps quit, help and the carousel bindings.
func NewHelp(bindings []Binding) Help {
	var h Help
	groups := map[string][]key.Binding{}
	var order []string
	for _, b := range bindings {
		kb := toKey(b)
		if _, ok := groups[b.Context]; !ok {
			order = append(order, b.Context)
		}
		groups[b.Context] = append(groups[b.Context], kb)
		if b.Context == ContextCarousel || b.Action == ActionHelp || b.Action == ActionQuit {
			h.short = append(h.short, kb)
		}
	}
	for _, ctx := range order {
		h.full = append(h.full, groups[ctx])
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h Help) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h Help) FullHelp() [][]key.Binding { return h.full }

func toKey(b Binding) key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(displayKeys(b.Keys), b.Description),
	)
}

var keySymbols = map[string]string{
	"left":      "←",
	"right":     "→",
	"shift+tab": "⇧tab",
}

func displayKeys(keys []string) string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if s, ok := keySymbols[k]; ok {
			k = s
		}
		out = append(out, k)
	}
	return strings.Join(out, "/")
}
