package keymap

import "slices"

// Resolver maps key strings to actions. Carousel bindings only resolve
// while a carousel has focus; global ones always do.
type Resolver struct {
	global   map[string]Action
	carousel map[string]Action
}

// NewResolver creates a resolver from bindings. A key bound twice in the
// same context keeps its last binding; see Conflicts.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		global:   make(map[string]Action),
		carousel: make(map[string]Action),
	}
	for _, b := range bindings {
		table := r.global
		if b.Context == ContextCarousel {
			table = r.carousel
		}
		for _, key := range b.Keys {
			table[key] = b.Action
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
// focused tells whether a carousel can receive carousel actions.
func (r *Resolver) Resolve(key string, focused bool) Action {
	if a, ok := r.global[key]; ok {
		return a
	}
	if focused {
		return r.carousel[key]
	}
	return ""
}

// Conflicts returns the keys bound to more than one action, sorted.
// Global bindings shadow carousel ones, so the contexts share one key space.
func Conflicts(bindings []Binding) []string {
	owner := make(map[string]Action)
	var conflicts []string
	for _, b := range bindings {
		for _, key := range b.Keys {
			prev, ok := owner[key]
			switch {
			case !ok:
				owner[key] = b.Action
			case prev != b.Action && !slices.Contains(conflicts, key):
				conflicts = append(conflicts, key)
			}
		}
	}
	slices.Sort(conflicts)
	return conflicts
}
