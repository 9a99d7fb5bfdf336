// Package deck loads the cards shown by a carousel.
package deck

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is one card.
type Item struct {
	Title  string `yaml:"title" koanf:"title"`
	Body   string `yaml:"body" koanf:"body"`     // Markdown
	Author string `yaml:"author" koanf:"author"` // optional attribution line
	Media  string `yaml:"media" koanf:"media"`   // MPRIS bus name of the player showing this card's video
}

// HasMedia reports whether the card embeds a player.
func (i Item) HasMedia() bool {
	return strings.TrimSpace(i.Media) != ""
}

type file struct {
	Items []Item `yaml:"items"`
}

// Load reads a deck file.
func Load(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return Parse(data)
}

// Parse decodes deck YAML. A document that is a bare list of items is
// accepted as well as one with a top-level "items" key.
func Parse(data []byte) ([]Item, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err == nil && f.Items != nil {
		return normalize(f.Items), nil
	}

	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return normalize(items), nil
}

// MediaIDs returns the distinct media bus names in order of first use.
func MediaIDs(items []Item) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, it := range items {
		if !it.HasMedia() || seen[it.Media] {
			continue
		}
		seen[it.Media] = true
		ids = append(ids, it.Media)
	}
	return ids
}

func normalize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		it.Title = strings.TrimSpace(it.Title)
		it.Media = strings.TrimSpace(it.Media)
		it.Author = strings.TrimSpace(it.Author)
		if it.Title == "" && strings.TrimSpace(it.Body) == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}
