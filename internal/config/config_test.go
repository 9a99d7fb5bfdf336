//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/marquee/internal/carousel"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/decks",
			expected: filepath.Join(home, "decks"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/decks/video/testimonials.yaml",
			expected: filepath.Join(home, "decks", "video", "testimonials.yaml"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/decks",
			expected: "/srv/decks",
		},
		{
			name:     "relative path unchanged",
			input:    "decks/quotes.yaml",
			expected: "decks/quotes.yaml",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const sampleConfig = `
log_level = "debug"
icons = "nerd"
user_pause = "3s"
drag_threshold = 40
remote = false

[[carousel]]
name = "testimonials"
variant = "video"
gap = 0
[carousel.track]
deck = "/srv/decks/video.yaml"
[[carousel.track.items]]
title = "Welcome"
body = "Hello **there**"
media = "org.mpris.MediaPlayer2.mpv"
[carousel.controls]
prev = "‹"
next = "›"
[carousel.viewport]
height = 6

[[carousel]]
name = "quotes"
interval = "7s"
[carousel.track]
[[carousel.track.items]]
title = "Quote"
[carousel.controls]
prev = "<"
next = ">"
[carousel.viewport]
height = 0

[[carousel]]
name = "no-controls"
[carousel.track]
deck = "x.yaml"
[carousel.viewport]
height = 4
`

func TestLoad_DecodesCarousels(t *testing.T) {
	cfg, err := loadFrom([]string{writeConfig(t, sampleConfig)})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "nerd", cfg.Icons)
	assert.Equal(t, 3*time.Second, cfg.UserPause())
	assert.Equal(t, 40, cfg.DragThreshold())
	assert.False(t, cfg.RemoteEnabled())
	require.Len(t, cfg.Carousels, 3)

	first := cfg.Carousels[0]
	require.NotNil(t, first.Track)
	assert.Equal(t, "/srv/decks/video.yaml", first.Track.Deck)
	require.Len(t, first.Track.Items, 1)
	assert.Equal(t, "org.mpris.MediaPlayer2.mpv", first.Track.Items[0].Media)
	assert.Equal(t, 7*time.Second, cfg.Carousels[1].Interval)
}

func TestLoad_LaterFilesWin(t *testing.T) {
	base := writeConfig(t, "log_level = \"warn\"\ndrag_threshold = 10\n")
	override := writeConfig(t, "log_level = \"error\"\n")

	cfg, err := loadFrom([]string{base, filepath.Join(t.TempDir(), "missing.toml"), override})
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, 10, cfg.DragThreshold())
}

func TestLoad_InvalidTOML(t *testing.T) {
	_, err := loadFrom([]string{writeConfig(t, "log_level = \n")})

	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, carousel.DefaultUserPause, cfg.UserPause())
	assert.Equal(t, carousel.DefaultDragThreshold, cfg.DragThreshold())
	assert.True(t, cfg.RemoteEnabled())

	path, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "marquee.log", filepath.Base(path))
}
