package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/deck"
)

const appName = "marquee"

type Config struct {
	LogFile  string `koanf:"log_file"`  // default: $XDG_STATE_HOME/marquee/marquee.log
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn", "error" (default: "info")
	Icons    string `koanf:"icons"`     // "nerd", "unicode", or "none" (default: "unicode")

	// Transient suspension after a manual interaction (default: 2500ms)
	UserPauseDuration time.Duration `koanf:"user_pause"`

	// Horizontal drag distance, in columns, that turns a drag into navigation (default: 60)
	DragThresholdCols int `koanf:"drag_threshold"`

	// Expose the focused carousel over MPRIS (default: true)
	Remote *bool `koanf:"remote"`

	Carousels []CarouselConfig `koanf:"carousel"`
}

// CarouselConfig describes one carousel. Track, Controls and Viewport are
// required; a carousel missing one of them is skipped.
type CarouselConfig struct {
	Name     string          `koanf:"name"`
	Variant  string          `koanf:"variant"`  // "video" for media carousels
	Interval time.Duration   `koanf:"interval"` // default: 5s for video, 4.2s otherwise
	Gap      *int            `koanf:"gap"`      // columns between cards (default: 2)
	Track    *TrackConfig    `koanf:"track"`
	Controls ControlsConfig  `koanf:"controls"`
	Viewport *ViewportConfig `koanf:"viewport"`
}

// TrackConfig holds the cards: inline items and/or a YAML deck file loaded
// after startup.
type TrackConfig struct {
	Deck  string      `koanf:"deck"`
	Items []deck.Item `koanf:"items"`
}

// ControlsConfig holds the labels of the previous/next controls.
type ControlsConfig struct {
	Prev string `koanf:"prev"`
	Next string `koanf:"next"`
}

// ViewportConfig sizes the visible card area.
type ViewportConfig struct {
	Height int `koanf:"height"` // card rows (default: 8)
}

// Load reads the default config files, then extra (highest priority).
func Load(extra ...string) (*Config, error) {
	return loadFrom(append(getConfigPaths(), extra...))
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}
	for i := range cfg.Carousels {
		if t := cfg.Carousels[i].Track; t != nil && t.Deck != "" {
			t.Deck = expandPath(t.Deck)
		}
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/marquee/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogPath returns the log file path with the default applied.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// UserPause returns the transient suspension duration with the default applied.
func (c *Config) UserPause() time.Duration {
	if c.UserPauseDuration <= 0 {
		return carousel.DefaultUserPause
	}
	return c.UserPauseDuration
}

// DragThreshold returns the drag threshold with the default applied.
func (c *Config) DragThreshold() int {
	if c.DragThresholdCols <= 0 {
		return carousel.DefaultDragThreshold
	}
	return c.DragThresholdCols
}

// RemoteEnabled returns true unless the MPRIS server was disabled.
func (c *Config) RemoteEnabled() bool {
	return c.Remote == nil || *c.Remote
}
