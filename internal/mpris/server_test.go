//go:build linux

package mpris

import (
	"sync/atomic"
	"testing"

	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	next, prev int
}

func (f *fakeRemote) Next()     { f.next++ }
func (f *fakeRemote) Previous() { f.prev++ }

func newTestAdapter(st Status) (*playerAdapter, *fakeRemote) {
	remote := &fakeRemote{}
	status := &atomic.Pointer[Status]{}
	status.Store(&st)
	return &playerAdapter{remote: remote, status: status}, remote
}

func TestPlayerAdapter_Navigation(t *testing.T) {
	p, remote := newTestAdapter(Status{Len: 3})

	require.NoError(t, p.Next())
	require.NoError(t, p.Next())
	require.NoError(t, p.Previous())

	assert.Equal(t, 2, remote.next)
	assert.Equal(t, 1, remote.prev)
}

func TestPlayerAdapter_PlaybackStatus(t *testing.T) {
	tests := []struct {
		name string
		st   Status
		want types.PlaybackStatus
	}{
		{"empty carousel", Status{Len: 0, Playing: true}, types.PlaybackStatusStopped},
		{"advancing", Status{Len: 3, Playing: true}, types.PlaybackStatusPlaying},
		{"suspended", Status{Len: 3}, types.PlaybackStatusPaused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestAdapter(tt.st)
			got, err := p.PlaybackStatus()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	p, _ := newTestAdapter(Status{Carousel: "quotes", Title: "Second", Author: "Ada", Index: 1, Len: 3})

	meta, err := p.Metadata()
	require.NoError(t, err)

	assert.Equal(t, "Second", meta.Title)
	assert.Equal(t, "quotes", meta.Album)
	assert.Equal(t, []string{"Ada"}, meta.Artist)
	assert.Equal(t, 2, meta.TrackNumber)
	assert.Equal(t, formatTrackID("quotes", 1), string(meta.TrackId))
}

func TestPlayerAdapter_CanGo(t *testing.T) {
	single, _ := newTestAdapter(Status{Len: 1})
	many, _ := newTestAdapter(Status{Len: 2})

	ok, _ := single.CanGoNext()
	assert.False(t, ok)
	ok, _ = many.CanGoPrevious()
	assert.True(t, ok)

	loop, _ := many.LoopStatus()
	assert.Equal(t, types.LoopStatusPlaylist, loop)
}

func TestFormatTrackID_IsValidObjectPath(t *testing.T) {
	id := formatTrackID("my carousel", 4)

	assert.Regexp(t, `^/org/mpris/MediaPlayer2/Track/[0-9a-f]+_4$`, id)
	assert.NotEqual(t, id, formatTrackID("other", 4))
}
