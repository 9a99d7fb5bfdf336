package carousel

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// fakeTrack implements Track and Metrics over a fixed layout.
type fakeTrack struct {
	items        int
	itemWidth    int
	gap          int
	viewport     int
	offset       int
	translations int
}

func newFakeTrack(items int) *fakeTrack {
	return &fakeTrack{items: items, itemWidth: 80, gap: 2, viewport: 80}
}

func (f *fakeTrack) Len() int { return f.items }

func (f *fakeTrack) Translate(offset int) {
	f.offset = offset
	f.translations++
}

func (f *fakeTrack) FirstItemWidth() (int, bool) {
	if f.items == 0 {
		return 0, false
	}
	return f.itemWidth, true
}

func (f *fakeTrack) Gap() int { return f.gap }

func (f *fakeTrack) ViewportWidth() int { return f.viewport }

// fakePlayer is a player handle whose state tests set directly.
type fakePlayer struct {
	id    string
	state PlaybackState
	err   error
}

func (p *fakePlayer) ID() string { return p.id }

func (p *fakePlayer) PlaybackState() (PlaybackState, error) {
	if p.err != nil {
		return PlaybackUnknown, p.err
	}
	return p.state, nil
}

// fakeSource hands out fakePlayers and an events channel tests write to.
type fakeSource struct {
	mu      sync.Mutex
	players map[string]*fakePlayer
	events  chan PlayerEvent
	ctx     context.Context
	calls   int
	err     error
}

func newFakeSource(ids ...string) *fakeSource {
	src := &fakeSource{
		players: make(map[string]*fakePlayer),
		events:  make(chan PlayerEvent, 8),
	}
	for _, id := range ids {
		src.players[id] = &fakePlayer{id: id, state: PlaybackStopped}
	}
	return src
}

func (f *fakeSource) Connect(ctx context.Context, ids []string) (*PlayerFeed, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.ctx = ctx
	if f.err != nil {
		return nil, f.err
	}
	players := make([]Player, 0, len(ids))
	for _, id := range ids {
		p, ok := f.players[id]
		if !ok {
			return nil, errors.New("unknown player " + id)
		}
		players = append(players, p)
	}
	return &PlayerFeed{Players: players, Events: f.events}, nil
}

// runCmd executes cmd in the background and delivers its message.
func runCmd(cmd tea.Cmd) <-chan tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	return ch
}
