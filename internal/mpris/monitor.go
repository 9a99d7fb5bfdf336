//go:build linux

package mpris

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/llehouerou/marquee/internal/carousel"
)

const (
	objectPath        = dbus.ObjectPath("/org/mpris/MediaPlayer2")
	propertiesIface   = "org.freedesktop.DBus.Properties"
	propertiesChanged = propertiesIface + ".PropertiesChanged"
	busIface          = "org.freedesktop.DBus"
	nameOwnerChanged  = busIface + ".NameOwnerChanged"

	// queryTimeout bounds a PlaybackStatus read; a player that does not
	// answer in time counts as not playing.
	queryTimeout = 500 * time.Millisecond
)

// sessionBus is shared by every carousel for the life of the process.
var sessionBus = sync.OnceValues(func() (*dbus.Conn, error) {
	return dbus.ConnectSessionBus()
})

// Source subscribes carousels to MPRIS players on the session bus.
type Source struct {
	logger *slog.Logger
	bus    func() (*dbus.Conn, error)
}

// NewSource returns a Source using the shared session bus.
func NewSource(logger *slog.Logger) *Source {
	return &Source{logger: logger.With("component", "mpris"), bus: sessionBus}
}

// Connect implements carousel.PlayerSource.
func (s *Source) Connect(ctx context.Context, ids []string) (*carousel.PlayerFeed, error) {
	conn, err := s.bus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	names := make([]string, 0, len(ids))
	players := make([]carousel.Player, 0, len(ids))
	for _, id := range ids {
		name := BusName(id)
		if name == "" {
			continue
		}
		names = append(names, name)
		players = append(players, &player{name: name, obj: conn.Object(name, objectPath)})
	}
	if len(players) == 0 {
		return nil, errors.New("no players configured")
	}

	matches := [][]dbus.MatchOption{{
		dbus.WithMatchObjectPath(objectPath),
		dbus.WithMatchInterface(propertiesIface),
		dbus.WithMatchMember("PropertiesChanged"),
		dbus.WithMatchArg(0, playerIface),
	}}
	for _, name := range names {
		matches = append(matches, []dbus.MatchOption{
			dbus.WithMatchSender(busIface),
			dbus.WithMatchInterface(busIface),
			dbus.WithMatchMember("NameOwnerChanged"),
			dbus.WithMatchArg(0, name),
		})
	}
	removeMatches := func() {
		for _, m := range matches {
			_ = conn.RemoveMatchSignal(m...)
		}
	}
	for _, m := range matches {
		if err := conn.AddMatchSignal(m...); err != nil {
			removeMatches()
			return nil, fmt.Errorf("subscribe to player signals: %w", err)
		}
	}

	signals := make(chan *dbus.Signal, 16)
	conn.Signal(signals)

	events := make(chan carousel.PlayerEvent, 8)
	w := &watcher{
		conn:   conn,
		names:  names,
		owners: make(map[string]string),
		logger: s.logger,
	}
	w.resolveOwners(ctx)

	go func() {
		defer close(events)
		defer func() {
			conn.RemoveSignal(signals)
			removeMatches()
		}()
		w.forward(ctx, signals, events)
	}()

	s.logger.Debug("watching players", "players", names)
	return &carousel.PlayerFeed{Players: players, Events: events}, nil
}

// ListPlayers returns every MPRIS player currently on the session bus.
func ListPlayers(ctx context.Context) ([]PlayerInfo, error) {
	conn, err := sessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}

	var names []string
	if err := conn.BusObject().CallWithContext(ctx, busIface+".ListNames", 0).Store(&names); err != nil {
		return nil, fmt.Errorf("list bus names: %w", err)
	}

	var out []PlayerInfo
	for _, name := range names {
		if !strings.HasPrefix(name, busPrefix) {
			continue
		}
		p := &player{name: name, obj: conn.Object(name, objectPath)}
		info := PlayerInfo{BusName: name}
		info.State, info.Err = p.PlaybackState()
		if v, err := p.obj.GetProperty(rootIface + ".Identity"); err == nil {
			info.Identity, _ = v.Value().(string)
		}
		out = append(out, info)
	}
	return out, nil
}

type player struct {
	name string
	obj  dbus.BusObject
}

func (p *player) ID() string { return p.name }

func (p *player) PlaybackState() (carousel.PlaybackState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	var v dbus.Variant
	err := p.obj.CallWithContext(ctx, propertiesIface+".Get", 0, playerIface, "PlaybackStatus").Store(&v)
	if err != nil {
		return carousel.PlaybackUnknown, fmt.Errorf("query %s: %w", p.name, err)
	}
	status, ok := v.Value().(string)
	if !ok {
		return carousel.PlaybackUnknown, fmt.Errorf("query %s: unexpected status type %T", p.name, v.Value())
	}
	return ParseStatus(status), nil
}

// watcher turns PropertiesChanged signals from the watched players into
// player events. Signals carry the sender's unique name, so owners maps
// unique names back to the well-known names the carousel asked for. It is
// kept current from NameOwnerChanged, so players that start later are
// picked up without querying the bus per signal.
type watcher struct {
	conn   *dbus.Conn
	names  []string
	owners map[string]string
	logger *slog.Logger
}

func (w *watcher) forward(ctx context.Context, signals <-chan *dbus.Signal, events chan<- carousel.PlayerEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			ev, ok := w.event(sig)
			if !ok {
				continue
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *watcher) event(sig *dbus.Signal) (carousel.PlayerEvent, bool) {
	if sig == nil {
		return carousel.PlayerEvent{}, false
	}
	if sig.Name == nameOwnerChanged {
		w.ownerChanged(sig.Body)
		return carousel.PlayerEvent{}, false
	}
	if sig.Name != propertiesChanged || sig.Path != objectPath {
		return carousel.PlayerEvent{}, false
	}
	name, ok := w.owners[sig.Sender]
	if !ok {
		return carousel.PlayerEvent{}, false
	}
	state, ok := statusFromSignal(sig.Body)
	if !ok {
		return carousel.PlayerEvent{}, false
	}
	return carousel.PlayerEvent{PlayerID: name, State: state}, true
}

// ownerChanged applies a NameOwnerChanged body: (name, old owner, new owner).
func (w *watcher) ownerChanged(body []any) {
	if len(body) < 3 {
		return
	}
	name, _ := body[0].(string)
	if !slices.Contains(w.names, name) {
		return
	}
	if old, _ := body[1].(string); old != "" {
		delete(w.owners, old)
	}
	if owner, _ := body[2].(string); owner != "" {
		w.owners[owner] = name
	}
}

func (w *watcher) resolveOwners(ctx context.Context) {
	for _, name := range w.names {
		var owner string
		err := w.conn.BusObject().CallWithContext(ctx, busIface+".GetNameOwner", 0, name).Store(&owner)
		if err != nil {
			w.logger.Debug("player not on bus", "player", name, "error", err)
			continue
		}
		w.owners[owner] = name
	}
}

// statusFromSignal extracts PlaybackStatus from a PropertiesChanged body:
// (interface string, changed map[string]variant, invalidated []string).
func statusFromSignal(body []any) (carousel.PlaybackState, bool) {
	if len(body) < 2 {
		return carousel.PlaybackUnknown, false
	}
	if iface, _ := body[0].(string); iface != playerIface {
		return carousel.PlaybackUnknown, false
	}
	changed, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return carousel.PlaybackUnknown, false
	}
	v, ok := changed["PlaybackStatus"]
	if !ok {
		return carousel.PlaybackUnknown, false
	}
	status, ok := v.Value().(string)
	if !ok {
		return carousel.PlaybackUnknown, false
	}
	return ParseStatus(status), true
}
