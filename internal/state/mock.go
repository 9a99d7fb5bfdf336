package state

import (
	"slices"
	"strings"
	"sync"
	"time"
)

// Mock is a test double for Manager.
type Mock struct {
	mu        sync.Mutex
	positions map[string]int
	saves     int
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{positions: make(map[string]int)}
}

func (m *Mock) GetPosition(name string) (*Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, ok := m.positions[name]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &Position{Name: name, Index: idx, UpdatedAt: time.Now()}, nil
}

func (m *Mock) ListPositions() ([]Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Position, 0, len(m.positions))
	for name, idx := range m.positions {
		out = append(out, Position{Name: name, Index: idx})
	}
	slices.SortFunc(out, func(a, b Position) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (m *Mock) SavePosition(name string, index int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions[name] = index
	m.saves++
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Saves returns how many times SavePosition was called.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

var _ Interface = (*Mock)(nil)
