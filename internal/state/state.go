// Package state persists carousel positions across runs.
package state

import (
	"database/sql"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "marquee"
	dbFileName   = "marquee.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]int
}

// Open opens the database under $XDG_DATA_HOME/marquee.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens (and creates if needed) the database at path.
func OpenPath(dbPath string) (*Manager, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, pending: make(map[string]int)}, nil
}

// Close flushes pending positions and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.takePending()
	m.saveMu.Unlock()

	flushErr := savePositions(m.db, pending, time.Now())
	if err := m.db.Close(); err != nil {
		return err
	}
	if flushErr != nil {
		return fmt.Errorf("flush positions: %w", flushErr)
	}
	return nil
}

func (m *Manager) GetPosition(name string) (*Position, error) {
	return getPosition(m.db, name)
}

func (m *Manager) ListPositions() ([]Position, error) {
	return listPositions(m.db)
}

// SavePosition records the index of a carousel. Writes are debounced so a
// carousel advancing on every tick does not hit the disk each time.
func (m *Manager) SavePosition(name string, index int) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[name] = index

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.takePending()
		m.saveMu.Unlock()

		_ = savePositions(m.db, pending, time.Now())
	})
}

// takePending must be called with saveMu held.
func (m *Manager) takePending() map[string]int {
	if len(m.pending) == 0 {
		return nil
	}
	pending := maps.Clone(m.pending)
	clear(m.pending)
	return pending
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
