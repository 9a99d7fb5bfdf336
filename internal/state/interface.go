package state

// Interface is what carousel panels need from the position store.
// Manager backs it with SQLite; Mock keeps positions in memory.
type Interface interface {
	GetPosition(name string) (*Position, error)
	ListPositions() ([]Position, error)
	SavePosition(name string, index int)
	Close() error
}

var _ Interface = (*Manager)(nil)
