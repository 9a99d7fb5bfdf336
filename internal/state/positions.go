package state

import (
	"database/sql"
	"errors"
	"time"
)

// Position is the last saved index of a named carousel.
type Position struct {
	Name      string
	Index     int
	UpdatedAt time.Time
}

func getPosition(db *sql.DB, name string) (*Position, error) {
	row := db.QueryRow(`
		SELECT name, position, updated_at FROM carousel_positions WHERE name = ?
	`, name)

	var p Position
	var updatedAt int64
	err := row.Scan(&p.Name, &p.Index, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved position is valid on first run
	}
	if err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Unix(updatedAt, 0)
	return &p, nil
}

func listPositions(db *sql.DB) ([]Position, error) {
	rows, err := db.Query(`
		SELECT name, position, updated_at FROM carousel_positions ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		var p Position
		var updatedAt int64
		if err := rows.Scan(&p.Name, &p.Index, &updatedAt); err != nil {
			return nil, err
		}
		p.UpdatedAt = time.Unix(updatedAt, 0)
		out = append(out, p)
	}
	return out, rows.Err()
}

func savePositions(db *sql.DB, positions map[string]int, now time.Time) error {
	if len(positions) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback on error is intentional

	for name, index := range positions {
		_, err := tx.Exec(`
			INSERT INTO carousel_positions (name, position, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				position = excluded.position,
				updated_at = excluded.updated_at
		`, name, index, now.Unix())
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}
