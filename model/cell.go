package model

// Cell is the state of a single grid position. The zero value is Dead, so a
// freshly allocated cell matrix is already an all-Dead grid.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// CellOf converts a boolean liveness flag into a Cell
func CellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}

func (c Cell) String() string {
	if c == Alive {
		return "Alive"
	}
	return "Dead"
}
