package solver

import (
	"github.com/zucenko/mazer/model"
)

// Move is the direction that produced a node from its parent.
type Move int

const (
	None Move = iota
	Up
	Left
	Down
	Right
)

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	}
	return "none"
}

func (m Move) delta() (dRow, dCol int) {
	switch m {
	case Up:
		return -1, 0
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Right:
		return 0, 1
	}
	return 0, 0
}

// Node is one discovered grid position: where it is, the cell state
// observed when it was created, the move that reached it, and the arena
// index of its parent (-1 for the root). Nodes are immutable after
// creation. Identity for frontier deduplication is the position alone;
// state, move and parent are deliberately ignored.
type Node struct {
	Pos    model.Position
	State  model.CellState
	Move   Move
	parent int
}
