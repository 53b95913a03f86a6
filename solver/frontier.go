package solver

import (
	"github.com/zucenko/mazer/model"
)

// Frontier is the ordered working set of nodes awaiting exploration.
// The removal discipline is the only thing that differs between
// implementations; it decides whether the search behaves depth-first
// (LIFO) or breadth-first (FIFO).
type Frontier interface {
	// Add inserts n into the pending set unless a node with the same
	// position is already pending or explored. Idempotent.
	Add(n Node)
	// IsEmpty reports whether the pending set is empty.
	IsEmpty() bool
	// Remove extracts one pending node per the discipline, moves it
	// into the explored set and returns it. Calling Remove on an empty
	// frontier is a programming error and panics; check IsEmpty first.
	Remove() Node
}

// frontier carries the bookkeeping shared by both disciplines: the
// pending sequence and the two membership sets. A position lives in at
// most one of pending/explored at any time.
type frontier struct {
	pending   []Node
	inPending map[model.Position]struct{}
	explored  map[model.Position]struct{}
}

func newFrontier() frontier {
	return frontier{
		pending:   make([]Node, 0),
		inPending: make(map[model.Position]struct{}),
		explored:  make(map[model.Position]struct{}),
	}
}

func (f *frontier) Add(n Node) {
	if _, pending := f.inPending[n.Pos]; pending {
		return
	}
	if _, explored := f.explored[n.Pos]; explored {
		return
	}
	f.pending = append(f.pending, n)
	f.inPending[n.Pos] = struct{}{}
}

func (f *frontier) IsEmpty() bool {
	return len(f.pending) == 0
}

// Len is the number of pending nodes.
func (f *frontier) Len() int {
	return len(f.pending)
}

// WasExplored reports whether a node at p has been removed already.
func (f *frontier) WasExplored(p model.Position) bool {
	_, ok := f.explored[p]
	return ok
}

// ExploredCount is the number of nodes removed so far.
func (f *frontier) ExploredCount() int {
	return len(f.explored)
}

func (f *frontier) markExplored(n Node) {
	delete(f.inPending, n.Pos)
	f.explored[n.Pos] = struct{}{}
}

// StackFrontier removes the most recently added node first (LIFO),
// giving a depth-first exploration order.
type StackFrontier struct {
	frontier
}

func NewStackFrontier() *StackFrontier {
	return &StackFrontier{frontier: newFrontier()}
}

func (f *StackFrontier) Remove() Node {
	if len(f.pending) == 0 {
		panic("solver: Remove on empty frontier")
	}
	n := f.pending[len(f.pending)-1]
	f.pending = f.pending[:len(f.pending)-1]
	f.markExplored(n)
	return n
}

// QueueFrontier removes the earliest added node first (FIFO), giving a
// breadth-first exploration order and therefore shortest paths on an
// unweighted grid.
type QueueFrontier struct {
	frontier
}

func NewQueueFrontier() *QueueFrontier {
	return &QueueFrontier{frontier: newFrontier()}
}

func (f *QueueFrontier) Remove() Node {
	if len(f.pending) == 0 {
		panic("solver: Remove on empty frontier")
	}
	n := f.pending[0]
	f.pending = f.pending[1:]
	f.markExplored(n)
	return n
}
