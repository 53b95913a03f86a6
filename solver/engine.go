package solver

import (
	"errors"

	"github.com/zucenko/mazer/model"
)

// expandOrder is the fixed direction order for neighbor generation. It
// is the tie-break among equally eligible neighbors, so it decides
// which of several equal-length paths is found; changing it changes
// the reported path.
var expandOrder = [4]Move{Up, Left, Down, Right}

var (
	errNoStart  = errors.New("grid has no start position")
	errNoTarget = errors.New("grid has no target position")
)

// Engine owns one maze and drives the traversal over it with whatever
// frontier discipline it is handed. Nodes popped from the frontier are
// stored in a flat arena; parent links are indices into that arena, so
// path reconstruction walks indices and no node outlives the engine.
type Engine struct {
	grid  *model.Grid
	nodes []Node
	steps int
	path  []model.Position

	// OnExpand, when set, is called after every node removed from the
	// frontier, before the goal check, with the running step count.
	OnExpand func(n Node, step int)
}

// New validates the grid and returns an engine ready to solve it.
func New(g *model.Grid) (*Engine, error) {
	if g == nil || len(g.Cells) == 0 {
		return nil, model.ErrEmptyMaze
	}
	for _, row := range g.Cells {
		if len(row) != g.Cols {
			return nil, model.ErrRaggedRows
		}
	}
	if !g.InBounds(g.Start) || g.At(g.Start) != model.Start {
		return nil, errNoStart
	}
	if !g.InBounds(g.Target) || g.At(g.Target) != model.Target {
		return nil, errNoTarget
	}
	return &Engine{grid: g}, nil
}

// Solve explores the grid from the start cell until the target is
// popped or the frontier runs dry. It returns true when a path exists.
// Open cells are painted Explored as they are popped and the solution
// cells strictly between start and target are painted OnPath.
func (e *Engine) Solve(f Frontier) bool {
	e.nodes = e.nodes[:0]
	e.steps = 0
	e.path = nil

	f.Add(Node{Pos: e.grid.Start, State: e.grid.At(e.grid.Start), Move: None, parent: -1})

	for !f.IsEmpty() {
		e.steps++
		n := f.Remove()
		index := len(e.nodes)
		e.nodes = append(e.nodes, n)

		if e.grid.At(n.Pos) == model.Open {
			e.grid.Set(n.Pos, model.Explored)
		}
		if e.OnExpand != nil {
			e.OnExpand(n, e.steps)
		}
		if n.State == model.Target {
			e.applySolution(index)
			return true
		}
		for _, neighbor := range e.neighbors(n, index) {
			f.Add(neighbor)
		}
	}
	return false
}

// Steps is the number of nodes removed from the frontier by the last
// Solve call, the initial pop included.
func (e *Engine) Steps() int {
	return e.steps
}

// Path is the solution as positions from start to target inclusive,
// nil when the last Solve found none.
func (e *Engine) Path() []model.Position {
	return e.path
}

// neighbors builds nodes for the up-to-four adjacent cells that are in
// bounds and not walls, in expandOrder, each parented to arena index
// parent.
func (e *Engine) neighbors(n Node, parent int) []Node {
	result := make([]Node, 0, 4)
	for _, move := range expandOrder {
		dRow, dCol := move.delta()
		p := model.Position{Row: n.Pos.Row + dRow, Col: n.Pos.Col + dCol}
		if !e.grid.InBounds(p) {
			continue
		}
		if e.grid.At(p) == model.Wall {
			continue
		}
		result = append(result, Node{Pos: p, State: e.grid.At(p), Move: move, parent: parent})
	}
	return result
}

// applySolution walks parent indices from the goal node back to the
// root, records the start-to-target position sequence, and paints the
// positions strictly between the endpoints.
func (e *Engine) applySolution(goal int) {
	path := make([]model.Position, 0)
	for i := goal; i != -1; i = e.nodes[i].parent {
		path = append(path, e.nodes[i].Pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, p := range path[1 : len(path)-1] {
		e.grid.Set(p, model.OnPath)
	}
	e.path = path
}
