package model

// CellState is the content of one grid cell. Values double as the
// characters of the text maze format.
type CellState byte

const (
	Open     CellState = ' '
	Wall     CellState = '#'
	Start    CellState = 'A'
	Target   CellState = 'B'
	Explored CellState = '/'
	OnPath   CellState = '*'
)

// Position addresses one cell by row and column, origin top-left.
type Position struct {
	Row, Col int
}

// Grid is the maze: a rectangular matrix of cell states plus the start
// and target positions located at load time. The solver paints Explored
// and OnPath markers into it in place; Start, Target and Wall cells are
// never overwritten.
type Grid struct {
	Cells  [][]CellState
	Start  Position
	Target Position
	Rows   int
	Cols   int
}

func (g *Grid) At(p Position) CellState {
	return g.Cells[p.Row][p.Col]
}

func (g *Grid) Set(p Position, s CellState) {
	g.Cells[p.Row][p.Col] = s
}

// InBounds reports whether p addresses a cell of the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}
