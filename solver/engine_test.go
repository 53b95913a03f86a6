package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zucenko/mazer/model"
)

func mustGrid(t *testing.T, maze string) *model.Grid {
	t.Helper()
	grid, err := model.Read(strings.NewReader(maze))
	if err != nil {
		t.Fatalf("parsing maze: %v", err)
	}
	return grid
}

func mustEngine(t *testing.T, maze string) *Engine {
	t.Helper()
	engine, err := New(mustGrid(t, maze))
	if err != nil {
		t.Fatalf("building engine: %v", err)
	}
	return engine
}

// countingFrontier counts Remove calls to check them against Steps.
type countingFrontier struct {
	Frontier
	removes int
}

func (c *countingFrontier) Remove() Node {
	c.removes++
	return c.Frontier.Remove()
}

const aroundTheWall = "A# \n # \n  B"

func TestSolveAroundWall(t *testing.T) {
	engine := mustEngine(t, aroundTheWall)
	assert.True(t, engine.Solve(NewQueueFrontier()))

	path := engine.Path()
	assert.Len(t, path, 5, "4 moves around the wall column")
	assert.True(t, engine.Steps() <= 9, "steps=%d", engine.Steps())
}

func TestSolveAdjacentStartAndTarget(t *testing.T) {
	engine := mustEngine(t, "AB")
	assert.True(t, engine.Solve(NewQueueFrontier()))
	assert.Len(t, engine.Path(), 2)
	assert.Equal(t, 2, engine.Steps())
}

func TestSolveUnreachableTarget(t *testing.T) {
	engine := mustEngine(t, "A # \n  #B")
	frontier := NewQueueFrontier()
	assert.False(t, engine.Solve(frontier))
	assert.Nil(t, engine.Path())

	// every cell reachable from the start was explored, nothing else
	reachable := []model.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	for _, p := range reachable {
		assert.True(t, frontier.WasExplored(p), "expected %v explored", p)
	}
	assert.Equal(t, len(reachable), frontier.ExploredCount())
}

func TestSolveTieBreakIsDeterministic(t *testing.T) {
	// 2x2 open grid has two equally short paths; the fixed direction
	// order (up, left, down, right) must pick the same one every run.
	want := []model.Position{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	for i := 0; i < 5; i++ {
		engine := mustEngine(t, "A \n B")
		assert.True(t, engine.Solve(NewQueueFrontier()))
		assert.Equal(t, want, engine.Path())
	}
}

func TestQueueFrontierFindsShortestPath(t *testing.T) {
	// direct route along the top is 8 moves; the detour through the
	// gaps is longer
	maze := "A       B\n ####### \n         "
	engine := mustEngine(t, maze)
	assert.True(t, engine.Solve(NewQueueFrontier()))
	assert.Len(t, engine.Path(), 9, "8 moves straight across")
}

func TestStackFrontierFindsAPath(t *testing.T) {
	engine := mustEngine(t, aroundTheWall)
	assert.True(t, engine.Solve(NewStackFrontier()))

	path := engine.Path()
	grid := engine.grid
	assert.Equal(t, grid.Start, path[0])
	assert.Equal(t, grid.Target, path[len(path)-1])
}

func TestStepsEqualRemoveCalls(t *testing.T) {
	for name, frontier := range map[string]Frontier{
		"queue": NewQueueFrontier(),
		"stack": NewStackFrontier(),
	} {
		t.Run(name, func(t *testing.T) {
			engine := mustEngine(t, aroundTheWall)
			counting := &countingFrontier{Frontier: frontier}
			engine.Solve(counting)
			assert.Equal(t, counting.removes, engine.Steps())
		})
	}
}

func TestSolveTerminatesWithinGridSize(t *testing.T) {
	mazes := []string{
		aroundTheWall,
		"A # \n  #B",
		"A       B\n ####### \n         ",
		"A \n B",
	}
	for _, maze := range mazes {
		for _, solve := range []func(*Engine) bool{
			func(e *Engine) bool { return e.Solve(NewQueueFrontier()) },
			func(e *Engine) bool { return e.Solve(NewStackFrontier()) },
		} {
			engine := mustEngine(t, maze)
			solve(engine)
			assert.True(t, engine.Steps() <= engine.grid.Rows*engine.grid.Cols,
				"steps=%d exceeds cell count for %q", engine.Steps(), maze)
		}
	}
}

func TestPathRoundTrip(t *testing.T) {
	engine := mustEngine(t, aroundTheWall)
	grid := engine.grid
	assert.True(t, engine.Solve(NewQueueFrontier()))

	path := engine.Path()
	assert.Equal(t, grid.Start, path[0])
	assert.Equal(t, grid.Target, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		dRow := path[i].Row - path[i-1].Row
		dCol := path[i].Col - path[i-1].Col
		assert.Equal(t, 1, dRow*dRow+dCol*dCol, "steps %v -> %v must be 4-adjacent", path[i-1], path[i])
		assert.NotEqual(t, model.Wall, grid.At(path[i]))
	}
}

func TestGridMarkers(t *testing.T) {
	engine := mustEngine(t, aroundTheWall)
	grid := engine.grid
	assert.True(t, engine.Solve(NewQueueFrontier()))

	t.Run("start and target survive", func(t *testing.T) {
		assert.Equal(t, model.Start, grid.At(grid.Start))
		assert.Equal(t, model.Target, grid.At(grid.Target))
	})

	t.Run("path painted strictly between endpoints", func(t *testing.T) {
		path := engine.Path()
		for _, p := range path[1 : len(path)-1] {
			assert.Equal(t, model.OnPath, grid.At(p), "cell %v", p)
		}
	})

	t.Run("walls untouched", func(t *testing.T) {
		assert.Equal(t, model.Wall, grid.At(model.Position{Row: 0, Col: 1}))
		assert.Equal(t, model.Wall, grid.At(model.Position{Row: 1, Col: 1}))
	})
}

func TestOnExpandHook(t *testing.T) {
	engine := mustEngine(t, aroundTheWall)
	var steps []int
	engine.OnExpand = func(n Node, step int) {
		steps = append(steps, step)
	}
	assert.True(t, engine.Solve(NewQueueFrontier()))
	assert.Len(t, steps, engine.Steps())
	for i, s := range steps {
		assert.Equal(t, i+1, s)
	}
}

func TestNewRejectsBrokenGrids(t *testing.T) {
	t.Run("nil grid", func(t *testing.T) {
		_, err := New(nil)
		assert.Error(t, err)
	})

	t.Run("start marker overwritten", func(t *testing.T) {
		grid := mustGrid(t, "A \n B")
		grid.Set(grid.Start, model.Open)
		_, err := New(grid)
		assert.Error(t, err)
	})
}
