package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrEmptyMaze  = errors.New("maze is empty")
	ErrRaggedRows = errors.New("maze rows must have the same number of cells")
)

// Load reads and validates a maze file.
func Load(filename string) (*Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Read parses a text maze, one row per line, and validates it: the grid
// must be non-empty and rectangular, contain exactly one start and one
// target marker, and no characters outside the cell-state set.
func Read(reader io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)

	cells := make([][]CellState, 0)
	starts := 0
	targets := 0
	var start, target Position

	for scanner.Scan() {
		line := scanner.Text()
		row := make([]CellState, 0, len(line))
		// byte-wise on purpose: every legal cell is one ASCII byte, so
		// any multi-byte rune lands in the default case instead of
		// being truncated into a marker
		for col := 0; col < len(line); col++ {
			state := CellState(line[col])
			switch state {
			case Start:
				starts++
				start = Position{Row: len(cells), Col: col}
			case Target:
				targets++
				target = Position{Row: len(cells), Col: col}
			case Open, Wall, Explored, OnPath:
			default:
				return nil, fmt.Errorf("unknown cell %q at row %d col %d", line[col], len(cells), col)
			}
			row = append(row, state)
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyMaze
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrRaggedRows
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("maze must contain exactly one start cell, found %d", starts)
	}
	if targets != 1 {
		return nil, fmt.Errorf("maze must contain exactly one target cell, found %d", targets)
	}

	return &Grid{
		Cells:  cells,
		Start:  start,
		Target: target,
		Rows:   len(cells),
		Cols:   cols,
	}, nil
}
