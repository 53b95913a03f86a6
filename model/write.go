package model

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Write emits the grid in the text maze format, one row per line.
func (g *Grid) Write(w io.Writer) error {
	buffered := bufio.NewWriter(w)
	for _, row := range g.Cells {
		for _, cell := range row {
			if err := buffered.WriteByte(byte(cell)); err != nil {
				return err
			}
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

// WriteFile writes the grid to filename in the text maze format.
func (g *Grid) WriteFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return g.Write(file)
}

// SolvedFilename derives the solved-maze artifact name from the input
// name: "maze1.txt" becomes "maze1_solved.txt".
func SolvedFilename(in string) string {
	dot := strings.LastIndex(in, ".")
	if dot < 0 {
		return in + "_solved"
	}
	return in[:dot] + "_solved" + in[dot:]
}
