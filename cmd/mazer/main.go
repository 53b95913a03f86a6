package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/mazer/config"
	"github.com/zucenko/mazer/model"
	"github.com/zucenko/mazer/render"
	"github.com/zucenko/mazer/solver"
)

func main() {
	dfs := flag.Bool("dfs", false, "explore depth-first (stack frontier) instead of breadth-first")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mazer [-dfs] <mazefile>")
		os.Exit(1)
	}
	mazeFile := flag.Arg(0)
	cfg := config.Load()

	grid, err := model.Load(mazeFile)
	if err != nil {
		log.Fatalf("loading maze %s: %v", mazeFile, err)
	}
	engine, err := solver.New(grid)
	if err != nil {
		log.Fatalf("invalid maze %s: %v", mazeFile, err)
	}

	var frontier solver.Frontier = solver.NewQueueFrontier()
	if *dfs {
		frontier = solver.NewStackFrontier()
	}

	found := engine.Solve(frontier)
	if !found {
		log.Warnf("no path from start to target in %s", mazeFile)
	}
	fmt.Println(engine.Steps())

	opts := render.Options{
		CellWidth: cfg.CellWidth,
		Caption:   fmt.Sprintf("steps: %d", engine.Steps()),
	}
	if err := render.WritePNG(grid, pngFilename(mazeFile), opts); err != nil {
		log.Fatalf("writing image: %v", err)
	}
	if err := grid.WriteFile(model.SolvedFilename(mazeFile)); err != nil {
		log.Fatalf("writing solved maze: %v", err)
	}
}

func pngFilename(in string) string {
	if dot := strings.LastIndex(in, "."); dot >= 0 {
		return in[:dot] + ".png"
	}
	return in + ".png"
}
