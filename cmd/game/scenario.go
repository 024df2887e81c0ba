package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/1siamBot/feg-tactics/engine/maplib"
)

// config is the game's command line configuration
type config struct {
	Resources string
	Map       string
	Width     int
	Height    int
	Budget    int
	CPU       bool
	AIRule    string
	Record    string
	Play      string
	Debug     bool
}

// loadScenario loads the terrain and unit starts. Text maps come from the
// resource directory and get default starts; JSON bundles carry their own.
func loadScenario(cfg config) (*maplib.Grid, []maplib.StartPos, error) {
	path := cfg.Map
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Resources, path)
	}

	var (
		g      *maplib.Grid
		starts []maplib.StartPos
		err    error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		mf, err := maplib.LoadJSON(path)
		if err != nil {
			return nil, nil, err
		}
		if g, err = mf.Grid(path); err != nil {
			return nil, nil, err
		}
		starts = mf.Starts
	} else {
		dir, name := filepath.Split(path)
		if g, err = maplib.LoadTerrain(dir, name, cfg.Width, cfg.Height); err != nil {
			return nil, nil, err
		}
	}

	if len(starts) == 0 {
		if starts, err = defaultStarts(g); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	for i := range starts {
		if starts[i].Budget == nil {
			starts[i] = starts[i].WithBudget(cfg.Budget)
		}
	}
	return g, starts, nil
}

// defaultStarts places one unit per team: the player on the first open
// cell from the top left, the CPU on the last one
func defaultStarts(g *maplib.Grid) ([]maplib.StartPos, error) {
	var open []maplib.Coord
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if c := (maplib.Coord{X: x, Y: y}); g.Passable(c) {
				open = append(open, c)
			}
		}
	}
	if len(open) < 2 {
		return nil, fmt.Errorf("map has %d open cells, need 2", len(open))
	}
	first, last := open[0], open[len(open)-1]
	return []maplib.StartPos{
		{Name: "Konrad", Team: 0, X: first.X, Y: first.Y},
		{Name: "Raider", Team: 1, X: last.X, Y: last.Y},
	}, nil
}
