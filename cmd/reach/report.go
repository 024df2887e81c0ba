package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/pathfind"
)

// parseCoord reads "x,y"
func parseCoord(s string) (maplib.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return maplib.Coord{}, fmt.Errorf("coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return maplib.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return maplib.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return maplib.Coord{X: x, Y: y}, nil
}

// cellGlyph is how a cell shows in the report map: @ source, # wall,
// B boundary, * reachable, s unreachable sand, . unreachable open
func cellGlyph(g *maplib.Grid, r *pathfind.Reach, c maplib.Coord) byte {
	switch {
	case c == r.Source:
		return '@'
	case g.At(c) == maplib.TerrainWall:
		return '#'
	case r.Boundary.Has(c):
		return 'B'
	case r.Has(c):
		return '*'
	case g.At(c) == maplib.TerrainSand:
		return 's'
	default:
		return '.'
	}
}

func formatPath(path []maplib.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return strings.Join(parts, " ")
}

// writeReport prints the reach of src on g, and the route to dest if given
func writeReport(w io.Writer, g *maplib.Grid, src maplib.Coord, budget int, dest *maplib.Coord) error {
	r := pathfind.Explore(src, g, budget)
	var sb strings.Builder

	fmt.Fprintf(&sb, "reach from (%d,%d) with budget %d: %d cells\n", src.X, src.Y, budget, r.Reachable.Size())
	for y := 0; y < g.Height; y++ {
		row := make([]byte, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = cellGlyph(g, r, maplib.Coord{X: x, Y: y})
		}
		sb.Write(row)
		sb.WriteByte('\n')
	}

	sb.WriteString("halo:\n")
	for _, bc := range r.Halo(g.Width, g.Height) {
		dirs := make([]string, len(bc.Dirs))
		for i, d := range bc.Dirs {
			dirs[i] = d.String()
		}
		fmt.Fprintf(&sb, "  (%d,%d) %s\n", bc.Coord.X, bc.Coord.Y, strings.Join(dirs, " "))
	}

	if dest != nil {
		if cost, ok := r.CostTo(*dest); ok {
			fmt.Fprintf(&sb, "to (%d,%d): cost %v\n", dest.X, dest.Y, cost)
			fmt.Fprintf(&sb, "  path  %s\n", formatPath(r.PathTo(*dest)))
			fmt.Fprintf(&sb, "  legs  %s\n", formatPath(r.ConsolidatedPathTo(*dest)))
		} else if _, cost, ok := pathfind.FindPath(g, src, *dest); ok {
			fmt.Fprintf(&sb, "to (%d,%d): out of reach, needs %v\n", dest.X, dest.Y, cost)
		} else {
			fmt.Fprintf(&sb, "to (%d,%d): unreachable\n", dest.X, dest.Y)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
