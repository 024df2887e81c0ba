package pathfind

import "github.com/1siamBot/feg-tactics/engine/maplib"

// BoundaryCell is a boundary cell with the sides that face unreachable
// territory or the map edge.
type BoundaryCell struct {
	Coord maplib.Coord
	Dirs  []Direction
}

// Open reports whether the side in direction d faces outward
func (b BoundaryCell) Open(d Direction) bool {
	for _, o := range b.Dirs {
		if o == d {
			return true
		}
	}
	return false
}

// BoundaryDirections tags each boundary cell with the directions whose
// neighbor is outside the grid or not reachable. Cells come back sorted by
// (x, y), directions in N, S, E, W order.
func BoundaryDirections(boundary, reachable CoordSet, width, height int) []BoundaryCell {
	cells := SortedCoords(boundary)
	out := make([]BoundaryCell, 0, len(cells))
	for _, c := range cells {
		dirs := make([]Direction, 0, len(Directions))
		for _, d := range Directions {
			n := Step(c, d)
			if inSize(n, width, height) && reachable.Has(n) {
				continue
			}
			dirs = append(dirs, d)
		}
		out = append(out, BoundaryCell{Coord: c, Dirs: dirs})
	}
	return out
}
