package pathfind

import (
	"fmt"

	"github.com/1siamBot/feg-tactics/engine/maplib"
)

// ReconstructPath walks backpointers from dest to the source and returns
// the path source first. It returns nil if dest was never reached.
func ReconstructPath(dest maplib.Coord, paths PathMap) []maplib.Coord {
	parent, ok := paths[dest]
	if !ok {
		return nil
	}
	if parent == dest {
		return []maplib.Coord{dest}
	}
	path := []maplib.Coord{dest}
	cur := dest
	for steps := 0; ; steps++ {
		if steps > len(paths) {
			panic(fmt.Sprintf("pathfind: backpointer cycle reaching %v", dest))
		}
		prev, ok := paths[cur]
		if !ok || prev == cur {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// ConsolidatePath keeps only the endpoints and turn corners of a lattice
// path, so consecutive elements are the ends of straight segments.
// Every step of path must move to a 4-adjacent cell.
func ConsolidatePath(path []maplib.Coord) []maplib.Coord {
	if len(path) <= 1 {
		return append([]maplib.Coord(nil), path...)
	}
	out := []maplib.Coord{path[0]}
	prevVertical := isVerticalStep(path[0], path[1])
	for i := 1; i < len(path)-1; i++ {
		vertical := isVerticalStep(path[i], path[i+1])
		if vertical != prevVertical {
			out = append(out, path[i])
		}
		prevVertical = vertical
	}
	if last := path[len(path)-1]; out[len(out)-1] != last {
		out = append(out, last)
	}
	return out
}

// ExpandPath turns a consolidated path back into unit steps.
// Consecutive points must share a row or a column.
func ExpandPath(cpath []maplib.Coord) []maplib.Coord {
	if len(cpath) == 0 {
		return nil
	}
	out := []maplib.Coord{cpath[0]}
	for i := 1; i < len(cpath); i++ {
		from, to := cpath[i-1], cpath[i]
		if from.X != to.X && from.Y != to.Y {
			panic(fmt.Sprintf("pathfind: segment %v-%v is not axis aligned", from, to))
		}
		dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
		for c := from; c != to; {
			c = c.Add(dx, dy)
			out = append(out, c)
		}
	}
	return out
}

// isVerticalStep reports whether a step keeps x. Zero-length and
// non-adjacent steps are rejected.
func isVerticalStep(from, to maplib.Coord) bool {
	switch DirectionTo(from, to) {
	case North, South:
		return true
	default:
		return false
	}
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
