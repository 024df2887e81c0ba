package pathfind

import (
	"fmt"

	"github.com/1siamBot/feg-tactics/engine/maplib"
)

// Direction is a cardinal grid direction
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in N, S, E, W order
var Directions = [4]Direction{North, South, East, West}

// neighborOrder is the fixed expansion order; it decides which of two
// equally cheap parents a cell keeps.
var neighborOrder = [4]Direction{West, East, North, South}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Delta returns the (dx, dy) offset of one step in direction d. North is -y.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Step returns the neighbor of c in direction d
func Step(c maplib.Coord, d Direction) maplib.Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// DirectionTo returns the direction from one cell to a 4-adjacent cell.
// It panics if the cells are not adjacent.
func DirectionTo(from, to maplib.Coord) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 0 && dy == -1:
		return North
	case dx == 0 && dy == 1:
		return South
	case dx == 1 && dy == 0:
		return East
	case dx == -1 && dy == 0:
		return West
	}
	panic(fmt.Sprintf("pathfind: %v and %v are not adjacent", from, to))
}

func inSize(c maplib.Coord, width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}
