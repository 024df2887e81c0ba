package maplib

// Coord is a grid cell address. x grows to the right, y grows downward.
type Coord struct {
	X, Y int
}

// Less orders coords lexicographically by (X, Y).
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{c.X + dx, c.Y + dy}
}

// Grid is a rectangular terrain matrix indexed [x][y] (column-major).
// Every cell holds a terrain; new grids are all open ground.
type Grid struct {
	Width  int
	Height int
	cells  [][]Terrain
}

// NewGrid creates an all-open grid of the given size
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Terrain, width)
	for x := range cells {
		cells[x] = make([]Terrain, height)
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds checks if a coord lies within the grid
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// At returns the terrain at c. Out-of-bounds cells read as walls, the map
// edge being impassable.
func (g *Grid) At(c Coord) Terrain {
	if !g.InBounds(c) {
		return TerrainWall
	}
	return g.cells[c.X][c.Y]
}

// Set changes the terrain at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, t Terrain) {
	if g.InBounds(c) {
		g.cells[c.X][c.Y] = t
	}
}

// Fill sets terrain for the inclusive rectangle (x1,y1)-(x2,y2)
func (g *Grid) Fill(x1, y1, x2, y2 int, t Terrain) {
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			g.Set(Coord{x, y}, t)
		}
	}
}

// Passable checks if a unit may enter c
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.cells[c.X][c.Y].Passable()
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.Width, g.Height)
	for x := range g.cells {
		copy(out.cells[x], g.cells[x])
	}
	return out
}

// Equal reports whether both grids have the same size and terrain
func (g *Grid) Equal(o *Grid) bool {
	if g.Width != o.Width || g.Height != o.Height {
		return false
	}
	for x := range g.cells {
		for y := range g.cells[x] {
			if g.cells[x][y] != o.cells[x][y] {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells hold terrain t
func (g *Grid) Count(t Terrain) int {
	n := 0
	for x := range g.cells {
		for _, c := range g.cells[x] {
			if c == t {
				n++
			}
		}
	}
	return n
}
