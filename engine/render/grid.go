package render

import (
	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/pathfind"
)

const (
	WindowWidth       = 1280
	WindowHeight      = 800
	HorizontalPadding = 270
	VerticalPadding   = 30
	GridLineWidth     = 2 // should be even
	PathLineWidth     = 10
)

// Point is a screen position in pixels
type Point struct{ X, Y float32 }

// Segment is a screen line from A to B
type Segment struct{ A, B Point }

// GridLayout maps grid cells to screen pixels. The grid is drawn inside
// fixed paddings and every cell is a square of CellDim pixels, grid line
// included.
type GridLayout struct {
	WindowW, WindowH int
	HPad, VPad       int
	LineWidth        int
	PathWidth        int
	Cols, Rows       int
	CellDim          int
}

// NewGridLayout lays out a cols x rows grid in the default window
func NewGridLayout(cols, rows int) GridLayout {
	l := GridLayout{
		WindowW:   WindowWidth,
		WindowH:   WindowHeight,
		HPad:      HorizontalPadding,
		VPad:      VerticalPadding,
		LineWidth: GridLineWidth,
		PathWidth: PathLineWidth,
		Cols:      cols,
		Rows:      rows,
	}
	dimV := (l.WindowH - 2*l.VPad) / max(rows, 1)
	dimH := (l.WindowW - 2*l.HPad) / max(cols, 1)
	l.CellDim = min(dimV, dimH)
	return l
}

// CellSize is the drawable side of a cell, grid line excluded
func (l GridLayout) CellSize() int {
	return l.CellDim - l.LineWidth
}

// Right and Bottom are the far edges of the grid in pixels
func (l GridLayout) Right() int  { return l.HPad + l.Cols*l.CellDim }
func (l GridLayout) Bottom() int { return l.VPad + l.Rows*l.CellDim }

// ScreenToGrid returns the cell under a screen pixel. Pixels on grid
// lines belong to the cell to their right or below.
func (l GridLayout) ScreenToGrid(x, y int) (maplib.Coord, bool) {
	if x < l.HPad || x >= l.Right() || y < l.VPad || y >= l.Bottom() {
		return maplib.Coord{}, false
	}
	return maplib.Coord{X: (x - l.HPad) / l.CellDim, Y: (y - l.VPad) / l.CellDim}, true
}

// GridToScreen returns the top left pixel of a cell, not including the
// grid line, so drawing from it never overlaps a line.
func (l GridLayout) GridToScreen(c maplib.Coord) (int, int) {
	return l.HPad + c.X*l.CellDim + l.LineWidth/2,
		l.VPad + c.Y*l.CellDim + l.LineWidth/2
}

// CellCenter returns the center pixel of a cell
func (l GridLayout) CellCenter(c maplib.Coord) (int, int) {
	x, y := l.GridToScreen(c)
	return x + l.CellSize()/2, y + l.CellSize()/2
}

// CellPoint is like CellCenter for a fractional cell position
func (l GridLayout) CellPoint(cx, cy float64) Point {
	half := float64(l.LineWidth/2 + l.CellSize()/2)
	return Point{
		X: float32(float64(l.HPad) + cx*float64(l.CellDim) + half),
		Y: float32(float64(l.VPad) + cy*float64(l.CellDim) + half),
	}
}

func (l GridLayout) centerPoint(c maplib.Coord) Point {
	x, y := l.CellCenter(c)
	return Point{X: float32(x), Y: float32(y)}
}

// GridLines returns the vertical then horizontal lines of the grid
func (l GridLayout) GridLines() []Segment {
	lines := make([]Segment, 0, l.Cols+l.Rows+2)
	top, bottom := float32(l.VPad), float32(l.Bottom())
	for i := 0; i <= l.Cols; i++ {
		x := float32(l.HPad + i*l.CellDim)
		lines = append(lines, Segment{Point{x, top}, Point{x, bottom}})
	}
	left, right := float32(l.HPad), float32(l.Right())
	for i := 0; i <= l.Rows; i++ {
		y := float32(l.VPad + i*l.CellDim)
		lines = append(lines, Segment{Point{left, y}, Point{right, y}})
	}
	return lines
}

// PathSegments turns a consolidated path into the points of a polyline
// drawn pairwise: (p0, p1), (p2, p3) and so on. Each inner segment runs
// half a path width past its corner so consecutive strokes join without
// a notch. Paths shorter than two cells yield their centers unpaired.
func (l GridLayout) PathSegments(cpath []maplib.Coord) []Point {
	if len(cpath) < 2 {
		out := make([]Point, 0, len(cpath))
		for _, c := range cpath {
			out = append(out, l.centerPoint(c))
		}
		return out
	}
	half := float32(l.PathWidth / 2)
	points := []Point{l.centerPoint(cpath[0])}
	for i := 1; i < len(cpath)-1; i++ {
		prev, cur := cpath[i-1], cpath[i]
		p := l.centerPoint(cur)
		ext := p
		switch {
		case cur.Y == prev.Y && cur.X < prev.X:
			ext.X -= half
		case cur.Y == prev.Y:
			ext.X += half
		case cur.Y < prev.Y:
			ext.Y -= half
		default:
			ext.Y += half
		}
		points = append(points, ext, p)
	}
	return append(points, l.centerPoint(cpath[len(cpath)-1]))
}

// PathLines pairs up PathSegments into drawable segments
func (l GridLayout) PathLines(cpath []maplib.Coord) []Segment {
	pts := l.PathSegments(cpath)
	lines := make([]Segment, 0, len(pts)/2)
	for i := 0; i+1 < len(pts); i += 2 {
		lines = append(lines, Segment{pts[i], pts[i+1]})
	}
	return lines
}

// HaloEdges returns one segment per open side of each boundary cell, along
// that side of the cell's drawable square
func (l GridLayout) HaloEdges(cells []pathfind.BoundaryCell) []Segment {
	var out []Segment
	size := float32(l.CellSize())
	for _, bc := range cells {
		x, y := l.GridToScreen(bc.Coord)
		x0, y0 := float32(x), float32(y)
		x1, y1 := x0+size, y0+size
		for _, d := range bc.Dirs {
			switch d {
			case pathfind.North:
				out = append(out, Segment{Point{x0, y0}, Point{x1, y0}})
			case pathfind.South:
				out = append(out, Segment{Point{x0, y1}, Point{x1, y1}})
			case pathfind.East:
				out = append(out, Segment{Point{x1, y0}, Point{x1, y1}})
			case pathfind.West:
				out = append(out, Segment{Point{x0, y0}, Point{x0, y1}})
			}
		}
	}
	return out
}
