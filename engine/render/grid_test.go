package render

import (
	"testing"

	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/pathfind"
)

type C = maplib.Coord

func TestNewGridLayout_Dimensions(t *testing.T) {
	l := NewGridLayout(10, 10)
	if l.CellDim != 74 || l.CellSize() != 72 {
		t.Fatalf("cell dim %d size %d, want 74 and 72", l.CellDim, l.CellSize())
	}
	if l.Right() != 1010 || l.Bottom() != 770 {
		t.Fatalf("grid ends at (%d, %d)", l.Right(), l.Bottom())
	}
	wide := NewGridLayout(20, 10)
	if wide.CellDim != 37 {
		t.Fatalf("wide grid cell dim = %d, want 37", wide.CellDim)
	}
}

func TestScreenToGrid(t *testing.T) {
	l := NewGridLayout(10, 10)
	tests := []struct {
		x, y int
		want C
		ok   bool
	}{
		{270, 30, C{X: 0, Y: 0}, true},
		{343, 103, C{X: 0, Y: 0}, true},
		{344, 104, C{X: 1, Y: 1}, true},
		{1009, 769, C{X: 9, Y: 9}, true},
		{269, 100, C{}, false},
		{1010, 100, C{}, false},
		{300, 29, C{}, false},
		{300, 770, C{}, false},
	}
	for _, tt := range tests {
		got, ok := l.ScreenToGrid(tt.x, tt.y)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ScreenToGrid(%d, %d) = %v %v, want %v %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGridToScreen_RoundTrip(t *testing.T) {
	l := NewGridLayout(10, 10)
	if x, y := l.GridToScreen(C{X: 0, Y: 0}); x != 271 || y != 31 {
		t.Fatalf("GridToScreen(0,0) = (%d, %d)", x, y)
	}
	if x, y := l.CellCenter(C{X: 1, Y: 0}); x != 381 || y != 67 {
		t.Fatalf("CellCenter(1,0) = (%d, %d)", x, y)
	}
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			sx, sy := l.CellCenter(C{X: x, Y: y})
			got, ok := l.ScreenToGrid(sx, sy)
			if !ok || got != (C{X: x, Y: y}) {
				t.Fatalf("center of %v maps back to %v", C{X: x, Y: y}, got)
			}
		}
	}
	if p := l.CellPoint(1.5, 0); p.X != 418 || p.Y != 67 {
		t.Fatalf("CellPoint(1.5, 0) = %+v", p)
	}
}

func TestGridLines(t *testing.T) {
	l := NewGridLayout(10, 10)
	lines := l.GridLines()
	if len(lines) != 22 {
		t.Fatalf("got %d lines, want 22", len(lines))
	}
	first := lines[0]
	if first.A != (Point{270, 30}) || first.B != (Point{270, 770}) {
		t.Fatalf("first line = %+v", first)
	}
	last := lines[len(lines)-1]
	if last.A != (Point{270, 770}) || last.B != (Point{1010, 770}) {
		t.Fatalf("last line = %+v", last)
	}
}

func TestPathSegments(t *testing.T) {
	l := NewGridLayout(10, 10)
	tests := []struct {
		name  string
		cpath []C
		want  []Point
	}{
		{"empty", nil, []Point{}},
		{"single", []C{{X: 0, Y: 0}}, []Point{{307, 67}}},
		{"straight", []C{{X: 0, Y: 0}, {X: 3, Y: 0}}, []Point{{307, 67}, {529, 67}}},
		{"right then down", []C{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}},
			[]Point{{307, 67}, {534, 67}, {529, 67}, {529, 215}}},
		{"left then up", []C{{X: 3, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}},
			[]Point{{529, 215}, {302, 215}, {307, 215}, {307, 67}}},
		{"down then right", []C{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}},
			[]Point{{307, 67}, {307, 220}, {307, 215}, {455, 215}}},
		{"up then right", []C{{X: 0, Y: 2}, {X: 0, Y: 0}, {X: 1, Y: 0}},
			[]Point{{307, 215}, {307, 62}, {307, 67}, {381, 67}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.PathSegments(tt.cpath)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestPathLines_OnePerLeg(t *testing.T) {
	l := NewGridLayout(10, 10)
	cpath := []C{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}, {X: 5, Y: 2}}
	lines := l.PathLines(cpath)
	if len(lines) != len(cpath)-1 {
		t.Fatalf("got %d lines for %d legs", len(lines), len(cpath)-1)
	}
	if lines[0].A != (Point{307, 67}) || lines[2].B != (Point{677, 215}) {
		t.Fatalf("lines = %+v", lines)
	}
	if got := l.PathLines([]C{{X: 4, Y: 4}}); len(got) != 0 {
		t.Fatalf("single cell path drew %v", got)
	}
}

func TestHaloEdges(t *testing.T) {
	l := NewGridLayout(10, 10)
	cells := []pathfind.BoundaryCell{
		{Coord: C{X: 0, Y: 0}, Dirs: []pathfind.Direction{pathfind.North, pathfind.West}},
		{Coord: C{X: 1, Y: 1}, Dirs: []pathfind.Direction{pathfind.South, pathfind.East}},
	}
	got := l.HaloEdges(cells)
	want := []Segment{
		{Point{271, 31}, Point{343, 31}},
		{Point{271, 31}, Point{271, 103}},
		{Point{345, 177}, Point{417, 177}},
		{Point{417, 105}, Point{417, 177}},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("edge %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
