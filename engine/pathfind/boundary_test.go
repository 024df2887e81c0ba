package pathfind

import (
	"reflect"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"github.com/1siamBot/feg-tactics/engine/maplib"
)

func setOf(cs ...maplib.Coord) CoordSet {
	s := mapset.New[maplib.Coord]()
	for _, c := range cs {
		s.Put(c)
	}
	return s
}

func TestBoundaryDirections_Corner(t *testing.T) {
	g := maplib.NewGrid(3, 3)
	r := Explore(C{X: 0, Y: 0}, g, 2)

	got := r.Halo(3, 3)
	want := []BoundaryCell{
		{Coord: C{X: 0, Y: 2}, Dirs: []Direction{South, East, West}},
		{Coord: C{X: 1, Y: 1}, Dirs: []Direction{South, East}},
		{Coord: C{X: 2, Y: 0}, Dirs: []Direction{North, South, East}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !got[1].Open(East) || got[1].Open(North) {
		t.Fatal("Open disagrees with Dirs")
	}
}

func TestBoundaryDirections_IsolatedCell(t *testing.T) {
	only := setOf(C{X: 1, Y: 1})
	got := BoundaryDirections(only, only, 3, 3)
	if len(got) != 1 || !reflect.DeepEqual(got[0].Dirs, []Direction{North, South, East, West}) {
		t.Fatalf("an isolated cell should be open on every side, got %v", got)
	}
}

func TestBoundaryDirections_MapEdgeStaysOpen(t *testing.T) {
	// Out-of-grid neighbors are never reachable, even if the set says so.
	reach := setOf(C{X: 0, Y: 0}, C{X: -1, Y: 0}, C{X: 0, Y: -1})
	got := BoundaryDirections(setOf(C{X: 0, Y: 0}), reach, 1, 1)
	if !reflect.DeepEqual(got[0].Dirs, []Direction{North, South, East, West}) {
		t.Fatalf("got %v", got[0].Dirs)
	}
}

func TestBoundaryDirections_Empty(t *testing.T) {
	empty := mapset.New[maplib.Coord]()
	if got := BoundaryDirections(empty, empty, 5, 5); len(got) != 0 {
		t.Fatalf("expected nothing, got %v", got)
	}
}
