package pathfind

import (
	"container/heap"
	"sort"

	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/zyedidia/generic/mapset"
)

// PathMap holds backpointers: every reached cell maps to the cell it is
// entered from. The source maps to itself.
type PathMap map[maplib.Coord]maplib.Coord

// CostMap holds the cheapest accumulated cost to every reached cell
type CostMap map[maplib.Coord]maplib.Cost

// CoordSet is an unordered set of cells
type CoordSet = mapset.Set[maplib.Coord]

// Reach is everything a single exploration produces. Paths, Costs and
// Reachable always describe the same cells.
type Reach struct {
	Source    maplib.Coord
	Budget    int
	Paths     PathMap
	Costs     CostMap
	Boundary  CoordSet // reachable cells that are nobody's parent
	Reachable CoordSet
}

func newReach(src maplib.Coord, budget int) *Reach {
	return &Reach{
		Source:    src,
		Budget:    budget,
		Paths:     make(PathMap),
		Costs:     make(CostMap),
		Boundary:  mapset.New[maplib.Coord](),
		Reachable: mapset.New[maplib.Coord](),
	}
}

// Explore runs a Dijkstra expansion from src over g, never spending more
// than budget. The source is always reachable at cost 0 whatever its own
// terrain; a source outside the grid reaches nothing. A negative budget is
// treated as 0.
func Explore(src maplib.Coord, g *maplib.Grid, budget int) *Reach {
	if budget < 0 {
		budget = 0
	}
	r := newReach(src, budget)
	if !g.InBounds(src) {
		return r
	}
	limit := maplib.CostOf(int64(budget))

	open := &frontier{}
	heap.Push(open, frontierEntry{pos: src})
	r.Paths[src] = src
	r.Costs[src] = maplib.Cost{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(frontierEntry)
		if r.Costs[cur.pos].Less(cur.cost) {
			continue // stale
		}
		r.Reachable.Put(cur.pos)
		r.Boundary.Put(cur.pos)
		if parent := r.Paths[cur.pos]; parent != cur.pos {
			r.Boundary.Remove(parent)
		}

		for _, d := range neighborOrder {
			n := Step(cur.pos, d)
			if !g.Passable(n) {
				continue
			}
			newCost := cur.cost.Add(g.At(n).Cost())
			if limit.Less(newCost) {
				continue
			}
			if old, seen := r.Costs[n]; seen && !newCost.Less(old) {
				continue
			}
			r.Costs[n] = newCost
			r.Paths[n] = cur.pos
			heap.Push(open, frontierEntry{cost: newCost, pos: n})
		}
	}
	return r
}

// Has reports whether c is reachable
func (r *Reach) Has(c maplib.Coord) bool {
	return r.Reachable.Has(c)
}

// CostTo returns the cheapest cost to c, if reachable
func (r *Reach) CostTo(c maplib.Coord) (maplib.Cost, bool) {
	cost, ok := r.Costs[c]
	return cost, ok
}

// PathTo returns the cell-by-cell path from the source to c, or nil
func (r *Reach) PathTo(c maplib.Coord) []maplib.Coord {
	return ReconstructPath(c, r.Paths)
}

// ConsolidatedPathTo returns the corners of the path to c
func (r *Reach) ConsolidatedPathTo(c maplib.Coord) []maplib.Coord {
	return ConsolidatePath(r.PathTo(c))
}

// Halo returns the outward-facing sides of every boundary cell
func (r *Reach) Halo(width, height int) []BoundaryCell {
	return BoundaryDirections(r.Boundary, r.Reachable, width, height)
}

// Cells returns the reachable cells sorted by (x, y)
func (r *Reach) Cells() []maplib.Coord {
	return SortedCoords(r.Reachable)
}

// Equal reports whether two explorations produced identical results
func (r *Reach) Equal(o *Reach) bool {
	if r.Source != o.Source || r.Budget != o.Budget ||
		len(r.Paths) != len(o.Paths) || len(r.Costs) != len(o.Costs) {
		return false
	}
	for c, p := range r.Paths {
		if q, ok := o.Paths[c]; !ok || q != p {
			return false
		}
	}
	for c, v := range r.Costs {
		if w, ok := o.Costs[c]; !ok || w != v {
			return false
		}
	}
	return setsEqual(r.Boundary, o.Boundary) && setsEqual(r.Reachable, o.Reachable)
}

// SortedCoords returns the members of s sorted by (x, y)
func SortedCoords(s CoordSet) []maplib.Coord {
	out := make([]maplib.Coord, 0, s.Size())
	s.Each(func(c maplib.Coord) {
		out = append(out, c)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func setsEqual(a, b CoordSet) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(c maplib.Coord) {
		if !b.Has(c) {
			same = false
		}
	})
	return same
}

// --- Priority queue ---

type frontierEntry struct {
	cost maplib.Cost
	pos  maplib.Coord
}

// frontier pops the cheapest entry first; equal costs pop the larger
// (x, y) first so the expansion order is total.
type frontier []frontierEntry

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if c := f[i].cost.Cmp(f[j].cost); c != 0 {
		return c < 0
	}
	return f[j].pos.Less(f[i].pos)
}
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierEntry)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
