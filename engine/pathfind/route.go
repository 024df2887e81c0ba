package pathfind

import (
	"container/heap"

	"github.com/1siamBot/feg-tactics/engine/maplib"
)

// FindPath finds the cheapest path from start to goal ignoring any budget.
// It is the same uniform-cost search as Explore, stopping once goal is
// settled. It returns the path, its cost and whether goal is reachable.
func FindPath(g *maplib.Grid, start, goal maplib.Coord) ([]maplib.Coord, maplib.Cost, bool) {
	if !g.InBounds(start) {
		return nil, maplib.Cost{}, false
	}
	if start == goal {
		return []maplib.Coord{start}, maplib.Cost{}, true
	}
	if !g.Passable(goal) {
		return nil, maplib.Cost{}, false
	}

	open := &nodeHeap{}
	heap.Init(open)
	heap.Push(open, &node{p: start})

	came := make(map[maplib.Coord]maplib.Coord)
	best := map[maplib.Coord]maplib.Cost{start: {}}
	closed := make(map[maplib.Coord]bool)

	for open.Len() > 0 {
		cur := heap.Pop(open).(*node)
		if closed[cur.p] {
			continue
		}
		if cur.p == goal {
			return reconstructPath(came, start, goal), cur.g, true
		}
		closed[cur.p] = true

		for _, d := range neighborOrder {
			np := Step(cur.p, d)
			if closed[np] || !g.Passable(np) {
				continue
			}
			tentG := cur.g.Add(g.At(np).Cost())
			if old, ok := best[np]; ok && !tentG.Less(old) {
				continue
			}
			best[np] = tentG
			came[np] = cur.p
			heap.Push(open, &node{p: np, g: tentG})
		}
	}
	return nil, maplib.Cost{}, false // no path
}

func reconstructPath(came map[maplib.Coord]maplib.Coord, start, goal maplib.Coord) []maplib.Coord {
	path := []maplib.Coord{goal}
	cur := goal
	for cur != start {
		cur = came[cur]
		path = append(path, cur)
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// --- Priority queue ---

type node struct {
	p maplib.Coord
	g maplib.Cost
}

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if c := h[i].g.Cmp(h[j].g); c != 0 {
		return c < 0
	}
	return h[j].p.Less(h[i].p)
}
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
