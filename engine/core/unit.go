package core

import (
	"errors"
	"fmt"

	"github.com/1siamBot/feg-tactics/engine/maplib"
	"github.com/1siamBot/feg-tactics/engine/pathfind"
)

var (
	ErrOutOfBounds      = errors.New("location outside the map")
	ErrImpassableSource = errors.New("location is impassable")
	ErrNegativeBudget   = errors.New("negative movement budget")
	ErrUnreachable      = errors.New("destination not reachable")
	ErrOccupied         = errors.New("destination occupied")
	ErrNoSuchUnit       = errors.New("no such unit")
	ErrNegativeTeam     = errors.New("negative team")
)

// UnitID is a stable unit handle
type UnitID uint64

// AnimState is per-unit animation state, advanced by the animation system
// and read by the renderer
type AnimState struct {
	Frame    int     // current frame index
	Frames   int     // frames in the cycle
	Timer    float64 // time accumulator
	Speed    float64 // frames per second
	Loop     bool
	Finished bool
}

// Motion is the on-screen glide of a unit along its last move. X and Y are
// in cells; the unit's logical location changes at once.
type Motion struct {
	X, Y    float64
	Path    []maplib.Coord
	PathIdx int
	Speed   float64 // cells per second
}

// Moving reports whether waypoints remain
func (m *Motion) Moving() bool { return m.PathIdx < len(m.Path) }

// Unit is a playable piece. Its reach is recomputed whenever its location,
// budget or terrain changes, so it always matches them.
type Unit struct {
	ID   UnitID
	Name string
	Team int

	Anim   AnimState
	Motion Motion
	Moved  bool // has moved this turn

	location maplib.Coord
	budget   int
	grid     *maplib.Grid
	reach    *pathfind.Reach
}

// NewUnit creates a unit and explores its reach on g
func NewUnit(id UnitID, name string, team, budget int, loc maplib.Coord, g *maplib.Grid) (*Unit, error) {
	if team < 0 {
		return nil, fmt.Errorf("unit %q: %w: %d", name, ErrNegativeTeam, team)
	}
	if err := checkPlacement(loc, budget, g); err != nil {
		return nil, fmt.Errorf("unit %q: %w", name, err)
	}
	u := &Unit{
		ID:       id,
		Name:     name,
		Team:     team,
		Anim:     AnimState{Frames: 5, Speed: 2, Loop: true},
		Motion:   Motion{X: float64(loc.X), Y: float64(loc.Y), Speed: 6},
		location: loc,
		budget:   budget,
		grid:     g,
	}
	u.explore()
	return u, nil
}

func checkPlacement(loc maplib.Coord, budget int, g *maplib.Grid) error {
	if budget < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	if !g.InBounds(loc) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, loc)
	}
	if !g.Passable(loc) {
		return fmt.Errorf("%w: %v is %v", ErrImpassableSource, loc, g.At(loc))
	}
	return nil
}

func (u *Unit) explore() {
	u.reach = pathfind.Explore(u.location, u.grid, u.budget)
}

// Location returns the unit's cell
func (u *Unit) Location() maplib.Coord { return u.location }

// Budget returns the unit's movement budget
func (u *Unit) Budget() int { return u.budget }

// Relocate moves the unit to loc and recomputes its reach.
// The unit is unchanged on error.
func (u *Unit) Relocate(loc maplib.Coord) error {
	if err := checkPlacement(loc, u.budget, u.grid); err != nil {
		return err
	}
	u.location = loc
	u.explore()
	return nil
}

// SetBudget changes the movement budget and recomputes the reach
func (u *Unit) SetBudget(budget int) error {
	if budget < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	u.budget = budget
	u.explore()
	return nil
}

// TerrainChanged points the unit at a new terrain matrix and recomputes
// its reach. A unit left standing on a wall keeps its place and can still
// leave it.
func (u *Unit) TerrainChanged(g *maplib.Grid) {
	u.grid = g
	u.explore()
}

// Reach returns the cached exploration. Callers must not modify it.
func (u *Unit) Reach() *pathfind.Reach { return u.reach }

// Reachable returns the reachable cells sorted by (x, y)
func (u *Unit) Reachable() []maplib.Coord { return u.reach.Cells() }

// CanReach reports whether c is within the unit's budget
func (u *Unit) CanReach(c maplib.Coord) bool { return u.reach.Has(c) }

// CostTo returns the cheapest cost to c, if reachable
func (u *Unit) CostTo(c maplib.Coord) (maplib.Cost, bool) { return u.reach.CostTo(c) }

// PathTo returns the cell path from the unit to c, or nil
func (u *Unit) PathTo(c maplib.Coord) []maplib.Coord { return u.reach.PathTo(c) }

// Halo returns the outward-facing sides of the reach boundary
func (u *Unit) Halo() []pathfind.BoundaryCell {
	return u.reach.Halo(u.grid.Width, u.grid.Height)
}
