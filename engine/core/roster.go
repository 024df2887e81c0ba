package core

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/1siamBot/feg-tactics/engine/logger"
	"github.com/1siamBot/feg-tactics/engine/maplib"
)

// Roster owns every unit on the map, indexed by stable IDs. All changes to
// units go through it so their cached reach never goes stale.
type Roster struct {
	grid   *maplib.Grid
	units  map[UnitID]*Unit
	nextID UnitID
	events *EventBus
	log    logrus.FieldLogger
}

// NewRoster creates an empty roster on g. events may be nil.
func NewRoster(g *maplib.Grid, events *EventBus) *Roster {
	return &Roster{
		grid:   g,
		units:  make(map[UnitID]*Unit),
		events: events,
		log:    logger.Log,
	}
}

// SetLogger replaces the roster's logger
func (r *Roster) SetLogger(l logrus.FieldLogger) { r.log = l }

// Grid returns the terrain the units live on
func (r *Roster) Grid() *maplib.Grid { return r.grid }

func (r *Roster) emit(t EventType, payload interface{}) {
	if r.events != nil {
		r.events.Emit(Event{Type: t, Payload: payload})
	}
}

// Spawn creates a unit at loc
func (r *Roster) Spawn(name string, team, budget int, loc maplib.Coord) (*Unit, error) {
	if other := r.UnitAt(loc); other != nil {
		return nil, fmt.Errorf("spawn %q at %v: %w by %q", name, loc, ErrOccupied, other.Name)
	}
	u, err := NewUnit(r.nextID+1, name, team, budget, loc, r.grid)
	if err != nil {
		return nil, err
	}
	r.nextID++
	r.units[u.ID] = u
	r.log.WithFields(logrus.Fields{"unit": u.ID, "name": name, "at": loc, "budget": budget}).Debug("unit spawned")
	r.emit(EvtUnitSpawned, UnitEvent{ID: u.ID})
	return u, nil
}

// Get returns a unit, or nil
func (r *Roster) Get(id UnitID) *Unit {
	return r.units[id]
}

// Remove deletes a unit
func (r *Roster) Remove(id UnitID) {
	if _, ok := r.units[id]; !ok {
		return
	}
	delete(r.units, id)
	r.emit(EvtUnitRemoved, UnitEvent{ID: id})
}

// UnitAt returns the unit standing on c, or nil
func (r *Roster) UnitAt(c maplib.Coord) *Unit {
	for _, u := range r.units {
		if u.location == c {
			return u
		}
	}
	return nil
}

// Units returns all units ordered by ID
func (r *Roster) Units() []*Unit {
	out := make([]*Unit, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Team returns a team's units ordered by ID
func (r *Roster) Team(team int) []*Unit {
	var out []*Unit
	for _, u := range r.Units() {
		if u.Team == team {
			out = append(out, u)
		}
	}
	return out
}

// Count returns the number of units
func (r *Roster) Count() int {
	return len(r.units)
}

// Move sends a unit to dest along its cheapest path and returns that path.
// dest must be reachable and free.
func (r *Roster) Move(id UnitID, dest maplib.Coord) ([]maplib.Coord, error) {
	u := r.units[id]
	if u == nil {
		return nil, fmt.Errorf("move %d: %w", id, ErrNoSuchUnit)
	}
	if !u.CanReach(dest) {
		return nil, fmt.Errorf("move %q to %v: %w", u.Name, dest, ErrUnreachable)
	}
	if other := r.UnitAt(dest); other != nil && other != u {
		return nil, fmt.Errorf("move %q to %v: %w by %q", u.Name, dest, ErrOccupied, other.Name)
	}
	from := u.location
	path := u.PathTo(dest)
	cost, _ := u.CostTo(dest)
	if err := u.Relocate(dest); err != nil {
		return nil, fmt.Errorf("move %q to %v: %w", u.Name, dest, err)
	}
	u.Moved = true
	u.Motion.Path = path
	u.Motion.PathIdx = 1
	r.log.WithFields(logrus.Fields{"unit": id, "from": from, "to": dest, "cost": cost.String()}).Debug("unit moved")
	r.emit(EvtUnitMoved, MoveEvent{ID: id, From: from, To: dest, Path: path, Cost: cost})
	return path, nil
}

// SetBudget changes a unit's movement budget
func (r *Roster) SetBudget(id UnitID, budget int) error {
	u := r.units[id]
	if u == nil {
		return fmt.Errorf("set budget %d: %w", id, ErrNoSuchUnit)
	}
	if err := u.SetBudget(budget); err != nil {
		return fmt.Errorf("set budget of %q: %w", u.Name, err)
	}
	r.emit(EvtUnitBudgetChanged, UnitEvent{ID: id})
	return nil
}

// SetTerrain swaps the terrain matrix and recomputes every unit's reach
func (r *Roster) SetTerrain(g *maplib.Grid) {
	r.grid = g
	for _, u := range r.Units() {
		u.TerrainChanged(g)
		if !g.Passable(u.location) {
			r.log.WithFields(logrus.Fields{"unit": u.ID, "at": u.location}).Warn("unit stands on impassable terrain")
		}
	}
	r.emit(EvtTerrainChanged, nil)
}

// ResetMoves clears the moved flag of every unit on a team
func (r *Roster) ResetMoves(team int) {
	for _, u := range r.units {
		if u.Team == team {
			u.Moved = false
		}
	}
}
