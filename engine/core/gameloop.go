package core

import "time"

// GameState represents the overall game state
type GameState uint8

const (
	StatePlaying GameState = iota
	StatePaused
)

// System processes units each tick
type System interface {
	Update(r *Roster, dt float64)
	Priority() int
}

// GameLoop runs per-tick systems at a fixed timestep and tracks whose turn it is
type GameLoop struct {
	Roster    *Roster
	Events    *EventBus
	State     GameState
	TickRate  float64 // fixed ticks per second
	TickCount uint64

	Teams int // teams taking turns, numbered from 0
	Team  int // team whose turn it is
	Round int // completed rounds

	systems     []System
	accumulator float64
	lastTime    time.Time
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(tickRate float64, roster *Roster, events *EventBus, teams int) *GameLoop {
	if teams < 1 {
		teams = 1
	}
	return &GameLoop{
		Roster:   roster,
		Events:   events,
		TickRate: tickRate,
		Teams:    teams,
		lastTime: time.Now(),
	}
}

// AddSystem registers a system
func (gl *GameLoop) AddSystem(s System) {
	gl.systems = append(gl.systems, s)
	// Sort by priority (simple insertion)
	for i := len(gl.systems) - 1; i > 0; i-- {
		if gl.systems[i].Priority() < gl.systems[i-1].Priority() {
			gl.systems[i], gl.systems[i-1] = gl.systems[i-1], gl.systems[i]
		}
	}
}

// Tick runs all systems once
func (gl *GameLoop) Tick(dt float64) {
	for _, s := range gl.systems {
		s.Update(gl.Roster, dt)
	}
	gl.TickCount++
}

// Update should be called every render frame. It runs the systems at a
// fixed timestep and returns the interpolation alpha for rendering.
func (gl *GameLoop) Update() float64 {
	now := time.Now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance feeds frameTime seconds into the fixed-step accumulator
func (gl *GameLoop) Advance(frameTime float64) float64 {
	// Cap frame time to avoid spiral of death
	if frameTime > 0.25 {
		frameTime = 0.25
	}

	dt := 1.0 / gl.TickRate
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StatePlaying {
			gl.Tick(dt)
		}
		gl.accumulator -= dt
	}
	return gl.accumulator / dt
}

// Play starts or resumes the game
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = time.Now()
}

// Pause pauses the game
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// EndTurn hands the turn to the next team and clears that team's moves
func (gl *GameLoop) EndTurn() {
	ended := gl.Team
	gl.Team = (gl.Team + 1) % gl.Teams
	if gl.Team == 0 {
		gl.Round++
	}
	if gl.Roster != nil {
		gl.Roster.ResetMoves(gl.Team)
	}
	if gl.Events != nil {
		gl.Events.Emit(Event{Type: EvtTurnEnded, Tick: gl.TickCount,
			Payload: TurnEvent{Round: gl.Round, Ended: ended, Next: gl.Team}})
	}
}

// CanAct reports whether u may move now
func (gl *GameLoop) CanAct(u *Unit) bool {
	return u != nil && u.Team == gl.Team && !u.Moved
}
