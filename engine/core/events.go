package core

import "github.com/1siamBot/feg-tactics/engine/maplib"

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtUnitSpawned EventType = iota
	EvtUnitRemoved
	EvtUnitMoved
	EvtUnitBudgetChanged
	EvtTerrainChanged
	EvtTurnEnded
)

// UnitEvent is the payload of events about a single unit
type UnitEvent struct {
	ID UnitID
}

// MoveEvent is the payload of EvtUnitMoved
type MoveEvent struct {
	ID   UnitID
	From maplib.Coord
	To   maplib.Coord
	Path []maplib.Coord
	Cost maplib.Cost
}

// TurnEvent is the payload of EvtTurnEnded
type TurnEvent struct {
	Round int
	Ended int // team that just finished
	Next  int
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events
func (eb *EventBus) Dispatch() {
	// Handlers may emit; those events wait for the next Dispatch.
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
}
