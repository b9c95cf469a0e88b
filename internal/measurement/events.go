package measurement

import (
	"fmt"
	"sort"
	"strings"
)

// EventType identifies an input event
type EventType int

const (
	KeyDown EventType = iota
	KeyUp
	PointerDown
	PointerMove
)

func (t EventType) String() string {
	switch t {
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Pointer is a position in normalized device coordinates,
// x to the right and y up, both in [-1, 1].
type Pointer struct {
	X, Y float64
}

// Event is a single input event from the host window
type Event struct {
	Type    EventType
	Key     string
	Pointer Pointer
}

// IsKey reports whether the event is a key event
func (e Event) IsKey() bool {
	return e.Type == KeyDown || e.Type == KeyUp
}

func KeyDownEvent(key string) Event {
	return Event{Type: KeyDown, Key: key}
}

func KeyUpEvent(key string) Event {
	return Event{Type: KeyUp, Key: key}
}

func PointerDownEvent(x, y float64) Event {
	return Event{Type: PointerDown, Pointer: Pointer{X: x, Y: y}}
}

func PointerMoveEvent(x, y float64) Event {
	return Event{Type: PointerMove, Pointer: Pointer{X: x, Y: y}}
}

// Handler receives dispatched events
type Handler func(Event)

// Dispatcher queues input events and delivers them in ticks.
// Within one Flush all key events are delivered before pointer events,
// each group in posting order.
type Dispatcher struct {
	handlers []Handler
	queue    []Event
}

// NewDispatcher creates a dispatcher without handlers
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Handle registers a handler. Handlers run in registration order.
func (d *Dispatcher) Handle(h Handler) {
	d.handlers = append(d.handlers, h)
}

// Post queues an event for the next Flush
func (d *Dispatcher) Post(ev Event) {
	d.queue = append(d.queue, ev)
}

// Pending returns the number of queued events
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// Flush delivers all events queued so far and returns how many were
// delivered. Events posted by handlers wait for the next Flush.
func (d *Dispatcher) Flush() int {
	batch := d.queue
	d.queue = nil
	if len(batch) == 0 {
		return 0
	}

	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].IsKey() && !batch[j].IsKey()
	})

	for _, ev := range batch {
		for _, h := range d.handlers {
			h(ev)
		}
	}
	return len(batch)
}

// Bind routes events to a session. Holding the modifier key enables
// measurement mode; releasing it exits. Key names compare case-insensitively.
func (d *Dispatcher) Bind(session *Session, modifier string) {
	d.Handle(func(ev Event) {
		switch ev.Type {
		case KeyDown:
			if strings.EqualFold(ev.Key, modifier) {
				session.EnterMeasurementMode()
			}
		case KeyUp:
			if strings.EqualFold(ev.Key, modifier) {
				session.ExitMeasurementMode()
			}
		case PointerDown:
			session.HandlePointerDown(ev.Pointer.X, ev.Pointer.Y)
		case PointerMove:
			session.HandlePointerMove(ev.Pointer.X, ev.Pointer.Y)
		}
	})
}
