package measurement

import (
	"errors"
	"fmt"

	"github.com/philipparndt/raymeasure/pkg/geometry"
)

// Store contract violations. The session is the only writer, so hitting one
// of these means the session's bookkeeping is broken; the store panics with
// an error wrapping the matching sentinel.
var (
	ErrUnknownMeasurement   = errors.New("unknown measurement")
	ErrMeasurementCompleted = errors.New("measurement already completed")
	ErrDuplicateMeasurement = errors.New("duplicate measurement")
)

// ChangeKind tells the display layer what happened to a measurement
type ChangeKind int

const (
	Added ChangeKind = iota
	Updated
	Completed
	Removed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Completed:
		return "completed"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("ChangeKind(%d)", int(k))
}

// Change is a snapshot of a measurement right after a mutation
type Change struct {
	Kind     ChangeKind
	ID       ID
	Start    geometry.Vector3
	End      geometry.Vector3
	Distance float64
	Label    Label
}

// Store keeps measurements in insertion order
type Store struct {
	order       []ID
	items       map[ID]*Measurement
	pending     []Change
	subscribers []func(Change)
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{items: make(map[ID]*Measurement)}
}

// Add inserts a new measurement
func (s *Store) Add(m Measurement) {
	if _, exists := s.items[m.ID]; exists {
		panic(fmt.Errorf("add %d: %w", m.ID, ErrDuplicateMeasurement))
	}
	stored := m
	s.items[m.ID] = &stored
	s.order = append(s.order, m.ID)
	s.emit(Added, &stored)
}

// Update moves the end point of an in-progress measurement
func (s *Store) Update(id ID, end geometry.Vector3) {
	m := s.mustGet("update", id)
	if m.Completed {
		panic(fmt.Errorf("update %d: %w", id, ErrMeasurementCompleted))
	}
	m.setEnd(end)
	s.emit(Updated, m)
}

// Complete freezes a measurement's end points
func (s *Store) Complete(id ID) {
	m := s.mustGet("complete", id)
	if m.Completed {
		panic(fmt.Errorf("complete %d: %w", id, ErrMeasurementCompleted))
	}
	m.Completed = true
	s.emit(Completed, m)
}

// Remove discards a measurement
func (s *Store) Remove(id ID) {
	m := s.mustGet("remove", id)
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.emit(Removed, m)
}

// Get returns a copy of the measurement with the given id
func (s *Store) Get(id ID) (Measurement, bool) {
	m, ok := s.items[id]
	if !ok {
		return Measurement{}, false
	}
	return *m, true
}

// List returns copies of all measurements in insertion order
func (s *Store) List() []Measurement {
	out := make([]Measurement, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out
}

// Len returns the number of stored measurements
func (s *Store) Len() int {
	return len(s.order)
}

// Subscribe registers fn to receive every change as it happens
func (s *Store) Subscribe(fn func(Change)) {
	s.subscribers = append(s.subscribers, fn)
}

// Changes drains the queue of changes recorded since the previous call
func (s *Store) Changes() []Change {
	out := s.pending
	s.pending = nil
	return out
}

func (s *Store) mustGet(op string, id ID) *Measurement {
	m, ok := s.items[id]
	if !ok {
		panic(fmt.Errorf("%s %d: %w", op, id, ErrUnknownMeasurement))
	}
	return m
}

func (s *Store) emit(kind ChangeKind, m *Measurement) {
	change := Change{
		Kind:     kind,
		ID:       m.ID,
		Start:    m.Start,
		End:      m.End,
		Distance: m.Distance,
		Label:    m.Label,
	}
	s.pending = append(s.pending, change)
	for _, fn := range s.subscribers {
		fn(change)
	}
}
