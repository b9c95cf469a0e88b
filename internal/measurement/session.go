package measurement

import (
	"github.com/philipparndt/raymeasure/pkg/geometry"
)

// Intersector maps a pointer position in normalized device coordinates to the
// nearest surface point under it.
type Intersector interface {
	Intersect(x, y float64) (geometry.Vector3, bool)
}

// Navigator is the camera controller suspended while measuring
type Navigator interface {
	SetNavigationEnabled(enabled bool)
}

// Cursor is the pointer shape requested by the session
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
)

// CursorSetter applies a cursor shape to the host window
type CursorSetter interface {
	SetCursor(cursor Cursor)
}

// State is the lifecycle state of the measurement interaction
type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Session holds all interaction state for one viewer.
// It is not safe for concurrent use; feed it from a single event loop.
type Session struct {
	store       *Store
	intersector Intersector
	navigator   Navigator
	cursor      CursorSetter

	mode      bool
	state     State
	currentID ID
	nextID    ID
}

// NewSession creates an idle session with measurement mode off.
// navigator and cursor may be nil when the host has no such concept.
func NewSession(intersector Intersector, navigator Navigator, cursor CursorSetter) *Session {
	return &Session{
		store:       NewStore(),
		intersector: intersector,
		navigator:   navigator,
		cursor:      cursor,
	}
}

// Store returns the session's measurement store
func (s *Session) Store() *Store {
	return s.store
}

// SetIntersector swaps the intersection provider, e.g. after a model reload
func (s *Session) SetIntersector(intersector Intersector) {
	s.intersector = intersector
}

// InMeasurementMode reports whether pointer events are routed to measuring
func (s *Session) InMeasurementMode() bool {
	return s.mode
}

// State returns Idle or Drawing
func (s *Session) State() State {
	return s.state
}

// CurrentID returns the in-progress measurement id, valid while Drawing
func (s *Session) CurrentID() (ID, bool) {
	return s.currentID, s.state == Drawing
}

// NextID returns the id the next new measurement will get
func (s *Session) NextID() ID {
	return s.nextID
}

// ClearCompleted removes all completed measurements. It does nothing while a
// measurement is being drawn.
func (s *Session) ClearCompleted() int {
	if s.state == Drawing {
		return 0
	}
	removed := 0
	for _, m := range s.store.List() {
		if m.Completed {
			s.store.Remove(m.ID)
			removed++
		}
	}
	return removed
}

func (s *Session) intersect(x, y float64) (geometry.Vector3, bool) {
	if s.intersector == nil {
		return geometry.Vector3{}, false
	}
	return s.intersector.Intersect(x, y)
}
