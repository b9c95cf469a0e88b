// Package measurement turns pointer input and ray hits into point-to-point
// distance measurements.
//
// A Session owns the interaction state. Pointer events only reach it while
// measurement mode is active; every mutation goes through the Store, which
// records a Change that display layers apply to their Overlay once per frame.
package measurement

import (
	"github.com/philipparndt/raymeasure/pkg/geometry"
)

// ID identifies a measurement. IDs increase monotonically per session.
type ID int

// Measurement is a distance between two picked surface points
type Measurement struct {
	ID        ID
	Start     geometry.Vector3
	End       geometry.Vector3
	Distance  float64
	Label     Label
	Completed bool
}

// newMeasurement starts a zero-length measurement at p
func newMeasurement(id ID, p geometry.Vector3) Measurement {
	return Measurement{
		ID:    id,
		Start: p,
		End:   p,
		Label: Label{Anchor: p, Text: initialLabelText},
	}
}

// setEnd moves the end point and recomputes everything derived from it
func (m *Measurement) setEnd(p geometry.Vector3) {
	m.End = p
	m.Distance = m.Start.Distance(p)
	m.Label = labelFor(m.Start, p, m.Distance)
}

// Segment returns the drawable line of the measurement
func (m Measurement) Segment() Segment {
	return Segment{ID: m.ID, Start: m.Start, End: m.End, Completed: m.Completed}
}

// Segment is a line between two world-space points
type Segment struct {
	ID        ID
	Start     geometry.Vector3
	End       geometry.Vector3
	Completed bool
}
