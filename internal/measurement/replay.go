package measurement

import "errors"

var (
	// ErrStartMissed reports that the first click of a gesture hit nothing
	ErrStartMissed = errors.New("no surface under the start point")
	// ErrEndMissed reports that the second click of a gesture hit nothing
	ErrEndMissed = errors.New("no surface under the end point")
)

// Replay drives one measuring gesture through a dispatcher bound to s:
// press modifier, click from, move along path and to, click to, release.
// Every event is its own tick. tick, if set, runs after each flush.
// The key is released in every case, so a failed gesture leaves no
// pending measurement behind.
func Replay(d *Dispatcher, s *Session, modifier string, from Pointer, path []Pointer, to Pointer, tick func(Event)) (Measurement, error) {
	step := func(ev Event) {
		d.Post(ev)
		d.Flush()
		if tick != nil {
			tick(ev)
		}
	}

	step(KeyDownEvent(modifier))
	defer step(KeyUpEvent(modifier))

	step(PointerDownEvent(from.X, from.Y))
	id, drawing := s.CurrentID()
	if !drawing {
		return Measurement{}, ErrStartMissed
	}

	for _, p := range path {
		step(PointerMoveEvent(p.X, p.Y))
	}
	step(PointerMoveEvent(to.X, to.Y))
	step(PointerDownEvent(to.X, to.Y))
	if s.State() == Drawing {
		return Measurement{}, ErrEndMissed
	}

	m, _ := s.Store().Get(id)
	return m, nil
}
