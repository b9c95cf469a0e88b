package measurement

// HandlePointerDown starts a measurement when idle and completes the current
// one when drawing. Misses and events outside measurement mode are ignored.
func (s *Session) HandlePointerDown(x, y float64) {
	if !s.mode {
		return
	}
	p, ok := s.intersect(x, y)
	if !ok {
		return
	}

	switch s.state {
	case Idle:
		s.currentID = s.nextID
		s.store.Add(newMeasurement(s.currentID, p))
		s.state = Drawing
	case Drawing:
		s.store.Update(s.currentID, p)
		s.store.Complete(s.currentID)
		s.state = Idle
		s.nextID++
	}
}

// HandlePointerMove drags the end point of the in-progress measurement.
// A miss keeps the last valid end point.
func (s *Session) HandlePointerMove(x, y float64) {
	if !s.mode || s.state != Drawing {
		return
	}
	p, ok := s.intersect(x, y)
	if !ok {
		return
	}
	s.store.Update(s.currentID, p)
}
