package measurement

// EnterMeasurementMode suspends camera navigation and routes pointer events
// to the state machine. Calling it while already in mode does nothing.
func (s *Session) EnterMeasurementMode() {
	if s.mode {
		return
	}
	if s.navigator != nil {
		s.navigator.SetNavigationEnabled(false)
	}
	if s.cursor != nil {
		s.cursor.SetCursor(CursorCrosshair)
	}
	s.mode = true
}

// ExitMeasurementMode restores navigation and cancels an in-progress
// measurement. The cancelled id is handed out again to the next measurement.
// Calling it while not in mode does nothing.
func (s *Session) ExitMeasurementMode() {
	if !s.mode {
		return
	}
	if s.navigator != nil {
		s.navigator.SetNavigationEnabled(true)
	}
	if s.cursor != nil {
		s.cursor.SetCursor(CursorDefault)
	}
	s.mode = false
	s.cancel()
}

func (s *Session) cancel() {
	if s.state != Drawing {
		return
	}
	s.store.Remove(s.currentID)
	s.state = Idle
}
