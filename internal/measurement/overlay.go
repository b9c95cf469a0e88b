package measurement

// Overlay is what a display layer draws: one segment and one label per live
// measurement, kept in sync by applying the store's change records.
type Overlay struct {
	order    []ID
	segments map[ID]Segment
	labels   map[ID]Label
}

// NewOverlay creates an empty overlay
func NewOverlay() *Overlay {
	return &Overlay{
		segments: make(map[ID]Segment),
		labels:   make(map[ID]Label),
	}
}

// Apply folds change records into the overlay
func (o *Overlay) Apply(changes ...Change) {
	for _, c := range changes {
		switch c.Kind {
		case Added:
			if _, exists := o.segments[c.ID]; !exists {
				o.order = append(o.order, c.ID)
			}
			o.put(c, false)
		case Updated, Completed:
			if _, exists := o.segments[c.ID]; exists {
				o.put(c, c.Kind == Completed)
			}
		case Removed:
			o.remove(c.ID)
		}
	}
}

// Sync drains the store's pending changes into the overlay
func (o *Overlay) Sync(store *Store) int {
	changes := store.Changes()
	o.Apply(changes...)
	return len(changes)
}

// Segments returns the segments in insertion order
func (o *Overlay) Segments() []Segment {
	out := make([]Segment, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.segments[id])
	}
	return out
}

// Labels returns the labels in insertion order
func (o *Overlay) Labels() []Label {
	out := make([]Label, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, o.labels[id])
	}
	return out
}

// Len returns the number of drawn measurements
func (o *Overlay) Len() int {
	return len(o.order)
}

// Reset forgets everything, e.g. when a new model replaces the scene
func (o *Overlay) Reset() {
	o.order = nil
	o.segments = make(map[ID]Segment)
	o.labels = make(map[ID]Label)
}

func (o *Overlay) put(c Change, completed bool) {
	o.segments[c.ID] = Segment{ID: c.ID, Start: c.Start, End: c.End, Completed: completed}
	o.labels[c.ID] = c.Label
}

func (o *Overlay) remove(id ID) {
	if _, exists := o.segments[id]; !exists {
		return
	}
	delete(o.segments, id)
	delete(o.labels, id)
	for i, existing := range o.order {
		if existing == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}
