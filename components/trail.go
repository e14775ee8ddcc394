package components

// Trail is an exhaust puff left behind a flying rocket. Age and Life are in
// frames; the puff is removed once Age reaches Life.
type Trail struct {
	Age    int32
	Life   int32
	Status Status
}

// Fade returns the remaining opacity in [0, 1].
func (t Trail) Fade() float32 {
	if t.Life <= 0 {
		return 0
	}
	f := 1 - float32(t.Age)/float32(t.Life)
	if f < 0 {
		return 0
	}
	return f
}
