package game

// Paused reports whether Advance is currently a no-op.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused pauses or resumes the graphical loop.
func (g *Game) SetPaused(p bool) {
	g.paused = p
}

// TogglePause flips the pause state.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Speed returns the number of ticks each Advance runs.
func (g *Game) Speed() int {
	return g.speed
}

// SetSpeed sets the ticks per Advance, clamped to [MinSpeed, MaxSpeed].
func (g *Game) SetSpeed(s int) {
	g.speed = min(max(s, MinSpeed), MaxSpeed)
}

// Advance runs Speed ticks unless paused. It is called once per rendered
// frame.
func (g *Game) Advance() error {
	if g.paused {
		return nil
	}
	for i := 0; i < g.speed; i++ {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}
