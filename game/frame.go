package game

import (
	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/vector"
)

// RocketView is the read-only state of one rocket for rendering.
type RocketView struct {
	Position vector.Vector2
	Bounds   components.Rect
	Heading  float64 // radians, counter-clockwise with y pointing down
	Status   components.Status
	Landed   bool // crashed while touching the target
	Fitness  float64
}

// Frame is a snapshot of the simulation a renderer can draw without touching
// the live population.
type Frame struct {
	Generation   int
	Tick         int64
	ImpulseIndex int
	GenomeSize   int
	Paused       bool
	Speed        int

	Rockets []RocketView

	Alive, Dead, Succeeded int
	BestFitness            float64
}

// Frame copies the current state into a new Frame.
func (g *Game) Frame() Frame {
	var f Frame
	g.FrameInto(&f)
	return f
}

// FrameInto fills f with the current state, reusing its rocket slice.
func (g *Game) FrameInto(f *Frame) {
	rockets := g.pop.Rockets()
	*f = Frame{
		Generation:   g.generation,
		Tick:         g.tick,
		ImpulseIndex: g.index,
		GenomeSize:   g.sc.GenomeSize(),
		Paused:       g.paused,
		Speed:        g.speed,
		Rockets:      f.Rockets[:0],
	}
	for _, r := range rockets {
		switch r.Status {
		case components.StatusAlive:
			f.Alive++
		case components.StatusDead:
			f.Dead++
		case components.StatusSucceeded:
			f.Succeeded++
		}
		if r.Fitness > f.BestFitness {
			f.BestFitness = r.Fitness
		}
		f.Rockets = append(f.Rockets, RocketView{
			Position: r.Position,
			Bounds:   r.Bounds(),
			Heading:  r.Heading(),
			Status:   r.Status,
			Landed:   r.Landed,
			Fitness:  r.Fitness,
		})
	}
}
