// Package systems holds ECS systems that run alongside the simulation
// without feeding back into it.
package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/game"
)

// Trail tuning
const (
	exhaustSpeed = 0.6  // puff speed relative to the rocket, pixels per frame
	trailDrag    = 0.92 // velocity retained per frame
	burstPuffs   = 8    // puffs emitted when a rocket crashes or lands
	burstSpeed   = 1.5
)

// TrailSystem keeps exhaust puffs as entities in an ark world. It only reads
// frames and never touches the simulation.
type TrailSystem struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Trail]
	filter *ecs.Filter3[components.Position, components.Velocity, components.Trail]

	life  int32
	every int

	frame      int
	generation int
	last       []components.Status // rocket statuses at the previous Update
	expired    []ecs.Entity        // scratch
}

// NewTrailSystem creates a trail world. Puffs live for life frames and each
// flying rocket emits one every `every` frames.
func NewTrailSystem(life, every int) *TrailSystem {
	if life < 1 {
		life = 1
	}
	if every < 1 {
		every = 1
	}
	world := ecs.NewWorld()
	return &TrailSystem{
		world:      world,
		mapper:     ecs.NewMap3[components.Position, components.Velocity, components.Trail](world),
		filter:     ecs.NewFilter3[components.Position, components.Velocity, components.Trail](world),
		life:       int32(life),
		every:      every,
		generation: -1,
	}
}

// Update ages and moves every puff, removes expired ones and emits new puffs
// for the rockets in f. A new generation clears all trails.
func (s *TrailSystem) Update(f *game.Frame) {
	if f.Generation != s.generation {
		s.Clear()
		s.generation = f.Generation
		s.last = s.last[:0]
	}

	s.age()
	s.emit(f)
	s.frame++
}

func (s *TrailSystem) age() {
	s.expired = s.expired[:0]
	query := s.filter.Query()
	for query.Next() {
		pos, vel, trail := query.Get()
		trail.Age++
		if trail.Age >= trail.Life {
			s.expired = append(s.expired, query.Entity())
			continue
		}
		pos.X += vel.X
		pos.Y += vel.Y
		vel.X *= trailDrag
		vel.Y *= trailDrag
	}
	for _, e := range s.expired {
		s.world.RemoveEntity(e)
	}
}

func (s *TrailSystem) emit(f *game.Frame) {
	if len(s.last) != len(f.Rockets) {
		s.last = s.last[:0]
		for range f.Rockets {
			s.last = append(s.last, components.StatusAlive)
		}
	}

	puff := s.frame%s.every == 0
	for i := range f.Rockets {
		r := &f.Rockets[i]
		if r.Status != s.last[i] {
			s.burst(r)
			s.last[i] = r.Status
		}
		if puff && r.Status == components.StatusAlive {
			s.exhaust(r)
		}
	}
}

// exhaust emits one puff at the tail of a flying rocket, drifting backwards.
func (s *TrailSystem) exhaust(r *game.RocketView) {
	cx, cy := r.Bounds.Center()
	dx, dy := headingDir(r.Heading)
	tail := r.Bounds.W / 2
	pos := components.Position{X: float32(cx - dx*tail), Y: float32(cy - dy*tail)}
	vel := components.Velocity{X: float32(-dx * exhaustSpeed), Y: float32(-dy * exhaustSpeed)}
	trail := components.Trail{Life: s.life, Status: components.StatusAlive}
	s.mapper.NewEntity(&pos, &vel, &trail)
}

// burst emits a ring of puffs where a rocket crashed or landed.
func (s *TrailSystem) burst(r *game.RocketView) {
	cx, cy := r.Bounds.Center()
	for k := 0; k < burstPuffs; k++ {
		a := 2 * math.Pi * float64(k) / burstPuffs
		pos := components.Position{X: float32(cx), Y: float32(cy)}
		vel := components.Velocity{X: float32(math.Cos(a) * burstSpeed), Y: float32(math.Sin(a) * burstSpeed)}
		trail := components.Trail{Life: s.life, Status: r.Status}
		s.mapper.NewEntity(&pos, &vel, &trail)
	}
}

// headingDir returns the screen-space unit vector of a heading measured
// counter-clockwise with y pointing down.
func headingDir(heading float64) (dx, dy float64) {
	return math.Cos(heading), -math.Sin(heading)
}

// Each calls fn for every live puff.
func (s *TrailSystem) Each(fn func(pos components.Position, trail components.Trail)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, trail := query.Get()
		fn(*pos, *trail)
	}
}

// Count returns the number of live puffs.
func (s *TrailSystem) Count() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Clear removes every puff.
func (s *TrailSystem) Clear() {
	s.expired = s.expired[:0]
	query := s.filter.Query()
	for query.Next() {
		s.expired = append(s.expired, query.Entity())
	}
	for _, e := range s.expired {
		s.world.RemoveEntity(e)
	}
}
