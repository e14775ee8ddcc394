// Package rocket implements a single evolving agent: its Euler physics,
// collision and success detection, and fitness scoring.
package rocket

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/genetics"
	"github.com/pthm-cable/rockets/scenario"
	"github.com/pthm-cable/rockets/vector"
)

// Fitness constants
const (
	fitnessScale      = 1000.0
	fitnessExponent   = 1.5
	successMultiplier = 3.0
)

// Rocket is one agent. It owns its genome exclusively.
type Rocket struct {
	Position     vector.Vector2
	Velocity     vector.Vector2
	Acceleration vector.Vector2
	Force        vector.Vector2

	Body    components.Body
	Status  components.Status
	Landed  bool    // touched the target in the tick it crashed; frozen with Status
	Fitness float64 // best fitness observed this generation

	genome *genetics.Genome
}

// New creates a resting rocket at spawn with a zeroed genome of geneSize impulses.
func New(spawn vector.Vector2, body components.Body, geneSize int) *Rocket {
	return &Rocket{
		Position: spawn,
		Body:     body,
		Status:   components.StatusAlive,
		genome:   genetics.NewGenome(geneSize),
	}
}

// Initiate gives the rocket a random genome.
func (r *Rocket) Initiate(rng *rand.Rand) {
	r.genome.Randomize(rng)
}

// Breed replaces the rocket's genome with a crossover of two parent genomes.
func (r *Rocket) Breed(p1, p2 *genetics.Genome, rng *rand.Rand) {
	r.genome.SetGenes(genetics.Breed(p1, p2, rng).Genes())
}

// SetGenome replaces the genome wholesale.
func (r *Rocket) SetGenome(g *genetics.Genome) {
	r.genome.SetGenes(g.Genes())
}

// Genome returns the rocket's genome. Callers must not modify it.
func (r *Rocket) Genome() *genetics.Genome {
	return r.genome
}

// Bounds returns the rocket's bounding box at its current position.
func (r *Rocket) Bounds() components.Rect {
	return r.Body.At(r.Position.X, r.Position.Y)
}

// Heading returns the direction of travel in [0, 2π).
func (r *Rocket) Heading() float64 {
	return r.Velocity.Angle()
}

// Update advances the rocket by one tick using the impulse at index.
//
// Collision and success checks run against the position at the start of the
// tick. A rocket that hits a wall or obstacle dies; one that touches the
// target succeeds. When both happen in the same tick the rocket dies but is
// marked Landed, so it still earns the success multiplier. Any
// status change skips integration for this tick, and non-alive rockets never
// move again.
func (r *Rocket) Update(sc *scenario.Scenario, index int) {
	if !r.Status.Alive() {
		return
	}

	box := r.Bounds()
	dead := !sc.InBounds(box)
	sc.EachObstacle(func(o components.Rect) bool {
		if box.Overlaps(o) {
			dead = true
			return false
		}
		return true
	})
	succeeded := box.Overlaps(sc.Target())

	switch {
	case dead:
		r.Status = components.StatusDead
		r.Landed = succeeded
		return
	case succeeded:
		r.Status = components.StatusSucceeded
		return
	}

	// Force reaches acceleration one tick after it is read from the genome.
	r.Position.Add(r.Velocity)
	r.Velocity.Add(r.Acceleration)
	r.Acceleration.Set(r.Force)
	r.Force.Set(r.genome.At(index))
}

// FindFitness scores the rocket by its distance to target and keeps the best
// score seen so far. A rocket sitting exactly on target scores +Inf.
// Dead rockets lose the exponent; rockets that reached the target are
// tripled.
func (r *Rocket) FindFitness(target vector.Vector2) {
	r.ratchet(Score(r.Status, r.Reached(), vector.Distance(r.Position, target)))
}

// Reached reports whether the rocket touched the target, including a crash
// that landed on it.
func (r *Rocket) Reached() bool {
	return r.Status == components.StatusSucceeded || r.Landed
}

func (r *Rocket) ratchet(candidate float64) {
	if candidate > r.Fitness {
		r.Fitness = candidate
	}
}

// Score is the fitness formula for a rocket with the given status at
// distance d from the target. Dead rockets lose the exponent and rockets that
// reached the target are tripled; a crash on the target gets both.
func Score(status components.Status, reached bool, d float64) float64 {
	base := fitnessScale / d
	score := base
	if status != components.StatusDead {
		score = math.Pow(base, fitnessExponent)
	}
	if reached {
		score *= successMultiplier
	}
	return score
}
