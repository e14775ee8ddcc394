package rocket

import (
	"github.com/pthm-cable/rockets/genetics"
	"github.com/pthm-cable/rockets/scenario"
)

// Fly runs one rocket with the given genome through a whole generation on the
// same schedule the game driver uses: update then evaluate every tick, with the
// impulse index advancing every ImpulseInterval ticks. It returns the rocket
// in its final state.
func Fly(sc *scenario.Scenario, g *genetics.Genome) *Rocket {
	r := New(sc.Spawn(), sc.Body(), sc.GenomeSize())
	r.SetGenome(g)

	target := sc.TargetPosition()
	interval := sc.ImpulseInterval()
	for tick := 0; tick < sc.TicksPerGeneration(); tick++ {
		r.Update(sc, tick/interval)
		r.FindFitness(target)
	}
	return r
}
