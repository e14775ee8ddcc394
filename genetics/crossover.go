package genetics

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pthm-cable/rockets/vector"
)

// MutationSchedule returns the probability that the gene at index is
// replaced by a fresh random impulse during crossover.
type MutationSchedule func(index int) float64

// DecayingMutation mutates early genes more often than late ones:
// p(i) = 0.5 / sqrt(i + 20).
func DecayingMutation(index int) float64 {
	return 0.5 / math.Sqrt(float64(index+20))
}

// NoMutation never mutates.
func NoMutation(int) float64 {
	return 0
}

// Crossover builds a child genome: genes before split come from p1, the rest
// from p2, and each gene is independently replaced by a random impulse with
// probability schedule(index).
func Crossover(p1, p2 *Genome, split int, rng *rand.Rand, schedule MutationSchedule) *Genome {
	if p1.size != p2.size {
		panic(fmt.Sprintf("genetics: crossover of genomes with sizes %d and %d", p1.size, p2.size))
	}
	if split < 0 || split > p1.size {
		panic(fmt.Sprintf("genetics: split %d outside [0, %d]", split, p1.size))
	}

	genes := make([]vector.Vector2, p1.size)
	for i := range genes {
		source := p2
		if i < split {
			source = p1
		}
		if rng.Float64() < schedule(i) {
			genes[i] = RandomImpulse(rng)
		} else {
			genes[i] = source.genes[i]
		}
	}

	child := NewGenome(p1.size)
	child.SetGenes(genes)
	return child
}

// Breed crosses two parents at a uniformly random split in [0, size) using
// the decaying mutation schedule.
func Breed(p1, p2 *Genome, rng *rand.Rand) *Genome {
	split := rng.Intn(p1.size)
	return Crossover(p1, p2, split, rng, DecayingMutation)
}
