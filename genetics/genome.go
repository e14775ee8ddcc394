// Package genetics holds rocket genomes and the crossover operator that breeds them.
//
// A genome is the full lifetime control policy of one rocket: a fixed-length
// sequence of force impulses, one per impulse interval of a generation.
package genetics

import (
	"fmt"
	"math/rand"

	"github.com/pthm-cable/rockets/vector"
)

// impulseSpread scales a centred uniform draw into [-1/6, 1/6].
const impulseSpread = 3.0

// RandomImpulse draws one impulse with each component uniform in [-1/6, 1/6].
func RandomImpulse(rng *rand.Rand) vector.Vector2 {
	return vector.Vector2{
		X: (rng.Float64() - 0.5) / impulseSpread,
		Y: (rng.Float64() - 0.5) / impulseSpread,
	}
}

// Genome is a fixed-length sequence of impulses.
type Genome struct {
	size  int
	genes []vector.Vector2
}

// NewGenome creates a zeroed genome of the given length.
func NewGenome(size int) *Genome {
	return &Genome{
		size:  size,
		genes: make([]vector.Vector2, size),
	}
}

// Randomize replaces every gene with a fresh random impulse.
func (g *Genome) Randomize(rng *rand.Rand) {
	genes := make([]vector.Vector2, g.size)
	for i := range genes {
		genes[i] = RandomImpulse(rng)
	}
	g.genes = genes
}

// SetGenes replaces the sequence wholesale. Passing a sequence of the wrong
// length is a programming error and panics.
func (g *Genome) SetGenes(genes []vector.Vector2) {
	if len(genes) != g.size {
		panic(fmt.Sprintf("genetics: SetGenes got %d genes, genome size is %d", len(genes), g.size))
	}
	g.genes = genes
}

// Len returns the genome length.
func (g *Genome) Len() int {
	return g.size
}

// At returns the impulse at index i.
func (g *Genome) At(i int) vector.Vector2 {
	return g.genes[i]
}

// Genes returns a copy of the impulse sequence.
func (g *Genome) Genes() []vector.Vector2 {
	out := make([]vector.Vector2, len(g.genes))
	copy(out, g.genes)
	return out
}

// Flatten returns the genes as [x0, y0, x1, y1, ...].
func (g *Genome) Flatten() []float64 {
	out := make([]float64, 0, 2*len(g.genes))
	for _, v := range g.genes {
		out = append(out, v.X, v.Y)
	}
	return out
}

// FromFlat builds a genome from [x0, y0, x1, y1, ...]. The slice must hold
// an even number of values.
func FromFlat(values []float64) *Genome {
	if len(values)%2 != 0 {
		panic(fmt.Sprintf("genetics: FromFlat needs an even count, got %d", len(values)))
	}
	g := NewGenome(len(values) / 2)
	for i := range g.genes {
		g.genes[i] = vector.New(values[2*i], values[2*i+1])
	}
	return g
}
