package main

import "github.com/pthm-cable/rockets/genetics"

// impulseLimit bounds every gene component, matching the range random genomes
// are drawn from.
const impulseLimit = 1.0 / 6

// GenomeSpace maps a flattened genome [x0, y0, x1, y1, ...] to and from the
// unit cube CMA-ES searches in.
type GenomeSpace struct {
	Genes int // impulses per genome
}

// Dim returns the number of optimized values.
func (s GenomeSpace) Dim() int {
	return 2 * s.Genes
}

// Normalize converts raw gene components to [0,1].
func (s GenomeSpace) Normalize(raw []float64) []float64 {
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = (v + impulseLimit) / (2 * impulseLimit)
	}
	return out
}

// Denormalize converts [0,1] values back to gene components, clamped to
// [-impulseLimit, impulseLimit].
func (s GenomeSpace) Denormalize(norm []float64) []float64 {
	out := make([]float64, len(norm))
	for i, v := range norm {
		out[i] = clamp(v*2*impulseLimit-impulseLimit, -impulseLimit, impulseLimit)
	}
	return out
}

// Genome builds a genome from normalized values.
func (s GenomeSpace) Genome(norm []float64) *genetics.Genome {
	return genetics.FromFlat(s.Denormalize(norm))
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
