// Package evolution runs a generation of rockets and breeds the next one.
package evolution

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/rockets/genetics"
	"github.com/pthm-cable/rockets/rocket"
	"github.com/pthm-cable/rockets/scenario"
)

// ErrEmptyBreedingPool is returned by Repopulate when no rocket has a
// breeding weight, i.e. every fitness is below 1.
var ErrEmptyBreedingPool = errors.New("evolution: breeding pool is empty")

// maxBreedingWeight caps a single rocket's weight so an infinite fitness
// (a rocket exactly on the target point) still yields a finite pool.
const maxBreedingWeight = math.MaxInt32

// Options tunes how a Population spreads work over goroutines.
type Options struct {
	ParallelThreshold int // rockets needed before Step/Evaluate go parallel
	Workers           int // 0 = GOMAXPROCS
}

// Population owns the current generation of rockets.
//
// Step and Evaluate are each a barrier over the whole generation. Repopulate
// must not run concurrently with either; the game driver calls all three
// from one goroutine.
type Population struct {
	sc      *scenario.Scenario
	rng     *rand.Rand
	rockets []*rocket.Rocket

	threshold int
	pool      *workerPool

	// scratch for Repopulate
	weights    []float64
	cumulative []float64
}

// New creates an empty population for sc. Call Populate before stepping.
func New(sc *scenario.Scenario, rng *rand.Rand, opts Options) *Population {
	threshold := opts.ParallelThreshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	return &Population{
		sc:        sc,
		rng:       rng,
		threshold: threshold,
		pool:      newWorkerPool(opts.Workers),
	}
}

// Populate discards any rockets and spawns a fresh random generation.
func (p *Population) Populate() {
	n := p.sc.PopulationSize()
	rockets := make([]*rocket.Rocket, n)
	for i := range rockets {
		r := p.spawn()
		r.Initiate(p.rng)
		rockets[i] = r
	}
	p.rockets = rockets
}

func (p *Population) spawn() *rocket.Rocket {
	return rocket.New(p.sc.Spawn(), p.sc.Body(), p.sc.GenomeSize())
}

// Step advances every rocket one tick using the shared impulse index.
func (p *Population) Step(index int) {
	p.forEach(func(i int) {
		p.rockets[i].Update(p.sc, index)
	})
}

// Evaluate updates every rocket's fitness.
func (p *Population) Evaluate() {
	target := p.sc.TargetPosition()
	p.forEach(func(i int) {
		p.rockets[i].FindFitness(target)
	})
}

// forEach runs fn for every rocket index, in parallel for large populations.
// Rockets never touch each other's state, so chunks need no locking.
func (p *Population) forEach(fn func(i int)) {
	n := len(p.rockets)
	if n == 0 {
		return
	}
	if n < p.threshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	p.pool.run(n, fn)
}

// BreedingWeight is the number of breeding-pool entries a rocket with the
// given fitness receives: floor(fitness), or zero for non-positive or NaN
// fitness.
func BreedingWeight(fitness float64) float64 {
	if !(fitness > 0) {
		return 0
	}
	w := math.Floor(fitness)
	if w > maxBreedingWeight {
		w = maxBreedingWeight
	}
	return w
}

// Repopulate replaces the generation with children bred from the current one.
//
// Each rocket enters the breeding pool BreedingWeight(fitness) times; both
// parents of every child are drawn uniformly from the pool with replacement,
// so a rocket may be paired with itself. The pool is never materialised:
// drawing an entry uniformly is done by searching cumulative weights.
func (p *Population) Repopulate() error {
	n := len(p.rockets)
	if cap(p.weights) < n {
		p.weights = make([]float64, n)
		p.cumulative = make([]float64, n)
	}
	p.weights = p.weights[:n]
	p.cumulative = p.cumulative[:n]

	for i, r := range p.rockets {
		p.weights[i] = BreedingWeight(r.Fitness)
	}
	floats.CumSum(p.cumulative, p.weights)

	var total float64
	if n > 0 {
		total = p.cumulative[n-1]
	}
	if total < 1 {
		return fmt.Errorf("repopulating %d rockets: %w", n, ErrEmptyBreedingPool)
	}

	children := make([]*rocket.Rocket, p.sc.PopulationSize())
	for i := range children {
		a := p.rockets[p.pick(total)]
		b := p.rockets[p.pick(total)]
		child := p.spawn()
		child.Breed(a.Genome(), b.Genome(), p.rng)
		children[i] = child
	}
	p.rockets = children
	return nil
}

// Reseed replaces the generation with children bred from parents chosen
// uniformly from the given genomes. With no usable genome it falls back to
// Populate. The driver uses it to restart after ErrEmptyBreedingPool.
func (p *Population) Reseed(parents []*genetics.Genome) {
	usable := parents[:0:0]
	for _, g := range parents {
		if g != nil && g.Len() == p.sc.GenomeSize() {
			usable = append(usable, g)
		}
	}
	if len(usable) == 0 {
		p.Populate()
		return
	}

	children := make([]*rocket.Rocket, p.sc.PopulationSize())
	for i := range children {
		a := usable[p.rng.Intn(len(usable))]
		b := usable[p.rng.Intn(len(usable))]
		child := p.spawn()
		child.Breed(a, b, p.rng)
		children[i] = child
	}
	p.rockets = children
}

// pick draws one breeding-pool entry and returns the index of its rocket.
func (p *Population) pick(total float64) int {
	entry := float64(p.rng.Int63n(int64(total)))
	return sort.Search(len(p.cumulative), func(i int) bool {
		return p.cumulative[i] > entry
	})
}

// BreedingPoolSize returns how many entries the breeding pool would hold if
// Repopulate ran now.
func (p *Population) BreedingPoolSize() int64 {
	var total int64
	for _, r := range p.rockets {
		total += int64(BreedingWeight(r.Fitness))
	}
	return total
}

// Rockets returns the current generation. The slice and the rockets are
// owned by the population; renderers and telemetry must treat them as
// read-only.
func (p *Population) Rockets() []*rocket.Rocket {
	return p.rockets
}

// Len returns the number of rockets in the current generation.
func (p *Population) Len() int {
	return len(p.rockets)
}

// Scenario returns the scenario the population flies in.
func (p *Population) Scenario() *scenario.Scenario {
	return p.sc
}

// Close stops the worker goroutines.
func (p *Population) Close() {
	p.pool.stop()
}
