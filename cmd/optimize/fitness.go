package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/rockets/rocket"
	"github.com/pthm-cable/rockets/scenario"
	"github.com/pthm-cable/rockets/telemetry"
)

// Evaluator flies candidate genomes through the scenario and keeps the best
// ones. It is safe for concurrent use.
type Evaluator struct {
	sc    *scenario.Scenario
	space GenomeSpace

	mu         sync.Mutex
	evals      int
	best       *rocket.Rocket
	hallOfFame *telemetry.HallOfFame
}

// NewEvaluator creates an evaluator keeping hallSize genomes.
func NewEvaluator(sc *scenario.Scenario, hallSize int) *Evaluator {
	return &Evaluator{
		sc:         sc,
		space:      GenomeSpace{Genes: sc.GenomeSize()},
		hallOfFame: telemetry.NewHallOfFame(hallSize),
	}
}

// Result is the outcome of one evaluation.
type Result struct {
	Eval    int
	Rocket  *rocket.Rocket
	Fitness float64
}

// Evaluate flies the genome encoded by x and returns its result. The
// objective CMA-ES minimizes is Objective(result).
func (e *Evaluator) Evaluate(x []float64) Result {
	r := rocket.Fly(e.sc, e.space.Genome(x))

	e.mu.Lock()
	defer e.mu.Unlock()
	e.evals++
	if e.best == nil || r.Fitness > e.best.Fitness {
		e.best = r
	}
	// The evaluation number stands in for the generation.
	e.hallOfFame.Consider(e.evals, []*rocket.Rocket{r})
	return Result{Eval: e.evals, Rocket: r, Fitness: r.Fitness}
}

// Objective turns a fitness into a finite value to minimize.
func Objective(fitness float64) float64 {
	if math.IsNaN(fitness) {
		return math.MaxFloat64
	}
	return -min(fitness, math.MaxFloat64)
}

// Best returns the fittest rocket flown so far, or nil.
func (e *Evaluator) Best() *rocket.Rocket {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.best
}

// HallOfFame returns the best distinct evaluations.
func (e *Evaluator) HallOfFame() *telemetry.HallOfFame {
	return e.hallOfFame
}
