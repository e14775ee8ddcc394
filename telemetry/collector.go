// Package telemetry provides generation statistics, bookmarking, performance
// tracking and structured experiment output.
package telemetry

import (
	"math"

	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/rocket"
	"github.com/pthm-cable/rockets/vector"
)

// Collector watches a generation tick by tick and produces GenerationStats
// when it ends.
type Collector struct {
	generation int
	startTick  int64

	// Status per rocket at the last Observe, for transition detection
	last []components.Status

	firstSuccess int
	firstDeath   int

	fitness []float64 // scratch
}

// NewCollector creates a collector for generation 0 starting at tick 0.
func NewCollector() *Collector {
	c := &Collector{}
	c.reset(0, 0)
	return c
}

func (c *Collector) reset(generation int, startTick int64) {
	c.generation = generation
	c.startTick = startTick
	c.last = c.last[:0]
	c.firstSuccess = -1
	c.firstDeath = -1
}

// Observe records status transitions after a tick. tick is the global tick
// counter after the step.
func (c *Collector) Observe(tick int64, rockets []*rocket.Rocket) {
	if len(c.last) != len(rockets) {
		c.last = c.last[:0]
		for range rockets {
			c.last = append(c.last, components.StatusAlive)
		}
	}

	local := int(tick - c.startTick)
	for i, r := range rockets {
		if r.Status == c.last[i] {
			continue
		}
		switch r.Status {
		case components.StatusDead:
			if c.firstDeath < 0 {
				c.firstDeath = local
			}
		case components.StatusSucceeded:
			if c.firstSuccess < 0 {
				c.firstSuccess = local
			}
		}
		c.last[i] = r.Status
	}
}

// Generation returns the generation currently being observed.
func (c *Collector) Generation() int {
	return c.generation
}

// Flush produces stats for the generation that just ended and starts
// tracking the next one. It must be called before the population is
// replaced.
func (c *Collector) Flush(endTick int64, rockets []*rocket.Rocket, target vector.Vector2, breedingPool int64) GenerationStats {
	s := GenerationStats{
		Generation:       c.generation,
		EndTick:          endTick,
		Rockets:          len(rockets),
		BreedingPool:     breedingPool,
		FirstSuccessTick: c.firstSuccess,
		FirstDeathTick:   c.firstDeath,
		BestDistance:     math.Inf(1),
	}

	c.fitness = c.fitness[:0]
	for _, r := range rockets {
		switch r.Status {
		case components.StatusAlive:
			s.Alive++
		case components.StatusDead:
			s.Dead++
		case components.StatusSucceeded:
			s.Succeeded++
		}
		c.fitness = append(c.fitness, r.Fitness)
		if d := vector.Distance(r.Position, target); d < s.BestDistance {
			s.BestDistance = d
		}
	}
	if len(rockets) == 0 {
		s.BestDistance = 0
	}

	sum := SummarizeFitness(c.fitness)
	s.FitnessMean = sum.Mean
	s.FitnessStd = sum.Std
	s.FitnessP10 = sum.P10
	s.FitnessP50 = sum.P50
	s.FitnessP90 = sum.P90
	s.FitnessMax = sum.Max

	c.reset(c.generation+1, endTick)
	return s
}
