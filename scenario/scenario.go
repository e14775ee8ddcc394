// Package scenario describes the fixed world a generation of rockets flies in:
// arena bounds, target, obstacles, spawn point and the generation schedule.
package scenario

import (
	"fmt"

	"github.com/pthm-cable/rockets/components"
	"github.com/pthm-cable/rockets/config"
	"github.com/pthm-cable/rockets/vector"
)

// Default sizes.
const (
	DefaultPopulationSize  = 100
	DefaultGenomeSize      = 25
	DefaultImpulseInterval = 15
	DefaultRocketWidth     = 20
	DefaultRocketHeight    = 5
	DefaultSpawnX          = 30
)

// Scenario is immutable once built. Accessors return copies so callers
// cannot alter the layout.
type Scenario struct {
	width, height   float64
	target          components.Rect
	obstacles       []components.Rect
	spawn           vector.Vector2
	body            components.Body
	populationSize  int
	genomeSize      int
	impulseInterval int
}

// Params holds the sizing knobs of a scenario. The obstacle and target
// layout is not configurable.
type Params struct {
	Width, Height   float64
	PopulationSize  int
	GenomeSize      int
	ImpulseInterval int
	Body            components.Body
	SpawnX          float64
}

// DefaultParams returns the classic 100-rocket, 25-gene setup in the given arena.
func DefaultParams(width, height float64) Params {
	return Params{
		Width:           width,
		Height:          height,
		PopulationSize:  DefaultPopulationSize,
		GenomeSize:      DefaultGenomeSize,
		ImpulseInterval: DefaultImpulseInterval,
		Body:            components.Body{Width: DefaultRocketWidth, Height: DefaultRocketHeight},
		SpawnX:          DefaultSpawnX,
	}
}

// New builds a scenario with the fixed target and obstacle layout.
func New(p Params) (*Scenario, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	h := p.Height
	return &Scenario{
		width:  p.Width,
		height: h,
		target: components.Rect{X: 1200, Y: 600, W: 100, H: 100},
		obstacles: []components.Rect{
			{X: 300, Y: h/2 - 100, W: 50, H: 600},
			{X: 700, Y: 0, W: 50, H: 350},
			{X: 900, Y: 500, W: 50, H: 200},
		},
		spawn:           vector.New(p.SpawnX, h/2),
		body:            p.Body,
		populationSize:  p.PopulationSize,
		genomeSize:      p.GenomeSize,
		impulseInterval: p.ImpulseInterval,
	}, nil
}

// Default returns the classic scenario in the given arena.
func Default(width, height float64) *Scenario {
	s, err := New(DefaultParams(width, height))
	if err != nil {
		panic(fmt.Sprintf("scenario: default params invalid: %v", err))
	}
	return s
}

// FromConfig builds a scenario from the loaded configuration.
func FromConfig(cfg *config.Config) (*Scenario, error) {
	return New(Params{
		Width:           cfg.Arena.Width,
		Height:          cfg.Arena.Height,
		PopulationSize:  cfg.Population.Size,
		GenomeSize:      cfg.Genome.Size,
		ImpulseInterval: cfg.Genome.ImpulseInterval,
		Body:            components.Body{Width: cfg.Rocket.Width, Height: cfg.Rocket.Height},
		SpawnX:          cfg.Rocket.SpawnX,
	})
}

func (p Params) validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("scenario: arena must be positive, got %vx%v", p.Width, p.Height)
	case p.PopulationSize <= 0:
		return fmt.Errorf("scenario: population size must be positive, got %d", p.PopulationSize)
	case p.GenomeSize <= 0:
		return fmt.Errorf("scenario: genome size must be positive, got %d", p.GenomeSize)
	case p.ImpulseInterval <= 0:
		return fmt.Errorf("scenario: impulse interval must be positive, got %d", p.ImpulseInterval)
	case p.Body.Width <= 0 || p.Body.Height <= 0:
		return fmt.Errorf("scenario: rocket body must be positive, got %vx%v", p.Body.Width, p.Body.Height)
	}
	return nil
}

// Width returns the arena width.
func (s *Scenario) Width() float64 { return s.width }

// Height returns the arena height.
func (s *Scenario) Height() float64 { return s.height }

// Target returns the target rectangle.
func (s *Scenario) Target() components.Rect { return s.target }

// TargetPosition is the point fitness distances are measured to: the
// target's top-left corner.
func (s *Scenario) TargetPosition() vector.Vector2 {
	return vector.New(s.target.X, s.target.Y)
}

// Obstacles returns a copy of the obstacle rectangles.
func (s *Scenario) Obstacles() []components.Rect {
	out := make([]components.Rect, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// EachObstacle calls fn for every obstacle without allocating.
func (s *Scenario) EachObstacle(fn func(components.Rect) bool) {
	for _, o := range s.obstacles {
		if !fn(o) {
			return
		}
	}
}

// Spawn returns the point every rocket starts from.
func (s *Scenario) Spawn() vector.Vector2 { return s.spawn }

// Body returns the rocket footprint.
func (s *Scenario) Body() components.Body { return s.body }

// PopulationSize returns the number of rockets per generation.
func (s *Scenario) PopulationSize() int { return s.populationSize }

// GenomeSize returns the number of impulses per genome.
func (s *Scenario) GenomeSize() int { return s.genomeSize }

// ImpulseInterval returns how many ticks each impulse index is held.
func (s *Scenario) ImpulseInterval() int { return s.impulseInterval }

// TicksPerGeneration returns the tick budget of one generation.
func (s *Scenario) TicksPerGeneration() int {
	return s.genomeSize * s.impulseInterval
}

// InBounds reports whether r lies inside the arena.
func (s *Scenario) InBounds(r components.Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= s.width && r.Y+r.H <= s.height
}
