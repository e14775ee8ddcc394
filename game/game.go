// Package game drives the simulation: it advances the population tick by
// tick, schedules the impulse index and breeds a new generation when the
// genome is exhausted.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/rockets/config"
	"github.com/pthm-cable/rockets/evolution"
	"github.com/pthm-cable/rockets/genetics"
	"github.com/pthm-cable/rockets/scenario"
	"github.com/pthm-cable/rockets/telemetry"
)

// Game holds the complete simulation state. All methods must be called from
// one goroutine.
type Game struct {
	cfg  *config.Config
	opts Options

	sc  *scenario.Scenario
	pop *evolution.Population
	rng *rand.Rand

	// Clock
	tick       int64 // total ticks since start
	frame      int   // ticks into the current generation
	index      int   // impulse index shared by every rocket
	generation int
	reseeds    int

	// Graphical loop control
	paused bool
	speed  int

	// Telemetry
	collector     *telemetry.Collector
	perf          *telemetry.PerfCollector
	bookmarks     *telemetry.BookmarkDetector
	hallOfFame    *telemetry.HallOfFame
	outputManager *telemetry.OutputManager
	lastStats     *telemetry.GenerationStats
}

// New creates a game from the configuration and spawns generation 0.
func New(cfg *config.Config, opts Options) (*Game, error) {
	sc, err := scenario.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("building scenario: %w", err)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}
	if om != nil {
		slog.Info("writing output", "dir", om.Dir())
	}

	speed := opts.StepsPerUpdate
	if speed < MinSpeed {
		speed = MinSpeed
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g := &Game{
		cfg:  cfg,
		opts: opts,
		sc:   sc,
		rng:  rng,
		pop: evolution.New(sc, rng, evolution.Options{
			ParallelThreshold: cfg.Evolution.ParallelThreshold,
			Workers:           cfg.Evolution.Workers,
		}),
		speed:     speed,
		collector: telemetry.NewCollector(),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		bookmarks: telemetry.NewBookmarkDetector(
			cfg.Telemetry.BookmarkHistory,
			cfg.Telemetry.BreakthroughMultiplier,
			cfg.Telemetry.ConvergenceFraction,
		),
		hallOfFame:    telemetry.NewHallOfFame(cfg.Telemetry.HallOfFameSize),
		outputManager: om,
	}
	g.pop.Populate()
	return g, nil
}

// Step advances the simulation by one tick: every rocket moves with the
// current impulse, fitness is re-evaluated, the clock advances and, once the
// genome is exhausted, the next generation is bred.
func (g *Game) Step() error {
	g.perf.StartTick()
	defer g.perf.EndTick()

	g.perf.StartPhase(telemetry.PhaseStep)
	g.pop.Step(g.index)

	g.perf.StartPhase(telemetry.PhaseEvaluate)
	g.pop.Evaluate()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.tick++
	g.frame++
	g.collector.Observe(g.tick, g.pop.Rockets())

	if g.frame%g.sc.ImpulseInterval() == 0 {
		g.index++
	}
	if g.index >= g.sc.GenomeSize() {
		return g.endGeneration()
	}
	return nil
}

// endGeneration records the finished generation and breeds the next one.
func (g *Game) endGeneration() error {
	rockets := g.pop.Rockets()
	stats := g.collector.Flush(g.tick, rockets, g.sc.TargetPosition(), g.pop.BreedingPoolSize())
	g.hallOfFame.Consider(stats.Generation, rockets)
	g.recordGeneration(stats)

	g.perf.StartPhase(telemetry.PhaseRepopulate)
	if err := g.repopulate(); err != nil {
		return fmt.Errorf("generation %d: %w", stats.Generation, err)
	}

	g.generation++
	g.index = 0
	g.frame = 0
	return nil
}

// repopulate breeds the next generation. An empty breeding pool restarts
// evolution from the hall of fame instead of stopping the run.
func (g *Game) repopulate() error {
	err := g.pop.Repopulate()
	if err == nil {
		return nil
	}
	if !errors.Is(err, evolution.ErrEmptyBreedingPool) {
		return err
	}

	entries := g.hallOfFame.Entries()
	slog.Warn("breeding pool empty, reseeding",
		"generation", g.generation,
		"hall_of_fame", len(entries),
	)
	parents := make([]*genetics.Genome, 0, len(entries))
	for _, e := range entries {
		parents = append(parents, e.Genome())
	}
	g.pop.Reseed(parents)
	g.reseeds++
	return nil
}

// Tick returns the number of ticks simulated since the start.
func (g *Game) Tick() int64 {
	return g.tick
}

// Generation returns the index of the generation currently flying.
func (g *Game) Generation() int {
	return g.generation
}

// ImpulseIndex returns the genome index every rocket is currently reading.
func (g *Game) ImpulseIndex() int {
	return g.index
}

// Reseeds returns how many times the breeding pool was empty and evolution
// restarted from the hall of fame.
func (g *Game) Reseeds() int {
	return g.reseeds
}

// Scenario returns the world the rockets fly in.
func (g *Game) Scenario() *scenario.Scenario {
	return g.sc
}

// Population returns the population engine. Callers must treat it as
// read-only.
func (g *Game) Population() *evolution.Population {
	return g.pop
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Perf returns the current performance window.
func (g *Game) Perf() telemetry.PerfStats {
	return g.perf.Stats()
}

// RecordFrame records frame timing for the graphical loop.
func (g *Game) RecordFrame() {
	g.perf.RecordFrame()
}

// LastGeneration returns the stats of the most recently finished generation.
func (g *Game) LastGeneration() (telemetry.GenerationStats, bool) {
	if g.lastStats == nil {
		return telemetry.GenerationStats{}, false
	}
	return *g.lastStats, true
}

// HallOfFame returns the best genomes seen so far.
func (g *Game) HallOfFame() *telemetry.HallOfFame {
	return g.hallOfFame
}

// Close writes the hall of fame, closes output files and stops workers.
func (g *Game) Close() error {
	g.pop.Close()
	if err := g.outputManager.WriteHallOfFame(g.hallOfFame); err != nil {
		slog.Error("failed to write hall of fame", "error", err)
	}
	return g.outputManager.Close()
}
