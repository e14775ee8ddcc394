// Command optimize searches for a single genome that flies the configured
// scenario well, using CMA-ES over the flattened impulse sequence instead of
// the genetic algorithm.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/rockets/config"
	"github.com/pthm-cable/rockets/genetics"
	"github.com/pthm-cable/rockets/scenario"
	"github.com/pthm-cable/rockets/telemetry"
)

// EvalRecord is one row of optimize_log.csv.
type EvalRecord struct {
	Eval      int     `csv:"eval"`
	Fitness   float64 `csv:"fitness"`
	Status    string  `csv:"status"`
	Best      float64 `csv:"best_fitness"`
	ElapsedMS int64   `csv:"elapsed_ms"`
}

// evalLog appends EvalRecords to optimize_log.csv. Evaluations may run
// concurrently, so writes are serialized.
type evalLog struct {
	mu            sync.Mutex
	file          *os.File
	headerWritten bool
}

func (l *evalLog) write(rec EvalRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := []EvalRecord{rec}
	var err error
	if !l.headerWritten {
		err = gocsv.Marshal(records, l.file)
		l.headerWritten = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(records, l.file)
	}
	if err != nil {
		log.Printf("failed to write log row: %v", err)
	}
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxEvals := flag.Int("max-evals", 2000, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	concurrent := flag.Int("concurrent", 0, "Concurrent evaluations (0 = sequential)")
	stepSize := flag.Float64("step", 0.3, "Initial step size in normalized gene space")
	seed := flag.Int64("seed", 1, "Seed for the random starting genome")
	initPath := flag.String("init", "", "hall_of_fame.json whose best genome is the starting point")
	hallSize := flag.Int("hall-size", 10, "Genomes kept in the output hall of fame")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	sc, err := scenario.FromConfig(config.Cfg())
	if err != nil {
		log.Fatalf("failed to build scenario: %v", err)
	}

	start, err := startingGenome(sc, *initPath, *seed)
	if err != nil {
		log.Fatal(err)
	}

	evaluator := NewEvaluator(sc, *hallSize)
	space := evaluator.space
	dim := space.Dim()

	logFile, err := os.Create(filepath.Join(*outputDir, "optimize_log.csv"))
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()
	logger := &evalLog{file: logFile}

	startTime := time.Now()
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			res := evaluator.Evaluate(x)
			best := evaluator.Best()
			elapsed := time.Since(startTime)

			logger.write(EvalRecord{
				Eval:      res.Eval,
				Fitness:   res.Fitness,
				Status:    res.Rocket.Status.String(),
				Best:      best.Fitness,
				ElapsedMS: elapsed.Milliseconds(),
			})
			if res.Eval%100 == 0 {
				remaining := time.Duration(*maxEvals-res.Eval) * (elapsed / time.Duration(res.Eval))
				fmt.Printf("Eval %d/%d: fitness=%.1f (best=%.1f, %s) | elapsed: %s, ETA: %s\n",
					res.Eval, *maxEvals, res.Fitness, best.Fitness, best.Status,
					formatDuration(elapsed), formatDuration(remaining))
			}
			return Objective(res.Fitness)
		},
	}

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: *stepSize,
		Population:   popSize,
	}
	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      *concurrent,
	}

	fmt.Printf("Starting CMA-ES over %d genes (%d values), population=%d, max_evals=%d\n",
		sc.GenomeSize(), dim, popSize, *maxEvals)

	if _, err := optimize.Minimize(problem, space.Normalize(start.Flatten()), settings, method); err != nil {
		log.Printf("optimization ended: %v", err)
	}

	best := evaluator.Best()
	if best == nil {
		log.Fatal("no evaluations ran")
	}
	fmt.Printf("\nOptimization complete in %s\n", formatDuration(time.Since(startTime)))
	fmt.Printf("Best fitness: %.1f (%s)\n", best.Fitness, best.Status)

	hofPath := filepath.Join(*outputDir, "hall_of_fame.json")
	data, err := json.MarshalIndent(evaluator.HallOfFame(), "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal hall of fame: %v", err)
	}
	if err := os.WriteFile(hofPath, data, 0644); err != nil {
		log.Fatalf("failed to write hall of fame: %v", err)
	}
	fmt.Printf("Hall of fame saved to: %s\n", hofPath)
}

// startingGenome loads the best genome of a hall of fame file, or draws a
// random one when path is empty.
func startingGenome(sc *scenario.Scenario, path string, seed int64) (*genetics.Genome, error) {
	if path == "" {
		g := genetics.NewGenome(sc.GenomeSize())
		g.Randomize(rand.New(rand.NewSource(seed)))
		return g, nil
	}
	hof, err := telemetry.LoadHallOfFameFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading starting genome: %w", err)
	}
	entry, ok := hof.Best()
	if !ok {
		return nil, fmt.Errorf("loading starting genome: %s is empty", path)
	}
	g := entry.Genome()
	if g.Len() != sc.GenomeSize() {
		return nil, fmt.Errorf("starting genome has %d genes, scenario needs %d", g.Len(), sc.GenomeSize())
	}
	return g, nil
}
