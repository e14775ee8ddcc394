package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarises one finished generation.
type GenerationStats struct {
	Generation int   `csv:"generation"`
	EndTick    int64 `csv:"end_tick"`

	// Status counts at the end of the generation
	Rockets   int `csv:"rockets"`
	Alive     int `csv:"alive"`
	Dead      int `csv:"dead"`
	Succeeded int `csv:"succeeded"`

	// Fitness distribution
	FitnessMean float64 `csv:"fitness_mean"`
	FitnessStd  float64 `csv:"fitness_std"`
	FitnessP10  float64 `csv:"fitness_p10"`
	FitnessP50  float64 `csv:"fitness_p50"`
	FitnessP90  float64 `csv:"fitness_p90"`
	FitnessMax  float64 `csv:"fitness_max"`

	BestDistance float64 `csv:"best_distance"` // closest final distance to the target corner
	BreedingPool int64   `csv:"breeding_pool"`

	// Ticks into the generation, -1 when it never happened
	FirstSuccessTick int `csv:"first_success_tick"`
	FirstDeathTick   int `csv:"first_death_tick"`
}

// SuccessRate returns the fraction of rockets that reached the target.
func (s GenerationStats) SuccessRate() float64 {
	if s.Rockets == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Rockets)
}

// FitnessSummary holds the distribution of one generation's fitness values.
type FitnessSummary struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// SummarizeFitness computes mean, standard deviation, empirical quantiles and
// the maximum of values. An empty slice yields the zero summary. The std of a
// single value is 0.
func SummarizeFitness(values []float64) FitnessSummary {
	n := len(values)
	if n == 0 {
		return FitnessSummary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var s FitnessSummary
	if n == 1 {
		s.Mean = sorted[0]
	} else {
		s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	}
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	s.Max = sorted[n-1]
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenerationStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Int64("end_tick", s.EndTick),
		slog.Int("rockets", s.Rockets),
		slog.Int("alive", s.Alive),
		slog.Int("dead", s.Dead),
		slog.Int("succeeded", s.Succeeded),
		slog.Float64("fitness_mean", s.FitnessMean),
		slog.Float64("fitness_std", s.FitnessStd),
		slog.Float64("fitness_p50", s.FitnessP50),
		slog.Float64("fitness_max", s.FitnessMax),
		slog.Float64("best_distance", s.BestDistance),
		slog.Int64("breeding_pool", s.BreedingPool),
		slog.Int("first_success_tick", s.FirstSuccessTick),
	)
}

// LogStats logs the generation stats using slog.
func (s GenerationStats) LogStats() {
	slog.Info("generation",
		"generation", s.Generation,
		"end_tick", s.EndTick,
		"alive", s.Alive,
		"dead", s.Dead,
		"succeeded", s.Succeeded,
		"fitness_mean", finite(s.FitnessMean),
		"fitness_p50", finite(s.FitnessP50),
		"fitness_max", finite(s.FitnessMax),
		"best_distance", s.BestDistance,
		"breeding_pool", s.BreedingPool,
		"first_success_tick", s.FirstSuccessTick,
	)
}

// finite maps ±Inf and NaN to values the JSON handler can encode.
func finite(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}
