package telemetry

import (
	"math"
	"testing"
)

func TestSummarizeFitness(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   FitnessSummary
	}{
		{"empty", nil, FitnessSummary{}},
		{"single", []float64{4}, FitnessSummary{Mean: 4, P10: 4, P50: 4, P90: 4, Max: 4}},
		{
			"one to ten unsorted",
			[]float64{10, 3, 1, 7, 5, 9, 2, 8, 4, 6},
			FitnessSummary{Mean: 5.5, Std: 3.0277, P10: 1, P50: 5, P90: 9, Max: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeFitness(tt.values)
			check := func(field string, got, want float64) {
				if math.Abs(got-want) > 1e-3 {
					t.Errorf("%s = %v, want %v", field, got, want)
				}
			}
			check("Mean", got.Mean, tt.want.Mean)
			check("Std", got.Std, tt.want.Std)
			check("P10", got.P10, tt.want.P10)
			check("P50", got.P50, tt.want.P50)
			check("P90", got.P90, tt.want.P90)
			check("Max", got.Max, tt.want.Max)
		})
	}
}

func TestSummarizeFitnessDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	SummarizeFitness(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestSuccessRate(t *testing.T) {
	if got := (GenerationStats{}).SuccessRate(); got != 0 {
		t.Errorf("empty SuccessRate = %v", got)
	}
	s := GenerationStats{Rockets: 8, Succeeded: 2}
	if got := s.SuccessRate(); got != 0.25 {
		t.Errorf("SuccessRate = %v, want 0.25", got)
	}
}

func TestFinite(t *testing.T) {
	if finite(math.NaN()) != 0 {
		t.Error("NaN should map to 0")
	}
	if finite(math.Inf(1)) != math.MaxFloat64 {
		t.Error("+Inf should map to MaxFloat64")
	}
	if finite(2.5) != 2.5 {
		t.Error("finite values pass through")
	}
}
