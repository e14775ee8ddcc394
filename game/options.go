package game

// Speed limits for the graphical loop.
const (
	MinSpeed = 1
	MaxSpeed = 10
)

// Options holds run-time settings that are not part of the simulation config.
type Options struct {
	Seed      int64  // RNG seed; the caller picks a time-based seed for 0
	LogStats  bool   // log generation and perf stats via slog
	OutputDir string // CSV, snapshot and hall of fame output; empty disables

	StepsPerUpdate int // ticks per Advance call in the graphical loop

	// OnGeneration, if set, is called after every finished generation.
	OnGeneration func(GenerationReport)
}

// DefaultOptions returns options for a quiet, single-speed run.
func DefaultOptions() Options {
	return Options{
		Seed:           1,
		StepsPerUpdate: 1,
	}
}
