// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Screen     ScreenConfig     `yaml:"screen"`
	Population PopulationConfig `yaml:"population"`
	Genome     GenomeConfig     `yaml:"genome"`
	Rocket     RocketConfig     `yaml:"rocket"`
	Evolution  EvolutionConfig  `yaml:"evolution"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Render     RenderConfig     `yaml:"render"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ArenaConfig holds the arena dimensions in world units (one unit = one pixel).
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	TargetFPS int `yaml:"target_fps"`
}

// PopulationConfig holds population sizing.
type PopulationConfig struct {
	Size int `yaml:"size"`
}

// GenomeConfig holds genome length and the impulse cadence.
type GenomeConfig struct {
	Size            int `yaml:"size"`
	ImpulseInterval int `yaml:"impulse_interval"` // ticks between impulse index advances
}

// RocketConfig holds the rocket footprint and spawn column.
type RocketConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
}

// EvolutionConfig holds parallelism knobs for the population engine.
type EvolutionConfig struct {
	ParallelThreshold int `yaml:"parallel_threshold"`
	Workers           int `yaml:"workers"` // 0 = GOMAXPROCS
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow             int     `yaml:"perf_window"`
	BookmarkHistory        int     `yaml:"bookmark_history"`
	BreakthroughMultiplier float64 `yaml:"breakthrough_multiplier"`
	ConvergenceFraction    float64 `yaml:"convergence_fraction"`
	HallOfFameSize         int     `yaml:"hall_of_fame_size"`
	Snapshots              bool    `yaml:"snapshots"`
}

// RenderConfig holds renderer-only settings.
type RenderConfig struct {
	TrailLife  int `yaml:"trail_life"`
	TrailEvery int `yaml:"trail_every"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TicksPerGeneration int     // Genome.Size * Genome.ImpulseInterval
	ScreenW32          float32 // Arena.Width as float32
	ScreenH32          float32 // Arena.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	case c.Population.Size <= 0:
		return fmt.Errorf("population.size must be positive, got %d", c.Population.Size)
	case c.Genome.Size <= 0:
		return fmt.Errorf("genome.size must be positive, got %d", c.Genome.Size)
	case c.Genome.ImpulseInterval <= 0:
		return fmt.Errorf("genome.impulse_interval must be positive, got %d", c.Genome.ImpulseInterval)
	case c.Rocket.Width <= 0 || c.Rocket.Height <= 0:
		return fmt.Errorf("rocket size must be positive, got %vx%v", c.Rocket.Width, c.Rocket.Height)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TicksPerGeneration = c.Genome.Size * c.Genome.ImpulseInterval
	c.Derived.ScreenW32 = float32(c.Arena.Width)
	c.Derived.ScreenH32 = float32(c.Arena.Height)

	if c.Evolution.ParallelThreshold <= 0 {
		c.Evolution.ParallelThreshold = 64
	}
	if c.Telemetry.PerfWindow <= 0 {
		c.Telemetry.PerfWindow = 60
	}
	if c.Telemetry.HallOfFameSize < 0 {
		c.Telemetry.HallOfFameSize = 0
	}
	if c.Render.TrailEvery <= 0 {
		c.Render.TrailEvery = 1
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
