package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rockets/config"
	"github.com/pthm-cable/rockets/game"
	"github.com/pthm-cable/rockets/renderer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output generation and perf stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, snapshots and hall of fame")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	maxGenerations := flag.Int("max-generations", 0, "Stop after N generations (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per rendered frame")

	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
	}

	var err error
	if *headless {
		err = runHeadless(cfg, opts, *maxTicks, *maxGenerations)
	} else {
		err = runWindow(cfg, opts, *maxTicks, *maxGenerations)
	}
	if err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless runs the simulation without raylib until a limit is reached or
// the process is interrupted.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int64, maxGenerations int) error {
	g, err := game.New(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"population", cfg.Population.Size,
		"genome", cfg.Genome.Size,
		"max_ticks", maxTicks,
		"max_generations", maxGenerations,
	)

	err = g.RunHeadless(ctx, maxTicks, maxGenerations)
	if ctx.Err() != nil {
		slog.Info("interrupted", "tick", g.Tick(), "generation", g.Generation())
		return nil
	}
	return err
}

// runWindow opens the arena window and runs one Advance per rendered frame.
func runWindow(cfg *config.Config, opts game.Options, maxTicks int64, maxGenerations int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Arena.Width), int32(cfg.Arena.Height), "Smart Rockets")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(cfg, opts)
	if err != nil {
		return err
	}
	defer g.Close()

	app := renderer.NewApp(g)
	for !rl.WindowShouldClose() {
		if err := app.Update(); err != nil {
			return err
		}
		rl.BeginDrawing()
		app.Draw()
		rl.EndDrawing()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
		if maxGenerations > 0 && g.Generation() >= maxGenerations {
			break
		}
	}
	return nil
}
