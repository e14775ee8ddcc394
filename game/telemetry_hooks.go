package game

import (
	"log/slog"

	"github.com/pthm-cable/rockets/telemetry"
)

// GenerationReport is passed to Options.OnGeneration.
type GenerationReport struct {
	Stats     telemetry.GenerationStats
	Bookmarks []telemetry.Bookmark
}

// recordGeneration logs and writes a finished generation and handles its
// bookmarks. It runs before the population is replaced.
func (g *Game) recordGeneration(stats telemetry.GenerationStats) {
	g.lastStats = &stats
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteGeneration(stats); err != nil {
		slog.Error("failed to write generation", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.Generation, stats.EndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	bookmarks := g.bookmarks.Check(stats)
	for i := range bookmarks {
		bm := bookmarks[i]
		if g.opts.LogStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		if g.cfg.Telemetry.Snapshots {
			g.saveSnapshot(&bm)
		}
	}

	if g.opts.OnGeneration != nil {
		g.opts.OnGeneration(GenerationReport{Stats: stats, Bookmarks: bookmarks})
	}
}

// saveSnapshot writes the finished generation to the output directory.
func (g *Game) saveSnapshot(bookmark *telemetry.Bookmark) {
	path, err := g.outputManager.WriteSnapshot(g.createSnapshot(bookmark))
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	if path != "" {
		slog.Info("snapshot saved", "path", path, "generation", g.generation)
	}
}

// createSnapshot builds a snapshot from the current state.
func (g *Game) createSnapshot(bookmark *telemetry.Bookmark) *telemetry.Snapshot {
	return &telemetry.Snapshot{
		Version:      telemetry.SnapshotVersion,
		RNGSeed:      g.opts.Seed,
		ArenaWidth:   g.sc.Width(),
		ArenaHeight:  g.sc.Height(),
		Generation:   g.generation,
		Tick:         g.tick,
		ImpulseIndex: g.index,
		Rockets:      telemetry.CaptureRockets(g.pop.Rockets()),
		Bookmark:     bookmark,
	}
}
