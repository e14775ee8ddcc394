package game

import (
	"context"
	"log/slog"
)

// ctxCheckInterval is how many ticks RunHeadless runs between context checks.
const ctxCheckInterval = 256

// RunHeadless steps the simulation without graphics until maxTicks ticks or
// maxGenerations finished generations, whichever comes first. A zero limit
// is unlimited. It returns ctx.Err() if the context is cancelled first.
func (g *Game) RunHeadless(ctx context.Context, maxTicks int64, maxGenerations int) error {
	startTick := g.tick
	for {
		if maxTicks > 0 && g.tick-startTick >= maxTicks {
			slog.Info("max ticks reached", "tick", g.tick, "generation", g.generation)
			return nil
		}
		if maxGenerations > 0 && g.generation >= maxGenerations {
			slog.Info("max generations reached", "tick", g.tick, "generation", g.generation)
			return nil
		}
		if (g.tick-startTick)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := g.Step(); err != nil {
			return err
		}
	}
}
