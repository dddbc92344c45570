package game

import "log/slog"

// Run drives the frame loop until quit is requested or maxTicks frames have
// been stepped (0 means no limit). The frame that requests quit is still
// drawn before Run returns.
func (g *Game) Run(src InputSource, maxTicks int) {
	for g.Running() {
		g.Step(src.Poll())
		g.Draw()

		if maxTicks > 0 && int(g.tick) >= maxTicks && g.Running() {
			slog.Info("max ticks reached", "tick", g.tick)
			g.state = StateStopped
		}
	}

	slog.Info("stopped",
		"tick", g.tick,
		"enemies_remaining", g.Enemies(),
		"bullets", g.Bullets(),
	)
}
