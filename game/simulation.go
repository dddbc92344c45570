package game

import (
	"log/slog"

	"github.com/pthm-cable/invaders/components"
	"github.com/pthm-cable/invaders/systems"
	"github.com/pthm-cable/invaders/telemetry"
)

// Result summarizes what one Step changed.
type Result struct {
	Fired      int  // Bullets spawned
	Expired    int  // Bullets removed after leaving the top edge
	EnemiesHit int  // Enemies destroyed
	BulletsHit int  // Bullets destroyed by collisions
	Bounced    bool // Formation reversed and dropped
	Quit       bool // Quit was requested this frame
}

// Step advances the game by one frame: fire, move, bounce, collide.
// A bullet fired this frame already moves in the same frame. Quit marks the
// game stopped once the frame is complete; a stopped game does not step.
func (g *Game) Step(in Input) Result {
	var res Result
	if g.state != StateRunning {
		return res
	}

	if in.Debug {
		g.debug = !g.debug
	}

	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseFire)
	res.Fired = g.fire(in.Fire)

	g.perfCollector.StartPhase(telemetry.PhaseUpdate)
	systems.MovePlayer(g.playerFilter, in.Left, in.Right, g.cfg.Derived.ScreenW32)
	g.expired = systems.MoveBullets(g.bulletFilter, g.expired[:0])
	systems.MoveEnemies(g.enemyFilter)
	res.Expired = g.Remove(g.expired...)

	g.perfCollector.StartPhase(telemetry.PhaseFormation)
	res.Bounced = systems.FormationBounce(g.enemyFilter, g.cfg.Derived.ScreenW32, float32(g.cfg.Enemy.Drop))

	g.perfCollector.StartPhase(telemetry.PhaseCollision)
	g.hits.Reset()
	g.collision.Resolve(g.enemyFilter, g.bulletFilter, &g.hits)

	g.perfCollector.StartPhase(telemetry.PhaseCleanup)
	res.EnemiesHit = g.Remove(g.hits.Enemies...)
	res.BulletsHit = g.Remove(g.hits.Bullets...)

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordFire(res.Fired)
	g.collector.RecordExpired(res.Expired)
	g.collector.RecordHits(res.EnemiesHit, res.BulletsHit)
	if res.Bounced {
		g.collector.RecordBounce()
	}
	g.flushTelemetry()

	g.perfCollector.EndTick()

	if in.Quit {
		res.Quit = true
		g.state = StateStopped
		slog.Info("quit_requested", "tick", g.tick)
	}
	return res
}

// fire spawns n bullets at the player's top-center. All bullets fired in one
// frame start at the same spot.
func (g *Game) fire(n int) int {
	if n <= 0 || !g.world.Alive(g.player) {
		return 0
	}
	pos, size := g.rectMap.Get(g.player)
	ship := components.RectOf(pos, size)

	for i := 0; i < n; i++ {
		g.SpawnBullet(ship.CenterX(), ship.Top())
		if g.cue != nil {
			g.cue.PlayFire()
		}
	}
	return n
}
