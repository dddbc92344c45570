package game

import (
	"log/slog"

	"github.com/pthm-cable/invaders/components"
	"github.com/pthm-cable/invaders/telemetry"
)

// flushTelemetry closes the stats window when it is due, then logs and
// writes both the window stats and the perf stats.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleGauges())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		if g.snapshotDir != "" {
			g.saveSnapshot(&bm)
		}
	}
}

// saveSnapshot writes the arena to the snapshot directory.
func (g *Game) saveSnapshot(bm *telemetry.Bookmark) {
	snap := g.Snapshot()
	snap.Bookmark = bm

	path, err := telemetry.SaveSnapshot(snap, g.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	slog.Info("snapshot_saved", "path", path, "tick", g.tick)
}

// Snapshot captures every live entity.
func (g *Game) Snapshot() *telemetry.Snapshot {
	snap := &telemetry.Snapshot{
		Version:      telemetry.SnapshotVersion,
		ScreenWidth:  g.cfg.Derived.ScreenW32,
		ScreenHeight: g.cfg.Derived.ScreenH32,
		Tick:         g.tick,
	}

	pq := g.playerFilter.Query()
	for pq.Next() {
		pos, size, player := pq.Get()
		snap.Entities = append(snap.Entities, entityState(components.KindPlayer, pos, size, player.Speed, 0))
	}
	eq := g.enemyFilter.Query()
	for eq.Next() {
		pos, size, enemy := eq.Get()
		snap.Entities = append(snap.Entities, entityState(components.KindEnemy, pos, size, enemy.Speed, enemy.Direction))
	}
	bq := g.bulletFilter.Query()
	for bq.Next() {
		pos, size, bullet := bq.Get()
		snap.Entities = append(snap.Entities, entityState(components.KindBullet, pos, size, bullet.Speed, 0))
	}
	return snap
}

func entityState(kind components.Kind, pos *components.Position, size *components.Size, speed, dir float32) telemetry.EntityState {
	return telemetry.EntityState{
		Kind:      kind,
		X:         pos.X,
		Y:         pos.Y,
		W:         size.W,
		H:         size.H,
		Speed:     speed,
		Direction: dir,
	}
}

// sampleGauges reads the point-in-time values recorded with each window.
func (g *Game) sampleGauges() telemetry.Gauges {
	gauges := telemetry.Gauges{Bullets: g.Bullets()}

	if r, ok := g.Rect(g.player); ok {
		gauges.PlayerX = float64(r.X)
	}

	query := g.enemyFilter.Query()
	for query.Next() {
		pos, size, _ := query.Get()
		gauges.Enemies++
		if bottom := float64(pos.Y + size.H); bottom > gauges.LowestY {
			gauges.LowestY = bottom
		}
	}
	return gauges
}
