// Package telemetry collects per-window game statistics and frame timing.
package telemetry

import "log/slog"

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Events during window
	BulletsFired   int     `csv:"bullets_fired"`
	BulletsExpired int     `csv:"bullets_expired"`
	BulletsSpent   int     `csv:"bullets_spent"` // Bullets removed by a collision
	EnemiesKilled  int     `csv:"enemies_killed"`
	Bounces        int     `csv:"bounces"`
	Accuracy       float64 `csv:"accuracy"` // bullets_spent / bullets_fired

	// Readings at window end
	Enemies         int     `csv:"enemies"`
	Bullets         int     `csv:"bullets"`
	PlayerX         float64 `csv:"player_x"`
	FormationBottom float64 `csv:"formation_bottom"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("bullets_fired", s.BulletsFired),
		slog.Int("bullets_expired", s.BulletsExpired),
		slog.Int("bullets_spent", s.BulletsSpent),
		slog.Int("enemies_killed", s.EnemiesKilled),
		slog.Int("bounces", s.Bounces),
		slog.Float64("accuracy", s.Accuracy),
		slog.Int("enemies", s.Enemies),
		slog.Int("bullets", s.Bullets),
		slog.Float64("player_x", s.PlayerX),
		slog.Float64("formation_bottom", s.FormationBottom),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"bullets_fired", s.BulletsFired,
		"bullets_expired", s.BulletsExpired,
		"bullets_spent", s.BulletsSpent,
		"enemies_killed", s.EnemiesKilled,
		"bounces", s.Bounces,
		"accuracy", s.Accuracy,
		"enemies", s.Enemies,
		"bullets", s.Bullets,
		"player_x", s.PlayerX,
		"formation_bottom", s.FormationBottom,
	)
}
