package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/invaders/audio"
	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/game"
)

func main() {
	os.Exit(run())
}

func run() int {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N frames (0 = unlimited)")
	fireEvery := flag.Int("fire-every", 0, "Headless: fire once every N frames (0 = never)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for arena snapshots taken on bookmarks")
	sound := flag.Bool("sound", false, "Play a tone on every shot")
	debug := flag.Bool("debug", false, "Show the debug HUD at start (F3 toggles)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	cfg := config.Cfg()

	opts := game.Options{
		Headless:       *headless,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		SnapshotDir:    *snapshotDir,
		Debug:          *debug,
	}

	if (*sound || cfg.Audio.Enabled) && !*headless {
		cue := audio.NewFireCue(cfg.Audio)
		if err := cue.Initialize(); err != nil {
			slog.Warn("audio disabled", "error", err)
		} else {
			defer cue.Cleanup()
			opts.Cue = cue
		}
	}

	slog.Info("starting",
		"headless", *headless,
		"max_ticks", *maxTicks,
		"screen_w", cfg.Screen.Width,
		"screen_h", cfg.Screen.Height,
		"target_fps", cfg.Screen.TargetFPS,
	)

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		g, err := game.New(cfg, opts)
		if err != nil {
			slog.Error("failed to create game", "error", err)
			return 1
		}
		defer closeGame(g)

		g.Run(&game.ScriptedInput{FireEvery: *fireEvery}, *maxTicks)
		return 0
	}

	// Graphical mode
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	if !rl.IsWindowReady() {
		slog.Error("failed to open window", "error", game.ErrNoDisplay)
		return 1
	}
	defer rl.CloseWindow()
	slog.Info("window_ready", "title", cfg.Screen.Title)

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.New(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		return 1
	}
	defer closeGame(g)

	g.Run(game.NewKeyboardInput(), *maxTicks)
	return 0
}

func closeGame(g *game.Game) {
	if err := g.Unload(); err != nil {
		slog.Error("failed to close game", "error", err)
	}
}
