package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/invaders/components"
	"github.com/pthm-cable/invaders/config"
	"github.com/pthm-cable/invaders/systems"
	"github.com/pthm-cable/invaders/telemetry"
	"github.com/pthm-cable/invaders/ui"
)

// ErrNoDisplay is returned when the window could not be opened.
var ErrNoDisplay = errors.New("display not available")

// State is the game loop state. The only transition is Running to Stopped.
type State uint8

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "stopped"
}

// Cue plays a short sound effect when a bullet is fired.
type Cue interface {
	PlayFire()
}

// Options configures a Game beyond the loaded config.
type Options struct {
	Headless       bool    // Never touch the window; Draw becomes a no-op
	LogStats       bool    // Log each telemetry window via slog
	StatsWindowSec float64 // Overrides config telemetry.stats_window when > 0
	OutputDir      string  // CSV and config output; empty disables
	SnapshotDir    string  // Arena snapshots on bookmarks; empty disables
	Debug          bool    // Start with the debug HUD visible
	Cue            Cue     // Fire sound; nil plays nothing
}

// Game holds the complete game state. It is created once per run and owned
// by the goroutine that drives the loop.
type Game struct {
	cfg   *config.Config
	world *ecs.World

	// Spawners, one per variant
	playerMapper *ecs.Map4[components.Position, components.Size, components.Fill, components.Player]
	bulletMapper *ecs.Map4[components.Position, components.Size, components.Fill, components.Bullet]
	enemyMapper  *ecs.Map4[components.Position, components.Size, components.Fill, components.Enemy]
	rectMap      *ecs.Map2[components.Position, components.Size]

	// Views over the arena
	drawFilter   *ecs.Filter3[components.Position, components.Size, components.Fill]
	playerFilter *systems.PlayerFilter
	bulletFilter *systems.BulletFilter
	enemyFilter  *systems.EnemyFilter

	player    ecs.Entity
	collision *systems.CollisionSystem

	// Per-frame scratch, reused to avoid allocations
	expired []ecs.Entity
	hits    systems.Hits

	// State
	state    State
	tick     int32
	headless bool
	debug    bool
	cue      Cue
	hud      *ui.HUD

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	outputManager    *telemetry.OutputManager
	bookmarkDetector *telemetry.BookmarkDetector
	snapshotDir      string
	logStats         bool
}

// New creates a game with the player and the full enemy formation spawned.
func New(cfg *config.Config, opts Options) (*Game, error) {
	world := ecs.NewWorld()

	g := &Game{
		cfg:          cfg,
		world:        world,
		playerMapper: ecs.NewMap4[components.Position, components.Size, components.Fill, components.Player](world),
		bulletMapper: ecs.NewMap4[components.Position, components.Size, components.Fill, components.Bullet](world),
		enemyMapper:  ecs.NewMap4[components.Position, components.Size, components.Fill, components.Enemy](world),
		rectMap:      ecs.NewMap2[components.Position, components.Size](world),
		drawFilter:   ecs.NewFilter3[components.Position, components.Size, components.Fill](world),
		playerFilter: ecs.NewFilter3[components.Position, components.Size, components.Player](world),
		bulletFilter: ecs.NewFilter3[components.Position, components.Size, components.Bullet](world),
		enemyFilter:  ecs.NewFilter3[components.Position, components.Size, components.Enemy](world),
		collision: systems.NewCollisionSystem(
			cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, systems.DefaultCellSize,
		),
		state:       StateRunning,
		headless:    opts.Headless,
		debug:       opts.Debug,
		cue:         opts.Cue,
		snapshotDir: opts.SnapshotDir,
		logStats:    opts.LogStats,
	}
	if !opts.Headless {
		g.hud = ui.NewHUD()
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}
	g.collector = telemetry.NewCollector(statsWindow, cfg.Derived.FrameDT)
	g.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	playerTop := float64(cfg.Screen.Height) - cfg.Player.BottomMargin - cfg.Player.Height
	g.bookmarkDetector = telemetry.NewBookmarkDetector(10, playerTop)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("telemetry output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("telemetry output: %w", err)
	}
	g.outputManager = om

	g.player = g.SpawnPlayer()
	g.SpawnFormation()

	slog.Info("game_created",
		"enemies", g.Enemies(),
		"screen_w", cfg.Screen.Width,
		"screen_h", cfg.Screen.Height,
		"headless", opts.Headless,
	)

	return g, nil
}

// Unload releases resources held outside the arena.
func (g *Game) Unload() error {
	if err := g.outputManager.Close(); err != nil {
		return fmt.Errorf("closing telemetry output: %w", err)
	}
	return nil
}

// Tick returns the number of frames stepped so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// State returns the loop state.
func (g *Game) State() State {
	return g.state
}

// Running reports whether the loop should keep going.
func (g *Game) Running() bool {
	return g.state == StateRunning
}

// Player returns the player entity.
func (g *Game) Player() ecs.Entity {
	return g.player
}

// Rect returns the bounding box of a live entity.
func (g *Game) Rect(e ecs.Entity) (components.Rect, bool) {
	if !g.world.Alive(e) {
		return components.Rect{}, false
	}
	pos, size := g.rectMap.Get(e)
	return components.RectOf(pos, size), true
}

// Alive reports whether e is still in the arena.
func (g *Game) Alive(e ecs.Entity) bool {
	return g.world.Alive(e)
}

// Enemies returns the number of live enemies.
func (g *Game) Enemies() int {
	query := g.enemyFilter.Query()
	n := query.Count()
	query.Close()
	return n
}

// Bullets returns the number of live bullets.
func (g *Game) Bullets() int {
	query := g.bulletFilter.Query()
	n := query.Count()
	query.Close()
	return n
}

// Entities returns the number of drawable entities, the player included.
func (g *Game) Entities() int {
	query := g.drawFilter.Query()
	n := query.Count()
	query.Close()
	return n
}
