// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Formation FormationConfig `yaml:"formation"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Audio     AudioConfig     `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Title      string `yaml:"title"`
	Background Color  `yaml:"background"`
}

// PlayerConfig holds the player ship parameters.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Pixels per frame while a move key is held
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between ship bottom and screen bottom
	Color        Color   `yaml:"color"`
}

// BulletConfig holds projectile parameters.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Pixels per frame, upward
	Color  Color   `yaml:"color"`
}

// EnemyConfig holds per-enemy parameters.
type EnemyConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`     // Horizontal pixels per frame, multiplied by direction
	Drop      float64 `yaml:"drop"`      // Descent applied to the whole formation on a bounce
	Direction float64 `yaml:"direction"` // Initial direction sign (+1 right, -1 left)
	Color     Color   `yaml:"color"`
}

// FormationConfig holds the initial enemy grid layout.
type FormationConfig struct {
	Rows     int     `yaml:"rows"`
	Columns  int     `yaml:"columns"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // Seconds of game time per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // Frames averaged by the perf collector
}

// AudioConfig holds the optional fire cue settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	FireToneHz float64 `yaml:"fire_tone_hz"`
	FireToneMs int     `yaml:"fire_tone_ms"`
	Volume     float64 `yaml:"volume"` // Gain in decibel-like steps passed to the volume effect
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	FrameDT   float64 // Seconds per frame at the target rate
	Enemies   int     // Formation.Rows * Formation.Columns
}

// Color is an opaque RGB fill color, written as [r, g, b] in YAML.
type Color struct {
	R, G, B uint8
}

// RGBA returns the color with full alpha.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// UnmarshalYAML decodes a three-element sequence of 0-255 channel values.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var channels []int
	if err := value.Decode(&channels); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if len(channels) != 3 {
		return fmt.Errorf("color: want [r, g, b], got %d values (line %d)", len(channels), value.Line)
	}
	for _, ch := range channels {
		if ch < 0 || ch > 255 {
			return fmt.Errorf("color: channel %d out of range (line %d)", ch, value.Line)
		}
	}
	c.R, c.G, c.B = uint8(channels[0]), uint8(channels[1]), uint8(channels[2])
	return nil
}

// MarshalYAML encodes the color as a flow sequence.
func (c Color) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, ch := range []uint8{c.R, c.G, c.B} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprintf("%d", ch),
		})
	}
	return node, nil
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

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports every structurally invalid value.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	sizes := []struct {
		name string
		w, h float64
	}{
		{"player", c.Player.Width, c.Player.Height},
		{"bullet", c.Bullet.Width, c.Bullet.Height},
		{"enemy", c.Enemy.Width, c.Enemy.Height},
	}
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			errs = append(errs, fmt.Errorf("%s size must be positive, got %gx%g", s.name, s.w, s.h))
		}
	}
	if c.Formation.Rows <= 0 || c.Formation.Columns <= 0 {
		errs = append(errs, fmt.Errorf("formation grid must be non-empty, got %dx%d", c.Formation.Rows, c.Formation.Columns))
	}
	if c.Enemy.Direction != 1 && c.Enemy.Direction != -1 {
		errs = append(errs, fmt.Errorf("enemy.direction must be 1 or -1, got %g", c.Enemy.Direction))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.FrameDT = 1.0 / float64(c.Screen.TargetFPS)
	c.Derived.Enemies = c.Formation.Rows * c.Formation.Columns

	if c.Telemetry.PerfCollectorWindow < 1 {
		c.Telemetry.PerfCollectorWindow = c.Screen.TargetFPS
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
