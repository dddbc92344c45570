// Formation layout preview tool - tune the enemy grid with sliders.
//
// Usage: go run ./cmd/formationpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/invaders/config"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	previewScale = 0.75
	panelX       = 625
	panelWidth   = windowWidth - panelX - 20
)

// slider describes one tunable formation parameter.
type slider struct {
	label    string
	min, max float32
	integer  bool
	value    *float64
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	defaults := cfg.Formation

	// Integer parameters are edited as floats and rounded on use.
	rows, cols := float64(defaults.Rows), float64(defaults.Columns)
	f := &cfg.Formation
	sliders := []slider{
		{"Rows", 1, 10, true, &rows},
		{"Columns", 1, 16, true, &cols},
		{"Spacing X", 20, 160, false, &f.SpacingX},
		{"Spacing Y", 20, 120, false, &f.SpacingY},
		{"Offset X", 0, 400, false, &f.OffsetX},
		{"Offset Y", 0, 300, false, &f.OffsetY},
	}

	rl.InitWindow(windowWidth, windowHeight, "Formation Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	status := ""
	screenW := float32(cfg.Screen.Width)
	screenH := float32(cfg.Screen.Height)

	for !rl.WindowShouldClose() {
		f.Rows = int(rows + 0.5)
		f.Columns = int(cols + 0.5)
		rects := layout(*f, cfg.Enemy)
		box := bounds(rects)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Playfield preview
		ox, oy := int32(10), int32(10)
		pw, ph := int32(screenW*previewScale), int32(screenH*previewScale)
		rl.DrawRectangle(ox, oy, pw, ph, cfg.Screen.Background.RGBA())
		for _, r := range rects {
			rl.DrawRectangle(
				ox+int32(r.X*previewScale), oy+int32(r.Y*previewScale),
				int32(r.W*previewScale), int32(r.H*previewScale),
				cfg.Enemy.Color.RGBA(),
			)
		}
		playerX := float32(cfg.Screen.Width/2) - float32(int(cfg.Player.Width)/2)
		playerY := screenH - float32(cfg.Player.BottomMargin+cfg.Player.Height)
		rl.DrawRectangle(
			ox+int32(playerX*previewScale), oy+int32(playerY*previewScale),
			int32(float32(cfg.Player.Width)*previewScale), int32(float32(cfg.Player.Height)*previewScale),
			cfg.Player.Color.RGBA(),
		)
		rl.DrawRectangleLines(ox, oy, pw, ph, rl.DarkGray)

		// Stats
		statsY := oy + ph + 15
		rl.DrawText(fmt.Sprintf("Enemies: %d  Bounds: %.0fx%.0f at (%.0f, %.0f)",
			len(rects), box.W, box.H, box.X, box.Y), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("First bounce on frame %d", framesToBounce(box, screenW, cfg.Enemy)),
			15, statsY+20, 16, rl.DarkGray)
		if overlapping(rects) {
			rl.DrawText("Enemies overlap", 15, statsY+40, 16, rl.Red)
		} else if box.Right() >= screenW || box.Left() <= 0 {
			rl.DrawText("Formation touches a side: it bounces on the first frame", 15, statsY+40, 16, rl.Orange)
		}

		// Control panel
		y := float32(10)
		rl.DrawText("Formation", panelX, int32(y), 20, rl.DarkGray)
		y += 35
		for _, s := range sliders {
			rl.DrawText(s.label, panelX, int32(y), 14, rl.Gray)
			y += 18
			v := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: y, Width: panelWidth - 60, Height: 20},
				"", "",
				float32(*s.value), s.min, s.max,
			)
			if s.integer {
				*s.value = float64(int(v + 0.5))
				rl.DrawText(fmt.Sprintf("%d", int(*s.value)), panelX+panelWidth-50, int32(y+2), 16, rl.DarkGray)
			} else {
				*s.value = float64(int(v))
				rl.DrawText(fmt.Sprintf("%.0f", *s.value), panelX+panelWidth-50, int32(y+2), 16, rl.DarkGray)
			}
			y += 35
		}

		y += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 150, Height: 30}, "Copy as YAML") {
			out, err := formationYAML(*f)
			if err != nil {
				status = err.Error()
			} else {
				rl.SetClipboardText(out)
				fmt.Println(out)
				status = "Copied to clipboard"
			}
		}
		if gui.Button(rl.Rectangle{X: panelX + 160, Y: y, Width: 150, Height: 30}, "Reset") {
			*f = defaults
			rows, cols = float64(defaults.Rows), float64(defaults.Columns)
			status = ""
		}
		y += 45
		if status != "" {
			rl.DrawText(status, panelX, int32(y), 14, rl.DarkGreen)
		}

		rl.EndDrawing()
	}
}

// formationYAML renders f as a config snippet under the formation key.
func formationYAML(f config.FormationConfig) (string, error) {
	data, err := yaml.Marshal(map[string]config.FormationConfig{"formation": f})
	if err != nil {
		return "", fmt.Errorf("marshaling formation: %w", err)
	}
	return string(data), nil
}
