package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/invaders/ui"
)

// Draw renders the current frame and presents it. Pacing to the target
// frame rate happens inside EndDrawing. Headless games draw nothing.
func (g *Game) Draw() {
	if g.headless {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(g.cfg.Screen.Background.RGBA())

	query := g.drawFilter.Query()
	for query.Next() {
		pos, size, fill := query.Get()
		rl.DrawRectangle(int32(pos.X), int32(pos.Y), int32(size.W), int32(size.H), fill.Color)
	}

	if g.debug && g.hud != nil {
		g.hud.Draw(g.hudData())
	}

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// Debug reports whether the debug HUD is shown.
func (g *Game) Debug() bool {
	return g.debug
}

func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		Tick:    g.tick,
		FPS:     rl.GetFPS(),
		Enemies: g.Enemies(),
		Bullets: g.Bullets(),
		Perf:    g.perfCollector.Stats(),
	}
	if r, ok := g.Rect(g.player); ok {
		data.PlayerX = r.X
	}
	return data
}
