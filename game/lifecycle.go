package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/invaders/components"
)

// SpawnPlayer creates the player ship centered horizontally, resting
// bottom_margin above the bottom of the screen.
func (g *Game) SpawnPlayer() ecs.Entity {
	pc := g.cfg.Player
	size := components.Size{W: float32(pc.Width), H: float32(pc.Height)}
	pos := components.Position{
		X: components.CenteredAt(float32(g.cfg.Screen.Width/2), size.W),
		Y: g.cfg.Derived.ScreenH32 - float32(pc.BottomMargin) - size.H,
	}
	fill := components.Fill{Color: pc.Color.RGBA()}
	player := components.Player{Speed: float32(pc.Speed)}

	return g.playerMapper.NewEntity(&pos, &size, &fill, &player)
}

// SpawnFormation creates the enemy grid, row-major, every member heading in
// the configured initial direction.
func (g *Game) SpawnFormation() {
	ec := g.cfg.Enemy
	fc := g.cfg.Formation

	for row := 0; row < fc.Rows; row++ {
		for col := 0; col < fc.Columns; col++ {
			pos := components.Position{
				X: float32(float64(col)*fc.SpacingX + fc.OffsetX),
				Y: float32(float64(row)*fc.SpacingY + fc.OffsetY),
			}
			size := components.Size{W: float32(ec.Width), H: float32(ec.Height)}
			fill := components.Fill{Color: ec.Color.RGBA()}
			enemy := components.Enemy{
				Speed:     float32(ec.Speed),
				Direction: float32(ec.Direction),
			}
			g.enemyMapper.NewEntity(&pos, &size, &fill, &enemy)
		}
	}
}

// SpawnBullet creates a bullet centered on cx whose bottom edge sits at bottom.
func (g *Game) SpawnBullet(cx, bottom float32) ecs.Entity {
	bc := g.cfg.Bullet
	size := components.Size{W: float32(bc.Width), H: float32(bc.Height)}
	pos := components.Position{
		X: components.CenteredAt(cx, size.W),
		Y: bottom - size.H,
	}
	fill := components.Fill{Color: bc.Color.RGBA()}
	bullet := components.Bullet{Speed: float32(bc.Speed)}

	return g.bulletMapper.NewEntity(&pos, &size, &fill, &bullet)
}

// Remove deletes entities from the arena, dropping them from every view at
// once. Handles that are already dead are skipped, so a list may repeat an
// entity. It must not be called while a query is open.
func (g *Game) Remove(entities ...ecs.Entity) int {
	removed := 0
	for _, e := range entities {
		if !g.world.Alive(e) {
			continue
		}
		g.world.RemoveEntity(e)
		removed++
	}
	return removed
}
