package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/invaders/components"
)

// PlayerFilter selects the player ship.
type PlayerFilter = ecs.Filter3[components.Position, components.Size, components.Player]

// BulletFilter selects live bullets.
type BulletFilter = ecs.Filter3[components.Position, components.Size, components.Bullet]

// EnemyFilter selects live formation members.
type EnemyFilter = ecs.Filter3[components.Position, components.Size, components.Enemy]

// MovePlayer shifts the player by its speed for each held direction key.
// A key only moves the ship while that edge is still inside the screen; with
// both keys held the two steps cancel out.
func MovePlayer(filter *PlayerFilter, left, right bool, screenW float32) {
	query := filter.Query()
	for query.Next() {
		pos, size, player := query.Get()

		if left && pos.X > 0 {
			pos.X -= player.Speed
		}
		if right && pos.X+size.W < screenW {
			pos.X += player.Speed
		}
	}
}

// MoveBullets advances every bullet upward and appends the bullets whose
// bottom edge has left the top of the screen to expired.
// The caller removes them once the query is closed.
func MoveBullets(filter *BulletFilter, expired []ecs.Entity) []ecs.Entity {
	query := filter.Query()
	for query.Next() {
		pos, size, bullet := query.Get()

		pos.Y -= bullet.Speed
		if pos.Y+size.H < 0 {
			expired = append(expired, query.Entity())
		}
	}
	return expired
}

// MoveEnemies steps every enemy horizontally by speed times its direction.
// Direction changes happen in FormationBounce, never here.
func MoveEnemies(filter *EnemyFilter) {
	query := filter.Query()
	for query.Next() {
		pos, _, enemy := query.Get()
		pos.X += enemy.Speed * enemy.Direction
	}
}
