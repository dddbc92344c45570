// Package components defines ECS components for the game.
package components

import (
	"fmt"
	"image/color"
)

// Kind identifies which entity variant an entity is.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// MarshalText writes the variant name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a variant name.
func (k *Kind) UnmarshalText(b []byte) error {
	for _, c := range []Kind{KindPlayer, KindBullet, KindEnemy} {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown entity kind %q", b)
}

// Position is the top-left corner of an entity's rectangle in screen space.
// It may leave the screen transiently; bullets rely on that for expiry.
type Position struct {
	X, Y float32
}

// Size is the width and height of an entity's rectangle. Both are positive.
type Size struct {
	W, H float32
}

// Fill is the flat color an entity is drawn with.
type Fill struct {
	Color color.RGBA
}

// Player tags the single player ship.
type Player struct {
	Speed float32 // pixels per frame while a move key is held
}

// Bullet tags a projectile travelling up the screen.
type Bullet struct {
	Speed float32 // pixels per frame, upward
}

// Enemy tags a member of the formation.
type Enemy struct {
	Speed     float32 // horizontal pixels per frame before the direction sign
	Direction float32 // +1 moving right, -1 moving left
}
