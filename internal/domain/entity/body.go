package entity

import "github.com/younwookim/ringball/internal/domain/geom"

// Body is the physical state of a moving entity.
// Position is the top-left corner of a cell-sized sprite box in pixels;
// velocity is in metres per second and scaled to pixels on integration.
type Body struct {
	Position geom.Vector2
	Velocity geom.Vector2

	OnGround bool
}

// Player is the ball controlled by the user
type Player struct {
	Body

	Radius float64
	Lives  int
}

// NewPlayer creates a player at pos with the given collider radius and lives
func NewPlayer(pos geom.Vector2, radius float64, lives int) *Player {
	return &Player{
		Body:   Body{Position: pos},
		Radius: radius,
		Lives:  lives,
	}
}

// ColliderCenter returns the center of the player's collision circle.
// offset is half a cell: the sprite origin is the top-left of its cell.
func (p *Player) ColliderCenter(offset float64) geom.Vector2 {
	return p.Position.Add(geom.Vec(offset, offset))
}

// IsDead returns true once all lives are spent
func (p *Player) IsDead() bool {
	return p.Lives <= 0
}

// Respawn places the player at pos at rest and airborne
func (p *Player) Respawn(pos geom.Vector2) {
	p.Position = pos
	p.Velocity = geom.Vector2{}
	p.OnGround = false
}
