package system

import (
	"github.com/younwookim/ringball/internal/domain/entity"
	"github.com/younwookim/ringball/internal/domain/geom"
	"github.com/younwookim/ringball/internal/infrastructure/config"
)

// PhysicsSystem moves the player and pushes it out of walls
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update integrates the player and resolves wall contacts in one step.
// Contact points of this step are appended to contacts and the result returned.
func (s *PhysicsSystem) Update(player *entity.Player, colliders []entity.Box, dt float64, contacts []geom.Vector2) []geom.Vector2 {
	s.Integrate(player, dt)
	return s.Resolve(player, colliders, contacts)
}

// Integrate applies gravity and friction, then moves the player
func (s *PhysicsSystem) Integrate(player *entity.Player, dt float64) {
	s.applyGravity(player, dt)
	s.applyFriction(player)

	player.Position = player.Position.Add(player.Velocity.Scale(s.config.Physics.Metre * dt))
}

// applyGravity accelerates the player downward up to terminal velocity
func (s *PhysicsSystem) applyGravity(player *entity.Player, dt float64) {
	p := s.config.Physics
	player.Velocity.Y += p.Gravity * dt * p.GravityScale
	if player.Velocity.Y > p.TerminalVelocity {
		player.Velocity.Y = p.TerminalVelocity
	}
}

// applyFriction bleeds off horizontal speed, snapping to rest near zero
func (s *PhysicsSystem) applyFriction(player *entity.Player) {
	p := s.config.Physics
	switch {
	case player.Velocity.X > p.FrictionThreshold:
		player.Velocity.X -= p.FrictionStep
	case player.Velocity.X < -p.FrictionThreshold:
		player.Velocity.X += p.FrictionStep
	default:
		player.Velocity.X = 0
	}
}

// Resolve pushes the player out of every collider its circle overlaps.
// The circle center is taken once before the loop, so later colliders are
// tested against the pre-push position. Contacts whose push points mostly
// up land the player; ones pointing mostly down stop it against a ceiling.
// Contact points are appended to contacts and the result returned.
func (s *PhysicsSystem) Resolve(player *entity.Player, colliders []entity.Box, contacts []geom.Vector2) []geom.Vector2 {
	center := player.ColliderCenter(s.config.ColliderOffset())
	threshold := s.config.Collision.NormalThreshold

	for _, c := range colliders {
		hit := geom.CircleAABB(center, player.Radius, c.Min(), c.Max())
		if !hit.Hit {
			continue
		}

		diff := center.Sub(hit.ContactPoint)
		dir := diff.Normalized()
		depth := player.Radius - diff.Length()
		player.Position = player.Position.Add(dir.Scale(depth))

		if dir.Y <= -threshold {
			// Floor
			player.Velocity.Y = 0
			player.OnGround = true
		}
		if dir.Y >= threshold {
			// Ceiling
			player.Velocity.Y = 0
		}

		contacts = append(contacts, hit.ContactPoint)
	}

	return contacts
}
