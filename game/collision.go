package game

// Annihilation records one mutual destruction resolved during a frame
type Annihilation struct {
	Projectile *PlayerProjectile
	Enemy      *EnemyProjectile
	At         Point
}

// CollisionSystem resolves player contact and projectile annihilation
type CollisionSystem struct {
	world *World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

// PlayerHit reports whether an enemy projectile touches the player's bounding box
func (c *CollisionSystem) PlayerHit(e *EnemyProjectile) bool {
	p := c.world.Player
	if p == nil {
		return false
	}
	return RectCircleColliding(p.X, p.Y, p.Width, p.Height, e.Position(), e.Radius)
}

// ResolveAnnihilations tests every (player projectile, enemy projectile) pair.
// A player projectile annihilates with at most one enemy projectile per frame.
// Matched entities are returned; removal is left to World.Cleanup.
func (c *CollisionSystem) ResolveAnnihilations() []Annihilation {
	var hits []Annihilation
	consumed := make(map[*EnemyProjectile]bool)

	for _, p := range c.world.PlayerProjectiles {
		center := p.Center()
		for _, e := range c.world.EnemyProjectiles {
			if consumed[e] {
				continue
			}
			if projectilesColliding(center, p.Width/2, e) {
				consumed[e] = true
				hits = append(hits, Annihilation{Projectile: p, Enemy: e, At: e.Position()})
				break
			}
		}
	}

	return hits
}

// projectilesColliding compares squared center distance with the summed reach
func projectilesColliding(center Point, halfWidth float64, e *EnemyProjectile) bool {
	dx := e.X - center.X
	dy := e.Y - center.Y
	reach := e.Radius + halfWidth
	return dx*dx+dy*dy < reach*reach
}

// RectCircleColliding tests a rectangle (top-left x, y) against a circle by
// clamping the circle center onto the rectangle and measuring the gap
func RectCircleColliding(x, y, w, h float64, center Point, radius float64) bool {
	nearestX := clamp(center.X, x, x+w)
	nearestY := clamp(center.Y, y, y+h)
	dx := center.X - nearestX
	dy := center.Y - nearestY
	return dx*dx+dy*dy <= radius*radius
}
