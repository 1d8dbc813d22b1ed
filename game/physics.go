package game

// MotionIntegrator advances every live entity by one tick
type MotionIntegrator struct {
	world *World
}

// NewMotionIntegrator creates a motion integrator over a world
func NewMotionIntegrator(world *World) *MotionIntegrator {
	return &MotionIntegrator{world: world}
}

// MovePlayer applies the held direction keys, clamping to the play area.
// Each axis is clamped after each key, so opposing keys held together
// never push the player outside the bounds.
func (m *MotionIntegrator) MovePlayer(input InputSnapshot) {
	p := m.world.Player
	if p == nil {
		return
	}
	maxX := m.world.Config.Width - p.Width
	maxY := m.world.Config.Height - p.Height

	if input.Held(KeyLeft) {
		p.X = clamp(p.X-p.Speed, 0, maxX)
	}
	if input.Held(KeyRight) {
		p.X = clamp(p.X+p.Speed, 0, maxX)
	}
	if input.Held(KeyUp) {
		p.Y = clamp(p.Y-p.Speed, 0, maxY)
	}
	if input.Held(KeyDown) {
		p.Y = clamp(p.Y+p.Speed, 0, maxY)
	}
}

// MovePlayerProjectiles moves every player projectile upward
func (m *MotionIntegrator) MovePlayerProjectiles() {
	for _, p := range m.world.PlayerProjectiles {
		p.Y -= p.Speed
	}
}

// MoveEnemy advances one enemy projectile according to its variant and
// records the new position in its trail
func (m *MotionIntegrator) MoveEnemy(e *EnemyProjectile) {
	pos := e.Motion.advance(e.Position())
	e.X, e.Y = pos.X, pos.Y
	e.Trail.Push(pos)
}

// clamp restricts val to [lo, hi]
func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
