package game

import "math/rand"

// ParticleSystem owns the cosmetic burst particles. It never touches
// gameplay state.
type ParticleSystem struct {
	world *World
	rng   *rand.Rand
}

// NewParticleSystem creates a particle system drawing randomness from rng
func NewParticleSystem(world *World, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{world: world, rng: rng}
}

// Emit creates count particles at (x, y) with small random velocities
func (ps *ParticleSystem) Emit(x, y float64, count int) {
	spread := ps.world.Config.ParticleSpread
	for i := 0; i < count; i++ {
		ps.world.Particles = append(ps.world.Particles, Particle{
			X:      x,
			Y:      y,
			Radius: ps.rng.Float64()*3 + 2,
			VX:     (ps.rng.Float64() - 0.5) * spread,
			VY:     (ps.rng.Float64() - 0.5) * spread,
			Alpha:  1,
		})
	}
}

// Update moves every particle, fades it and drops the faded ones
func (ps *ParticleSystem) Update() {
	decay := ps.world.Config.ParticleDecay
	particles := ps.world.Particles

	// Iterate in reverse so swap-removal never skips an entry
	for i := len(particles) - 1; i >= 0; i-- {
		p := &particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= decay

		if p.Alpha <= 0 {
			last := len(particles) - 1
			particles[i] = particles[last]
			particles = particles[:last]
		}
	}

	ps.world.Particles = particles
}
