package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"neonbarrage/game"
)

// Particle is a cosmetic frontend particle. Gameplay bursts live in the
// simulation; these only decorate the player ship.
type Particle struct {
	pos      vec2    // screen position
	vel      vec2    // pixels per second
	age      float64 // age in seconds
	lifetime float64 // total lifetime in seconds
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem represents a particle emitter
type ParticleSystem struct {
	particles      []Particle
	maxParticles   int
	emissionRate   float64 // particles per second
	emissionTimer  float64 // time since last emission
	emitterPos     vec2
	direction      float64 // emission angle in radians, 0 = right, Pi/2 = down
	velocityMin    float64
	velocityMax    float64
	spreadAngle    float64 // half-angle in radians
	lifetimeMin    float64
	lifetimeMax    float64
	sizeMin        float64
	sizeMax        float64
	colorBase      color.NRGBA
	colorVariation color.NRGBA
	active         bool
	rng            *rand.Rand
}

// NewExhaustParticleSystem creates the engine exhaust under the player ship
func NewExhaustParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		maxParticles:   60,
		emissionRate:   70.0,
		direction:      math.Pi / 2,
		velocityMin:    60.0,
		velocityMax:    120.0,
		spreadAngle:    math.Pi / 10,
		lifetimeMin:    0.15,
		lifetimeMax:    0.4,
		sizeMin:        1.0,
		sizeMax:        2.5,
		colorBase:      colorExhaust,
		colorVariation: colorExhaustVariation,
		rng:            rng,
	}
}

// Update moves the emitter, emits new particles if active and ages the rest
func (ps *ParticleSystem) Update(dt float64, emitterPos vec2) {
	ps.emitterPos = emitterPos

	if ps.active {
		ps.emissionTimer += dt
		toEmit := int(ps.emissionRate * ps.emissionTimer)
		if toEmit > 0 {
			ps.emissionTimer -= float64(toEmit) / ps.emissionRate
			for i := 0; i < toEmit && len(ps.particles) < ps.maxParticles; i++ {
				ps.emitParticle()
			}
		}
	}

	for i := len(ps.particles) - 1; i >= 0; i-- {
		p := &ps.particles[i]
		p.age += dt
		p.pos.x += p.vel.x * dt
		p.pos.y += p.vel.y * dt

		if !p.IsAlive() {
			ps.particles = append(ps.particles[:i], ps.particles[i+1:]...)
		}
	}
}

func (ps *ParticleSystem) emitParticle() {
	angle := ps.direction + (ps.rng.Float64()-0.5)*ps.spreadAngle*2
	speed := ps.velocityMin + ps.rng.Float64()*(ps.velocityMax-ps.velocityMin)

	vary := func(base, variation uint8) uint8 {
		v := float64(base) + ps.rng.Float64()*float64(variation)*2 - float64(variation)
		return uint8(clamp(v, 0, 255))
	}

	ps.particles = append(ps.particles, Particle{
		pos:      ps.emitterPos,
		vel:      vec2{x: math.Cos(angle) * speed, y: math.Sin(angle) * speed},
		lifetime: ps.lifetimeMin + ps.rng.Float64()*(ps.lifetimeMax-ps.lifetimeMin),
		size:     ps.sizeMin + ps.rng.Float64()*(ps.sizeMax-ps.sizeMin),
		color: color.NRGBA{
			R: vary(ps.colorBase.R, ps.colorVariation.R),
			G: vary(ps.colorBase.G, ps.colorVariation.G),
			B: vary(ps.colorBase.B, ps.colorVariation.B),
			A: ps.colorBase.A,
		},
	})
}

// Draw renders all particles, fading them with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		alpha := 0.6 * clamp(1-p.age/p.lifetime, 0, 1)
		drawFilledCircle(screen, p.pos.x, p.pos.y, p.size, withAlpha(p.color, alpha))
	}
}

// SetActive sets whether the emitter is emitting
func (ps *ParticleSystem) SetActive(active bool) {
	ps.active = active
	if !active {
		ps.emissionTimer = 0
	}
}

// Reset drops every particle
func (ps *ParticleSystem) Reset() {
	ps.particles = ps.particles[:0]
	ps.emissionTimer = 0
}

// drawBurstParticles draws the annihilation particles from a snapshot
func drawBurstParticles(screen *ebiten.Image, particles []game.ParticleView) {
	for _, p := range particles {
		drawFilledCircle(screen, p.X, p.Y, p.Radius, withAlpha(colorParticle, p.Alpha))
	}
}
