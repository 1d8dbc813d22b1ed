package game

// World owns every entity store of one simulation
type World struct {
	Config Config

	// Player is nil before the first start
	Player *Player

	PlayerProjectiles []*PlayerProjectile
	EnemyProjectiles  []*EnemyProjectile
	Particles         []Particle

	nextID EntityID
}

// NewWorld creates an empty world
func NewWorld(config Config) *World {
	return &World{
		Config:            config,
		PlayerProjectiles: make([]*PlayerProjectile, 0, 1),
		EnemyProjectiles:  make([]*EnemyProjectile, 0, 64),
		Particles:         make([]Particle, 0, 64),
	}
}

// Reset clears every store and places a fresh player
func (w *World) Reset() {
	w.Player = NewPlayer(w.Config)
	w.PlayerProjectiles = w.PlayerProjectiles[:0]
	w.EnemyProjectiles = w.EnemyProjectiles[:0]
	w.Particles = w.Particles[:0]
	w.nextID = InvalidEntityID
}

func (w *World) generateID() EntityID {
	w.nextID++
	return w.nextID
}

// AddPlayerProjectile registers a player projectile
func (w *World) AddPlayerProjectile(p *PlayerProjectile) {
	if p.ID == InvalidEntityID {
		p.ID = w.generateID()
	}
	w.PlayerProjectiles = append(w.PlayerProjectiles, p)
}

// NewEnemyProjectile creates and registers an enemy projectile with its
// position resolved from the motion
func (w *World) NewEnemyProjectile(pos Point, radius float64, motion Motion) *EnemyProjectile {
	if c, ok := motion.(*CircleMotion); ok {
		pos = c.position()
	}
	e := &EnemyProjectile{
		ID:     w.generateID(),
		X:      pos.X,
		Y:      pos.Y,
		Radius: radius,
		Motion: motion,
		Trail:  NewTrail(w.Config.TrailLength),
	}
	w.EnemyProjectiles = append(w.EnemyProjectiles, e)
	return e
}

// InBounds reports whether a point lies inside the play area (edges included)
func (w *World) InBounds(p Point) bool {
	return p.X >= 0 && p.X <= w.Config.Width && p.Y >= 0 && p.Y <= w.Config.Height
}

// Cleanup drops projectiles that left the play area or were marked for removal
func (w *World) Cleanup(removedPlayer map[*PlayerProjectile]bool, removedEnemy map[*EnemyProjectile]bool) {
	kept := w.PlayerProjectiles[:0]
	for _, p := range w.PlayerProjectiles {
		if removedPlayer[p] || p.Y < 0 {
			continue
		}
		kept = append(kept, p)
	}
	clear(w.PlayerProjectiles[len(kept):])
	w.PlayerProjectiles = kept

	keptEnemy := w.EnemyProjectiles[:0]
	for _, e := range w.EnemyProjectiles {
		if removedEnemy[e] || !w.InBounds(e.Position()) {
			continue
		}
		keptEnemy = append(keptEnemy, e)
	}
	clear(w.EnemyProjectiles[len(keptEnemy):])
	w.EnemyProjectiles = keptEnemy
}
