package game

// PlayerView is a read-only copy of the player
type PlayerView struct {
	X, Y          float64
	Width, Height float64
}

// ProjectileView is a read-only copy of a player projectile
type ProjectileView struct {
	ID            EntityID
	X, Y          float64
	Width, Height float64
}

// EnemyView is a read-only copy of an enemy projectile
type EnemyView struct {
	ID     EntityID
	Kind   PatternKind
	X, Y   float64
	Radius float64
	Trail  []Point

	// Center is the orbit center of circle projectiles and equals (X, Y) otherwise
	Center Point
}

// ParticleView is a read-only copy of a particle
type ParticleView struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

// Snapshot is everything a renderer needs to draw one frame
type Snapshot struct {
	State  State
	Width  float64
	Height float64

	Player            PlayerView
	HasPlayer         bool
	PlayerProjectiles []ProjectileView
	EnemyProjectiles  []EnemyView
	Particles         []ParticleView

	Score         float64
	Level         int
	Gauge         float64 // charge as a fraction of full
	LevelProgress float64
	FlashOpacity  float64
	GameOver      bool
}

// DisplayScore returns the score as shown to the player
func (s Snapshot) DisplayScore() int {
	return int(s.Score)
}

// Snapshot copies the current state into a renderer view
func (g *Simulation) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		State:         g.state,
		Width:         w.Config.Width,
		Height:        w.Config.Height,
		Score:         g.progression.Score,
		Level:         g.progression.Level,
		Gauge:         g.charge.Fraction(),
		LevelProgress: g.progression.Progress(),
		FlashOpacity:  g.progression.FlashOpacity,
		GameOver:      g.state == StateGameOver,
	}

	if p := w.Player; p != nil {
		snap.HasPlayer = true
		snap.Player = PlayerView{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
	}

	snap.PlayerProjectiles = make([]ProjectileView, 0, len(w.PlayerProjectiles))
	for _, p := range w.PlayerProjectiles {
		snap.PlayerProjectiles = append(snap.PlayerProjectiles, ProjectileView{
			ID: p.ID, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height,
		})
	}

	snap.EnemyProjectiles = make([]EnemyView, 0, len(w.EnemyProjectiles))
	for _, e := range w.EnemyProjectiles {
		view := EnemyView{
			ID:     e.ID,
			Kind:   e.Kind(),
			X:      e.X,
			Y:      e.Y,
			Radius: e.Radius,
			Trail:  e.Trail.Points(),
			Center: e.Position(),
		}
		if c, ok := e.Motion.(*CircleMotion); ok {
			view.Center = Point{X: c.CenterX, Y: c.CenterY}
		}
		snap.EnemyProjectiles = append(snap.EnemyProjectiles, view)
	}

	snap.Particles = make([]ParticleView, 0, len(w.Particles))
	for _, p := range w.Particles {
		snap.Particles = append(snap.Particles, ParticleView{X: p.X, Y: p.Y, Radius: p.Radius, Alpha: p.Alpha})
	}

	return snap
}
