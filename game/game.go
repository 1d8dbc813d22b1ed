package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// Simulation owns one run of the game: every entity store, the charge
// gauge, progression and the state machine. It is not safe for concurrent
// use; frontends drive it from a single goroutine.
type Simulation struct {
	config Config
	world  *World

	motion          *MotionIntegrator
	collisionSystem *CollisionSystem
	particles       *ParticleSystem
	spawner         *SpawnScheduler
	progression     *Progression
	charge          Charge

	state State

	// now is simulation time; it only advances during playing ticks
	now time.Duration

	rng    *rand.Rand
	logger zerolog.Logger
}

// Option customizes a Simulation
type Option func(*Simulation)

// WithLogger routes simulation events to logger
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Simulation) {
		g.logger = logger
	}
}

// WithRand replaces the RNG seeded from Config.Seed
func WithRand(rng *rand.Rand) Option {
	return func(g *Simulation) {
		g.rng = rng
	}
}

// NewSimulation validates config, compiles scripted patterns and returns a
// simulation waiting for Start
func NewSimulation(config Config, opts ...Option) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	g := &Simulation{
		config: config,
		world:  NewWorld(config),
		state:  StateNotStarted,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	spawner, err := NewSpawnScheduler(g.world, g.rng, g.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build spawn scheduler: %w", err)
	}

	g.motion = NewMotionIntegrator(g.world)
	g.collisionSystem = NewCollisionSystem(g.world)
	g.particles = NewParticleSystem(g.world, g.rng)
	g.spawner = spawner
	g.progression = NewProgression(config)

	return g, nil
}

// State returns the current state machine state
func (g *Simulation) State() State {
	return g.state
}

// Config returns the configuration the simulation was built with
func (g *Simulation) Config() Config {
	return g.config
}

// Now returns the simulation time of the current run
func (g *Simulation) Now() time.Duration {
	return g.now
}

// Charge returns the current gauge value
func (g *Simulation) Charge() float64 {
	return g.charge.Value()
}

// Level returns the current level
func (g *Simulation) Level() int {
	return g.progression.Level
}

// Score returns the accumulated score
func (g *Simulation) Score() float64 {
	return g.progression.Score
}

// Start begins a run from NotStarted or GameOver
func (g *Simulation) Start() bool {
	if !g.state.CanStart() {
		return false
	}
	g.reset()
	g.logger.Info().Msg("run started")
	return true
}

// Restart begins a fresh run after a game over
func (g *Simulation) Restart() bool {
	if !g.state.CanRestart() {
		return false
	}
	g.reset()
	g.logger.Info().Msg("run restarted")
	return true
}

// reset re-initializes every store, the gauge, spawn timers and progression
func (g *Simulation) reset() {
	g.world.Reset()
	g.progression.Reset()
	g.charge.Drain()
	g.spawner.Reset()
	g.now = 0
	g.state = StatePlaying
}

// ChooseUpgrade resolves an upgrade pause
func (g *Simulation) ChooseUpgrade(u Upgrade) bool {
	if !g.state.CanChooseUpgrade() || !u.Valid() {
		return false
	}
	g.config.Upgrades.Apply(u, g.world.Player)
	g.state = StatePlaying
	g.logger.Info().
		Str("upgrade", u.String()).
		Int("level", g.progression.Level).
		Msg("upgrade chosen")
	return true
}

// Fire launches a player projectile if the gauge is full and no player
// projectile is alive. Ineligible requests are ignored.
func (g *Simulation) Fire() bool {
	if !g.state.Simulating() || !g.charge.CanFire(len(g.world.PlayerProjectiles)) {
		return false
	}

	p := g.world.Player
	g.world.AddPlayerProjectile(&PlayerProjectile{
		X:      p.X + p.Width/2 - g.config.ProjectileWidth/2,
		Y:      p.Y,
		Width:  g.config.ProjectileWidth,
		Height: g.config.ProjectileHeight,
		Speed:  p.ProjectileSpeed,
	})
	g.charge.Drain()
	return true
}

// endGame moves the run to GameOver; repeated calls have no effect
func (g *Simulation) endGame() {
	if g.state == StateGameOver {
		return
	}
	g.state = StateGameOver
	g.logger.Info().
		Int("score", g.progression.DisplayScore()).
		Int("level", g.progression.Level).
		Msg("game over")
}

// Tick advances the simulation by one frame and returns the frame's snapshot
func (g *Simulation) Tick(dt time.Duration, input InputSnapshot) Snapshot {
	g.Update(dt, input)
	return g.Snapshot()
}

// Frame reads the next delta and input from their sources and ticks once
func (g *Simulation) Frame(clock *Clock, input InputProvider) Snapshot {
	return g.Tick(clock.Tick(), input.Snapshot())
}

// Update advances the simulation by one frame. Gameplay systems only run
// while playing; in every other state the call is a no-op.
func (g *Simulation) Update(dt time.Duration, input InputSnapshot) {
	if !g.state.Simulating() {
		return
	}
	if dt < 0 {
		dt = 0
	}

	// Player movement and the player's own projectiles
	g.motion.MovePlayer(input)
	g.motion.MovePlayerProjectiles()

	// A projectile fired this tick starts moving on the next one
	fired := false
	if input.Held(KeyFire) {
		fired = g.Fire()
	}

	// Enemy projectiles move, then test contact with the player
	for _, e := range g.world.EnemyProjectiles {
		g.motion.MoveEnemy(e)
		if g.collisionSystem.PlayerHit(e) {
			g.endGame()
		}
	}
	g.world.Cleanup(nil, nil)
	if g.state == StateGameOver {
		return
	}

	// Mutual annihilation on post-motion positions
	if hits := g.collisionSystem.ResolveAnnihilations(); len(hits) > 0 {
		removedPlayer := make(map[*PlayerProjectile]bool, len(hits))
		removedEnemy := make(map[*EnemyProjectile]bool, len(hits))
		for _, h := range hits {
			removedPlayer[h.Projectile] = true
			removedEnemy[h.Enemy] = true
			g.particles.Emit(h.At.X, h.At.Y, g.config.BurstCount)
		}
		g.world.Cleanup(removedPlayer, removedEnemy)
	}

	g.particles.Update()

	g.progression.Advance(dt)
	g.now += dt

	if g.spawner.Update(g.now, g.progression) > 0 {
		g.world.Cleanup(nil, nil)
	}

	// The shot consumes this tick's regeneration
	if !fired {
		g.charge.Regenerate(g.world.Player.ChargeRate)
	}

	if g.progression.LevelUpDue() {
		g.progression.LevelUp()
		g.state = StateUpgradePause
		g.logger.Info().
			Int("level", g.progression.Level).
			Float64("enemySpeed", g.progression.EnemySpeedMultiplier).
			Float64("spawnInterval", g.progression.SpawnIntervalMultiplier).
			Msg("level up")
	}
}
