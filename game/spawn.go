package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

// patternKinds lists the built-in patterns in evaluation order
var patternKinds = [...]PatternKind{PatternLinear, PatternWave, PatternCircle}

// scriptTimer schedules one scripted pattern
type scriptTimer struct {
	config   ScriptConfig
	script   *PatternScript
	next     time.Duration
	disabled bool
}

// SpawnScheduler fires the enemy patterns on independent randomized timers
type SpawnScheduler struct {
	world   *World
	rng     *rand.Rand
	logger  zerolog.Logger
	next    [len(patternKinds)]time.Duration
	scripts []*scriptTimer
}

// NewSpawnScheduler compiles the configured scripted patterns and creates a scheduler
func NewSpawnScheduler(world *World, rng *rand.Rand, logger zerolog.Logger) (*SpawnScheduler, error) {
	s := &SpawnScheduler{
		world:  world,
		rng:    rng,
		logger: logger,
	}

	for _, sc := range world.Config.Scripts {
		script, err := CompilePatternScript(sc.Name, sc.Source, rng)
		if err != nil {
			return nil, err
		}
		s.scripts = append(s.scripts, &scriptTimer{config: sc, script: script})
	}

	return s, nil
}

// Reset makes every pattern eligible immediately and gives every script
// a fresh runtime
func (s *SpawnScheduler) Reset() {
	for i := range s.next {
		s.next[i] = 0
	}
	for _, t := range s.scripts {
		t.next = 0
		t.disabled = false
		if err := t.script.Reset(); err != nil {
			t.disabled = true
			s.logger.Error().Err(err).Str("script", t.config.Name).Msg("pattern script disabled")
		}
	}
}

// NextSpawn returns the timestamp after which a built-in pattern fires next
func (s *SpawnScheduler) NextSpawn(kind PatternKind) time.Duration {
	return s.next[kind]
}

// Update fires every due pattern that the current level unlocks and
// returns the number of projectiles spawned
func (s *SpawnScheduler) Update(now time.Duration, prog *Progression) int {
	spawned := 0

	for _, kind := range patternKinds {
		pc := s.world.Config.Pattern(kind)
		if prog.Level < pc.MinLevel || now <= s.next[kind] {
			continue
		}
		spawned += len(s.Spawn(kind, prog.EnemySpeedMultiplier))
		s.next[kind] = now + s.interval(pc.BaseInterval, pc.IntervalSpread, prog.SpawnIntervalMultiplier)
	}

	for _, t := range s.scripts {
		if t.disabled || prog.Level < t.config.MinLevel || now <= t.next {
			continue
		}
		spawned += s.spawnScripted(t, now, prog)
		t.next = now + s.interval(t.config.BaseInterval, t.config.IntervalSpread, prog.SpawnIntervalMultiplier)
	}

	return spawned
}

// interval draws base + rand*spread and scales it by the spawn multiplier
func (s *SpawnScheduler) interval(base, spread time.Duration, multiplier float64) time.Duration {
	d := float64(base) + s.rng.Float64()*float64(spread)
	return time.Duration(d * multiplier)
}

// randomAnchor picks a horizontal spawn position away from the side edges
func (s *SpawnScheduler) randomAnchor() float64 {
	margin := s.world.Config.SpawnMargin
	return s.rng.Float64()*(s.world.Config.Width-2*margin) + margin
}

// Spawn emits one instance of a built-in pattern with speeds scaled by speedMultiplier
func (s *SpawnScheduler) Spawn(kind PatternKind, speedMultiplier float64) []*EnemyProjectile {
	switch kind {
	case PatternWave:
		return s.spawnWave(s.randomAnchor(), speedMultiplier)
	case PatternCircle:
		return s.spawnCircle(s.randomAnchor(), speedMultiplier)
	default:
		return s.spawnLinear(s.randomAnchor(), speedMultiplier)
	}
}

func (s *SpawnScheduler) spawnLinear(x, speedMultiplier float64) []*EnemyProjectile {
	pc := s.world.Config.Linear
	out := make([]*EnemyProjectile, 0, pc.Count)
	for i := 0; i < pc.Count; i++ {
		out = append(out, s.world.NewEnemyProjectile(
			Point{X: x, Y: s.world.Config.SpawnY},
			pc.Radius,
			&LinearMotion{Speed: pc.Speed * speedMultiplier},
		))
	}
	s.logger.Debug().Str("pattern", "linear").Float64("x", x).Msg("spawn")
	return out
}

func (s *SpawnScheduler) spawnWave(x, speedMultiplier float64) []*EnemyProjectile {
	pc := s.world.Config.Wave
	out := make([]*EnemyProjectile, 0, pc.Count)

	// Offsets run -1, 0, +1 for the default count of three
	first := -(pc.Count - 1) / 2
	for i := 0; i < pc.Count; i++ {
		anchor := x + float64(first+i)*pc.Spacing
		out = append(out, s.world.NewEnemyProjectile(
			Point{X: anchor, Y: s.world.Config.SpawnY},
			pc.Radius,
			&WaveMotion{
				Speed:     pc.Speed * speedMultiplier,
				AnchorX:   anchor,
				Amplitude: pc.Amplitude,
				Period:    pc.Period,
			},
		))
	}
	s.logger.Debug().Str("pattern", "wave").Float64("x", x).Msg("spawn")
	return out
}

func (s *SpawnScheduler) spawnCircle(x, speedMultiplier float64) []*EnemyProjectile {
	pc := s.world.Config.Circle
	out := make([]*EnemyProjectile, 0, pc.Count)
	for i := 0; i < pc.Count; i++ {
		out = append(out, s.world.NewEnemyProjectile(
			Point{},
			pc.Radius,
			&CircleMotion{
				CenterX:      x,
				CenterY:      s.world.Config.SpawnY,
				Orbit:        pc.Orbit,
				Angle:        float64(i) / float64(pc.Count) * 2 * math.Pi,
				AngularSpeed: pc.AngularSpeed,
				DriftSpeed:   pc.Speed * speedMultiplier,
			},
		))
	}
	s.logger.Debug().Str("pattern", "circle").Float64("x", x).Msg("spawn")
	return out
}

// spawnScripted runs a scripted pattern. A failing script is disabled for
// the rest of the run.
func (s *SpawnScheduler) spawnScripted(t *scriptTimer, now time.Duration, prog *Progression) int {
	ctx := SpawnContext{
		Width:           s.world.Config.Width,
		Height:          s.world.Config.Height,
		SpawnY:          s.world.Config.SpawnY,
		Margin:          s.world.Config.SpawnMargin,
		Level:           prog.Level,
		TimeMs:          now.Milliseconds(),
		SpeedMultiplier: prog.EnemySpeedMultiplier,
	}
	if p := s.world.Player; p != nil {
		center := p.Center()
		ctx.PlayerX, ctx.PlayerY = center.X, center.Y
	}

	requests, err := t.script.Spawn(ctx)
	if err != nil {
		t.disabled = true
		s.logger.Error().Err(err).Str("script", t.config.Name).Msg("pattern script disabled")
		return 0
	}

	for _, r := range requests {
		s.materialize(r, prog.EnemySpeedMultiplier)
	}
	s.logger.Debug().Str("script", t.config.Name).Int("count", len(requests)).Msg("spawn")
	return len(requests)
}

// materialize turns a script request into a built-in variant projectile
func (s *SpawnScheduler) materialize(r SpawnRequest, speedMultiplier float64) *EnemyProjectile {
	kind, _ := ParsePatternKind(r.Kind)
	pc := s.world.Config.Pattern(kind)
	orDefault := func(v, def float64) float64 {
		if v == 0 {
			return def
		}
		return v
	}

	radius := orDefault(r.Radius, pc.Radius)
	speed := orDefault(r.Speed, pc.Speed) * speedMultiplier
	pos := Point{X: r.X, Y: r.Y}

	var motion Motion
	switch kind {
	case PatternWave:
		motion = &WaveMotion{
			Speed:     speed,
			AnchorX:   r.X,
			Amplitude: orDefault(r.Amplitude, pc.Amplitude),
			Period:    orDefault(r.Period, pc.Period),
		}
	case PatternCircle:
		motion = &CircleMotion{
			CenterX:      r.X,
			CenterY:      r.Y,
			Orbit:        orDefault(r.Orbit, pc.Orbit),
			Angle:        r.Angle,
			AngularSpeed: orDefault(r.AngularSpeed, pc.AngularSpeed),
			DriftSpeed:   speed,
		}
	default:
		motion = &LinearMotion{Speed: speed}
	}

	return s.world.NewEnemyProjectile(pos, radius, motion)
}
