package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestScheduler(t *testing.T, cfg Config) (*World, *SpawnScheduler) {
	t.Helper()
	w := NewWorld(cfg)
	w.Reset()
	s, err := NewSpawnScheduler(w, rand.New(rand.NewSource(7)), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSpawnScheduler failed: %v", err)
	}
	return w, s
}

func countKinds(w *World) map[PatternKind]int {
	counts := make(map[PatternKind]int)
	for _, e := range w.EnemyProjectiles {
		counts[e.Kind()]++
	}
	return counts
}

func TestSpawnGatedByLevel(t *testing.T) {
	tests := []struct {
		level int
		want  map[PatternKind]int
	}{
		{1, map[PatternKind]int{PatternLinear: 1}},
		{2, map[PatternKind]int{PatternLinear: 1, PatternWave: 3}},
		{3, map[PatternKind]int{PatternLinear: 1, PatternWave: 3, PatternCircle: 8}},
		{7, map[PatternKind]int{PatternLinear: 1, PatternWave: 3, PatternCircle: 8}},
	}

	for _, tt := range tests {
		w, s := newTestScheduler(t, DefaultConfig())
		prog := NewProgression(w.Config)
		prog.Level = tt.level

		spawned := s.Update(time.Millisecond, prog)

		got := countKinds(w)
		total := 0
		for kind, n := range tt.want {
			total += n
			if got[kind] != n {
				t.Errorf("level %d: expected %d %s projectiles, got %d", tt.level, n, kind, got[kind])
			}
		}
		if spawned != total || len(w.EnemyProjectiles) != total {
			t.Errorf("level %d: expected %d spawned, got %d (store %d)", tt.level, total, spawned, len(w.EnemyProjectiles))
		}
	}
}

func TestSpawnWaitsForNextTimestamp(t *testing.T) {
	w, s := newTestScheduler(t, DefaultConfig())
	prog := NewProgression(w.Config)

	if n := s.Update(0, prog); n != 0 {
		t.Errorf("nothing should fire at time zero, got %d", n)
	}

	now := time.Millisecond
	if n := s.Update(now, prog); n != 1 {
		t.Fatalf("expected the linear pattern to fire, got %d", n)
	}

	next := s.NextSpawn(PatternLinear)
	pc := w.Config.Linear
	if next < now+pc.BaseInterval || next > now+pc.BaseInterval+pc.IntervalSpread {
		t.Errorf("next spawn %v outside [%v, %v]", next, now+pc.BaseInterval, now+pc.BaseInterval+pc.IntervalSpread)
	}

	if n := s.Update(next, prog); n != 0 {
		t.Errorf("pattern fired at its exact timestamp, got %d", n)
	}
	if n := s.Update(next+time.Millisecond, prog); n != 1 {
		t.Errorf("pattern did not fire after its timestamp, got %d", n)
	}
}

func TestSpawnIntervalScalesWithMultiplier(t *testing.T) {
	w, s := newTestScheduler(t, DefaultConfig())
	prog := NewProgression(w.Config)
	prog.SpawnIntervalMultiplier = 0.5

	now := time.Second
	s.Update(now, prog)

	pc := w.Config.Linear
	next := s.NextSpawn(PatternLinear)
	lo := now + pc.BaseInterval/2
	hi := now + (pc.BaseInterval+pc.IntervalSpread)/2
	if next < lo || next > hi {
		t.Errorf("next spawn %v outside [%v, %v]", next, lo, hi)
	}
}

func TestSpawnScalesSpeed(t *testing.T) {
	cfg := DefaultConfig()
	w, s := newTestScheduler(t, cfg)

	linear := s.Spawn(PatternLinear, 1.21)
	if got := linear[0].Motion.(*LinearMotion).Speed; math.Abs(got-2.5*1.21) > 1e-9 {
		t.Errorf("expected linear speed %v, got %v", 2.5*1.21, got)
	}

	wave := s.Spawn(PatternWave, 2)
	for _, e := range wave {
		if got := e.Motion.(*WaveMotion).Speed; got != 4.4 {
			t.Errorf("expected wave speed 4.4, got %v", got)
		}
	}

	circle := s.Spawn(PatternCircle, 2)
	for _, e := range circle {
		m := e.Motion.(*CircleMotion)
		if m.DriftSpeed != 3.6 {
			t.Errorf("expected circle drift 3.6, got %v", m.DriftSpeed)
		}
		if m.AngularSpeed != cfg.Circle.AngularSpeed {
			t.Errorf("rotation speed must not scale, got %v", m.AngularSpeed)
		}
	}

	if len(w.EnemyProjectiles) != 1+3+8 {
		t.Errorf("expected 12 registered projectiles, got %d", len(w.EnemyProjectiles))
	}
}

func TestSpawnAnchorsRespectMargin(t *testing.T) {
	w, s := newTestScheduler(t, DefaultConfig())
	for i := 0; i < 200; i++ {
		e := s.Spawn(PatternLinear, 1)[0]
		if e.X < w.Config.SpawnMargin || e.X > w.Config.Width-w.Config.SpawnMargin {
			t.Fatalf("anchor %v outside the spawn margin", e.X)
		}
		if e.Y != w.Config.SpawnY {
			t.Fatalf("expected spawn y %v, got %v", w.Config.SpawnY, e.Y)
		}
	}
}

func TestWaveSpawnLayout(t *testing.T) {
	_, s := newTestScheduler(t, DefaultConfig())
	wave := s.spawnWave(300, 1)

	if len(wave) != 3 {
		t.Fatalf("expected 3 wave projectiles, got %d", len(wave))
	}
	for i, want := range []float64{285, 300, 315} {
		m := wave[i].Motion.(*WaveMotion)
		if m.AnchorX != want || wave[i].X != want {
			t.Errorf("projectile %d: expected anchor %v, got %v (x=%v)", i, want, m.AnchorX, wave[i].X)
		}
	}
}

func TestCircleSpawnLayout(t *testing.T) {
	cfg := DefaultConfig()
	_, s := newTestScheduler(t, cfg)
	ring := s.spawnCircle(300, 1)

	if len(ring) != 8 {
		t.Fatalf("expected 8 circle projectiles, got %d", len(ring))
	}
	for i, e := range ring {
		m := e.Motion.(*CircleMotion)
		wantAngle := float64(i) / 8 * 2 * math.Pi
		if math.Abs(m.Angle-wantAngle) > 1e-9 {
			t.Errorf("projectile %d: expected angle %v, got %v", i, wantAngle, m.Angle)
		}
		dist := math.Hypot(e.X-300, e.Y-cfg.SpawnY)
		if math.Abs(dist-cfg.Circle.Orbit) > 1e-9 {
			t.Errorf("projectile %d: expected orbit %v, got %v", i, cfg.Circle.Orbit, dist)
		}
	}
}

func TestSchedulerReset(t *testing.T) {
	w, s := newTestScheduler(t, DefaultConfig())
	prog := NewProgression(w.Config)
	prog.Level = 3
	s.Update(time.Second, prog)

	s.Reset()
	for _, kind := range patternKinds {
		if s.NextSpawn(kind) != 0 {
			t.Errorf("%s timer not reset", kind)
		}
	}
}

func TestScriptedPatternSpawns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Linear.MinLevel = 99
	cfg.Scripts = []ScriptConfig{{
		Name: "pincer",
		Source: `function spawn(ctx) {
			return [
				{kind: "linear", x: ctx.margin, y: ctx.spawnY},
				{kind: "wave", x: ctx.width - ctx.margin, y: ctx.spawnY, amplitude: 30},
				{kind: "circle", x: ctx.width / 2, y: ctx.spawnY, orbit: 25}
			];
		}`,
		MinLevel:     1,
		BaseInterval: time.Second,
	}}
	w, s := newTestScheduler(t, cfg)
	prog := NewProgression(cfg)
	prog.EnemySpeedMultiplier = 2

	if n := s.Update(time.Millisecond, prog); n != 3 {
		t.Fatalf("expected 3 scripted projectiles, got %d", n)
	}

	got := countKinds(w)
	if got[PatternLinear] != 1 || got[PatternWave] != 1 || got[PatternCircle] != 1 {
		t.Errorf("unexpected kinds: %v", got)
	}
	for _, e := range w.EnemyProjectiles {
		switch m := e.Motion.(type) {
		case *LinearMotion:
			if e.X != cfg.SpawnMargin || m.Speed != cfg.Linear.Speed*2 {
				t.Errorf("linear: x=%v speed=%v", e.X, m.Speed)
			}
		case *WaveMotion:
			if m.Amplitude != 30 || m.Period != cfg.Wave.Period {
				t.Errorf("wave: amplitude=%v period=%v", m.Amplitude, m.Period)
			}
		case *CircleMotion:
			if m.Orbit != 25 || m.CenterX != cfg.Width/2 {
				t.Errorf("circle: orbit=%v center=%v", m.Orbit, m.CenterX)
			}
		}
	}
}

func TestFailingScriptIsDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Linear.MinLevel = 99
	cfg.Scripts = []ScriptConfig{{
		Name:         "broken",
		Source:       `function spawn(ctx) { throw new Error("boom"); }`,
		MinLevel:     1,
		BaseInterval: time.Millisecond,
	}}
	w, s := newTestScheduler(t, cfg)
	prog := NewProgression(cfg)

	if n := s.Update(time.Millisecond, prog); n != 0 {
		t.Errorf("expected no spawn from a failing script, got %d", n)
	}
	if !s.scripts[0].disabled {
		t.Fatal("expected failing script to be disabled")
	}
	if n := s.Update(time.Hour, prog); n != 0 || len(w.EnemyProjectiles) != 0 {
		t.Errorf("disabled script spawned %d projectiles", n)
	}

	s.Reset()
	if s.scripts[0].disabled {
		t.Error("Reset should re-enable scripts for the next run")
	}
}

func TestSchedulerRejectsBadScript(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scripts = []ScriptConfig{{Name: "bad", Source: "function spawn(", BaseInterval: time.Second, MinLevel: 1}}
	w := NewWorld(cfg)
	if _, err := NewSpawnScheduler(w, rand.New(rand.NewSource(1)), zerolog.Nop()); err == nil {
		t.Error("expected a compile error")
	}
}

func firstCircleCenter(t *testing.T, w *World) float64 {
	t.Helper()
	for _, e := range w.EnemyProjectiles {
		if m, ok := e.Motion.(*CircleMotion); ok {
			return m.CenterX
		}
	}
	t.Fatal("no circle projectile alive")
	return 0
}

func TestSchedulerResetClearsScriptState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Linear.MinLevel = 99
	cfg.Scripts = []ScriptConfig{{
		Name:         "crossfire",
		Source:       exampleCrossfireScript,
		MinLevel:     1,
		BaseInterval: time.Second,
	}}
	w, s := newTestScheduler(t, cfg)
	prog := NewProgression(cfg)

	s.Update(time.Millisecond, prog)
	first := firstCircleCenter(t, w)

	w.Reset()
	s.Reset()
	s.Update(time.Millisecond, prog)
	if got := firstCircleCenter(t, w); got != first {
		t.Errorf("script globals survived Reset: first ring at %v, after reset %v", first, got)
	}
	if s.scripts[0].disabled {
		t.Error("script should stay enabled after Reset")
	}
}
