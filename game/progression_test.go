package game

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestChargeClamp(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"below zero", -10, 0},
		{"inside", 42, 42},
		{"above full", 250, MaxCharge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Charge
			c.Set(tt.set)
			if c.Value() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, c.Value())
			}
		})
	}

	var c Charge
	for i := 0; i < 100; i++ {
		c.Regenerate(1.5)
	}
	if !c.Full() || c.Value() != MaxCharge || c.Fraction() != 1 {
		t.Errorf("expected a full gauge, got %v", c.Value())
	}
	c.Drain()
	if c.Value() != 0 {
		t.Errorf("expected drained gauge, got %v", c.Value())
	}
}

func TestProgressionAdvance(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProgression(cfg)

	p.Advance(cfg.LevelDuration / 4)
	if p.Score != cfg.ScorePerTick {
		t.Errorf("expected score %v, got %v", cfg.ScorePerTick, p.Score)
	}
	if p.Progress() != 0.25 {
		t.Errorf("expected progress 0.25, got %v", p.Progress())
	}
	if p.LevelUpDue() {
		t.Error("level-up should not be due yet")
	}

	p.Advance(cfg.LevelDuration)
	if p.Progress() != 1 {
		t.Errorf("progress should clamp to 1, got %v", p.Progress())
	}
	if !p.LevelUpDue() {
		t.Error("expected level-up to be due")
	}
}

func TestProgressionLevelUp(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProgression(cfg)
	p.Elapsed = cfg.LevelDuration
	p.Score = 42

	for level := 2; level <= 5; level++ {
		speed, interval := p.EnemySpeedMultiplier, p.SpawnIntervalMultiplier
		p.LevelUp()

		if p.Level != level {
			t.Errorf("expected level %d, got %d", level, p.Level)
		}
		if p.Elapsed != 0 {
			t.Errorf("expected elapsed reset, got %v", p.Elapsed)
		}
		if p.EnemySpeedMultiplier <= speed {
			t.Errorf("enemy speed multiplier did not grow: %v -> %v", speed, p.EnemySpeedMultiplier)
		}
		if p.SpawnIntervalMultiplier >= interval {
			t.Errorf("spawn interval multiplier did not shrink: %v -> %v", interval, p.SpawnIntervalMultiplier)
		}
	}
	if p.Score != 42 {
		t.Errorf("level-up must not touch the score, got %v", p.Score)
	}
	if math.Abs(p.EnemySpeedMultiplier-math.Pow(1.1, 4)) > 1e-9 {
		t.Errorf("expected speed multiplier 1.1^4, got %v", p.EnemySpeedMultiplier)
	}
}

func TestFlashDecays(t *testing.T) {
	cfg := DefaultConfig()
	p := NewProgression(cfg)
	p.LevelUp()

	for i := 0; i < 30; i++ {
		p.Advance(time.Millisecond)
		if p.FlashOpacity < 0 {
			t.Fatalf("flash went negative: %v", p.FlashOpacity)
		}
	}
	if p.FlashOpacity != 0 {
		t.Errorf("expected flash to fade out, got %v", p.FlashOpacity)
	}
}

func TestUpgradeInfo(t *testing.T) {
	for _, u := range []Upgrade{UpgradeA, UpgradeB} {
		info := GetUpgradeInfo(u)
		if info.Upgrade != u || info.Title == "" {
			t.Errorf("missing info for %s: %+v", u, info)
		}
	}
	if Upgrade(5).Valid() {
		t.Error("unknown upgrade reported valid")
	}
}

func TestParticlesFadeOut(t *testing.T) {
	w := newTestWorld(t)
	ps := NewParticleSystem(w, rand.New(rand.NewSource(3)))
	ps.Emit(100, 100, w.Config.BurstCount)

	for _, p := range w.Particles {
		if p.Radius < 2 || p.Radius >= 5 {
			t.Errorf("radius %v outside [2, 5)", p.Radius)
		}
		if math.Abs(p.VX) > w.Config.ParticleSpread/2 || math.Abs(p.VY) > w.Config.ParticleSpread/2 {
			t.Errorf("velocity (%v, %v) outside the spread", p.VX, p.VY)
		}
	}

	ps.Update()
	if len(w.Particles) != w.Config.BurstCount {
		t.Fatalf("expected %d particles after one update, got %d", w.Config.BurstCount, len(w.Particles))
	}
	for _, p := range w.Particles {
		if p.Alpha >= 1 {
			t.Fatalf("particle did not fade: %v", p.Alpha)
		}
	}

	for i := 0; i < 40; i++ {
		ps.Update()
	}
	if len(w.Particles) != 0 {
		t.Errorf("expected all particles gone, got %d", len(w.Particles))
	}
}

func TestStateGuards(t *testing.T) {
	tests := []struct {
		state                        State
		start, restart, upgrade, sim bool
	}{
		{StateNotStarted, true, false, false, false},
		{StatePlaying, false, false, false, true},
		{StateUpgradePause, false, false, true, false},
		{StateGameOver, true, true, false, false},
	}

	for _, tt := range tests {
		if got := tt.state.CanStart(); got != tt.start {
			t.Errorf("%s.CanStart() = %v", tt.state, got)
		}
		if got := tt.state.CanRestart(); got != tt.restart {
			t.Errorf("%s.CanRestart() = %v", tt.state, got)
		}
		if got := tt.state.CanChooseUpgrade(); got != tt.upgrade {
			t.Errorf("%s.CanChooseUpgrade() = %v", tt.state, got)
		}
		if got := tt.state.Simulating(); got != tt.sim {
			t.Errorf("%s.Simulating() = %v", tt.state, got)
		}
	}
}
