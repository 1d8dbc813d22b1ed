package game

import "time"

// Progression tracks score, level and the difficulty multipliers
type Progression struct {
	Score float64
	Level int

	// Elapsed is the playtime accumulated in the current level
	Elapsed time.Duration

	// EnemySpeedMultiplier scales enemy speeds at spawn time
	EnemySpeedMultiplier float64

	// SpawnIntervalMultiplier scales spawn intervals
	SpawnIntervalMultiplier float64

	// FlashOpacity is a cosmetic full-screen flash set on level-up
	FlashOpacity float64

	config Config
}

// NewProgression creates level-1 progression state
func NewProgression(config Config) *Progression {
	p := &Progression{config: config}
	p.Reset()
	return p
}

// Reset returns to the starting values
func (p *Progression) Reset() {
	p.Score = 0
	p.Level = 1
	p.Elapsed = 0
	p.EnemySpeedMultiplier = 1
	p.SpawnIntervalMultiplier = 1
	p.FlashOpacity = 0
}

// Advance accrues score and level time for one playing tick and fades the flash
func (p *Progression) Advance(dt time.Duration) {
	p.Score += p.config.ScorePerTick
	p.Elapsed += dt
	if p.FlashOpacity > 0 {
		p.FlashOpacity = max(p.FlashOpacity-p.config.FlashDecay, 0)
	}
}

// Progress returns the level-up gauge in [0, 1]
func (p *Progression) Progress() float64 {
	return clamp(float64(p.Elapsed)/float64(p.config.LevelDuration), 0, 1)
}

// LevelUpDue reports whether the level-up gauge is full
func (p *Progression) LevelUpDue() bool {
	return p.Progress() >= 1
}

// LevelUp raises the level and rescales difficulty
func (p *Progression) LevelUp() {
	p.Level++
	p.Elapsed = 0
	p.FlashOpacity = 1
	p.EnemySpeedMultiplier *= p.config.EnemySpeedGrowth
	p.SpawnIntervalMultiplier *= p.config.SpawnIntervalShrink
}

// DisplayScore returns the score as shown to the player
func (p *Progression) DisplayScore() int {
	return int(p.Score)
}
