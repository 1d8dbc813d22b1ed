package game

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds simulation configuration
type Config struct {
	// Width is the play-area width in pixels
	Width float64 `yaml:"width"`

	// Height is the play-area height in pixels
	Height float64 `yaml:"height"`

	// Player holds the starting player stats
	Player PlayerConfig `yaml:"player"`

	// ProjectileWidth is the width of a player projectile
	ProjectileWidth float64 `yaml:"projectileWidth"`

	// ProjectileHeight is the height of a player projectile
	ProjectileHeight float64 `yaml:"projectileHeight"`

	// LevelDuration is the playtime needed to fill the level-up gauge
	LevelDuration time.Duration `yaml:"levelDuration"`

	// EnemySpeedGrowth multiplies the enemy-speed multiplier on every level-up (> 1)
	EnemySpeedGrowth float64 `yaml:"enemySpeedGrowth"`

	// SpawnIntervalShrink multiplies the spawn-interval multiplier on every level-up (< 1)
	SpawnIntervalShrink float64 `yaml:"spawnIntervalShrink"`

	// FlashDecay is subtracted from the level-up flash opacity every playing tick
	FlashDecay float64 `yaml:"flashDecay"`

	// ScorePerTick is added to the score every playing tick
	ScorePerTick float64 `yaml:"scorePerTick"`

	// BurstCount is the number of particles emitted by one annihilation
	BurstCount int `yaml:"burstCount"`

	// ParticleSpread is the full range of a particle's velocity component
	ParticleSpread float64 `yaml:"particleSpread"`

	// ParticleDecay is subtracted from particle opacity every playing tick
	ParticleDecay float64 `yaml:"particleDecay"`

	// TrailLength caps the number of positions kept per enemy projectile
	TrailLength int `yaml:"trailLength"`

	// SpawnY is the vertical spawn line for every pattern
	SpawnY float64 `yaml:"spawnY"`

	// SpawnMargin keeps spawn anchors away from the side edges
	SpawnMargin float64 `yaml:"spawnMargin"`

	// MaxFrameDelta clamps a single clock delta
	MaxFrameDelta time.Duration `yaml:"maxFrameDelta"`

	// Seed seeds the simulation RNG. Zero picks a time-based seed.
	Seed int64 `yaml:"seed"`

	// Linear, Wave and Circle configure the three built-in patterns
	Linear PatternConfig `yaml:"linear"`
	Wave   PatternConfig `yaml:"wave"`
	Circle PatternConfig `yaml:"circle"`

	// Upgrades configures the two upgrade choices
	Upgrades UpgradeConfig `yaml:"upgrades"`

	// Scripts declares extra spawn patterns driven by JavaScript
	Scripts []ScriptConfig `yaml:"scripts"`
}

// PlayerConfig holds the player's starting stats
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`           // pixels per tick
	ProjectileSpeed float64 `yaml:"projectileSpeed"` // pixels per tick
	ChargeRate      float64 `yaml:"chargeRate"`      // gauge points per tick
	BottomOffset    float64 `yaml:"bottomOffset"`    // start distance from the bottom edge
}

// PatternConfig holds the spawn and motion parameters of one pattern
type PatternConfig struct {
	MinLevel       int           `yaml:"minLevel"`
	BaseInterval   time.Duration `yaml:"baseInterval"`
	IntervalSpread time.Duration `yaml:"intervalSpread"`
	Count          int           `yaml:"count"`
	Radius         float64       `yaml:"radius"`
	Speed          float64       `yaml:"speed"`

	// Spacing is the horizontal gap between wave projectiles
	Spacing float64 `yaml:"spacing"`

	// Amplitude and Period shape the wave's sinusoid
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`

	// Orbit and AngularSpeed shape the circle pattern
	Orbit        float64 `yaml:"orbit"`
	AngularSpeed float64 `yaml:"angularSpeed"`
}

// UpgradeConfig holds the bonuses granted by each upgrade choice
type UpgradeConfig struct {
	SpeedBonus           float64 `yaml:"speedBonus"`
	ProjectileSpeedBonus float64 `yaml:"projectileSpeedBonus"`
	ChargeRateBonus      float64 `yaml:"chargeRateBonus"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:  600,
		Height: 800,
		Player: PlayerConfig{
			Width:           30,
			Height:          30,
			Speed:           2,
			ProjectileSpeed: 8,
			ChargeRate:      1.5,
			BottomOffset:    50,
		},
		ProjectileWidth:     10,
		ProjectileHeight:    10,
		LevelDuration:       10 * time.Second,
		EnemySpeedGrowth:    1.1,
		SpawnIntervalShrink: 0.9,
		FlashDecay:          0.05,
		ScorePerTick:        0.5,
		BurstCount:          18,
		ParticleSpread:      4,
		ParticleDecay:       0.03,
		TrailLength:         10,
		SpawnY:              50,
		SpawnMargin:         20,
		MaxFrameDelta:       100 * time.Millisecond,
		Linear: PatternConfig{
			MinLevel:       1,
			BaseInterval:   1000 * time.Millisecond,
			IntervalSpread: 1500 * time.Millisecond,
			Count:          1,
			Radius:         5,
			Speed:          2.5,
		},
		Wave: PatternConfig{
			MinLevel:       2,
			BaseInterval:   1500 * time.Millisecond,
			IntervalSpread: 2000 * time.Millisecond,
			Count:          3,
			Radius:         5,
			Speed:          2.2,
			Spacing:        15,
			Amplitude:      15,
			Period:         60,
		},
		Circle: PatternConfig{
			MinLevel:       3,
			BaseInterval:   2000 * time.Millisecond,
			IntervalSpread: 2500 * time.Millisecond,
			Count:          8,
			Radius:         5,
			Speed:          1.8,
			Orbit:          40,
			AngularSpeed:   0.03,
		},
		Upgrades: UpgradeConfig{
			SpeedBonus:           1,
			ProjectileSpeedBonus: 2,
			ChargeRateBonus:      0.5,
		},
	}
}

// Pattern returns the configuration of a built-in pattern
func (c Config) Pattern(kind PatternKind) PatternConfig {
	switch kind {
	case PatternWave:
		return c.Wave
	case PatternCircle:
		return c.Circle
	default:
		return c.Linear
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
// Script files are read relative to the config file's directory.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	for i := range cfg.Scripts {
		s := &cfg.Scripts[i]
		if s.Source != "" || s.File == "" {
			continue
		}
		file := s.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(filepath.Dir(path), file)
		}
		code, err := os.ReadFile(file)
		if err != nil {
			return cfg, fmt.Errorf("failed to read script %q: %w", s.Name, err)
		}
		s.Source = string(code)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("play area must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player size must be positive")
	}
	if c.Player.Width > c.Width || c.Player.Height > c.Height {
		return fmt.Errorf("player does not fit in the play area")
	}
	if c.Player.Speed < 0 || c.Player.ProjectileSpeed <= 0 || c.Player.ChargeRate < 0 {
		return fmt.Errorf("player speeds and charge rate must not be negative")
	}
	if c.ProjectileWidth <= 0 || c.ProjectileHeight <= 0 {
		return fmt.Errorf("projectile size must be positive")
	}
	if c.LevelDuration <= 0 {
		return fmt.Errorf("levelDuration must be positive, got %v", c.LevelDuration)
	}
	if c.EnemySpeedGrowth <= 1 {
		return fmt.Errorf("enemySpeedGrowth must be greater than 1, got %v", c.EnemySpeedGrowth)
	}
	if c.SpawnIntervalShrink <= 0 || c.SpawnIntervalShrink >= 1 {
		return fmt.Errorf("spawnIntervalShrink must be in (0, 1), got %v", c.SpawnIntervalShrink)
	}
	if c.BurstCount < 0 {
		return fmt.Errorf("burstCount must not be negative")
	}
	if c.ParticleDecay <= 0 {
		return fmt.Errorf("particleDecay must be positive")
	}
	if c.TrailLength < 0 {
		return fmt.Errorf("trailLength must not be negative")
	}
	if 2*c.SpawnMargin >= c.Width {
		return fmt.Errorf("spawnMargin %v leaves no room to spawn", c.SpawnMargin)
	}
	if c.MaxFrameDelta <= 0 {
		return fmt.Errorf("maxFrameDelta must be positive")
	}

	for _, kind := range []PatternKind{PatternLinear, PatternWave, PatternCircle} {
		if err := c.Pattern(kind).validate(); err != nil {
			return fmt.Errorf("%s pattern: %w", kind, err)
		}
	}
	if c.Wave.Period == 0 {
		return fmt.Errorf("wave pattern: period must not be zero")
	}

	seen := make(map[string]bool, len(c.Scripts))
	for i, s := range c.Scripts {
		if s.Name == "" {
			return fmt.Errorf("script %d: name cannot be empty", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("script %q declared twice", s.Name)
		}
		seen[s.Name] = true
		if s.Source == "" && s.File == "" {
			return fmt.Errorf("script %q: either source or file is required", s.Name)
		}
		if s.BaseInterval <= 0 {
			return fmt.Errorf("script %q: baseInterval must be positive", s.Name)
		}
	}

	return nil
}

func (p PatternConfig) validate() error {
	if p.MinLevel < 1 {
		return fmt.Errorf("minLevel must be at least 1, got %d", p.MinLevel)
	}
	if p.BaseInterval <= 0 || p.IntervalSpread < 0 {
		return fmt.Errorf("intervals must be positive")
	}
	if p.Count < 1 {
		return fmt.Errorf("count must be at least 1")
	}
	if p.Radius <= 0 {
		return fmt.Errorf("radius must be positive")
	}
	return nil
}
