package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"

	"neonbarrage/game"
)

// vec2 represents a 2D vector in screen space
type vec2 struct {
	x float64
	y float64
}

// star is one background star drifting downward
type star struct {
	pos    vec2
	speed  float64
	radius float64
}

// nebula is a large faint color blob behind the stars
type nebula struct {
	pos    vec2
	radius float64
	color  color.NRGBA
}

// debugState holds frontend-only debug toggles that persist across runs
type debugState struct {
	showHitboxes bool // draw the player box and projectile collision circles
	showStats    bool // show entity counts and TPS
}

// Game adapts a game.Simulation to ebiten's Game interface.
type Game struct {
	sim      *game.Simulation
	clock    *game.Clock
	input    *keyboardInput
	snap     game.Snapshot
	config   game.Config
	logger   zerolog.Logger
	profiler *game.Profiler // nil unless -profile is set

	stars      []star
	nebulas    []nebula
	gridOffset float64
	exhaust    *ParticleSystem
	face       text.Face

	debug      debugState
	slowFrames int
	frame      int
}
