package main

import (
	"image/color"

	"neonbarrage/game"
)

// Presentation constants
const (
	starCount          = 80
	nebulaCount        = 5
	gridSize           = 40.0
	gridScrollSpeed    = 0.5 // pixels per frame
	glowLayers         = 3
	glowSpread         = 3.0
	trailOpacityMax    = 0.5
	gaugeBarWidth      = 20.0
	gaugeBarMargin     = 30.0
	levelBarWidth      = 400.0
	levelBarHeight     = 15.0
	levelBarY          = 50.0
	hudScoreY          = 22.0
	fontScaleTitle     = 4.0
	fontScaleLarge     = 2.0
	windowedSizeRatio  = 0.9
	slowFrameFPS       = 40.0
	slowFrameThreshold = 120 // consecutive slow frames before a capture
)

// Color constants
var (
	colorBackgroundTop    = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	colorBackgroundBottom = color.NRGBA{R: 26, G: 26, B: 46, A: 255}
	colorNeon             = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	colorGrid             = color.NRGBA{R: 0, G: 255, B: 255, A: 72}
	colorStar             = color.NRGBA{R: 0, G: 255, B: 255, A: 128}
	colorGaugeBackdrop    = color.NRGBA{R: 0, G: 255, B: 255, A: 26}
	colorPlayerShot       = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	colorParticle         = color.NRGBA{R: 255, G: 255, B: 0, A: 255}
	colorExhaust          = color.NRGBA{R: 120, G: 220, B: 255, A: 255}
	colorExhaustVariation = color.NRGBA{R: 60, G: 35, B: 0, A: 0}
	colorOverlay          = color.NRGBA{R: 0, G: 0, B: 0, A: 153}
	colorGameOver         = color.NRGBA{R: 255, G: 0, B: 102, A: 255}
	colorHitbox           = color.NRGBA{R: 255, G: 60, B: 60, A: 255}
	colorButton           = color.NRGBA{R: 0, G: 60, B: 70, A: 230}
)

// patternColors maps each enemy projectile variant to its draw color
var patternColors = map[game.PatternKind]color.NRGBA{
	game.PatternLinear: {R: 255, G: 0, B: 255, A: 255},
	game.PatternWave:   {R: 255, G: 102, B: 255, A: 255},
	game.PatternCircle: {R: 0, G: 255, B: 255, A: 255},
}
