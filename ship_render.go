package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonbarrage/game"
)

// drawPlayer draws the player ship as a glowing box with a nose triangle
func (g *Game) drawPlayer(screen *ebiten.Image, p game.PlayerView) {
	g.exhaust.Draw(screen)

	drawGlowRect(screen, p.X, p.Y, p.Width, p.Height, colorNeon)

	// Nose marker
	cx := p.X + p.Width/2
	drawLine(screen, cx, p.Y-6, cx-5, p.Y, 2, colorNeon)
	drawLine(screen, cx, p.Y-6, cx+5, p.Y, 2, colorNeon)
}

// drawPlayerProjectiles draws the player's shots
func drawPlayerProjectiles(screen *ebiten.Image, shots []game.ProjectileView) {
	for _, s := range shots {
		drawGlowRect(screen, s.X, s.Y, s.Width, s.Height, colorPlayerShot)
	}
}

// drawEnemyProjectiles draws each enemy projectile with its fading trail
func drawEnemyProjectiles(screen *ebiten.Image, enemies []game.EnemyView) {
	for _, e := range enemies {
		clr := patternColors[e.Kind]

		n := len(e.Trail)
		for j, t := range e.Trail {
			alpha := float64(j) / float64(max(n, 1)) * trailOpacityMax
			drawFilledCircle(screen, t.X, t.Y, e.Radius, withAlpha(clr, alpha))
		}

		drawGlowCircle(screen, e.X, e.Y, e.Radius, clr)
	}
}

// drawHitboxes outlines every collision shape
func drawHitboxes(screen *ebiten.Image, snap game.Snapshot) {
	if snap.HasPlayer {
		p := snap.Player
		drawRectOutline(screen, p.X, p.Y, p.Width, p.Height, 1, colorHitbox)
	}
	for _, s := range snap.PlayerProjectiles {
		// Annihilation uses the shot's half width as its radius
		drawCircleOutline(screen, s.X+s.Width/2, s.Y+s.Height/2, s.Width/2, colorHitbox)
	}
	for _, e := range snap.EnemyProjectiles {
		drawCircleOutline(screen, e.X, e.Y, e.Radius, colorHitbox)
		if e.Kind == game.PatternCircle {
			drawLine(screen, e.Center.X, e.Center.Y, e.X, e.Y, 1, withAlpha(colorHitbox, 0.4))
		}
	}
}

func drawCircleOutline(dst *ebiten.Image, cx, cy, radius float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(cx), float32(cy), float32(radius), 1, clr, true)
}

// exhaustOrigin returns the point under the ship where exhaust leaves
func exhaustOrigin(p game.PlayerView) vec2 {
	return vec2{x: p.X + p.Width/2, y: p.Y + p.Height + math.Min(2, p.Height/10)}
}
