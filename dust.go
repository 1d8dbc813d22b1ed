package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// initBackground scatters stars and nebulas over the play area
func (g *Game) initBackground(rng *rand.Rand) {
	w, h := g.config.Width, g.config.Height

	g.stars = make([]star, starCount)
	for i := range g.stars {
		g.stars[i] = star{
			pos:    vec2{x: rng.Float64() * w, y: rng.Float64() * h},
			radius: rng.Float64() * 2,
			speed:  rng.Float64()*0.3 + 0.1,
		}
	}

	g.nebulas = make([]nebula, nebulaCount)
	for i := range g.nebulas {
		g.nebulas[i] = nebula{
			pos:    vec2{x: rng.Float64() * w, y: rng.Float64() * h},
			radius: rng.Float64()*100 + 50,
			color: color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 51,
			},
		}
	}
}

// updateBackground scrolls the background; it keeps moving in every state
func (g *Game) updateBackground() {
	h := g.config.Height
	for i := range g.stars {
		s := &g.stars[i]
		s.pos.y += s.speed
		if s.pos.y > h {
			s.pos.y = 0
		}
	}
	for i := range g.nebulas {
		n := &g.nebulas[i]
		n.pos.y += 0.1
		if n.pos.y-n.radius > h {
			n.pos.y = -n.radius
		}
	}

	g.gridOffset += gridScrollSpeed
	if g.gridOffset >= gridSize {
		g.gridOffset -= gridSize
	}
}

// drawBackground draws the gradient, nebulas, the scrolling grid and the stars
func (g *Game) drawBackground(screen *ebiten.Image) {
	w, h := g.config.Width, g.config.Height

	// Vertical gradient in horizontal bands
	const bands = 32
	bandHeight := h / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		drawRect(screen, 0, float64(i)*bandHeight, w, bandHeight+1, lerpColor(colorBackgroundTop, colorBackgroundBottom, t))
	}

	for _, n := range g.nebulas {
		for r := n.radius; r > 0; r -= n.radius / 6 {
			drawFilledCircle(screen, n.pos.x, n.pos.y, r, withAlpha(n.color, 0.35))
		}
	}

	for x := -g.gridOffset; x < w; x += gridSize {
		drawLine(screen, x, 0, x, h, 1.5, colorGrid)
	}
	for y := -g.gridOffset; y < h; y += gridSize {
		drawLine(screen, 0, y, w, y, 1.5, colorGrid)
	}

	for _, s := range g.stars {
		drawFilledCircle(screen, s.pos.x, s.pos.y, s.radius, colorStar)
	}
}

// lerpColor blends two colors, t in [0, 1]
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
