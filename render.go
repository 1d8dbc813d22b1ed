package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// clamp restricts val to [lo, hi]
func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// withAlpha scales a color's opacity by alpha in [0, 1]
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clamp(alpha, 0, 1))
	return c
}

// drawFilledCircle draws an anti-aliased filled circle
func drawFilledCircle(dst *ebiten.Image, cx, cy, radius float64, clr color.Color) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), clr, true)
}

// drawGlowCircle draws a circle with a soft halo, standing in for a canvas shadow blur
func drawGlowCircle(dst *ebiten.Image, cx, cy, radius float64, clr color.NRGBA) {
	for i := glowLayers; i > 0; i-- {
		halo := withAlpha(clr, 0.12)
		drawFilledCircle(dst, cx, cy, radius+float64(i)*glowSpread, halo)
	}
	drawFilledCircle(dst, cx, cy, radius, clr)
}

// drawRect draws a filled rectangle
func drawRect(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(width), float32(height), clr, true)
}

// drawGlowRect draws a rectangle with a soft halo
func drawGlowRect(dst *ebiten.Image, x, y, width, height float64, clr color.NRGBA) {
	for i := glowLayers; i > 0; i-- {
		pad := float64(i) * glowSpread
		drawRect(dst, x-pad, y-pad, width+2*pad, height+2*pad, withAlpha(clr, 0.12))
	}
	drawRect(dst, x, y, width, height, clr)
}

// drawRectOutline draws an outlined rectangle
func drawRectOutline(dst *ebiten.Image, x, y, width, height, stroke float64, clr color.Color) {
	vector.StrokeRect(dst, float32(x), float32(y), float32(width), float32(height), float32(stroke), clr, true)
}

// drawLine draws a straight line
func drawLine(dst *ebiten.Image, x0, y0, x1, y1, stroke float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(stroke), clr, true)
}

// drawText draws s with its top-left corner at (x, y)
func drawText(dst *ebiten.Image, face text.Face, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawTextCentered draws s horizontally centered on cx
func drawTextCentered(dst *ebiten.Image, face text.Face, s string, cx, y, scale float64, clr color.Color) {
	width, _ := text.Measure(s, face, 0)
	drawText(dst, face, s, cx-width*scale/2, y, scale, clr)
}
