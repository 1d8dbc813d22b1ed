package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"neonbarrage/game"
)

// drawHUD draws the score line, the charge gauge and the level-up bar
func (g *Game) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	w, h := snap.Width, snap.Height

	hud := fmt.Sprintf("SCORE %d   LEVEL %d", snap.DisplayScore(), snap.Level)
	drawTextCentered(screen, g.face, hud, w/2, hudScoreY-10, fontScaleLarge, colorNeon)

	// Charge gauge along the right edge, filling upward
	gx := w - gaugeBarMargin
	gh := h * snap.Gauge
	drawGlowRect(screen, gx, h-gh, gaugeBarWidth, gh, colorNeon)
	drawRectOutline(screen, gx, 0, gaugeBarWidth, h, 2, colorNeon)

	// Level-up progress under the score
	lx := (w - levelBarWidth) / 2
	drawRect(screen, lx, levelBarY, levelBarWidth, levelBarHeight, colorGaugeBackdrop)
	drawRect(screen, lx, levelBarY, levelBarWidth*snap.LevelProgress, levelBarHeight, colorNeon)
	drawRectOutline(screen, lx, levelBarY, levelBarWidth, levelBarHeight, 2, colorNeon)
}

// drawFlash whites out the screen briefly after a level-up
func drawFlash(screen *ebiten.Image, snap game.Snapshot) {
	if snap.FlashOpacity <= 0 {
		return
	}
	drawRect(screen, 0, 0, snap.Width, snap.Height, withAlpha(color.NRGBA{R: 255, G: 255, B: 255, A: 255}, snap.FlashOpacity))
}

// drawOverlay draws the menu, upgrade and game-over screens
func (g *Game) drawOverlay(screen *ebiten.Image, snap game.Snapshot) {
	w, h := snap.Width, snap.Height

	switch snap.State {
	case game.StateNotStarted:
		drawRect(screen, 0, 0, w, h, colorOverlay)
		drawTextCentered(screen, g.face, "NEON BARRAGE", w/2, h/2-80, fontScaleTitle, colorNeon)
		drawTextCentered(screen, g.face, "Press ENTER to start", w/2, h/2, fontScaleLarge, colorNeon)
		drawTextCentered(screen, g.face, "Arrows/WASD move, SPACE fires when the gauge is full", w/2, h/2+40, 1, colorNeon)

	case game.StateUpgradePause:
		drawRect(screen, 0, 0, w, h, colorOverlay)
		drawTextCentered(screen, g.face, fmt.Sprintf("LEVEL %d", snap.Level), w/2, h/2-120, fontScaleTitle, colorNeon)
		g.drawUpgradeButton(screen, game.UpgradeA, "1", w/2-130, h/2-20)
		g.drawUpgradeButton(screen, game.UpgradeB, "2", w/2+10, h/2-20)

	case game.StateGameOver:
		drawRect(screen, 0, 0, w, h, colorOverlay)
		drawTextCentered(screen, g.face, "GAME OVER", w/2, h/2-60, fontScaleTitle, colorGameOver)
		summary := fmt.Sprintf("SCORE %d  LEVEL %d", snap.DisplayScore(), snap.Level)
		drawTextCentered(screen, g.face, summary, w/2, h/2+10, fontScaleLarge, colorGameOver)
		drawTextCentered(screen, g.face, "Press ENTER or R to restart", w/2, h/2+50, 1, colorNeon)
	}
}

// drawUpgradeButton draws one upgrade choice with its key hint
func (g *Game) drawUpgradeButton(screen *ebiten.Image, u game.Upgrade, key string, x, y float64) {
	const bw, bh = 120.0, 70.0
	info := game.GetUpgradeInfo(u)

	drawRect(screen, x, y, bw, bh, colorButton)
	drawRectOutline(screen, x, y, bw, bh, 2, colorNeon)
	drawTextCentered(screen, g.face, fmt.Sprintf("[%s] %s", key, info.Title), x+bw/2, y+12, 1, colorNeon)
	drawTextCentered(screen, g.face, info.Detail, x+bw/2, y+40, 0.8, colorNeon)
}

// drawStats prints debug counters in the top-left corner
func (g *Game) drawStats(screen *ebiten.Image, snap game.Snapshot) {
	stats := fmt.Sprintf("TPS %.0f  FPS %.0f\nstate %s  t=%v\nenemies %d  shots %d  particles %d\ngauge %.0f%%",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		snap.State, g.sim.Now().Truncate(1e6),
		len(snap.EnemyProjectiles), len(snap.PlayerProjectiles), len(snap.Particles),
		snap.Gauge*100)
	ebitenutil.DebugPrintAt(screen, stats, 4, int(levelBarY+levelBarHeight)+8)
}
