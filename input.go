package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"neonbarrage/game"
)

// keyboardInput reads held keys from ebiten and implements game.InputProvider
type keyboardInput struct{}

// Snapshot returns the logical keys held this frame
func (keyboardInput) Snapshot() game.InputSnapshot {
	var s game.InputSnapshot
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		s = s.With(game.KeyLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		s = s.With(game.KeyRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		s = s.With(game.KeyUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		s = s.With(game.KeyDown)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		s = s.With(game.KeyFire)
	}
	return s
}

// handleInput processes commands that are not part of the per-tick snapshot:
// start, restart, upgrade choice, fullscreen and debug toggles
func (g *Game) handleInput() {
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt)
	enterJustPressed := inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	// Alt+Enter toggles fullscreen
	if altPressed && enterJustPressed {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
			ebiten.SetWindowSize(int(float64(monitorWidth)*windowedSizeRatio), int(float64(monitorHeight)*windowedSizeRatio))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.showHitboxes = !g.debug.showHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.debug.showStats = !g.debug.showStats
	}

	switch g.sim.State() {
	case game.StateNotStarted:
		if enterJustPressed {
			g.startRun()
		}
	case game.StateGameOver:
		if enterJustPressed || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.startRun()
		}
	case game.StateUpgradePause:
		if inpututil.IsKeyJustPressed(ebiten.Key1) || inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
			g.sim.ChooseUpgrade(game.UpgradeA)
		}
		if inpututil.IsKeyJustPressed(ebiten.Key2) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
			g.sim.ChooseUpgrade(game.UpgradeB)
		}
	}
}

// startRun starts or restarts the simulation and resets frontend effects
func (g *Game) startRun() {
	if g.sim.State() == game.StateGameOver {
		g.sim.Restart()
	} else {
		g.sim.Start()
	}
	g.exhaust.Reset()
	g.clock.Reset()
}
