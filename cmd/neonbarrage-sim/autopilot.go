package main

import (
	"math"

	"neonbarrage/game"
)

// autopilot is a simple scripted player: it holds fire, steers away from the
// most threatening enemy projectile and drifts back toward the bottom center
type autopilot struct {
	snap      game.Snapshot
	lookAhead float64 // vertical distance above the player that counts as a threat
	clearance float64 // horizontal distance the pilot tries to keep from threats
}

func newAutopilot() *autopilot {
	return &autopilot{lookAhead: 160, clearance: 40}
}

// Observe records the latest snapshot for the next decision
func (a *autopilot) Observe(snap game.Snapshot) {
	a.snap = snap
}

// Snapshot implements game.InputProvider
func (a *autopilot) Snapshot() game.InputSnapshot {
	in := game.Keys(game.KeyFire)
	if !a.snap.HasPlayer {
		return in
	}

	p := a.snap.Player
	cx := p.X + p.Width/2

	threat, found := a.nearestThreat(cx, p.Y, p.Width)
	if !found {
		// Return toward the horizontal center and the bottom
		switch {
		case cx < a.snap.Width/2-p.Width:
			in = in.With(game.KeyRight)
		case cx > a.snap.Width/2+p.Width:
			in = in.With(game.KeyLeft)
		}
		if p.Y+p.Height < a.snap.Height-20 {
			in = in.With(game.KeyDown)
		}
		return in
	}

	// Dodge sideways, preferring the side with more room
	if threat.X >= cx {
		if p.X > 0 {
			in = in.With(game.KeyLeft)
		} else {
			in = in.With(game.KeyRight)
		}
	} else {
		if p.X+p.Width < a.snap.Width {
			in = in.With(game.KeyRight)
		} else {
			in = in.With(game.KeyLeft)
		}
	}
	return in
}

// nearestThreat finds the closest enemy projectile above the player that
// would pass within clearance of its center
func (a *autopilot) nearestThreat(cx, top, width float64) (game.EnemyView, bool) {
	var best game.EnemyView
	bestDist := math.Inf(1)
	found := false

	for _, e := range a.snap.EnemyProjectiles {
		dy := top - e.Y
		if dy < -width || dy > a.lookAhead {
			continue
		}
		if math.Abs(e.X-cx) > a.clearance+e.Radius {
			continue
		}
		if d := math.Hypot(e.X-cx, dy); d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}
