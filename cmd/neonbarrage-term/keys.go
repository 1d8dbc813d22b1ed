package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"neonbarrage/game"
)

// heldKeys turns terminal key events into held-key snapshots. Terminals only
// report presses and auto-repeat, so a key counts as held for a short window
// after its last event.
type heldKeys struct {
	last   map[game.Key]time.Time
	window time.Duration
	now    func() time.Time
}

func newHeldKeys(window time.Duration, now func() time.Time) *heldKeys {
	if now == nil {
		now = time.Now
	}
	return &heldKeys{
		last:   make(map[game.Key]time.Time),
		window: window,
		now:    now,
	}
}

// Press records an event for k
func (h *heldKeys) Press(k game.Key) {
	h.last[k] = h.now()
}

// Release forgets every key, e.g. when the run restarts
func (h *heldKeys) Release() {
	clear(h.last)
}

// Snapshot implements game.InputProvider
func (h *heldKeys) Snapshot() game.InputSnapshot {
	var s game.InputSnapshot
	now := h.now()
	for k, t := range h.last {
		if now.Sub(t) <= h.window {
			s = s.With(k)
		}
	}
	return s
}

// mapKey translates a tcell key event to a logical game key
func mapKey(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.KeyLeft, true
	case tcell.KeyRight:
		return game.KeyRight, true
	case tcell.KeyUp:
		return game.KeyUp, true
	case tcell.KeyDown:
		return game.KeyDown, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'h':
			return game.KeyLeft, true
		case 'd', 'l':
			return game.KeyRight, true
		case 'w', 'k':
			return game.KeyUp, true
		case 's', 'j':
			return game.KeyDown, true
		case ' ':
			return game.KeyFire, true
		}
	}
	return 0, false
}
