package game

// Key is a logical key the simulation understands
type Key uint8

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	keyCount
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyFire:
		return "fire"
	default:
		return "unknown"
	}
}

// InputSnapshot is the set of logical keys held during one frame
type InputSnapshot struct {
	held uint8
}

// Keys builds a snapshot with the given keys held
func Keys(keys ...Key) InputSnapshot {
	var s InputSnapshot
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns a copy of the snapshot with k held
func (s InputSnapshot) With(k Key) InputSnapshot {
	if k < keyCount {
		s.held |= 1 << k
	}
	return s
}

// Held reports whether k is held
func (s InputSnapshot) Held(k Key) bool {
	return k < keyCount && s.held&(1<<k) != 0
}

// Empty reports whether no key is held
func (s InputSnapshot) Empty() bool {
	return s.held == 0
}

// InputProvider supplies the held-key snapshot for the next tick.
// Frontends implement it over their own keyboard APIs.
type InputProvider interface {
	Snapshot() InputSnapshot
}
