package game

import "math"

// EntityID is a unique identifier for a projectile within one simulation.
// Renderers can use it to keep per-entity decoration stable across frames.
type EntityID uint64

// InvalidEntityID marks an unset entity reference
const InvalidEntityID EntityID = 0

// Point is a position in play-area coordinates
type Point struct {
	X, Y float64
}

// Player is the player-controlled entity. X and Y are the top-left corner.
type Player struct {
	X, Y          float64
	Width, Height float64

	// Speed is the movement per tick for each held direction key
	Speed float64

	// ProjectileSpeed is the upward speed given to fired projectiles
	ProjectileSpeed float64

	// ChargeRate is the gauge regeneration per tick
	ChargeRate float64
}

// NewPlayer creates the player at its starting position
func NewPlayer(cfg Config) *Player {
	return &Player{
		X:               cfg.Width/2 - cfg.Player.Width/2,
		Y:               cfg.Height - cfg.Player.BottomOffset,
		Width:           cfg.Player.Width,
		Height:          cfg.Player.Height,
		Speed:           cfg.Player.Speed,
		ProjectileSpeed: cfg.Player.ProjectileSpeed,
		ChargeRate:      cfg.Player.ChargeRate,
	}
}

// Center returns the center of the player's bounding box
func (p *Player) Center() Point {
	return Point{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}

// PlayerProjectile is a shot fired by the player. X and Y are the top-left corner.
type PlayerProjectile struct {
	ID            EntityID
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Center returns the center of the projectile
func (p *PlayerProjectile) Center() Point {
	return Point{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}

// PatternKind tags the variant of an enemy projectile
type PatternKind int

const (
	PatternLinear PatternKind = iota
	PatternWave
	PatternCircle
)

func (k PatternKind) String() string {
	switch k {
	case PatternLinear:
		return "linear"
	case PatternWave:
		return "wave"
	case PatternCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParsePatternKind maps a pattern name back to its kind
func ParsePatternKind(name string) (PatternKind, bool) {
	switch name {
	case "linear":
		return PatternLinear, true
	case "wave":
		return PatternWave, true
	case "circle":
		return PatternCircle, true
	default:
		return PatternLinear, false
	}
}

// Motion is the variant-specific state of an enemy projectile.
// The set of implementations is closed: LinearMotion, WaveMotion and CircleMotion.
type Motion interface {
	Kind() PatternKind

	// advance moves the motion state one tick and returns the new screen position
	advance(pos Point) Point
}

// LinearMotion falls straight down
type LinearMotion struct {
	Speed float64
}

// Kind implements Motion
func (m *LinearMotion) Kind() PatternKind { return PatternLinear }

func (m *LinearMotion) advance(pos Point) Point {
	return Point{X: pos.X, Y: pos.Y + m.Speed}
}

// WaveMotion falls down while swinging around a fixed horizontal anchor
type WaveMotion struct {
	Speed     float64
	AnchorX   float64
	Amplitude float64
	Period    float64
}

// Kind implements Motion
func (m *WaveMotion) Kind() PatternKind { return PatternWave }

func (m *WaveMotion) advance(pos Point) Point {
	y := pos.Y + m.Speed
	return Point{X: m.AnchorX + math.Sin(y/m.Period)*m.Amplitude, Y: y}
}

// CircleMotion orbits a center that drifts downward
type CircleMotion struct {
	CenterX, CenterY float64
	Orbit            float64
	Angle            float64
	AngularSpeed     float64
	DriftSpeed       float64
}

// Kind implements Motion
func (m *CircleMotion) Kind() PatternKind { return PatternCircle }

func (m *CircleMotion) advance(Point) Point {
	m.Angle += m.AngularSpeed
	m.CenterY += m.DriftSpeed
	return m.position()
}

func (m *CircleMotion) position() Point {
	return Point{
		X: m.CenterX + math.Cos(m.Angle)*m.Orbit,
		Y: m.CenterY + math.Sin(m.Angle)*m.Orbit,
	}
}

// EnemyProjectile is one enemy bullet. X and Y always hold the resolved
// screen position of the center, whatever the motion variant.
type EnemyProjectile struct {
	ID     EntityID
	X, Y   float64
	Radius float64
	Motion Motion
	Trail  Trail
}

// Kind returns the projectile's variant tag
func (e *EnemyProjectile) Kind() PatternKind {
	return e.Motion.Kind()
}

// Position returns the resolved screen position
func (e *EnemyProjectile) Position() Point {
	return Point{X: e.X, Y: e.Y}
}

// Trail is a bounded FIFO of past positions, used only for rendering
type Trail struct {
	points []Point
	limit  int
}

// NewTrail creates an empty trail holding at most limit points
func NewTrail(limit int) Trail {
	return Trail{points: make([]Point, 0, limit), limit: limit}
}

// Push appends a point, evicting the oldest once the trail is full
func (t *Trail) Push(p Point) {
	if t.limit <= 0 {
		return
	}
	if len(t.points) == t.limit {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, p)
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns a copy of the trail, oldest first
func (t *Trail) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}

// Particle is a purely cosmetic burst fragment
type Particle struct {
	X, Y   float64
	Radius float64
	VX, VY float64
	Alpha  float64
}
