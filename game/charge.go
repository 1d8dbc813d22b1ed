package game

// MaxCharge is the full gauge value
const MaxCharge = 100.0

// Charge is the regenerating resource that gates the player's fire
type Charge struct {
	value float64
}

// Value returns the current gauge value in [0, MaxCharge]
func (c *Charge) Value() float64 {
	return c.value
}

// Fraction returns the gauge as a fraction of a full charge
func (c *Charge) Fraction() float64 {
	return c.value / MaxCharge
}

// Full reports whether the gauge is completely charged
func (c *Charge) Full() bool {
	return c.value >= MaxCharge
}

// Set stores v clamped to [0, MaxCharge]
func (c *Charge) Set(v float64) {
	c.value = clamp(v, 0, MaxCharge)
}

// Regenerate adds rate to the gauge, clamped
func (c *Charge) Regenerate(rate float64) {
	c.Set(c.value + rate)
}

// Drain empties the gauge
func (c *Charge) Drain() {
	c.value = 0
}

// CanFire checks if a shot may be fired: the gauge must be full and no
// player projectile may still be alive
func (c *Charge) CanFire(liveProjectiles int) bool {
	return c.Full() && liveProjectiles == 0
}
