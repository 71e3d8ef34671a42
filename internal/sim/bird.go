package sim

// Bird is the player entity. X stays fixed during play; positive Vel
// points down. Only the physics step and flap impulses mutate it.
type Bird struct {
	X      float64
	Y      float64
	Vel    float64
	Radius float64
}

// fall integrates one tick: accelerate under gravity, clamp to the
// terminal fall speed, then move by the new velocity.
func (b *Bird) fall(gravity, maxFallSpeed float64) {
	b.Vel += gravity
	if b.Vel > maxFallSpeed {
		b.Vel = maxFallSpeed
	}
	b.Y += b.Vel
}

// flap sets the velocity to the jump impulse regardless of the current
// motion; repeated taps do not stack.
func (b *Bird) flap(impulse float64) {
	b.Vel = impulse
}
