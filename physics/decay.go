package physics

// DecayClock applies friction once per frame and republishes
type DecayClock struct {
	signal   *Signal
	friction float64
	epsilon  float64
}

// Tick decays energy by the friction factor, snapping to exactly 0 under epsilon
// Returns the published value
func (d *DecayClock) Tick() float64 {
	e := d.signal.value * d.friction
	if e < d.epsilon {
		e = 0
	}
	d.signal.set(e)
	return d.signal.value
}

func (d *DecayClock) Friction() float64 { return d.friction }
func (d *DecayClock) Epsilon() float64  { return d.epsilon }
