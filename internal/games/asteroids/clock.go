package asteroids

// Clock tracks simulation time in discrete steps.
type Clock struct {
	elapsed float64
	ticks   uint64
}

// Advance moves time forward by dt seconds. Non-positive steps are ignored.
func (c *Clock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	c.ticks++
}

// Now returns the elapsed simulation time in seconds.
func (c *Clock) Now() float64 {
	return c.elapsed
}

// Ticks returns the number of steps taken.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.elapsed = 0
	c.ticks = 0
}
