package collector

// Counter turns a cumulative counter into per-tick deltas
type Counter struct {
	prev   uint64
	primed bool
}

// Delta stores current as the new previous value and returns the increase.
// The first call only primes the counter and returns 0; so does a counter
// that went backwards (device re-added, wrap).
func (c *Counter) Delta(current uint64) uint64 {
	if !c.primed || current < c.prev {
		c.prev = current
		c.primed = true
		return 0
	}
	d := current - c.prev
	c.prev = current
	return d
}

// Primed reports whether a previous value exists
func (c *Counter) Primed() bool {
	return c.primed
}
