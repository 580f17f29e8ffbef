package polyline

// Cache holds the dense polyline of a curve, together with the increment
// it has been evaluated with. A cache is stale if it has been invalidated
// or if a different increment is requested.
type Cache struct {
	increment float64
	valid     bool
	line      *Polyline
}

// Invalidate marks the cache stale.
func (c *Cache) Invalidate() {
	c.valid = false
}

// IsStale is a predicate: does a request for increment need re-evaluation?
func (c *Cache) IsStale(increment float64) bool {
	return !c.valid || c.increment != increment
}

// Increment returns the increment of the cached polyline, if valid.
func (c *Cache) Increment() (float64, bool) {
	return c.increment, c.valid
}

// Line returns the cached polyline for increment, calling eval to
// re-evaluate it if the cache is stale.
func (c *Cache) Line(increment float64, eval func(float64) *Polyline) *Polyline {
	if c.IsStale(increment) {
		c.line = eval(increment)
		c.increment = increment
		c.valid = true
		tracer().Infof("re-evaluated curve at increment %g: %d points", increment, c.line.N())
	}
	return c.line
}
