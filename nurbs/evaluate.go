package nurbs

import (
	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/polyline"
)

// Evaluated returns the dense polyline approximating the curve. A
// normalized parameter t steps from 0 to 1 by increment and is mapped onto
// Domain, i.e. [knot[p], knot[N]], not onto the whole knot vector
// [knot[0], knot[last]]. Outside of Domain fewer than p+1 control points
// carry the curve, which would produce points pulled towards the origin.
// The result is cached until the curve is edited or a different
// increment is requested.
func (c *Curve) Evaluated(increment float64) (*polyline.Polyline, error) {
	if err := polyline.CheckIncrement(increment); err != nil {
		return nil, err
	}
	return c.cache.Line(increment, c.evaluate), nil
}

func (c *Curve) evaluate(increment float64) *polyline.Polyline {
	pl := polyline.NullPolyline()
	switch c.N() {
	case 0:
		return pl
	case 1:
		return pl.Knot(c.points[0]).End()
	}
	p := c.effectiveDegree()
	lo, hi := c.Domain()
	for j := 0; ; j++ {
		t := float64(j) * increment
		if t >= 1-lathe.Epsilon {
			break
		}
		pl.Knot(c.pointAt(p, lo+t*(hi-lo)))
	}
	pl.Knot(c.pointAt(p, hi))
	tracer().Debugf("B-spline of degree %d on [%g,%g] evaluated to %d points", p, lo, hi, pl.N())
	return pl.End()
}

// Contains checks if p is near a control point or near the curve body.
// Hits on the body carry no point index.
func (c *Curve) Contains(p lathe.Pair) polyline.Hit {
	if h := polyline.PointHit(c.points, p); h.Success {
		return h
	}
	increment, ok := c.cache.Increment()
	if !ok {
		increment = polyline.DefaultIncrement
	}
	pl, err := c.Evaluated(increment)
	if err != nil {
		tracer().Errorf("cannot hit-test curve body: %v", err)
		return polyline.Miss
	}
	h := pl.Contains(p)
	h.Index = -1
	return h
}
