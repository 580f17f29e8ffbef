// Package hermite implements cubic Hermite curves.
//
// Each control point carries a tangent vector, describing direction and
// speed of the curve when passing through the point. The curve between
// control points z.(i-1) and z.i is
//
//	P(s) = h1(s) z.(i-1) + h2(s) z.i + h3(s) t.(i-1) + h4(s) t.i
//
// with the Hermite basis functions
//
//	h1(s) =  2s³ - 3s² + 1
//	h2(s) = -2s³ + 3s²
//	h3(s) =   s³ - 2s² + s
//	h4(s) =   s³ -  s²
//
// New control points get a zero tangent, which makes the curve look like a
// polyline through the control points.
package hermite

import (
	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/polyline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Curve is a cubic Hermite curve.
type Curve struct {
	points   []lathe.Pair
	tangents []lathe.Pair // tangent vector at point i
	cache    polyline.Cache
}

// New creates an empty Hermite curve.
func New() *Curve {
	return &Curve{}
}

// N returns the number of control points.
func (c *Curve) N() int {
	return len(c.points)
}

// ControlPoints returns the live control point slice. Clients may move
// points in place, but have to call SetDirty afterwards.
func (c *Curve) ControlPoints() []lathe.Pair {
	return c.points
}

// AddControlPoint appends p with a zero tangent.
func (c *Curve) AddControlPoint(p lathe.Pair) {
	c.points = append(c.points, p)
	c.tangents = append(c.tangents, lathe.Origin)
	c.SetDirty()
}

// RemoveControlPointAt removes control point i and its tangent.
func (c *Curve) RemoveControlPointAt(i int) error {
	if err := polyline.CheckIndex(i, c.N()); err != nil {
		return err
	}
	c.points = append(c.points[:i], c.points[i+1:]...)
	c.tangents = append(c.tangents[:i], c.tangents[i+1:]...)
	c.SetDirty()
	return nil
}

// MoveControlPoint sets control point i to p.
func (c *Curve) MoveControlPoint(i int, p lathe.Pair) error {
	if err := polyline.CheckIndex(i, c.N()); err != nil {
		return err
	}
	c.points[i] = p
	c.SetDirty()
	return nil
}

// Tangent returns the tangent at control point i.
func (c *Curve) Tangent(i int) (lathe.Pair, error) {
	if err := polyline.CheckIndex(i, c.N()); err != nil {
		return lathe.Origin, err
	}
	return c.tangents[i], nil
}

// SetTangent sets the tangent at control point i.
func (c *Curve) SetTangent(i int, t lathe.Pair) error {
	if err := polyline.CheckIndex(i, c.N()); err != nil {
		return err
	}
	c.tangents[i] = t
	c.SetDirty()
	return nil
}

// SetDirty invalidates the evaluated polyline.
func (c *Curve) SetDirty() {
	c.cache.Invalidate()
}

// IsDirty is a predicate: has the curve been edited since the last
// evaluation?
func (c *Curve) IsDirty() bool {
	_, valid := c.cache.Increment()
	return !valid
}

// Basis returns the values of the Hermite basis functions at s.
func Basis(s float64) (h1, h2, h3, h4 float64) {
	s2 := s * s
	s3 := s2 * s
	h1 = 2*s3 - 3*s2 + 1
	h2 = -2*s3 + 3*s2
	h3 = s3 - 2*s2 + s
	h4 = s3 - s2
	return
}

// At evaluates segment i, i.e. the curve between control points i-1 and i,
// at parameter s ∈ [0,1].
func (c *Curve) At(i int, s float64) (lathe.Pair, error) {
	if i < 1 || i >= c.N() {
		return lathe.Origin, polyline.CheckIndex(i-1, c.N()-1)
	}
	return c.segmentAt(i, s), nil
}

func (c *Curve) segmentAt(i int, s float64) lathe.Pair {
	h1, h2, h3, h4 := Basis(s)
	p0, p1 := c.points[i-1], c.points[i]
	t0, t1 := c.tangents[i-1], c.tangents[i]
	return p0.Scaled(h1) + p1.Scaled(h2) + t0.Scaled(h3) + t1.Scaled(h4)
}

// Evaluated returns the dense polyline approximating the curve, sampling
// every segment with parameter steps of increment. The result is cached
// until the curve is edited or a different increment is requested.
func (c *Curve) Evaluated(increment float64) (*polyline.Polyline, error) {
	if err := polyline.CheckIncrement(increment); err != nil {
		return nil, err
	}
	return c.cache.Line(increment, c.evaluate), nil
}

// evaluate samples s = j⋅increment for j ≥ 1 and s < 1 on every segment, then
// appends the exact segment end. s = 0 of a segment is the end of the
// previous one, thus no point is emitted twice.
func (c *Curve) evaluate(increment float64) *polyline.Polyline {
	pl := polyline.NullPolyline()
	if c.N() == 0 {
		return pl
	}
	pl.Knot(c.points[0])
	for i := 1; i < c.N(); i++ {
		for j := 1; ; j++ {
			s := float64(j) * increment
			if s >= 1-lathe.Epsilon {
				break
			}
			pl.Knot(c.segmentAt(i, s))
		}
		pl.Knot(c.points[i])
	}
	tracer().Debugf("hermite curve of %d segments evaluated to %d points", c.N()-1, pl.N())
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
