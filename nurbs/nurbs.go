// Package nurbs implements non-uniform rational B-spline curves.
//
// A curve of order k (degree k-1) with n control points has a knot vector
// of n+k non-decreasing knots. Every control point carries a positive weight;
// with all weights equal to 1 the curve is a plain (non-rational) B-spline.
//
// Curves created by New start with the uniform knot vector 0, 1, 2, …, and
// editing keeps knots consecutive integers: appending a control point
// appends the next integer knot, removing one removes a knot and renumbers
// the knots after it.
//
// BUG(norbert@pillmayer.com): Renumbering on removal assumes knots are
// consecutive integers. A non-uniform knot vector set by SetKnots will be
// corrupted by removing control points.
package nurbs

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/polyline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// DefaultOrder is the order of curves created by New: cubic.
const DefaultOrder = 4

var (
	// ErrInvalidOrder indicates an order below 2.
	ErrInvalidOrder = errors.New("B-spline order must be at least 2")
	// ErrKnotVector indicates a knot vector of wrong length or a decreasing one.
	ErrKnotVector = errors.New("invalid knot vector")
	// ErrInvalidWeight indicates a weight which is not positive.
	ErrInvalidWeight = errors.New("weight must be positive")
)

// Curve is a NURBS curve.
type Curve struct {
	order   int          // degree + 1
	points  []lathe.Pair // control points
	weights []float64    // weight of control point i
	knots   []float64    // n + order knots, non-decreasing
	cache   polyline.Cache
}

// New creates an empty cubic curve.
func New() *Curve {
	c, _ := NewWithOrder(DefaultOrder)
	return c
}

// NewWithOrder creates an empty curve of a given order (degree + 1).
func NewWithOrder(order int) (*Curve, error) {
	if order < 2 {
		return nil, fmt.Errorf("%w, is %d", ErrInvalidOrder, order)
	}
	c := &Curve{order: order, knots: make([]float64, order)}
	for i := range c.knots {
		c.knots[i] = float64(i)
	}
	return c, nil
}

// Order returns the order k of the curve.
func (c *Curve) Order() int {
	return c.order
}

// Degree returns the degree k-1 of the curve.
func (c *Curve) Degree() int {
	return c.order - 1
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

// Knots returns a copy of the knot vector.
func (c *Curve) Knots() []float64 {
	k := make([]float64, len(c.knots))
	copy(k, c.knots)
	return k
}

// SetKnots replaces the knot vector. It has to contain N+Order
// non-decreasing knots.
func (c *Curve) SetKnots(knots []float64) error {
	if len(knots) != c.N()+c.order {
		return fmt.Errorf("%w: need %d knots, have %d", ErrKnotVector, c.N()+c.order, len(knots))
	}
	for i, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return fmt.Errorf("%w: knot %d is %g", ErrKnotVector, i, k)
		}
		if i > 0 && k < knots[i-1] {
			return fmt.Errorf("%w: knot %d decreases", ErrKnotVector, i)
		}
	}
	c.knots = append(c.knots[:0], knots...)
	c.SetDirty()
	return nil
}

// Weight returns the weight of control point i.
func (c *Curve) Weight(i int) (float64, error) {
	if err := polyline.CheckIndex(i, c.N()); err != nil {
		return 0, err
	}
	return c.weights[i], nil
}

// SetWeight sets the weight of control point i.
func (c *Curve) SetWeight(i int, w float64) error {
	if err := polyline.CheckIndex(i, c.N()); err != nil {
		return err
	}
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("%w, is %g", ErrInvalidWeight, w)
	}
	c.weights[i] = w
	c.SetDirty()
	return nil
}

// AddControlPoint appends p with weight 1 and extends the knot vector by
// the next integer knot.
func (c *Curve) AddControlPoint(p lathe.Pair) {
	c.points = append(c.points, p)
	c.weights = append(c.weights, 1.0)
	c.knots = append(c.knots, c.knots[len(c.knots)-1]+1)
	c.SetDirty()
}

// RemoveControlPointAt removes control point i together with its weight.
// Knot i+order+1 (or the last one, if there is no such knot) is removed,
// and all knots after it are decremented by 1.
func (c *Curve) RemoveControlPointAt(i int) error {
	if err := polyline.CheckIndex(i, c.N()); err != nil {
		return err
	}
	c.points = append(c.points[:i], c.points[i+1:]...)
	c.weights = append(c.weights[:i], c.weights[i+1:]...)
	k := i + c.order + 1
	if k > len(c.knots)-1 {
		k = len(c.knots) - 1
	}
	c.knots = append(c.knots[:k], c.knots[k+1:]...)
	for j := k; j < len(c.knots); j++ {
		c.knots[j]--
	}
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
