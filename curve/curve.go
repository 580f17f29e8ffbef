// Package curve bundles the curve variants behind a single type.
//
// A Curve is exactly one of a polyline, a Hermite curve or a B-spline.
// Operations dispatch on the variant's Kind; all variants share adding,
// moving and removing control points, dirty reporting, dense evaluation,
// containment queries and revolution sweeps.
package curve

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/hermite"
	"github.com/npillmayer/lathe/nurbs"
	"github.com/npillmayer/lathe/polyline"
	"github.com/npillmayer/lathe/revolve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// ErrUnsupportedVariant indicates a request for a curve kind outside the
// known variants.
var ErrUnsupportedVariant = errors.New("unsupported curve variant")

// Kind tags a curve variant.
type Kind int

// The curve variants.
const (
	PolyLine Kind = iota
	Hermite
	BSpline
)

var kindNames = [...]string{
	PolyLine: "poly",
	Hermite:  "hermite",
	BSpline:  "bspline",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind for one of the names "poly", "hermite" or
// "bspline".
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedVariant, name)
}

// Curve is one of the curve variants. The zero value is an empty polyline.
type Curve struct {
	kind     Kind
	polyline *polyline.Polyline
	hermite  *hermite.Curve
	bspline  *nurbs.Curve
}

// New creates an empty curve of a given kind.
func New(kind Kind) (*Curve, error) {
	c := &Curve{kind: kind}
	switch kind {
	case PolyLine:
		c.polyline = polyline.NullPolyline()
	case Hermite:
		c.hermite = hermite.New()
	case BSpline:
		c.bspline = nurbs.New()
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedVariant, kind)
	}
	tracer().Debugf("new curve of kind %v", kind)
	return c, nil
}

// Kind returns the variant tag.
func (c *Curve) Kind() Kind {
	return c.kind
}

// Polyline returns the polyline variant, or nil.
func (c *Curve) Polyline() *polyline.Polyline {
	if c.kind == PolyLine && c.polyline == nil {
		c.polyline = polyline.NullPolyline()
	}
	return c.polyline
}

// Hermite returns the Hermite variant, or nil.
func (c *Curve) Hermite() *hermite.Curve {
	return c.hermite
}

// BSpline returns the B-spline variant, or nil.
func (c *Curve) BSpline() *nurbs.Curve {
	return c.bspline
}

// variant is the capability set every curve variant implements.
type variant interface {
	ControlPoints() []lathe.Pair
	AddControlPoint(lathe.Pair)
	RemoveControlPointAt(int) error
	MoveControlPoint(int, lathe.Pair) error
	SetDirty()
	IsDirty() bool
	Evaluated(float64) (*polyline.Polyline, error)
	Contains(lathe.Pair) polyline.Hit
}

func (c *Curve) variant() variant {
	switch c.kind {
	case PolyLine:
		return c.Polyline()
	case Hermite:
		return c.hermite
	case BSpline:
		return c.bspline
	}
	panic(fmt.Sprintf("curve of unsupported kind %v", c.kind))
}

// ControlPoints returns the live control point slice. Clients may move
// points in place, but have to call SetDirty afterwards.
func (c *Curve) ControlPoints() []lathe.Pair {
	return c.variant().ControlPoints()
}

// N returns the number of control points.
func (c *Curve) N() int {
	return len(c.ControlPoints())
}

// AddControlPoint appends a control point.
func (c *Curve) AddControlPoint(p lathe.Pair) {
	c.variant().AddControlPoint(p)
}

// RemoveControlPointAt removes control point i.
func (c *Curve) RemoveControlPointAt(i int) error {
	return c.variant().RemoveControlPointAt(i)
}

// MoveControlPoint sets control point i to p.
func (c *Curve) MoveControlPoint(i int, p lathe.Pair) error {
	return c.variant().MoveControlPoint(i, p)
}

// SetDirty marks the curve as edited.
func (c *Curve) SetDirty() {
	c.variant().SetDirty()
}

// IsDirty is a predicate: has the curve been edited since the last
// evaluation?
func (c *Curve) IsDirty() bool {
	return c.variant().IsDirty()
}

// Evaluated returns the dense polyline approximating the curve.
func (c *Curve) Evaluated(increment float64) (*polyline.Polyline, error) {
	return c.variant().Evaluated(increment)
}

// Contains checks if p is near a control point or the curve body.
func (c *Curve) Contains(p lathe.Pair) polyline.Hit {
	return c.variant().Contains(p)
}

// Revolve sweeps the dense polyline of the curve, evaluated at
// params.Increment, around params.Axis.
func (c *Curve) Revolve(params revolve.Params) (*revolve.Mesh, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	profile, err := c.Evaluated(params.Increment)
	if err != nil {
		return nil, err
	}
	return revolve.Sweep(profile, params)
}
