// Package polyline implements piecewise linear curves.
//
// A Polyline is a curve variant of its own, and at the same time the dense
// representation every other curve variant evaluates down to. Renderers,
// hit-testing and the revolution sweep only ever consume polylines.
package polyline

import (
	"errors"
	"fmt"
	"math"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/lathe"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

var (
	// ErrIndexOutOfRange indicates a control point index outside [0, N).
	ErrIndexOutOfRange = errors.New("control point index out of range")
	// ErrInvalidIncrement indicates a tessellation increment outside (0, 1].
	ErrInvalidIncrement = errors.New("tessellation increment must be in (0, 1]")
)

// DefaultIncrement is the parameter step used for dense evaluation if
// clients do not ask for a specific one.
var DefaultIncrement = 0.05

// Polyline is an ordered sequence of points, connected by straight lines.
// Insertion order defines connectivity, the index is a point's identity.
type Polyline struct {
	points []lathe.Pair
	dirty  bool
}

// NullPolyline creates an empty polyline, to be extended by subsequent
// builder calls:
//
//	pl := NullPolyline().Knot(lathe.P(0, 0)).Knot(lathe.P(10, 0)).End()
func NullPolyline() *Polyline {
	return &Polyline{}
}

// FromPoints creates a polyline through the given points. The slice is
// copied.
func FromPoints(points ...lathe.Pair) *Polyline {
	pl := &Polyline{points: make([]lathe.Pair, len(points))}
	copy(pl.points, points)
	return pl
}

// Knot appends a point. Part of builder functionality.
func (pl *Polyline) Knot(p lathe.Pair) *Polyline {
	pl.points = append(pl.points, p)
	return pl
}

// End finishes a polyline. Part of builder functionality.
func (pl *Polyline) End() *Polyline {
	return pl
}

// N returns the number of points.
func (pl *Polyline) N() int {
	return len(pl.points)
}

// Z returns point i. Z panics if i is out of range, as indexing a slice does.
func (pl *Polyline) Z(i int) lathe.Pair {
	return pl.points[i]
}

// ControlPoints returns the live point slice. Clients may move points in
// place, but have to call SetDirty afterwards.
func (pl *Polyline) ControlPoints() []lathe.Pair {
	return pl.points
}

// AddControlPoint appends p and marks the polyline dirty.
func (pl *Polyline) AddControlPoint(p lathe.Pair) {
	pl.points = append(pl.points, p)
	pl.SetDirty()
}

// RemoveControlPointAt removes point i.
func (pl *Polyline) RemoveControlPointAt(i int) error {
	if err := CheckIndex(i, pl.N()); err != nil {
		return err
	}
	pl.points = append(pl.points[:i], pl.points[i+1:]...)
	pl.SetDirty()
	return nil
}

// MoveControlPoint sets point i to p.
func (pl *Polyline) MoveControlPoint(i int, p lathe.Pair) error {
	if err := CheckIndex(i, pl.N()); err != nil {
		return err
	}
	pl.points[i] = p
	pl.SetDirty()
	return nil
}

// SetDirty marks the polyline as edited. A polyline has nothing derived to
// recompute, the flag merely reports edits since the last evaluation.
func (pl *Polyline) SetDirty() {
	pl.dirty = true
}

// IsDirty is a predicate: has the polyline been edited since it has last
// been evaluated?
func (pl *Polyline) IsDirty() bool {
	return pl.dirty
}

// Evaluated returns the polyline itself, it is its own dense form.
func (pl *Polyline) Evaluated(increment float64) (*Polyline, error) {
	if err := CheckIncrement(increment); err != nil {
		return nil, err
	}
	pl.dirty = false
	return pl, nil
}

// SegmentBuffer flattens the polyline into line segments for a renderer:
// x0,y0,x1,y1 for every pair of consecutive points. A single point is
// emitted as a segment of length zero.
func (pl *Polyline) SegmentBuffer() []float32 {
	switch pl.N() {
	case 0:
		return []float32{}
	case 1:
		x, y := pl.points[0].F()
		return []float32{float32(x), float32(y), float32(x), float32(y)}
	}
	buf := make([]float32, 0, (pl.N()-1)*4)
	for i := 1; i < pl.N(); i++ {
		buf = append(buf,
			float32(pl.points[i-1].X()), float32(pl.points[i-1].Y()),
			float32(pl.points[i].X()), float32(pl.points[i].Y()))
	}
	return buf
}

// Bounds returns the bounding box of all points. The box of an empty
// polyline is inverted (Min > Max) and overlaps nothing.
func (pl *Polyline) Bounds() polyclip.Rectangle {
	c := make(polyclip.Contour, len(pl.points))
	for i, p := range pl.points {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c.BoundingBox()
}

// AsString returns a readable representation of a polyline.
func AsString(pl *Polyline) string {
	var s string
	for i, p := range pl.points {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("(%.4g,%.4g)", p.X(), p.Y())
	}
	return s
}

// CheckIndex returns an error wrapping ErrIndexOutOfRange if i is not a
// valid index for a sequence of length n.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	return nil
}

// CheckIncrement returns an error wrapping ErrInvalidIncrement if increment
// is not in (0, 1].
func CheckIncrement(increment float64) error {
	if math.IsNaN(increment) || increment <= 0 || increment > 1 {
		return fmt.Errorf("%w, is %g", ErrInvalidIncrement, increment)
	}
	return nil
}
