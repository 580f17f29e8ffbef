// Package sketch keeps a set of curves a user is drawing, together with
// the current selection.
//
// It is the editing layer on top of the curve variants: points are added to
// the selected curve (or start a new curve), clicks pick curves and control
// points, deletion removes points or whole curves.
package sketch

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/curve"
	"github.com/npillmayer/lathe/polyline"
	"github.com/npillmayer/lathe/revolve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sketch'
func tracer() tracing.Trace {
	return tracing.Select("sketch")
}

var (
	// ErrNoSelection indicates an operation which needs a selected curve or point.
	ErrNoSelection = errors.New("nothing selected")
	// ErrNotHermite indicates a tangent edit on a curve which has no tangents.
	ErrNotHermite = errors.New("selected curve is not a Hermite curve")
)

// Selection identifies a curve and, optionally, one of its control points.
// -1 denotes "none".
type Selection struct {
	Curve int
	Point int
}

// NoSelection selects nothing.
var NoSelection = Selection{Curve: -1, Point: -1}

// Sketch is a collection of curves with a selection.
type Sketch struct {
	Increment float64 // tessellation increment for evaluating curves
	curves    []*curve.Curve
	selection Selection
}

// New creates an empty sketch.
func New() *Sketch {
	return &Sketch{
		Increment: polyline.DefaultIncrement,
		selection: NoSelection,
	}
}

// Curves returns the curves of the sketch, in creation order.
func (s *Sketch) Curves() []*curve.Curve {
	return s.curves
}

// Selection returns the current selection.
func (s *Sketch) Selection() Selection {
	return s.selection
}

// Select sets the current selection.
func (s *Sketch) Select(sel Selection) {
	s.selection = sel
}

func (s *Sketch) selected() (*curve.Curve, error) {
	if s.selection.Curve < 0 || s.selection.Curve >= len(s.curves) {
		return nil, ErrNoSelection
	}
	return s.curves[s.selection.Curve], nil
}

func (s *Sketch) selectedPoint() (*curve.Curve, int, error) {
	c, err := s.selected()
	if err != nil {
		return nil, -1, err
	}
	if s.selection.Point < 0 {
		return nil, -1, fmt.Errorf("%w: no control point of curve %d", ErrNoSelection, s.selection.Curve)
	}
	return c, s.selection.Point, nil
}

// AddPoint adds p to the selected curve, if it is of the requested kind.
// Otherwise a new curve of that kind is started at p. The new point gets
// selected.
func (s *Sketch) AddPoint(p lathe.Pair, kind curve.Kind) (Selection, error) {
	if c, err := s.selected(); err == nil && c.Kind() == kind {
		c.AddControlPoint(p)
		s.selection = Selection{Curve: s.selection.Curve, Point: c.N() - 1}
		return s.selection, nil
	}
	c, err := curve.New(kind)
	if err != nil {
		return s.selection, err
	}
	c.AddControlPoint(p)
	s.curves = append(s.curves, c)
	s.selection = Selection{Curve: len(s.curves) - 1, Point: 0}
	tracer().Infof("started %v curve #%d at %v", kind, s.selection.Curve, p)
	return s.selection, nil
}

// Pick selects the first curve containing p. The selection carries the
// control point hit, or -1 for a hit on the curve body. If no curve
// contains p, nothing is selected.
func (s *Sketch) Pick(p lathe.Pair) Selection {
	s.selection = NoSelection
	for i, c := range s.curves {
		pl, err := c.Evaluated(s.Increment)
		if err != nil {
			tracer().Errorf("cannot evaluate curve #%d: %v", i, err)
			continue
		}
		ctrl := polyline.FromPoints(c.ControlPoints()...)
		if !polyline.MayContain(ctrl.Bounds(), p, polyline.PointTolerance) &&
			!polyline.MayContain(pl.Bounds(), p, polyline.PointTolerance) {
			continue
		}
		if h := c.Contains(p); h.Success {
			s.selection = Selection{Curve: i, Point: h.Index}
			break
		}
	}
	tracer().Debugf("pick at %v: %v", p, s.selection)
	return s.selection
}

// Delete removes the selected control point. If no point is selected, or
// the selected point is the last one of its curve, the whole curve is
// removed. Afterwards no point is selected.
func (s *Sketch) Delete() error {
	c, err := s.selected()
	if err != nil {
		return err
	}
	defer func() { s.selection.Point = -1 }()
	if s.selection.Point == -1 || c.N() == 1 {
		s.curves = append(s.curves[:s.selection.Curve], s.curves[s.selection.Curve+1:]...)
		s.selection.Curve = -1
		return nil
	}
	return c.RemoveControlPointAt(s.selection.Point)
}

// MoveSelected moves the selected control point to p.
func (s *Sketch) MoveSelected(p lathe.Pair) error {
	c, i, err := s.selectedPoint()
	if err != nil {
		return err
	}
	return c.MoveControlPoint(i, p)
}

// SetTangent sets the tangent of the selected control point of a Hermite
// curve.
func (s *Sketch) SetTangent(t lathe.Pair) error {
	c, i, err := s.selectedPoint()
	if err != nil {
		return err
	}
	if c.Kind() != curve.Hermite {
		return ErrNotHermite
	}
	return c.Hermite().SetTangent(i, t)
}

// Lines returns the evaluated polyline of every curve, for drawing.
func (s *Sketch) Lines() ([]*polyline.Polyline, error) {
	lines := make([]*polyline.Polyline, 0, len(s.curves))
	for _, c := range s.curves {
		pl, err := c.Evaluated(s.Increment)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pl)
	}
	return lines, nil
}

// Surfaces sweeps every curve, evaluated at the sketch's increment.
func (s *Sketch) Surfaces(params revolve.Params) ([]*revolve.Mesh, error) {
	params.Increment = s.Increment
	meshes := make([]*revolve.Mesh, 0, len(s.curves))
	for i, c := range s.curves {
		m, err := c.Revolve(params)
		if err != nil {
			return nil, fmt.Errorf("revolving curve #%d: %w", i, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}
