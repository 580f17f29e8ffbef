package revolve

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/polyline"
)

var (
	// ErrInvalidStep indicates an angular step outside (0°, 360°].
	ErrInvalidStep = errors.New("rotation step must be in (0, 360] degrees")
	// ErrInvalidAmount indicates a negative or non-finite rotation amount.
	ErrInvalidAmount = errors.New("rotation amount must be a non-negative number of degrees")
	// ErrInvalidAxis indicates a rotation axis which is not of unit length.
	ErrInvalidAxis = errors.New("rotation axis must be a unit vector")
	// ErrInvalidViewport indicates a viewport without area.
	ErrInvalidViewport = errors.New("viewport must have positive width and height")
	// ErrTooManyRings indicates an amount/step ratio beyond MaxRings.
	ErrTooManyRings = errors.New("too many rings for a sweep")
)

// MaxRings limits the number of rings a sweep may create, i.e. Amount/Step.
const MaxRings = 36000

// Viewport is the drawing area profiles are sketched in. Profiles are
// swept in normalized device coordinates, centered on the viewport.
type Viewport struct {
	Width, Height float64
}

// ToNDC maps a point of the drawing area into normalized device space,
// with y pointing up and z scaled like x.
func (v Viewport) ToNDC(p lathe.Vec3) lathe.Vec3 {
	return lathe.V3(
		p.X/v.Width*2.0-1.0,
		p.Y/v.Height*-2.0+1.0,
		p.Z/v.Width*-2.0)
}

// FromNDC is the inverse of ToNDC.
func (v Viewport) FromNDC(p lathe.Vec3) lathe.Vec3 {
	return lathe.V3(
		(p.X+1.0)*0.5*v.Width,
		(p.Y-1.0)*-0.5*v.Height,
		p.Z*-0.5*v.Width)
}

// Params configures a revolution sweep.
type Params struct {
	Axis      lathe.Vec3 // unit rotation axis
	Amount    float64    // total rotation in degrees
	Step      float64    // angular step in degrees
	Increment float64    // tessellation increment for the profile curve
	Viewport  Viewport
}

// DefaultParams returns a full turn around the y-axis in steps of 10°,
// on an 800×800 viewport.
func DefaultParams() Params {
	return Params{
		Axis:      lathe.YAxis,
		Amount:    360,
		Step:      10,
		Increment: polyline.DefaultIncrement,
		Viewport:  Viewport{Width: 800, Height: 800},
	}
}

// Validate checks the parameters for ranges a sweep can handle.
func (p Params) Validate() error {
	if math.IsNaN(p.Step) || p.Step <= 0 || p.Step > 360 {
		return fmt.Errorf("%w, is %g", ErrInvalidStep, p.Step)
	}
	if math.IsNaN(p.Amount) || math.IsInf(p.Amount, 0) || p.Amount < 0 {
		return fmt.Errorf("%w, is %g", ErrInvalidAmount, p.Amount)
	}
	if p.Amount/p.Step > MaxRings {
		return fmt.Errorf("%w: %g/%g exceeds %d", ErrTooManyRings, p.Amount, p.Step, MaxRings)
	}
	if !lathe.Is1(p.Axis.Length()) {
		return fmt.Errorf("%w, is %v", ErrInvalidAxis, p.Axis)
	}
	if !(p.Viewport.Width > 0) || !(p.Viewport.Height > 0) {
		return fmt.Errorf("%w, is %gx%g", ErrInvalidViewport, p.Viewport.Width, p.Viewport.Height)
	}
	return polyline.CheckIncrement(p.Increment)
}

// Rings returns the number of rotated copies of the profile a sweep
// creates: one for every step from Step up to Amount, inclusive.
func (p Params) Rings() int {
	return int(math.Floor(p.Amount/p.Step + lathe.Epsilon))
}
