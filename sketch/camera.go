package sketch

import (
	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/revolve"
)

// Camera looks at the sketch when showing surfaces of revolution.
type Camera struct {
	Eye, Center, Up lathe.Vec3
}

// DefaultCamera looks at the center of an 800×800 sketch from the front.
func DefaultCamera() Camera {
	return Camera{
		Eye:    lathe.V3(400, 400, -800),
		Center: lathe.V3(400, 400, 0),
		Up:     lathe.YAxis,
	}
}

// Raised returns the camera with its eye moved up by dy.
func (c Camera) Raised(dy float64) Camera {
	c.Eye.Y += dy
	return c
}

// ViewProjection combines the view of the camera with an orthographic
// projection sized to the viewport's width.
func (c Camera) ViewProjection(vp revolve.Viewport) lathe.M4 {
	proj := lathe.Ortho(vp.Width, -10000, 10000)
	view := lathe.LookAt(c.Eye, c.Center, c.Up)
	return proj.Mul(view)
}

// Axis returns the unit axis named "x", "y" or "z". Other names select the
// y-axis.
func Axis(name string) lathe.Vec3 {
	switch name {
	case "x":
		return lathe.XAxis
	case "z":
		return lathe.ZAxis
	}
	return lathe.YAxis
}
