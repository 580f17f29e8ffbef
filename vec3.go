package lathe

import (
	"fmt"
	"math"
)

// Vec3 is a 3D point or vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a quick notation for constructing a 3D point.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Unit axes and the origin of 3D space.
var (
	Origin3 = Vec3{}
	XAxis   = Vec3{X: 1}
	YAxis   = Vec3{Y: 1}
	ZAxis   = Vec3{Z: 1}
)

func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scaled returns v scaled by factor a.
func (v Vec3) Scaled(a float64) Vec3 {
	return Vec3{v.X * a, v.Y * a, v.Z * a}
}

// Dot is the scalar product v ⋅ w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross is the vector product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length is the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. A zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if Is0(l) {
		return Vec3{}
	}
	return v.Scaled(1 / l)
}

// Equal compares two vectors component-wise, up to Epsilon.
func (v Vec3) Equal(w Vec3) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y) && Is0(v.Z-w.Z)
}
