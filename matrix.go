package lathe

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

// M4 is a homogeneous 4x4 transform used for rotating and projecting points
// in 3D space.
type M4 []float64 // a 4x4 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newM4() M4 {
	return make([]float64, 16)
}

func (m M4) get(row, col int) float64 {
	return m[row*4+col]
}

func (m M4) set(row, col int, value float64) {
	m[row*4+col] = value
}

func (m M4) row(row int) []float64 {
	return m[row*4 : (row+1)*4]
}

func (m M4) col(col int) []float64 {
	c := make([]float64, 4)
	for row := 0; row < 4; row++ {
		c[row] = m[row*4+col]
	}
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() M4 {
	m := newM4()
	for i := 0; i < 4; i++ {
		m.set(i, i, 1.0)
	}
	return m
}

// Scale transform. Scales x, y and z uniformly by s.
func Scale(s float64) M4 {
	m := Identity()
	for i := 0; i < 3; i++ {
		m.set(i, i, s)
	}
	return m
}

// Ortho is an orthographic projection of a cube of edge length size, centered
// at the origin, clipped between near and far.
func Ortho(size, near, far float64) M4 {
	m := Identity()
	m.set(0, 0, 2/size)
	m.set(1, 1, 2/size)
	m.set(2, 2, -2/(far-near))
	m.set(2, 3, -(far+near)/(far-near))
	return m
}

// LookAt creates a view transform for a camera at eye, looking at center.
// The result is undefined if up is parallel to the viewing direction.
func LookAt(eye, center, up Vec3) M4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	m := Identity()
	m.set(0, 0, s.X)
	m.set(0, 1, s.Y)
	m.set(0, 2, s.Z)
	m.set(0, 3, -s.Dot(eye))
	m.set(1, 0, u.X)
	m.set(1, 1, u.Y)
	m.set(1, 2, u.Z)
	m.set(1, 3, -u.Dot(eye))
	m.set(2, 0, -f.X)
	m.set(2, 1, -f.Y)
	m.set(2, 2, -f.Z)
	m.set(2, 3, f.Dot(eye))
	return m
}

// Rotation transform. Rotates counter-clockwise by theta (radians) around
// axis, following Rodrigues' formula.
//
// The axis has to be of unit length. A non-unit axis does not fail, it
// silently results in a skewed transform.
func Rotation(theta float64, axis Vec3) M4 {
	sin, cos := math.Sincos(theta)
	t := 1 - cos
	x, y, z := axis.X, axis.Y, axis.Z
	m := Identity()
	m.set(0, 0, cos+x*x*t)
	m.set(0, 1, x*y*t-z*sin)
	m.set(0, 2, x*z*t+y*sin)
	m.set(1, 0, y*x*t+z*sin)
	m.set(1, 1, cos+y*y*t)
	m.set(1, 2, y*z*t-x*sin)
	m.set(2, 0, z*x*t-y*sin)
	m.set(2, 1, z*y*t+x*sin)
	m.set(2, 2, cos+z*z*t)
	return m
}

// Debug Stringer for a transform.
func (m M4) String() string {
	s := "["
	for row := 0; row < 4; row++ {
		if row > 0 {
			s += "|"
		}
		r := m.row(row)
		s += fmt.Sprintf("%g,%g,%g,%g", r[0], r[1], r[2], r[3])
	}
	return s + "]"
}

// v1 × v2, v.n = [a,b,c,d]
func dotProd(vec1, vec2 []float64) float64 {
	var d float64
	for i := 0; i < 4; i++ {
		d += vec1[i] * vec2[i]
	}
	return d
}

// Mul returns the matrix product m ⋅ n. Transforming with the result
// applies n first, then m. Neither argument is changed.
func (m M4) Mul(n M4) M4 {
	o := newM4()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			o.set(row, col, dotProd(m.row(row), n.col(col)))
		}
	}
	return o
}

// Transform a 3D-point. The argument is unchanged and a new point is returned.
// The homogeneous result is divided by w, which is non-zero for all
// transforms built by this package.
func (m M4) Transform(p Vec3) Vec3 {
	v := []float64{p.X, p.Y, p.Z, 1.0}
	w := dotProd(m.row(3), v)
	return Vec3{
		X: dotProd(m.row(0), v) / w,
		Y: dotProd(m.row(1), v) / w,
		Z: dotProd(m.row(2), v) / w,
	}
}

// ColumnMajor flattens m column by column, the layout graphics APIs
// expect for uniform upload.
func (m M4) ColumnMajor() [16]float32 {
	var a [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			a[col*4+row] = float32(m.get(row, col))
		}
	}
	return a
}

// Float32 converts m to a row-major float32 matrix.
func (m M4) Float32() f32.Mat4 {
	var a f32.Mat4
	for i := range a {
		a[i] = float32(m[i])
	}
	return a
}
