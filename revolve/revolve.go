// Package revolve sweeps planar profiles around an axis in 3D space,
// producing triangle meshes of surfaces of revolution.
//
// The profile is lifted into 3D (z = 0) and into normalized device space.
// Every angular step rotates the previous ring of points around the axis,
// and consecutive rings are stitched by two triangles per profile segment,
// sharing a flat face normal. Positions are mapped back into the drawing
// area before they are handed out, normals are not.
package revolve

import (
	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/polyline"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/math/f32"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Vertex is a mesh vertex with its lighting normal.
type Vertex struct {
	Position lathe.Vec3
	Normal   lathe.Vec3
}

// Mesh is a triangle soup: every three consecutive vertices form a
// triangle.
type Mesh struct {
	Vertices []Vertex
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Buffer returns position and normal of every vertex, alternating.
func (m *Mesh) Buffer() []f32.Vec3 {
	buf := make([]f32.Vec3, 0, 2*len(m.Vertices))
	for _, v := range m.Vertices {
		buf = append(buf, vec32(v.Position), vec32(v.Normal))
	}
	return buf
}

// Float32s flattens Buffer, six floats per vertex.
func (m *Mesh) Float32s() []float32 {
	buf := m.Buffer()
	a := make([]float32, 0, 3*len(buf))
	for _, v := range buf {
		a = append(a, v[0], v[1], v[2])
	}
	return a
}

func vec32(v lathe.Vec3) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (m *Mesh) addFace(p1, p2, p3, normal lathe.Vec3) {
	m.Vertices = append(m.Vertices,
		Vertex{Position: p1, Normal: normal},
		Vertex{Position: p2, Normal: normal},
		Vertex{Position: p3, Normal: normal})
}

// Sweep rotates profile around params.Axis. Profiles with fewer than two
// points produce an empty mesh. Degenerate segments (consecutive points
// at the same position) produce a zero normal.
func Sweep(profile *polyline.Polyline, params Params) (*Mesh, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	mesh := &Mesh{}
	n := profile.N()
	if n == 0 {
		return mesh, nil
	}
	prev := make([]lathe.Vec3, n)
	for i, p := range profile.ControlPoints() {
		prev[i] = params.Viewport.ToNDC(p.Lift())
	}
	rotation := lathe.Rotation(params.Step*lathe.Deg2Rad, params.Axis)
	rings := params.Rings()
	for r := 0; r < rings; r++ {
		next := make([]lathe.Vec3, n)
		next[0] = rotation.Transform(prev[0])
		for i := 1; i < n; i++ {
			next[i] = rotation.Transform(prev[i])
			normal := prev[i].Sub(prev[i-1]).Cross(next[i-1].Sub(prev[i-1])).Normalize()
			mesh.addFace(prev[i-1], next[i-1], prev[i], normal)
			mesh.addFace(prev[i], next[i-1], next[i], normal)
		}
		prev = next
	}
	for i := range mesh.Vertices {
		mesh.Vertices[i].Position = params.Viewport.FromNDC(mesh.Vertices[i].Position)
	}
	tracer().Infof("swept profile of %d points in %d rings: %d triangles", n, rings, mesh.TriangleCount())
	return mesh, nil
}
