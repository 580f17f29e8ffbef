package revolve

import (
	"math"
	"testing"

	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/polyline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile() *polyline.Polyline {
	return polyline.NullPolyline().
		Knot(lathe.P(500, 100)).Knot(lathe.P(550, 200)).Knot(lathe.P(600, 300)).
		Knot(lathe.P(550, 500)).Knot(lathe.P(450, 700)).End()
}

func TestEmptyProfile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mesh, err := Sweep(polyline.NullPolyline(), DefaultParams())
	require.NoError(t, err)
	assert.True(t, mesh.IsEmpty())
	assert.Empty(t, mesh.Float32s())
	mesh, err = Sweep(polyline.FromPoints(lathe.P(1, 1)), DefaultParams())
	require.NoError(t, err)
	assert.True(t, mesh.IsEmpty())
}

func TestTriangleCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mesh, err := Sweep(profile(), DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 36*2*4, mesh.TriangleCount())
	assert.Equal(t, 3*mesh.TriangleCount(), mesh.VertexCount())
	assert.Len(t, mesh.Buffer(), 2*mesh.VertexCount())
	assert.Len(t, mesh.Float32s(), 6*mesh.VertexCount())
	params := DefaultParams()
	params.Amount = 45
	assert.Equal(t, 4, params.Rings())
	mesh, err = Sweep(profile(), params)
	require.NoError(t, err)
	assert.Equal(t, 4*2*4, mesh.TriangleCount())
	params.Step = 0.1
	params.Amount = 0.3
	assert.Equal(t, 3, params.Rings())
}

func TestFullTurnCloses(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := profile()
	for _, axis := range []lathe.Vec3{lathe.XAxis, lathe.YAxis, lathe.ZAxis} {
		params := DefaultParams()
		params.Axis = axis
		mesh, err := Sweep(pl, params)
		require.NoError(t, err)
		n := mesh.VertexCount()
		last := mesh.Vertices[n-1].Position // next ring, last profile point
		assert.True(t, last.Equal(pl.Z(pl.N()-1).Lift()), "axis %v: last vertex is %v", axis, last)
		first := mesh.Vertices[0].Position // first ring, first profile point
		assert.True(t, first.Equal(pl.Z(0).Lift()), "axis %v: first vertex is %v", axis, first)
	}
}

func TestFaceNormals(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := polyline.FromPoints(lathe.P(600, 400), lathe.P(600, 300))
	params := DefaultParams()
	params.Amount, params.Step = 90, 90
	mesh, err := Sweep(pl, params)
	require.NoError(t, err)
	require.Equal(t, 2, mesh.TriangleCount())
	want := lathe.V3(-1, 0, 1).Normalize()
	for _, v := range mesh.Vertices {
		assert.True(t, v.Normal.Equal(want), "normal is %v", v.Normal)
	}
	mesh, err = Sweep(profile(), DefaultParams())
	require.NoError(t, err)
	for _, v := range mesh.Vertices {
		assert.InDelta(t, 1.0, v.Normal.Length(), 1e-9)
	}
}

func TestDegenerateProfile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := polyline.FromPoints(lathe.P(500, 500), lathe.P(500, 500))
	mesh, err := Sweep(pl, DefaultParams())
	require.NoError(t, err)
	for _, f := range mesh.Float32s() {
		assert.False(t, math.IsNaN(float64(f)))
	}
	assert.True(t, mesh.Vertices[0].Normal.Equal(lathe.Origin3))
}

func TestViewport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vp := Viewport{Width: 800, Height: 600}
	assert.True(t, vp.ToNDC(lathe.V3(400, 300, 0)).Equal(lathe.Origin3))
	assert.True(t, vp.ToNDC(lathe.V3(0, 0, 0)).Equal(lathe.V3(-1, 1, 0)))
	p := lathe.V3(123, 456, -78)
	assert.True(t, vp.FromNDC(vp.ToNDC(p)).Equal(p))
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, DefaultParams().Validate())
	for _, c := range []struct {
		modify func(*Params)
		err    error
	}{
		{func(p *Params) { p.Step = 0 }, ErrInvalidStep},
		{func(p *Params) { p.Step = 361 }, ErrInvalidStep},
		{func(p *Params) { p.Amount = -10 }, ErrInvalidAmount},
		{func(p *Params) { p.Amount = math.Inf(1) }, ErrInvalidAmount},
		{func(p *Params) { p.Step = 1e-300 }, ErrTooManyRings},
		{func(p *Params) { p.Amount = 1e300 }, ErrTooManyRings},
		{func(p *Params) { p.Axis = lathe.V3(1, 1, 0) }, ErrInvalidAxis},
		{func(p *Params) { p.Viewport.Height = 0 }, ErrInvalidViewport},
		{func(p *Params) { p.Increment = 0 }, polyline.ErrInvalidIncrement},
	} {
		params := DefaultParams()
		c.modify(&params)
		_, err := Sweep(profile(), params)
		assert.ErrorIs(t, err, c.err)
	}
}
