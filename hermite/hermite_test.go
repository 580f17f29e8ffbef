package hermite

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/lathe"
	"github.com/npillmayer/lathe/polyline"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPointCurve() *Curve {
	c := New()
	c.AddControlPoint(lathe.P(0, 0))
	c.AddControlPoint(lathe.P(10, 0))
	return c
}

func TestBasis(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h1, h2, h3, h4 := Basis(0.5)
	got := []float64{h1, h2, h3, h4}
	want := []float64{0.5, 0.5, 0.125, -0.125}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
	for _, s := range []float64{0, 0.1, 0.33, 0.9, 1} {
		h1, h2, _, _ := Basis(s)
		if !lathe.Is1(h1 + h2) {
			t.Errorf("expected h1 + h2 = 1 at s=%g, is %g", s, h1+h2)
		}
	}
}

func TestDegenerateToLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := twoPointCurve()
	pl, err := c.Evaluated(0.05)
	require.NoError(t, err)
	require.Equal(t, 21, pl.N())
	assert.True(t, pl.Z(10).Equal(lathe.P(5, 0)), "s=0.5 is %v", pl.Z(10))
	for _, p := range pl.ControlPoints() {
		assert.True(t, p.X() >= 0 && p.X() <= 10 && p.Y() == 0, "point %v out of segment", p)
	}
	assert.Equal(t, lathe.P(0, 0), pl.Z(0))
	assert.Equal(t, lathe.P(10, 0), pl.Z(pl.N()-1))
}

func TestInterpolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New()
	c.AddControlPoint(lathe.P(0, 0))
	c.AddControlPoint(lathe.P(10, 5))
	c.AddControlPoint(lathe.P(20, -5))
	require.NoError(t, c.SetTangent(0, lathe.P(3, 7)))
	require.NoError(t, c.SetTangent(1, lathe.P(-2, 4)))
	require.NoError(t, c.SetTangent(2, lathe.P(1, 1)))
	for i := 1; i < c.N(); i++ {
		start, err := c.At(i, 0)
		require.NoError(t, err)
		assert.Equal(t, c.ControlPoints()[i-1], start)
		end, _ := c.At(i, 1)
		assert.True(t, end.Equal(c.ControlPoints()[i]), "segment %d ends at %v", i, end)
	}
	end1, _ := c.At(1, 1)
	start2, _ := c.At(2, 0)
	assert.True(t, end1.Equal(start2), "gap between segments")
	_, err := c.At(3, 0.5)
	assert.ErrorIs(t, err, polyline.ErrIndexOutOfRange)
	_, err = c.At(0, 0.5)
	assert.ErrorIs(t, err, polyline.ErrIndexOutOfRange)
}

func TestNoDuplicatePoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := twoPointCurve()
	c.AddControlPoint(lathe.P(10, 10))
	pl, err := c.Evaluated(0.25)
	require.NoError(t, err)
	assert.Equal(t, 1+2*(3+1), pl.N())
	for i := 1; i < pl.N(); i++ {
		assert.False(t, pl.Z(i).Equal(pl.Z(i-1)), "duplicate point at %d", i)
	}
}

func TestFewPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := New()
	pl, err := c.Evaluated(0.1)
	require.NoError(t, err)
	assert.Equal(t, 0, pl.N())
	c.AddControlPoint(lathe.P(3, 3))
	pl, _ = c.Evaluated(0.1)
	assert.Equal(t, 1, pl.N())
}

func TestCaching(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := twoPointCurve()
	assert.True(t, c.IsDirty())
	pl1, _ := c.Evaluated(0.1)
	assert.False(t, c.IsDirty())
	pl2, _ := c.Evaluated(0.1)
	assert.Same(t, pl1, pl2)
	pl3, _ := c.Evaluated(0.2)
	assert.NotSame(t, pl2, pl3)
	require.NoError(t, c.SetTangent(1, lathe.P(0, 30)))
	assert.True(t, c.IsDirty())
	pl4, _ := c.Evaluated(0.2)
	assert.NotSame(t, pl3, pl4)
	_, err := c.Evaluated(0)
	assert.ErrorIs(t, err, polyline.ErrInvalidIncrement)
}

func TestEditing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := twoPointCurve()
	require.NoError(t, c.SetTangent(1, lathe.P(1, 2)))
	require.NoError(t, c.RemoveControlPointAt(0))
	tg, err := c.Tangent(0)
	require.NoError(t, err)
	assert.Equal(t, lathe.P(1, 2), tg, "tangent must move with its point")
	assert.ErrorIs(t, c.RemoveControlPointAt(1), polyline.ErrIndexOutOfRange)
	assert.Equal(t, 1, c.N())
	require.NoError(t, c.MoveControlPoint(0, lathe.P(4, 4)))
	assert.Equal(t, lathe.P(4, 4), c.ControlPoints()[0])
	_, err = c.Tangent(1)
	assert.ErrorIs(t, err, polyline.ErrIndexOutOfRange)
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := twoPointCurve()
	require.NoError(t, c.SetTangent(0, lathe.P(0, 40)))
	require.NoError(t, c.SetTangent(1, lathe.P(0, -40)))
	assert.Equal(t, polyline.Hit{Success: true, Index: 1}, c.Contains(lathe.P(10, 1)))
	top, _ := c.At(1, 0.5)
	h := c.Contains(top)
	assert.True(t, h.Success)
	assert.Equal(t, -1, h.Index, "body hits carry no index")
	assert.Equal(t, polyline.Miss, c.Contains(lathe.P(5, -50)))
}

func TestContainsWithBrokenDefault(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	saved := polyline.DefaultIncrement
	defer func() { polyline.DefaultIncrement = saved }()
	polyline.DefaultIncrement = 0
	c := twoPointCurve()
	assert.Equal(t, polyline.Miss, c.Contains(lathe.P(5, 0.5)))
	assert.Equal(t, polyline.Hit{Success: true, Index: 1}, c.Contains(lathe.P(10, 0)))
}
