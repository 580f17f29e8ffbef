package nurbs

import "github.com/npillmayer/lathe"

// knot returns knot i, clamping i to the knot vector.
func (c *Curve) knot(i int) float64 {
	if i < 0 {
		return c.knots[0]
	}
	if i >= len(c.knots) {
		return c.knots[len(c.knots)-1]
	}
	return c.knots[i]
}

// effectiveDegree is the degree evaluation runs with: with fewer control
// points than the order, the degree drops to N-1.
func (c *Curve) effectiveDegree() int {
	if c.N() < c.order {
		return c.N() - 1
	}
	return c.Degree()
}

// KnotSpan finds the span m with knot[m] ≤ u < knot[m+1]. Spans are clamped
// to the valid range [degree, N-1]; for u at or beyond the end of the
// domain, the last valid span is returned. Runs in O(log N).
func (c *Curve) KnotSpan(u float64) int {
	return c.spanFor(c.Degree(), u)
}

func (c *Curve) spanFor(p int, u float64) int {
	hi := c.N() - 1
	if hi < p {
		hi = p
	}
	if u < c.knot(p) {
		return p
	}
	if u >= c.knot(hi+1) {
		return hi
	}
	low, high := p, hi+1
	mid := (low + high) / 2
	for u < c.knot(mid) || u >= c.knot(mid+1) {
		if u < c.knot(mid) {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// BasisFunctions computes the degree+1 basis functions which may be
// non-zero at u, N(span-degree) … N(span), with the triangular Cox–de Boor
// scheme. A term with a zero knot interval in its denominator contributes 0.
func (c *Curve) BasisFunctions(span int, u float64) []float64 {
	return c.basisFor(c.Degree(), span, u)
}

func (c *Curve) basisFor(p, span int, u float64) []float64 {
	N := make([]float64, p+1)
	left := make([]float64, p+1)
	right := make([]float64, p+1)
	N[0] = 1
	for j := 1; j <= p; j++ {
		left[j] = u - c.knot(span+1-j)
		right[j] = c.knot(span+j) - u
		saved := 0.0
		for r := 0; r < j; r++ {
			var temp float64
			if denom := right[r+1] + left[j-r]; denom != 0 {
				temp = N[r] / denom
			}
			N[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		N[j] = saved
	}
	return N
}

// Domain returns the parameter range the curve is evaluated on,
// [knot[p], knot[N]] with p the effective degree.
func (c *Curve) Domain() (float64, float64) {
	if c.N() == 0 {
		return c.knot(0), c.knot(0)
	}
	return c.knot(c.effectiveDegree()), c.knot(c.N())
}

// PointAt evaluates the curve at parameter u within Domain.
func (c *Curve) PointAt(u float64) lathe.Pair {
	if c.N() == 0 {
		return lathe.Origin
	}
	return c.pointAt(c.effectiveDegree(), u)
}

// pointAt sums the control points of the span of u, each scaled by its
// basis function value and its weight, and normalizes by the sum of
// (basis ⋅ weight). Control points the span reaches beyond the curve's ends
// contribute nothing.
func (c *Curve) pointAt(p int, u float64) lathe.Pair {
	span := c.spanFor(p, u)
	N := c.basisFor(p, span, u)
	var num lathe.Pair
	var denom float64
	for j := 0; j <= p; j++ {
		i := span - p + j
		if i < 0 || i >= c.N() {
			continue
		}
		f := N[j] * c.weights[i]
		num += c.points[i].Scaled(f)
		denom += f
	}
	if denom == 0 {
		tracer().Errorf("B-spline has zero weight sum at u=%g, span %d", u, span)
		return num
	}
	return num.Scaled(1 / denom)
}
