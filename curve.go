// seehuhn.de/go/raster - scan conversion of 2D primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"
)

// Curve sampling parameters.
const (
	// BezierSamples is the number of parameter values at which a Bézier
	// curve is evaluated.  The samples are 0, 0.001, ..., 1.
	BezierSamples = 1001

	// SplineOrder is the order of the B-spline basis (cubic splines).
	SplineOrder = 4

	bezierStep     = 0.001
	bezierDigits   = 3
	splineStepFrac = 0.001
	splineDigits   = 4
)

// Curve returns the sampled pixels of the curve defined by the given
// control points.  Samples are emitted in parameter order.
func Curve(control []image.Point, alg CurveAlgorithm) []image.Point {
	switch alg {
	case Bezier:
		return BezierCurve(control)
	case BSpline:
		return BSplineCurve(control)
	default:
		panic("raster: invalid " + alg.String())
	}
}

// BezierCurve evaluates the Bézier curve of degree len(control)-1 at
// [BezierSamples] evenly spaced parameter values.  The first sample is the
// first control point and the last sample is the last control point.
// A nil slice is returned if there are no control points.
func BezierCurve(control []image.Point) []image.Point {
	n := len(control)
	if n == 0 {
		return nil
	}

	res := make([]image.Point, 0, BezierSamples)
	for u := 0.0; u <= 1; u = roundTo(u+bezierStep, bezierDigits) {
		var sum vec.Vec2
		for j, c := range control {
			b := binomial(n-1, j) * math.Pow(1-u, float64(n-1-j)) * math.Pow(u, float64(j))
			sum = sum.Add(toVec(c).Mul(b))
		}
		res = append(res, truncate(sum))
	}
	return res
}

// BSplineCurve evaluates the uniform cubic B-spline with the given control
// points.  The curve is sampled over the parameter range [t_3, t_n+1] of
// the uniform knot vector t_i = i/(n+4), where n+1 is the number of
// control points.
//
// At least four control points are required.  For fewer points the
// result is empty; this is not an error.
func BSplineCurve(control []image.Point) []image.Point {
	const k = SplineOrder

	n := len(control) - 1
	if n < k-1 {
		return nil
	}

	knots := make([]float64, k+n+1)
	for i := range knots {
		knots[i] = float64(i) / float64(k+n)
	}

	lo, hi := knots[k-1], knots[n+1]
	step := (hi - lo) * splineStepFrac

	var res []image.Point
	for u := lo; u <= hi; u = roundTo(u+step, splineDigits) {
		var sum vec.Vec2
		for j, c := range control {
			sum = sum.Add(toVec(c).Mul(Basis(u, j, k, knots)))
		}
		res = append(res, truncate(sum))
	}
	return res
}

// Basis evaluates the B-spline basis function N_{i,k}(u) over the given
// knot vector using the Cox–de Boor recursion.  The knot vector must have
// at least i+k+1 entries.
//
// The order 1 basis is the indicator of the half-open interval
// [knots[i], knots[i+1]).  Terms of the recursion whose knot span has zero
// length contribute zero.
func Basis(u float64, i, k int, knots []float64) float64 {
	if k == 1 {
		if knots[i] <= u && u < knots[i+1] {
			return 1
		}
		return 0
	}

	var left, right float64
	if d := knots[i+k-1] - knots[i]; d != 0 {
		left = (u - knots[i]) / d
	}
	if d := knots[i+k] - knots[i+1]; d != 0 {
		right = (knots[i+k] - u) / d
	}
	return left*Basis(u, i, k-1, knots) + right*Basis(u, i+1, k-1, knots)
}

// binomial returns n choose k as a float64.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	c := 1.0
	for i := 1; i <= k; i++ {
		c = c * float64(n-k+i) / float64(i)
	}
	return math.Round(c)
}

// roundTo rounds x to the given number of decimal digits.  It keeps an
// incrementally stepped curve parameter on the decimal grid.
//
// The decimal conversion rounds the exact binary value of x.  Scaling by
// 10^digits first rounds a different value: with a step of 0.00025 every
// sum lies half-way between two grid points, and the scaled product
// decides some of these cases the other way.
func roundTo(x float64, digits int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		panic(err) // unreachable for finite x
	}
	return v
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// truncate converts v to integer coordinates, rounding toward zero.
func truncate(v vec.Vec2) image.Point {
	return image.Pt(int(v.X), int(v.Y))
}
