/*
Package feynman implements the geometry of Feynman diagram lines: points and
2D vector helpers, polylines, and the error kinds shared by the path
generators in the sub-packages.

Sub-packages build on each other, leaf first:

	curve    base paths between anchors (straight, Bezier, Hobby spline, loops)
	frame    tangent/normal frame per polyline sample
	arclen   arc length tables, uniform resampling, clipping by arc length
	decor    photon waves and gluon coils offset along a base path
	line     the pipeline from an anchor/style spec to a drawable polyline

All operations are pure functions of their inputs. They may be called from
concurrent goroutines without coordination.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package feynman

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'feynman'
func tracer() tracing.Trace {
	return tracing.Select("feynman")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD.
const Deg2Rad float64 = math.Pi / 180

// Epsilon : vectors shorter than ε are considered degenerate.
const Epsilon float64 = 1e-10

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Finite is a predicate: is n neither NaN nor ±Inf?
func Finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// ReducePhase maps an angle (radians) to [0, 2π).
func ReducePhase(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi { // may happen for tiny negative a
		a = 0
	}
	return a
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector. It is an immutable value type.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// IsFinite is a predicate: are both coordinates finite?
func (p Pair) IsFinite() bool {
	return Finite(p.X()) && Finite(p.Y())
}

// Abs returns the Euclidean length of p.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Dist returns the Euclidean distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return (q - p).Abs()
}

// Dot returns the scalar product of p and q.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Angle returns the direction of p in radians, in (-π, π].
func (p Pair) Angle() float64 {
	return cmplx.Phase(p.C())
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise,
// radians).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return (p - v).Rotated(theta) + v
}

// Dir returns the unit vector pointing in direction deg (degrees,
// counterclockwise from the positive x-axis).
func Dir(deg float64) Pair {
	sin, cos := math.Sincos(deg * Deg2Rad)
	return P(cos, sin)
}

// Normalize returns v scaled to unit length. If |v| < ε it fails with
// ErrDegenerateVector; callers have to substitute a sensible direction
// themselves.
func Normalize(v Pair) (Pair, error) {
	l := v.Abs()
	if l < Epsilon || !Finite(l) {
		return Origin, fmt.Errorf("%w: |%s| = %g", ErrDegenerateVector, v, l)
	}
	return v.Scaled(1 / l), nil
}

// Perpendicular rotates v by +90°, i.e. (x,y) becomes (-y,x).
// All normals of this module are derived with this handedness.
func Perpendicular(v Pair) Pair {
	return P(-v.Y(), v.X())
}

// Lerp interpolates linearly between p and q; t=0 yields p, t=1 yields q.
func Lerp(p, q Pair, t float64) Pair {
	return p + (q - p).Scaled(t)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float64, 9)
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Scaling transform, scaling x and y independently.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one: the result applies m first,
// then n. Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	v := []float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}
