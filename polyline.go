package feynman

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
)

// Polyline is an ordered sequence of points, traversed from first to last.
// A valid polyline has at least 2 points. Polylines are never changed in place;
// every transformation in this module returns a new one.
type Polyline []Pair

// Validate checks the polyline invariant: at least 2 points, all finite.
func (pl Polyline) Validate() error {
	if len(pl) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(pl))
	}
	for i, p := range pl {
		if !p.IsFinite() {
			tracer().Errorf("polyline has invalid point %s at %d", p, i)
			return fmt.Errorf("%w: point %d is %s", ErrInvalidParameter, i, p)
		}
	}
	return nil
}

// N returns the number of points.
func (pl Polyline) N() int {
	return len(pl)
}

// First returns the start point of the polyline.
func (pl Polyline) First() Pair {
	return pl[0]
}

// Last returns the end point of the polyline.
func (pl Polyline) Last() Pair {
	return pl[len(pl)-1]
}

// Length returns the sum of the Euclidean distances of consecutive points.
// A single point has length 0.
func (pl Polyline) Length() float64 {
	return PolylineLength(pl)
}

// PolylineLength sums up the Euclidean distances of consecutive points.
func PolylineLength(points []Pair) float64 {
	var l float64
	for i := 1; i < len(points); i++ {
		l += points[i-1].Dist(points[i])
	}
	return l
}

// XY splits the polyline into two parallel coordinate slices, the form most
// plotting backends expect.
func (pl Polyline) XY() ([]float64, []float64) {
	xs := make([]float64, len(pl))
	ys := make([]float64, len(pl))
	for i, p := range pl {
		xs[i], ys[i] = p.F()
	}
	return xs, ys
}

// FromXY creates a polyline from two parallel coordinate slices.
func FromXY(xs, ys []float64) (Polyline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x-values, %d y-values", ErrInvalidParameter, len(xs), len(ys))
	}
	pl := make(Polyline, len(xs))
	for i := range xs {
		pl[i] = P(xs[i], ys[i])
	}
	return pl, pl.Validate()
}

// Transformed returns a copy of pl with every point transformed by m.
func (pl Polyline) Transformed(m AT) Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[i] = m.Transform(p)
	}
	return out
}

// Reversed returns a copy of pl traversed from last to first point.
func (pl Polyline) Reversed() Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// Contour converts the polyline to a polyclip contour (implicitly closed).
func (pl Polyline) Contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pl))
	for _, p := range pl {
		c.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

// Bounds returns the axis-aligned bounding box of the polyline.
func (pl Polyline) Bounds() polyclip.Rectangle {
	if len(pl) == 0 {
		return polyclip.Rectangle{}
	}
	return pl.Contour().BoundingBox()
}

// String returns the polyline as a (debugging) string, coordinates rounded to
// 4 decimals.
//
//	(0,0) -- (1.5,0.25) -- (3,0)
func (pl Polyline) String() string {
	var s string
	for i, p := range pl {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
	}
	return s
}

func round(x float64) float64 {
	r := math.Round(x*10000.0) / 10000.0
	if r == 0 {
		return 0 // no "-0"
	}
	return r
}
