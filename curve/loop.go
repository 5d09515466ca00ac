package curve

import (
	"fmt"
	"math"

	"github.com/npillmayer/feynman"
)

// Loop describes an elliptical arc: the ellipse with semi-axes Radius and
// MinorRadius, rotated by Rotation degrees and centered at Center, swept from
// angle Start to angle End (degrees). A MinorRadius of 0 means a circle.
type Loop struct {
	Center      feynman.Pair
	Radius      float64
	MinorRadius float64
	Start, End  float64
	Rotation    float64
}

// Validate checks the loop parameters.
func (l Loop) Validate() error {
	if err := checkPoint("loop center", l.Center); err != nil {
		return err
	}
	if !(l.Radius > 0) || math.IsInf(l.Radius, 0) {
		return fmt.Errorf("%w: loop radius must be positive, got %g", feynman.ErrInvalidParameter, l.Radius)
	}
	if l.MinorRadius < 0 || math.IsNaN(l.MinorRadius) || math.IsInf(l.MinorRadius, 0) {
		return fmt.Errorf("%w: minor radius must not be negative, got %g",
			feynman.ErrInvalidParameter, l.MinorRadius)
	}
	for _, a := range []float64{l.Start, l.End, l.Rotation} {
		if !feynman.Finite(a) {
			return fmt.Errorf("%w: loop angle is %g", feynman.ErrInvalidParameter, a)
		}
	}
	return nil
}

// IsClosed is a predicate: does the arc sweep a full turn?
func (l Loop) IsClosed() bool {
	return feynman.Is0(math.Abs(l.End-l.Start) - 360)
}

// Sample samples the arc at n angles uniformly spaced from Start to End.
// For a full turn the first and last point are identical, so clients may
// detect closure by point equality.
func (l Loop) Sample(n int) (feynman.Polyline, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	ry := l.MinorRadius
	if ry == 0 {
		ry = l.Radius
	}
	T := feynman.Scaling(l.Radius, ry).
		Combine(feynman.Rotation(l.Rotation * feynman.Deg2Rad)).
		Combine(feynman.Translation(l.Center))
	unit := make(feynman.Polyline, n)
	step := (l.End - l.Start) / float64(n-1)
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos((l.Start + float64(i)*step) * feynman.Deg2Rad)
		unit[i] = feynman.P(cos, sin)
	}
	pl := unit.Transformed(T)
	if l.IsClosed() {
		pl[n-1] = pl[0]
	}
	tracer().Debugf("loop around %s, r=%g, %g°..%g°, closed=%v", l.Center, l.Radius,
		l.Start, l.End, l.IsClosed())
	return pl, nil
}

// ArcLoop samples a circular arc of radius r around center, from angle start
// to angle end, rotated by rotation (all angles in degrees), at n points.
func ArcLoop(center feynman.Pair, r, start, end, rotation float64, n int) (feynman.Polyline, error) {
	return Loop{Center: center, Radius: r, Start: start, End: end, Rotation: rotation}.Sample(n)
}

// VertexLoop creates a closed self-loop attached to vertex v: the loop leaves
// v, bulges out in direction deg (degrees) and returns to v, running
// counterclockwise. The loop's extent in direction deg is 2·r; minor is the
// semi-axis across that direction (0 for a circle). First and last point are
// exactly v.
func VertexLoop(v feynman.Pair, r, minor, deg float64, n int) (feynman.Polyline, error) {
	if err := checkPoint("vertex", v); err != nil {
		return nil, err
	}
	if !feynman.Finite(deg) {
		return nil, fmt.Errorf("%w: loop direction is %g", feynman.ErrInvalidParameter, deg)
	}
	l := Loop{
		Center:      (v + feynman.P(r, 0)).Rotatedaround(v, deg*feynman.Deg2Rad),
		Radius:      r,
		MinorRadius: minor,
		Start:       180,
		End:         540,
		Rotation:    deg,
	}
	pl, err := l.Sample(n)
	if err != nil {
		return nil, err
	}
	pl[0], pl[n-1] = v, v
	return pl, nil
}
