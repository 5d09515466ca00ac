package curve

import (
	"fmt"

	"github.com/npillmayer/feynman"
)

// Cubic is a cubic Bezier segment with end points P0, P3 and control points
// P1, P2.
type Cubic struct {
	P0, P1, P2, P3 feynman.Pair
}

// Eval evaluates the Bezier polynomial at parameter t in [0,1].
func (c Cubic) Eval(t float64) feynman.Pair {
	mt := 1.0 - t
	a := c.P0.Scaled(mt * mt * mt)
	b := c.P1.Scaled(mt * mt * t * 3.0)
	d := c.P2.Scaled(mt * t * t * 3.0)
	e := c.P3.Scaled(t * t * t)
	return a + b + d + e
}

// Sample evaluates the segment at n parameter values evenly spaced in [0,1].
// The first and last point are exactly P0 and P3.
func (c Cubic) Sample(n int) (feynman.Polyline, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	pl := make(feynman.Polyline, n)
	for i := 1; i < n-1; i++ {
		pl[i] = c.Eval(float64(i) / float64(n-1))
	}
	pl[0], pl[n-1] = c.P0, c.P3
	return pl, nil
}

func (c Cubic) String() string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s", c.P0, c.P1, c.P2, c.P3)
}

// BezierControls places the control points for a Bezier line between two
// anchors. P1 lies at distance ratio·|P3-P0| from P0 in the start anchor's
// direction, P2 at the same distance from P3, against the end anchor's
// direction of travel. Unset directions default to the straight line between
// the anchors.
//
// Coincident anchors fail with ErrDegenerateGeometry: self-loops have to use
// a loop generator.
func BezierControls(start, end Anchor, ratio float64) (Cubic, error) {
	if err := checkAnchor("start anchor", start); err != nil {
		return Cubic{}, err
	}
	if err := checkAnchor("end anchor", end); err != nil {
		return Cubic{}, err
	}
	if !(ratio > 0 && ratio <= 1) {
		return Cubic{}, fmt.Errorf("%w: offset ratio must be in (0,1], got %g",
			feynman.ErrInvalidParameter, ratio)
	}
	p0, p3 := start.Position, end.Position
	chord, err := feynman.Normalize(p3 - p0)
	if err != nil {
		return Cubic{}, fmt.Errorf("%w: Bezier between coincident anchors %s and %s, use a loop",
			feynman.ErrDegenerateGeometry, p0, p3)
	}
	dist := ratio * p0.Dist(p3)
	dir0, dir3 := chord, chord
	if start.HasDir() {
		dir0 = feynman.Dir(start.Angle)
	}
	if end.HasDir() {
		dir3 = feynman.Dir(end.Angle)
	}
	c := Cubic{
		P0: p0,
		P1: p0 + dir0.Scaled(dist),
		P2: p3 - dir3.Scaled(dist),
		P3: p3,
	}
	tracer().Debugf("bezier %s -> %s: %s", start, end, c)
	return c, nil
}

// BezierLine returns a cubic Bezier between two anchors, sampled at n points
// uniformly spaced in the curve parameter. See BezierControls for the
// placement of control points. The first and last point equal the anchor
// positions exactly.
func BezierLine(start, end Anchor, ratio float64, n int) (feynman.Polyline, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	c, err := BezierControls(start, end, ratio)
	if err != nil {
		return nil, err
	}
	return c.Sample(n)
}

// StraightLine returns n points evenly spaced from a to b, a and b included.
func StraightLine(a, b feynman.Pair, n int) (feynman.Polyline, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	if err := checkPoint("start", a); err != nil {
		return nil, err
	}
	if err := checkPoint("end", b); err != nil {
		return nil, err
	}
	if a.Dist(b) < feynman.Epsilon {
		return nil, fmt.Errorf("%w: straight line between coincident points %s and %s",
			feynman.ErrDegenerateGeometry, a, b)
	}
	pl := make(feynman.Polyline, n)
	for i := 1; i < n-1; i++ {
		pl[i] = feynman.Lerp(a, b, float64(i)/float64(n-1))
	}
	pl[0], pl[n-1] = a, b
	return pl, nil
}
