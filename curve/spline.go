package curve

import (
	"fmt"
	"math"

	"github.com/npillmayer/feynman"
)

// hobby is an open skeleton path: knots z.0 … z.n with optional outgoing
// direction at z.0 and incoming direction at z.n. Tensions and curls are
// neutral (1).
type hobby struct {
	z        []feynman.Pair
	startDir float64 // radians, NaN if unset
	endDir   float64 // radians, NaN if unset
}

func (h *hobby) last() int {
	return len(h.z) - 1
}

func (h *hobby) delta(i int) feynman.Pair {
	return h.z[i+1] - h.z[i]
}

func (h *hobby) d(i int) float64 {
	return h.delta(i).Abs()
}

// Turning angle at z.i; 0 at the end knots.
func (h *hobby) psi(i int) float64 {
	if i <= 0 || i >= h.last() {
		return 0
	}
	return reduceAngle(h.delta(i).Angle() - h.delta(i-1).Angle())
}

// solve finds the angles theta.i between the outgoing tangent at z.i and the
// chord z.i → z.[i+1], by forward elimination of the tridiagonal "mock
// curvature" equations and back substitution.
func (h *hobby) solve() []float64 {
	n := h.last()
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	theta := make([]float64, n+1)
	if n == 1 && math.IsNaN(h.startDir) && math.IsNaN(h.endDir) {
		return theta // straight line
	}
	if math.IsNaN(h.startDir) {
		u[0] = 1 // curl 1, tensions 1
		v[0] = -u[0] * h.psi(1)
	} else {
		u[0] = 0
		v[0] = reduceAngle(h.startDir - h.delta(0).Angle())
	}
	for i := 1; i < n; i++ {
		A := 1 / h.d(i-1)
		B := 2 / h.d(i-1)
		C := 2 / h.d(i)
		D := 1 / h.d(i)
		t := B - u[i-1]*A + C
		u[i] = D / t
		v[i] = (-B*h.psi(i) - D*h.psi(i+1) - A*v[i-1]) / t
		tracer().Debugf("u.%d = %.4g, v.%d = %.4g", i, u[i], i, v[i])
	}
	if math.IsNaN(h.endDir) {
		u[n] = 1
		theta[n] = v[n-1] / (u[n-1] - u[n])
	} else {
		theta[n] = reduceAngle(h.endDir - h.delta(n-1).Angle())
	}
	for i := n - 1; i >= 0; i-- {
		theta[i] = v[i] - u[i]*theta[i+1]
	}
	return theta
}

// segments computes the cubic segments from the solved angles.
func (h *hobby) segments() []Cubic {
	theta := h.solve()
	n := h.last()
	cubics := make([]Cubic, n)
	for i := 0; i < n; i++ {
		phi := -h.psi(i+1) - theta[i+1]
		rho, sigma := velocities(theta[i], phi)
		dvec := h.delta(i)
		cubics[i] = Cubic{
			P0: h.z[i],
			P1: h.z[i] + dvec.Rotated(theta[i]).Scaled(rho/3),
			P2: h.z[i+1] - dvec.Rotated(-phi).Scaled(sigma/3),
			P3: h.z[i+1],
		}
		tracer().Debugf("segment %d: %s", i, cubics[i])
	}
	return cubics
}

// Hobby's velocity function for out-angle theta and in-angle phi. It
// returns rho = f(θ,φ) and sigma = f(φ,θ), both scaled by 3.
func velocities(theta, phi float64) (float64, float64) {
	const (
		constA  = math.Sqrt2    // empiric constants, as explained by J.Hobby
		constB  = 1.0 / 16      // 1/16
		constC  = 0.38196601125 // (3 - sqrt(5)) / 2
		constCC = 0.61803398875 // 1 - c
	)
	st, ct := math.Sincos(theta)
	sf, cf := math.Sincos(phi)
	alpha := constA * (st - constB*sf) * (sf - constB*st) * (ct - cf)
	rho := (2 + alpha) / (1 + constCC*ct + constC*cf)
	sigma := (2 - alpha) / (1 + constCC*cf + constC*ct)
	return rho, sigma
}

// Reduce an angle to fit into -π .. π.
func reduceAngle(a float64) float64 {
	if math.Abs(a) > math.Pi {
		if a > 0 {
			a -= 2 * math.Pi
		} else {
			a += 2 * math.Pi
		}
	}
	return a
}

// SplineControls computes the Hobby spline segments from start through the
// waypoints via to end. Directions of the anchors, if set, are honoured as
// the outgoing direction at start and the incoming direction at end; unset
// directions use a neutral curl.
func SplineControls(start Anchor, via []feynman.Pair, end Anchor) ([]Cubic, error) {
	if err := checkAnchor("start anchor", start); err != nil {
		return nil, err
	}
	if err := checkAnchor("end anchor", end); err != nil {
		return nil, err
	}
	h := &hobby{
		z:        make([]feynman.Pair, 0, len(via)+2),
		startDir: start.Angle * feynman.Deg2Rad,
		endDir:   end.Angle * feynman.Deg2Rad,
	}
	h.z = append(h.z, start.Position)
	h.z = append(h.z, via...)
	h.z = append(h.z, end.Position)
	for i, z := range h.z {
		if err := checkPoint(fmt.Sprintf("knot %d", i), z); err != nil {
			return nil, err
		}
		if i > 0 && h.d(i-1) < feynman.Epsilon {
			return nil, fmt.Errorf("%w: coincident knots %d and %d", feynman.ErrDegenerateGeometry, i-1, i)
		}
	}
	return h.segments(), nil
}

// SplineLine samples a Hobby spline through start, the waypoints via, and
// end, with n points per segment. Joints between segments are not
// duplicated, so the result has len(via)+1 segments and
// (len(via)+1)·(n-1)+1 points. Every knot is hit exactly.
func SplineLine(start Anchor, via []feynman.Pair, end Anchor, n int) (feynman.Polyline, error) {
	if err := checkSamples(n); err != nil {
		return nil, err
	}
	cubics, err := SplineControls(start, via, end)
	if err != nil {
		return nil, err
	}
	pl := make(feynman.Polyline, 0, len(cubics)*(n-1)+1)
	for i, c := range cubics {
		seg, err := c.Sample(n)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			seg = seg[1:]
		}
		pl = append(pl, seg...)
	}
	return pl, nil
}
