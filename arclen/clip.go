package arclen

import (
	"fmt"
	"math"

	"github.com/npillmayer/feynman"
)

// Disc is a circular exclusion zone, usually the glyph of a vertex.
// A Radius of 0 excludes nothing.
type Disc struct {
	Center feynman.Pair
	Radius float64
}

func (d Disc) validate() error {
	if !d.Center.IsFinite() || d.Radius < 0 || !feynman.Finite(d.Radius) {
		return fmt.Errorf("%w: exclusion disc %s, r=%g", feynman.ErrInvalidParameter, d.Center, d.Radius)
	}
	return nil
}

// ClipOutside cuts pl to the part running outside the exclusion zones: the
// path starts where it first leaves the disc at and ends where it last enters
// the disc to. It returns the sub-path together with the arc lengths of the
// cut points on the original path.
//
// If nothing of the path remains outside the discs, ClipOutside fails with
// ErrDegenerateGeometry.
func ClipOutside(pl feynman.Polyline, at, to Disc) (feynman.Polyline, float64, float64, error) {
	if err := at.validate(); err != nil {
		return nil, 0, 0, err
	}
	if err := to.validate(); err != nil {
		return nil, 0, 0, err
	}
	tab, err := checkPath(pl)
	if err != nil {
		return nil, 0, 0, err
	}
	from := leave(pl, tab, at)
	until := tab.Total() - leave(pl.Reversed(), NewTable(pl.Reversed()), to)
	if !(until-from > feynman.Epsilon) {
		return nil, 0, 0, fmt.Errorf("%w: path lies within exclusion zones (%g..%g)",
			feynman.ErrDegenerateGeometry, from, until)
	}
	sub, err := Sub(pl, from, until)
	if err != nil {
		return nil, 0, 0, err
	}
	tracer().Debugf("clipped path to [%.4g,%.4g] of %.4g", from, until, tab.Total())
	return sub, from, until, nil
}

// leave returns the arc length at which pl first reaches distance d.Radius
// from d.Center, or the total length if it never does.
func leave(pl feynman.Polyline, tab Table, d Disc) float64 {
	if d.Radius == 0 || pl[0].Dist(d.Center) >= d.Radius {
		return 0
	}
	for i := 1; i < len(pl); i++ {
		if pl[i].Dist(d.Center) < d.Radius {
			continue
		}
		u := exitParam(pl[i-1], pl[i], d)
		return tab[i-1] + u*(tab[i]-tab[i-1])
	}
	return tab.Total()
}

// exitParam solves |a + u·(b-a) - c| = r for u in [0,1], with a inside and b
// outside (or on) the circle.
func exitParam(a, b feynman.Pair, d Disc) float64 {
	v := b - a
	w := a - d.Center
	qa := v.Dot(v)
	if qa == 0 {
		return 1
	}
	qb := 2 * v.Dot(w)
	qc := w.Dot(w) - d.Radius*d.Radius
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		disc = 0
	}
	u := (-qb + math.Sqrt(disc)) / (2 * qa)
	return math.Max(0, math.Min(1, u))
}
