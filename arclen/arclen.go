/*
Package arclen measures polylines by arc length: cumulative length tables,
lookup of points at a given distance along a path, resampling at uniform
arc-length spacing, and clipping of sub-paths.

Curve generators sample uniformly in their curve parameter, which crowds
samples where a curve bends. Decorations with a spatial period (photon
waves, gluon coils) need samples spaced uniformly along the path, or the
period visibly stretches and shrinks. Resample provides that spacing.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package arclen

import (
	"fmt"
	"sort"

	"github.com/npillmayer/feynman"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Table holds cumulative arc lengths of a polyline: Table[i] is the length of
// the path from point 0 to point i. Table[0] is 0, and the table is
// non-decreasing (constant across coincident points).
type Table []float64

// NewTable builds the arc length table of a polyline.
func NewTable(pl feynman.Polyline) Table {
	tab := make(Table, len(pl))
	for i := 1; i < len(pl); i++ {
		tab[i] = tab[i-1] + pl[i-1].Dist(pl[i])
	}
	return tab
}

// Total returns the length of the whole path.
func (tab Table) Total() float64 {
	if len(tab) == 0 {
		return 0
	}
	return tab[len(tab)-1]
}

// Fractions returns Table[i]/Total for each i, i.e. the arc length fraction in
// [0,1] reached at each point. For a zero-length path all fractions are 0.
func (tab Table) Fractions() []float64 {
	fr := make([]float64, len(tab))
	total := tab.Total()
	if total == 0 {
		return fr
	}
	for i, s := range tab {
		fr[i] = s / total
	}
	fr[len(fr)-1] = 1
	return fr
}

// locate finds the segment index j with tab[j] <= s <= tab[j+1], skipping
// zero-length segments, and the interpolation parameter within it.
func (tab Table) locate(s float64) (int, float64) {
	n := len(tab)
	j := sort.SearchFloat64s(tab, s) // first index with tab[j] >= s
	if j == 0 {
		return 0, 0
	}
	if j >= n {
		return n - 2, 1
	}
	j-- // tab[j] < s <= tab[j+1]
	seglen := tab[j+1] - tab[j]
	if seglen <= 0 {
		return j, 1
	}
	return j, (s - tab[j]) / seglen
}

func checkPath(pl feynman.Polyline) (Table, error) {
	if err := pl.Validate(); err != nil {
		return nil, err
	}
	tab := NewTable(pl)
	if tab.Total() < feynman.Epsilon {
		return nil, fmt.Errorf("%w: path has zero length", feynman.ErrDegenerateGeometry)
	}
	return tab, nil
}

// At returns the point at arc length s along pl. s is clamped to
// [0, length of pl].
func At(pl feynman.Polyline, s float64) (feynman.Pair, error) {
	tab, err := checkPath(pl)
	if err != nil {
		return feynman.Origin, err
	}
	return at(pl, tab, s), nil
}

func at(pl feynman.Polyline, tab Table, s float64) feynman.Pair {
	switch {
	case s <= 0:
		return pl.First()
	case s >= tab.Total():
		return pl.Last()
	}
	j, u := tab.locate(s)
	return feynman.Lerp(pl[j], pl[j+1], u)
}

// Resample returns a new polyline of m points, spaced uniformly by arc length
// along pl, by piecewise linear interpolation of pl's points against its arc
// length table. The first and last point equal pl's exactly.
//
// Paths of zero length fail with ErrDegenerateGeometry.
func Resample(pl feynman.Polyline, m int) (feynman.Polyline, error) {
	if m < 2 {
		return nil, fmt.Errorf("%w: sample count must be at least 2, got %d", feynman.ErrInvalidParameter, m)
	}
	tab, err := checkPath(pl)
	if err != nil {
		return nil, err
	}
	total := tab.Total()
	out := make(feynman.Polyline, m)
	for k := 1; k < m-1; k++ {
		out[k] = at(pl, tab, total*float64(k)/float64(m-1))
	}
	out[0], out[m-1] = pl.First(), pl.Last()
	tracer().Debugf("resampled %d points to %d, length %.4g", len(pl), m, total)
	return out, nil
}

// Sub returns the part of pl between arc lengths from and to, with the
// interpolated cut points as first and last point and all original points
// in between. Bounds are clamped to the path; from must be less than to.
func Sub(pl feynman.Polyline, from, to float64) (feynman.Polyline, error) {
	tab, err := checkPath(pl)
	if err != nil {
		return nil, err
	}
	if from < 0 {
		from = 0
	}
	if to > tab.Total() {
		to = tab.Total()
	}
	if !(to-from > feynman.Epsilon) {
		return nil, fmt.Errorf("%w: empty sub-path [%g,%g]", feynman.ErrDegenerateGeometry, from, to)
	}
	sub := feynman.Polyline{at(pl, tab, from)}
	for i, s := range tab {
		if s > from && s < to && pl[i] != sub[len(sub)-1] {
			sub = append(sub, pl[i])
		}
	}
	sub = append(sub, at(pl, tab, to))
	return sub, nil
}
