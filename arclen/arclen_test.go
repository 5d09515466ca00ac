package arclen

import (
	"math"
	"testing"

	"github.com/npillmayer/feynman"
	"github.com/npillmayer/feynman/curve"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coefficientOfVariation(pl feynman.Polyline) float64 {
	n := len(pl) - 1
	var sum, sq float64
	for i := 0; i < n; i++ {
		d := pl[i].Dist(pl[i+1])
		sum += d
		sq += d * d
	}
	mean := sum / float64(n)
	variance := sq/float64(n) - mean*mean
	return math.Sqrt(math.Max(0, variance)) / mean
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := feynman.Polyline{feynman.P(0, 0), feynman.P(3, 4), feynman.P(3, 4), feynman.P(3, 0)}
	tab := NewTable(pl)
	assert.Equal(t, Table{0, 5, 5, 9}, tab)
	assert.Equal(t, 9.0, tab.Total())
	fr := tab.Fractions()
	assert.InDelta(t, 5.0/9, fr[1], 1e-12)
	assert.Equal(t, 1.0, fr[3])
	assert.Equal(t, []float64{0, 0}, NewTable(feynman.Polyline{feynman.P(1, 1), feynman.P(1, 1)}).Fractions())
}

func TestTableMonotone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bez, err := curve.BezierLine(curve.Dir(feynman.P(0, 0), 80), curve.Dir(feynman.P(4, 0), -80), 1, 300)
	require.NoError(t, err)
	tab := NewTable(bez)
	assert.Equal(t, 0.0, tab[0])
	for i := 1; i < len(tab); i++ {
		assert.GreaterOrEqual(t, tab[i], tab[i-1])
	}
}

func TestResampleUniform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bez, err := curve.BezierLine(curve.Dir(feynman.P(0, 0), 80), curve.Dir(feynman.P(4, 0), -80), 1, 400)
	require.NoError(t, err)
	assert.Greater(t, coefficientOfVariation(bez), 0.05) // parameter sampling is not uniform
	for _, m := range []int{10, 57, 200} {
		res, err := Resample(bez, m)
		require.NoError(t, err)
		require.Equal(t, m, res.N())
		assert.Equal(t, bez.First(), res.First())
		assert.Equal(t, bez.Last(), res.Last())
		assert.Less(t, coefficientOfVariation(res), 0.05, "m=%d", m)
	}
}

func TestResampleCoincidentPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := feynman.Polyline{feynman.P(0, 0), feynman.P(0, 0), feynman.P(2, 0), feynman.P(2, 0), feynman.P(4, 0)}
	res, err := Resample(pl, 5)
	require.NoError(t, err)
	for i, p := range res {
		assert.InDelta(t, float64(i), p.X(), 1e-12)
	}
}

func TestResampleErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Resample(feynman.Polyline{feynman.P(1, 1), feynman.P(1, 1)}, 10)
	assert.ErrorIs(t, err, feynman.ErrDegenerateGeometry)
	_, err = Resample(feynman.Polyline{feynman.P(1, 1), feynman.P(2, 1)}, 1)
	assert.ErrorIs(t, err, feynman.ErrInvalidParameter)
	_, err = Resample(feynman.Polyline{feynman.P(1, 1)}, 10)
	assert.ErrorIs(t, err, feynman.ErrTooFewPoints)
}

func TestAt(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := feynman.Polyline{feynman.P(0, 0), feynman.P(2, 0), feynman.P(2, 2)}
	for _, c := range []struct {
		s    float64
		want feynman.Pair
	}{
		{-1, feynman.P(0, 0)}, {0, feynman.P(0, 0)}, {1, feynman.P(1, 0)},
		{2, feynman.P(2, 0)}, {3, feynman.P(2, 1)}, {4, feynman.P(2, 2)}, {9, feynman.P(2, 2)},
	} {
		p, err := At(pl, c.s)
		require.NoError(t, err)
		assert.Equal(t, c.want, p, "s=%g", c.s)
	}
}

func TestSub(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := feynman.Polyline{feynman.P(0, 0), feynman.P(2, 0), feynman.P(2, 2)}
	sub, err := Sub(pl, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, feynman.Polyline{feynman.P(1, 0), feynman.P(2, 0), feynman.P(2, 1)}, sub)
	sub, err = Sub(pl, -5, 50)
	require.NoError(t, err)
	assert.Equal(t, pl, sub)
	_, err = Sub(pl, 2, 2)
	assert.ErrorIs(t, err, feynman.ErrDegenerateGeometry)
}

func TestClipOutside(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl, err := curve.StraightLine(feynman.P(0, 0), feynman.P(10, 0), 11)
	require.NoError(t, err)
	sub, from, until, err := ClipOutside(pl, Disc{pl.First(), 1.5}, Disc{pl.Last(), 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, from, 1e-12)
	assert.InDelta(t, 9.5, until, 1e-12)
	assert.InDelta(t, 1.5, sub.First().X(), 1e-12)
	assert.InDelta(t, 9.5, sub.Last().X(), 1e-12)
	assert.InDelta(t, 8.0, sub.Length(), 1e-12)

	same, from, until, err := ClipOutside(pl, Disc{pl.First(), 0}, Disc{pl.Last(), 0})
	require.NoError(t, err)
	assert.Equal(t, 0.0, from)
	assert.InDelta(t, 10.0, until, 1e-12)
	assert.Equal(t, pl, same)

	_, _, _, err = ClipOutside(pl, Disc{pl.First(), 6}, Disc{pl.Last(), 6})
	assert.ErrorIs(t, err, feynman.ErrDegenerateGeometry)
	_, _, _, err = ClipOutside(pl, Disc{pl.First(), -1}, Disc{})
	assert.ErrorIs(t, err, feynman.ErrInvalidParameter)
}

func TestClipOutsideCurved(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bez, err := curve.BezierLine(curve.Dir(feynman.P(0, 0), 45), curve.Dir(feynman.P(6, 0), -45), 0.3, 500)
	require.NoError(t, err)
	sub, _, _, err := ClipOutside(bez, Disc{bez.First(), 1}, Disc{bez.Last(), 1})
	require.NoError(t, err)
	assert.InDelta(t, 1, sub.First().Dist(bez.First()), 1e-9)
	assert.InDelta(t, 1, sub.Last().Dist(bez.Last()), 1e-9)
}
