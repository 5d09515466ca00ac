package line

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/feynman"
	"github.com/npillmayer/feynman/curve"
	"github.com/npillmayer/feynman/decor"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func photonSpec() Spec {
	return Spec{
		Curve:      curve.Bezier,
		Start:      curve.Dir(feynman.P(0, 0), 30),
		End:        curve.Dir(feynman.P(5, 0), -30),
		Decoration: decor.Photon{Amplitude: 0.1, Wavelength: 0.4},
		Samples:    300,
	}
}

func TestBuildPhoton(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	res, err := Build(photonSpec())
	require.NoError(t, err)
	assert.Equal(t, 300, res.Line.N())
	assert.Equal(t, 300, res.Base.N())
	assert.Equal(t, feynman.P(0, 0), res.Base.First())
	assert.Equal(t, feynman.P(5, 0), res.Base.Last())
	assert.InDelta(t, 0, res.Line.First().Dist(res.Base.First()), 1e-12)
	for i := range res.Line {
		assert.LessOrEqual(t, res.Line[i].Dist(res.Base[i]), 0.1+1e-12)
	}
	xs, ys := res.XY()
	assert.Len(t, xs, 300)
	assert.Len(t, ys, 300)
}

func TestBuildReproducible(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := photonSpec()
	spec.Decoration = decor.Gluon{Amplitude: 0.15, Loops: 9, Phase0: 0.3}
	a := MustBuild(spec)
	b := MustBuild(spec)
	assert.Equal(t, a, b)
}

func TestBuildExclusionAndPin(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := Spec{
		Curve:          curve.Straight,
		Start:          curve.Free(feynman.P(0, 0)),
		End:            curve.Free(feynman.P(10, 0)),
		Decoration:     decor.Gluon{Amplitude: 0.2, Loops: 4.5},
		Samples:        101,
		StartExclusion: 1,
		EndExclusion:   2,
		Pin:            true,
	}
	res, err := Build(spec)
	require.NoError(t, err)
	assert.InDelta(t, 1, res.Line.First().X(), 1e-12)
	assert.InDelta(t, 8, res.Line.Last().X(), 1e-12)
	assert.Equal(t, res.Base.Last(), res.Line.Last())
}

func TestBuildLoop(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := feynman.P(2, 2)
	res, err := Build(Spec{
		Curve:      curve.EllipticalLoop,
		Start:      curve.Dir(v, -90),
		LoopRadius: 0.75,
		Decoration: decor.Photon{Amplitude: 0.05, Wavelength: 0.3},
		Samples:    200,
		Pin:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, v, res.Line.First())
	assert.Equal(t, v, res.Line.Last())
	b := res.Bounds()
	assert.InDelta(t, 0.5, b.Min.Y, 0.06) // loop hangs 1.5 below the vertex
}

func TestBuildSpline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	res, err := Build(Spec{
		Curve:       curve.Spline,
		Start:       curve.Free(feynman.P(0, 0)),
		Via:         []feynman.Pair{feynman.P(2, 1), feynman.P(4, -1)},
		End:         curve.Free(feynman.P(6, 0)),
		Samples:     120,
		BaseSamples: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, 120, res.Line.N())
	assert.Equal(t, res.Base, res.Line)
}

func TestBuildParamSampling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := photonSpec()
	spec.ParamSampling = true
	spec.BaseSamples = 50
	res, err := Build(spec)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Line.N())
}

func TestBuildErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	spec := photonSpec()
	spec.End = curve.Free(feynman.P(0, 0))
	_, err := Build(spec)
	if !errors.Is(err, feynman.ErrDegenerateGeometry) {
		t.Fatalf("expected ErrDegenerateGeometry, got %v", err)
	}
	spec = photonSpec()
	spec.Decoration = decor.Photon{Amplitude: -1, Wavelength: 1}
	_, err = Build(spec)
	assert.ErrorIs(t, err, feynman.ErrInvalidParameter)
	spec = photonSpec()
	spec.Samples = 0
	_, err = Build(spec)
	assert.ErrorIs(t, err, feynman.ErrInvalidParameter)
	spec = photonSpec()
	spec.StartExclusion, spec.EndExclusion = 4, 4
	_, err = Build(spec)
	assert.ErrorIs(t, err, feynman.ErrDegenerateGeometry)
	mustPanic(t, func() { MustBuild(spec) })
}

func TestChainContinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	g := decor.Gluon{Amplitude: 0.2, Loops: 3.3, Phase0: 0.5}
	specs := []Spec{
		{Curve: curve.Straight, Start: curve.Free(feynman.P(0, 0)), End: curve.Free(feynman.P(5, 0)),
			Decoration: g, Samples: 100},
		{Curve: curve.Straight, Start: curve.Free(feynman.P(5, 0)), End: curve.Free(feynman.P(10, 0)),
			Decoration: g, Samples: 100},
		{Curve: curve.Straight, Start: curve.Free(feynman.P(10, 0)), End: curve.Free(feynman.P(12, 0)),
			Decoration: g, Samples: 100},
	}
	results, err := Chain(specs)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i := 1; i < len(results); i++ {
		gap := results[i-1].Line.Last().Dist(results[i].Line.First())
		assert.Less(t, gap, 1e-6, "joint %d", i)
	}
	specs[1].End = specs[1].Start
	_, err = Chain(specs)
	assert.ErrorIs(t, err, feynman.ErrDegenerateGeometry)
}

func TestBuildAll(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var specs []Spec
	for i := 0; i < 20; i++ {
		spec := photonSpec()
		spec.End = curve.Free(feynman.P(float64(i+1), float64(i)))
		specs = append(specs, spec)
	}
	results, err := BuildAll(specs, 4)
	require.NoError(t, err)
	require.Len(t, results, len(specs))
	for i, res := range results {
		want, err := Build(specs[i])
		require.NoError(t, err)
		assert.Equal(t, want, res)
	}
	b := Bounds(results)
	assert.GreaterOrEqual(t, b.Max.X, 19.8)
	assert.GreaterOrEqual(t, b.Max.Y, 18.8)
	assert.Equal(t, Bounds(nil), Bounds([]Result{}))

	specs[7].Samples = 1
	_, err = BuildAll(specs, 0)
	assert.ErrorIs(t, err, feynman.ErrInvalidParameter)
}

func TestSettings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := ParseSettings([]byte(`
samples: 120
photon:
  wavelength: 0.5
gluon:
  pitch: 0.25
`))
	require.NoError(t, err)
	assert.Equal(t, 120, s.Samples)
	assert.Equal(t, 0.5, s.Photon.Wavelength)
	assert.Equal(t, DefaultSettings().Photon.Amplitude, s.Photon.Amplitude)
	g, err := s.GluonFor(5)
	require.NoError(t, err)
	assert.Equal(t, 20.0, g.Loops)

	s, err = ParseSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	_, err = ParseSettings([]byte("samples: 1\n"))
	assert.ErrorIs(t, err, feynman.ErrInvalidParameter)
	_, err = ParseSettings([]byte("photon:\n  amplitude: 0\n"))
	assert.ErrorIs(t, err, feynman.ErrInvalidParameter)
	_, err = ParseSettings([]byte("colour: red\n"))
	assert.Error(t, err)
}

func TestSettingsPitchIgnoresLoops(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := ParseSettings([]byte("gluon:\n  pitch: 0.25\n  loops: 0\n"))
	require.NoError(t, err)
	g, err := s.GluonFor(2)
	require.NoError(t, err)
	assert.Equal(t, 8.0, g.Loops)
	_, err = ParseSettings([]byte("gluon:\n  loops: 0\n"))
	assert.ErrorIs(t, err, feynman.ErrInvalidParameter)
}

func TestSettingsFill(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := DefaultSettings()
	s.ExclusionRadius = 0.2
	spec := s.Fill(Spec{Curve: curve.Bezier})
	assert.Equal(t, s.Samples, spec.Samples)
	assert.Equal(t, s.OffsetRatio, spec.OffsetRatio)
	assert.Equal(t, 0.2, spec.StartExclusion)
	assert.Equal(t, 0.2, spec.EndExclusion)
	spec = s.Fill(Spec{Samples: 10, EndExclusion: 1})
	assert.Equal(t, 10, spec.Samples)
	assert.Equal(t, 0.0, spec.StartExclusion)
	assert.False(t, math.IsNaN(spec.LoopRadius))
}

// Draw a photon line as two straight segments meeting at (1,0). The wave's
// phase carries over from the first segment to the second.
func ExampleChain() {
	photon := decor.Photon{Amplitude: 0.1, Wavelength: 1}
	results, err := Chain([]Spec{
		{Curve: curve.Straight, Start: curve.Free(feynman.P(0, 0)), End: curve.Free(feynman.P(1, 0)),
			Decoration: photon, Samples: 5},
		{Curve: curve.Straight, Start: curve.Free(feynman.P(1, 0)), End: curve.Free(feynman.P(2, 0)),
			Decoration: photon, Samples: 5},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range results {
		fmt.Println(r.Line)
	}
	// Output:
	// (0,0) -- (0.25,0.1) -- (0.5,0) -- (0.75,-0.1) -- (1,0)
	// (1,0) -- (1.25,0.1) -- (1.5,0) -- (1.75,-0.1) -- (2,0)
}
