/*
Package line turns the description of a diagram line into a drawable
polyline. It runs the geometry pipeline

	anchors + curve style  →  base path            (package curve)
	vertex glyph radii     →  clipped base path    (package arclen)
	sample count           →  uniform resampling   (package arclen)
	                          frame field          (package frame)
	decoration style       →  decorated path       (package decor)

and hands back coordinates plus the final decoration phase for chaining.
Styling unrelated to geometry (colour, stroke width, arrow heads, labels) is
left to the renderer.

Usage

	spec := line.Spec{
		Curve:      curve.Bezier,
		Start:      curve.Dir(feynman.P(0, 0), 30),
		End:        curve.Free(feynman.P(4, 0)),
		Decoration: decor.Photon{Amplitude: 0.1, Wavelength: 0.3},
		Samples:    400,
	}
	res, err := line.Build(spec)
	xs, ys := res.XY()

Builds are pure and independent; BuildAll generates many lines
concurrently.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package line

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/feynman"
	"github.com/npillmayer/feynman/arclen"
	"github.com/npillmayer/feynman/curve"
	"github.com/npillmayer/feynman/decor"
	"github.com/npillmayer/feynman/frame"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Spec describes a single diagram line.
type Spec struct {
	Curve           curve.Style
	Start, End      curve.Anchor   // End is ignored for loops
	Via             []feynman.Pair // waypoints for curve.Spline
	OffsetRatio     float64        // Bezier control distance; 0: curve.DefaultOffsetRatio
	LoopRadius      float64        // for curve.EllipticalLoop
	LoopMinorRadius float64        // for curve.EllipticalLoop; 0: circular loop
	Decoration      decor.Style    // nil: decor.None
	Samples         int            // points of the resulting line
	BaseSamples     int            // density of the base path; 0: Samples
	StartExclusion  float64        // radius to keep clear around the start vertex
	EndExclusion    float64        // radius to keep clear around the end vertex
	PhaseOffset     float64        // decoration phase carried over from a preceding segment
	Pin             bool           // force the end points onto the (clipped) base path
	ParamSampling   bool           // skip uniform arc-length resampling
}

// Result is a generated line.
type Result struct {
	Line       feynman.Polyline // the drawable path
	Base       feynman.Polyline // the undecorated (clipped, resampled) path
	FinalPhase float64          // decoration phase at the end of Line
}

// XY returns the line's coordinates as parallel slices.
func (r Result) XY() ([]float64, []float64) {
	return r.Line.XY()
}

// Bounds returns the bounding box of the line.
func (r Result) Bounds() polyclip.Rectangle {
	return r.Line.Bounds()
}

// Build runs the geometry pipeline for a single line. All failures are
// returned to the caller; Build never falls back to an approximate line.
func Build(spec Spec) (Result, error) {
	res, err := build(spec)
	if err != nil {
		tracer().Errorf("cannot build %s line from %s: %v", spec.Curve, spec.Start, err)
	}
	return res, err
}

// MustBuild is like Build, but panics on error.
func MustBuild(spec Spec) Result {
	res, err := Build(spec)
	if err != nil {
		panic(err)
	}
	return res
}

func build(spec Spec) (Result, error) {
	if spec.Samples < 2 {
		return Result{}, fmt.Errorf("%w: sample count must be at least 2, got %d",
			feynman.ErrInvalidParameter, spec.Samples)
	}
	baseSamples := spec.BaseSamples
	if baseSamples == 0 {
		baseSamples = spec.Samples
	}
	base, err := curve.Generate(curve.Request{
		Style:           spec.Curve,
		Start:           spec.Start,
		End:             spec.End,
		Via:             spec.Via,
		OffsetRatio:     spec.OffsetRatio,
		LoopRadius:      spec.LoopRadius,
		LoopMinorRadius: spec.LoopMinorRadius,
		Samples:         baseSamples,
	})
	if err != nil {
		return Result{}, err
	}
	if spec.StartExclusion != 0 || spec.EndExclusion != 0 {
		at := arclen.Disc{Center: base.First(), Radius: spec.StartExclusion}
		to := arclen.Disc{Center: base.Last(), Radius: spec.EndExclusion}
		if base, _, _, err = arclen.ClipOutside(base, at, to); err != nil {
			return Result{}, err
		}
	}
	if !spec.ParamSampling {
		if base, err = arclen.Resample(base, spec.Samples); err != nil {
			return Result{}, err
		}
	}
	dec, err := decor.Decorate(base, frame.Compute(base), spec.Decoration, spec.PhaseOffset)
	if err != nil {
		return Result{}, err
	}
	if spec.Pin {
		if dec.Line, err = decor.Pin(dec.Line, base); err != nil {
			return Result{}, err
		}
	}
	tracer().Debugf("built %s line with %d points, final phase %.4g", spec.Curve, dec.Line.N(), dec.FinalPhase)
	return Result{Line: dec.Line, Base: base, FinalPhase: dec.FinalPhase}, nil
}

// Chain builds consecutive segments of one visual line. The final phase of
// each segment is passed as phase offset to the next one (the first segment
// keeps its own PhaseOffset), so the decoration runs through the joints
// without jumps.
func Chain(specs []Spec) ([]Result, error) {
	results := make([]Result, 0, len(specs))
	for i, spec := range specs {
		if i > 0 {
			spec.PhaseOffset = results[i-1].FinalPhase
		}
		res, err := Build(spec)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		results = append(results, res)
	}
	return results, nil
}
