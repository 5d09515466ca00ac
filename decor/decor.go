/*
Package decor draws physics line styles by offsetting a base path: photon
lines as sine waves, gluon lines as coils.

Offsets are placed in the local frame of the base path (package frame) and
driven by arc length (package arclen), so a wave's period is a distance
along the path, independent of how the base path has been sampled. For
spatially even results the base path should be resampled uniformly by arc
length first.

Decoration shapes the interior of a path smoothly; it does not guarantee
that the decorated end points coincide with the base path's. A photon wave
starts on the base path (sin 0 = 0) and a gluon coil is shifted to start
there, but the far end generally lies off the path. Clients connecting a
decorated line to a vertex glyph pin the end points with Pin.

Lines drawn as several consecutive segments keep their phase across joints:
Decorate reports the phase reached at the end of a segment, and passing it
as phase offset for the next segment continues the wave or coil without a
jump.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package decor

import (
	"fmt"
	"math"

	"github.com/npillmayer/feynman"
	"github.com/npillmayer/feynman/arclen"
	"github.com/npillmayer/feynman/frame"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Result is a decorated path together with the phase reached at its end.
type Result struct {
	Line       feynman.Polyline
	FinalPhase float64 // in [0, 2π); phase offset for a continuing segment
}

// Decorate applies style st to base, using the frame field fr computed for
// base. phaseOffset continues the phase of a preceding segment (0 for a
// fresh line). The returned line has as many points as base.
//
// Photon offsets point i by a·sin(2π·s.i/λ + offset) along the normal,
// s.i being the arc length up to point i.
//
// Gluon runs the phase θ.i = φ0 + offset + 2π·n·t.i, t.i being the arc
// length fraction at point i, and offsets point i by
//
//	a·((sin θ.i − sin φ0)·tangent.i + (cos φ0 − cos θ.i)·normal.i)
//
// which makes the coil of a fresh line start exactly on the base path.
//
// Styles are passed by value; any other implementation of Style, pointers
// to the concrete styles included, fails with ErrInvalidParameter.
// Decorating a path of zero length fails with ErrDegenerateGeometry.
func Decorate(base feynman.Polyline, fr frame.Field, st Style, phaseOffset float64) (Result, error) {
	if err := base.Validate(); err != nil {
		return Result{}, err
	}
	if len(fr) != len(base) {
		return Result{}, fmt.Errorf("%w: frame field has %d samples, path has %d",
			feynman.ErrInvalidParameter, len(fr), len(base))
	}
	switch st.(type) {
	case nil:
		st = None{}
	case None, Photon, Gluon:
	default:
		return Result{}, fmt.Errorf("%w: unsupported decoration style %T", feynman.ErrInvalidParameter, st)
	}
	if err := st.Validate(); err != nil {
		return Result{}, err
	}
	if !feynman.Finite(phaseOffset) {
		return Result{}, fmt.Errorf("%w: phase offset is %g", feynman.ErrInvalidParameter, phaseOffset)
	}
	tab := arclen.NewTable(base)
	if _, isNone := st.(None); !isNone && tab.Total() < feynman.Epsilon {
		return Result{}, fmt.Errorf("%w: cannot decorate a path of zero length", feynman.ErrDegenerateGeometry)
	}
	tracer().Debugf("decorate path of length %.4g with %s, phase offset %.4g", tab.Total(), st, phaseOffset)
	switch s := st.(type) {
	case Photon:
		return photon(base, fr, tab, s, phaseOffset), nil
	case Gluon:
		return gluon(base, fr, tab, s, phaseOffset), nil
	}
	line := make(feynman.Polyline, len(base)) // None
	copy(line, base)
	return Result{Line: line, FinalPhase: feynman.ReducePhase(phaseOffset)}, nil
}

// Apply computes the frame field of base and decorates it.
func Apply(base feynman.Polyline, st Style, phaseOffset float64) (Result, error) {
	return Decorate(base, frame.Compute(base), st, phaseOffset)
}

func photon(base feynman.Polyline, fr frame.Field, tab arclen.Table, p Photon, phi float64) Result {
	k := 2 * math.Pi / p.Wavelength
	line := fr.Offset(base, func(i int) float64 {
		return p.Amplitude * math.Sin(k*tab[i]+phi)
	})
	return Result{Line: line, FinalPhase: feynman.ReducePhase(k*tab.Total() + phi)}
}

func gluon(base feynman.Polyline, fr frame.Field, tab arclen.Table, g Gluon, phi float64) Result {
	omega := 2 * math.Pi * g.Loops
	sin0, cos0 := math.Sincos(g.Phase0)
	line := make(feynman.Polyline, len(base))
	for i, t := range tab.Fractions() {
		sin, cos := math.Sincos(g.Phase0 + phi + omega*t)
		along := fr[i].Tangent.Scaled(sin - sin0)
		across := fr[i].Normal.Scaled(cos0 - cos)
		line[i] = base[i] + (along + across).Scaled(g.Amplitude)
	}
	return Result{Line: line, FinalPhase: feynman.ReducePhase(phi + omega)}
}

// Pin returns a copy of the decorated line dec with its first and last point
// replaced by the first and last point of base.
func Pin(dec, base feynman.Polyline) (feynman.Polyline, error) {
	if err := dec.Validate(); err != nil {
		return nil, err
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	pinned := make(feynman.Polyline, len(dec))
	copy(pinned, dec)
	pinned[0], pinned[len(pinned)-1] = base.First(), base.Last()
	return pinned, nil
}
