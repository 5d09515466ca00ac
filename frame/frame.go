/*
Package frame computes the local orientation basis (unit tangent and unit
normal) at every sample of a polyline.

Tangents are estimated by central differences at interior samples and by
one-sided differences at the two end samples. Normals are the tangents
rotated by +90° (see feynman.Perpendicular), so all normals of a field lie
on the same side relative to the direction of travel.

Caveat: normals follow the tangent. Where a path folds back on itself, the
tangent reverses and the normal flips to the other side of the stroke. This
is inherent to a tangent-derived frame and not treated as an error.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package frame

import (
	"github.com/npillmayer/feynman"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// fallback direction if every segment of a polyline is degenerate
var fallback = feynman.P(1, 0)

// Sample is the frame at a single polyline point.
type Sample struct {
	Tangent feynman.Pair // unit vector in direction of travel
	Normal  feynman.Pair // unit vector, Tangent rotated by +90°
}

// Field is a sequence of frame samples, aligned index for index with the
// polyline it has been computed for.
type Field []Sample

// Compute calculates the frame field of a polyline. It never fails: where a
// tangent estimate is degenerate (coincident neighbouring points), the
// previous valid tangent is used; at the start, the first non-degenerate
// forward difference along the polyline. A polyline with all points
// coincident gets the x-axis as tangent.
func Compute(pl feynman.Polyline) Field {
	n := len(pl)
	field := make(Field, n)
	if n == 0 {
		return field
	}
	var prev feynman.Pair
	for i := 0; i < n; i++ {
		t, err := feynman.Normalize(rawTangent(pl, i))
		if err != nil {
			if i == 0 {
				t = firstForward(pl)
			} else {
				t = prev
			}
			tracer().Debugf("degenerate tangent at %d, substituting %s", i, t)
		}
		field[i] = Sample{Tangent: t, Normal: feynman.Perpendicular(t)}
		prev = t
	}
	return field
}

func rawTangent(pl feynman.Polyline, i int) feynman.Pair {
	n := len(pl)
	switch {
	case n < 2:
		return feynman.Origin
	case i == 0:
		return pl[1] - pl[0]
	case i == n-1:
		return pl[n-1] - pl[n-2]
	}
	return pl[i+1] - pl[i-1]
}

func firstForward(pl feynman.Polyline) feynman.Pair {
	for j := 0; j+1 < len(pl); j++ {
		if t, err := feynman.Normalize(pl[j+1] - pl[j]); err == nil {
			return t
		}
	}
	return fallback
}

// Tangents returns the tangent vectors of the field.
func (f Field) Tangents() []feynman.Pair {
	ts := make([]feynman.Pair, len(f))
	for i, s := range f {
		ts[i] = s.Tangent
	}
	return ts
}

// Normals returns the normal vectors of the field.
func (f Field) Normals() []feynman.Pair {
	ns := make([]feynman.Pair, len(f))
	for i, s := range f {
		ns[i] = s.Normal
	}
	return ns
}

// Offset moves every point of pl along its normal by the distance given by
// dist(i). The field must have been computed for pl.
func (f Field) Offset(pl feynman.Polyline, dist func(i int) float64) feynman.Polyline {
	out := make(feynman.Polyline, len(pl))
	for i, p := range pl {
		out[i] = p + f[i].Normal.Scaled(dist(i))
	}
	return out
}
