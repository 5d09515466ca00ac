package curve

import (
	"fmt"
	"math"

	"github.com/npillmayer/feynman"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Anchor is a fixed point bounding a line, with an optional tangent direction.
//
// Angle is the direction of travel at the anchor, in degrees counterclockwise
// from the positive x-axis. NaN means "unset"; use Free and Dir to construct
// anchors, as the zero value of Angle is a valid direction (0°).
type Anchor struct {
	Position feynman.Pair
	Angle    float64
}

// Free creates an anchor without tangent direction.
func Free(p feynman.Pair) Anchor {
	return Anchor{Position: p, Angle: math.NaN()}
}

// Dir creates an anchor with tangent direction deg (degrees).
func Dir(p feynman.Pair, deg float64) Anchor {
	return Anchor{Position: p, Angle: deg}
}

// HasDir is a predicate: does the anchor carry a tangent direction?
func (a Anchor) HasDir() bool {
	return !math.IsNaN(a.Angle)
}

func (a Anchor) String() string {
	if a.HasDir() {
		return fmt.Sprintf("%s{%g°}", a.Position, a.Angle)
	}
	return a.Position.String()
}

// Style selects the generator for the base path of a line.
type Style int

// Base path styles.
const (
	Straight       Style = iota // straight segment between two anchors
	Bezier                      // cubic Bezier between two anchors
	EllipticalLoop              // loop at a single vertex
	Spline                      // Hobby spline through waypoints
)

func (s Style) String() string {
	switch s {
	case Straight:
		return "straight"
	case Bezier:
		return "bezier"
	case EllipticalLoop:
		return "loop"
	case Spline:
		return "spline"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle is the inverse of Style.String.
func ParseStyle(s string) (Style, error) {
	for _, st := range []Style{Straight, Bezier, EllipticalLoop, Spline} {
		if st.String() == s {
			return st, nil
		}
	}
	return Straight, fmt.Errorf("%w: unknown curve style %q", feynman.ErrInvalidParameter, s)
}

func checkSamples(n int) error {
	if n < 2 {
		return fmt.Errorf("%w: sample count must be at least 2, got %d", feynman.ErrInvalidParameter, n)
	}
	return nil
}

func checkPoint(what string, p feynman.Pair) error {
	if !p.IsFinite() {
		return fmt.Errorf("%w: %s is %s", feynman.ErrInvalidParameter, what, p)
	}
	return nil
}

func checkAnchor(what string, a Anchor) error {
	if err := checkPoint(what, a.Position); err != nil {
		return err
	}
	if math.IsInf(a.Angle, 0) {
		return fmt.Errorf("%w: %s has infinite tangent angle", feynman.ErrInvalidParameter, what)
	}
	return nil
}
