package curve

import (
	"fmt"

	"github.com/npillmayer/feynman"
)

// DefaultOffsetRatio is the Bezier control point distance, relative to the
// anchor distance, used when a Request leaves it unset.
const DefaultOffsetRatio = 0.3

// DefaultLoopDirection is the direction (degrees) a vertex loop opens to if
// the start anchor has no direction.
const DefaultLoopDirection = 90

// Request collects the parameters for generating a base path.
//
// For EllipticalLoop, only Start is used: the loop is attached to
// Start.Position and opens in direction Start.Angle (DefaultLoopDirection if
// unset). LoopRadius is the loop's semi-axis in that direction and must be
// set; LoopMinorRadius 0 makes the loop circular.
// Via is used by Spline only.
type Request struct {
	Style           Style
	Start, End      Anchor
	Via             []feynman.Pair
	OffsetRatio     float64 // Bezier control distance; 0 selects DefaultOffsetRatio
	LoopRadius      float64
	LoopMinorRadius float64
	Samples         int // for Spline: samples per segment
}

// Generate produces the base path for a request, dispatching on its style.
func Generate(req Request) (feynman.Polyline, error) {
	tracer().Debugf("generate %s path from %s to %s", req.Style, req.Start, req.End)
	switch req.Style {
	case Straight:
		return StraightLine(req.Start.Position, req.End.Position, req.Samples)
	case Bezier:
		ratio := req.OffsetRatio
		if ratio == 0 {
			ratio = DefaultOffsetRatio
		}
		return BezierLine(req.Start, req.End, ratio, req.Samples)
	case EllipticalLoop:
		dir := req.Start.Angle
		if !req.Start.HasDir() {
			dir = DefaultLoopDirection
		}
		return VertexLoop(req.Start.Position, req.LoopRadius, req.LoopMinorRadius, dir, req.Samples)
	case Spline:
		return SplineLine(req.Start, req.Via, req.End, req.Samples)
	}
	return nil, fmt.Errorf("%w: unknown curve style %d", feynman.ErrInvalidParameter, int(req.Style))
}
