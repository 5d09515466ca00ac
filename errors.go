package feynman

import "errors"

var (
	// ErrDegenerateGeometry indicates a requested path of zero length, e.g. a
	// Bezier curve between coincident anchors, or decoration of a path whose
	// points all coincide. Callers have to supply different anchors or use a
	// loop for self-energy lines.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrDegenerateVector indicates a vector too short to be normalized.
	ErrDegenerateVector = errors.New("degenerate vector")
	// ErrInvalidParameter indicates an out-of-range numeric parameter, e.g. a
	// non-positive amplitude, wavelength, loop count or radius.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrTooFewPoints indicates a polyline with fewer than 2 points.
	ErrTooFewPoints = errors.New("polyline has too few points")
)
