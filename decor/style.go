package decor

import (
	"fmt"
	"math"

	"github.com/npillmayer/feynman"
)

// Style selects the offset function a decoration applies to a base path.
// Concrete styles are None, Photon and Gluon.
type Style interface {
	Validate() error
	String() string
	isStyle()
}

// None leaves the base path undecorated.
type None struct{}

// Photon is a sinusoidal wave across the base path.
type Photon struct {
	Amplitude  float64 // wave height on either side of the path
	Wavelength float64 // spatial period, measured along the path
}

// Gluon is a coil winding along the base path, drawn as a helix seen from the
// side.
type Gluon struct {
	Amplitude float64 // coil radius
	Loops     float64 // number of windings over the whole path
	Phase0    float64 // initial phase in [0, 2π)
}

func (None) isStyle()   {}
func (Photon) isStyle() {}
func (Gluon) isStyle()  {}

// Validate accepts any None.
func (None) Validate() error { return nil }

// Validate checks for strictly positive parameters.
func (p Photon) Validate() error {
	if err := positive("photon amplitude", p.Amplitude); err != nil {
		return err
	}
	return positive("photon wavelength", p.Wavelength)
}

// Validate checks for strictly positive amplitude and loop count, and for
// Phase0 in [0, 2π).
func (g Gluon) Validate() error {
	if err := positive("gluon amplitude", g.Amplitude); err != nil {
		return err
	}
	if err := positive("gluon loop count", g.Loops); err != nil {
		return err
	}
	if !(g.Phase0 >= 0 && g.Phase0 < 2*math.Pi) {
		return fmt.Errorf("%w: gluon phase must be in [0,2π), got %g", feynman.ErrInvalidParameter, g.Phase0)
	}
	return nil
}

func (None) String() string {
	return "none"
}

func (p Photon) String() string {
	return fmt.Sprintf("photon(a=%g, λ=%g)", p.Amplitude, p.Wavelength)
}

func (g Gluon) String() string {
	return fmt.Sprintf("gluon(a=%g, n=%g, φ=%g)", g.Amplitude, g.Loops, g.Phase0)
}

func positive(what string, x float64) error {
	if !(x > 0) || math.IsInf(x, 0) {
		return fmt.Errorf("%w: %s must be positive, got %g", feynman.ErrInvalidParameter, what, x)
	}
	return nil
}

// LoopsFor returns the number of gluon windings for a path of the given
// length, so that consecutive windings are about pitch apart. At least one
// winding is returned.
func LoopsFor(length, pitch float64) (float64, error) {
	if err := positive("gluon pitch", pitch); err != nil {
		return 0, err
	}
	if !(length >= 0) || math.IsInf(length, 0) {
		return 0, fmt.Errorf("%w: path length is %g", feynman.ErrInvalidParameter, length)
	}
	return math.Max(1, math.Round(length/pitch)), nil
}
