package line

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/npillmayer/feynman"
	"github.com/npillmayer/feynman/decor"
	"gopkg.in/yaml.v3"
)

// Settings are the user-adjustable knobs for drawing lines. Clients usually
// keep them in a preferences file; this package only decodes them.
//
//	samples: 400
//	offset_ratio: 0.3
//	exclusion_radius: 0.1
//	loop_radius: 0.5
//	photon:
//	  amplitude: 0.1
//	  wavelength: 0.35
//	gluon:
//	  amplitude: 0.12
//	  loops: 8
//	  pitch: 0
//	  phase: 0
type Settings struct {
	Samples         int            `yaml:"samples"`
	OffsetRatio     float64        `yaml:"offset_ratio"`
	ExclusionRadius float64        `yaml:"exclusion_radius"`
	LoopRadius      float64        `yaml:"loop_radius"`
	Photon          PhotonSettings `yaml:"photon"`
	Gluon           GluonSettings  `yaml:"gluon"`
}

// PhotonSettings configure photon waves.
type PhotonSettings struct {
	Amplitude  float64 `yaml:"amplitude"`
	Wavelength float64 `yaml:"wavelength"`
}

// GluonSettings configure gluon coils. If Pitch is set, the loop count is
// derived from the length of each line and Loops is ignored.
type GluonSettings struct {
	Amplitude float64 `yaml:"amplitude"`
	Loops     float64 `yaml:"loops"`
	Pitch     float64 `yaml:"pitch"`
	Phase     float64 `yaml:"phase"`
}

// DefaultSettings returns settings suitable for diagrams a few units wide.
func DefaultSettings() Settings {
	return Settings{
		Samples:         400,
		OffsetRatio:     0.3,
		ExclusionRadius: 0,
		LoopRadius:      0.5,
		Photon:          PhotonSettings{Amplitude: 0.1, Wavelength: 0.35},
		Gluon:           GluonSettings{Amplitude: 0.12, Loops: 8},
	}
}

// ParseSettings decodes YAML settings on top of DefaultSettings and
// validates them. Unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("decoding line settings: %w", err)
	}
	return s, s.Validate()
}

// Validate checks all settings for their admissible ranges.
func (s Settings) Validate() error {
	if s.Samples < 2 {
		return fmt.Errorf("%w: samples must be at least 2, got %d", feynman.ErrInvalidParameter, s.Samples)
	}
	if !(s.OffsetRatio > 0 && s.OffsetRatio <= 1) {
		return fmt.Errorf("%w: offset ratio must be in (0,1], got %g", feynman.ErrInvalidParameter, s.OffsetRatio)
	}
	if !(s.ExclusionRadius >= 0) || math.IsInf(s.ExclusionRadius, 0) {
		return fmt.Errorf("%w: exclusion radius is %g", feynman.ErrInvalidParameter, s.ExclusionRadius)
	}
	if !(s.LoopRadius > 0) || math.IsInf(s.LoopRadius, 0) {
		return fmt.Errorf("%w: loop radius must be positive, got %g", feynman.ErrInvalidParameter, s.LoopRadius)
	}
	if s.Gluon.Pitch < 0 || math.IsNaN(s.Gluon.Pitch) {
		return fmt.Errorf("%w: gluon pitch is %g", feynman.ErrInvalidParameter, s.Gluon.Pitch)
	}
	if err := s.PhotonStyle().Validate(); err != nil {
		return err
	}
	g := s.GluonStyle()
	if s.Gluon.Pitch > 0 {
		g.Loops = 1 // derived per line
	}
	return g.Validate()
}

// PhotonStyle returns the configured photon decoration.
func (s Settings) PhotonStyle() decor.Photon {
	return decor.Photon{Amplitude: s.Photon.Amplitude, Wavelength: s.Photon.Wavelength}
}

// GluonStyle returns the configured gluon decoration with the configured
// loop count.
func (s Settings) GluonStyle() decor.Gluon {
	return decor.Gluon{Amplitude: s.Gluon.Amplitude, Loops: s.Gluon.Loops, Phase0: s.Gluon.Phase}
}

// GluonFor returns the gluon decoration for a line of the given length,
// honouring Pitch if set.
func (s Settings) GluonFor(length float64) (decor.Gluon, error) {
	g := s.GluonStyle()
	if s.Gluon.Pitch > 0 {
		n, err := decor.LoopsFor(length, s.Gluon.Pitch)
		if err != nil {
			return g, err
		}
		g.Loops = n
	}
	return g, g.Validate()
}

// Fill sets the unset fields of a line spec from the settings: sample count,
// offset ratio, loop radius, and exclusion radii (if both are unset).
func (s Settings) Fill(spec Spec) Spec {
	if spec.Samples == 0 {
		spec.Samples = s.Samples
	}
	if spec.OffsetRatio == 0 {
		spec.OffsetRatio = s.OffsetRatio
	}
	if spec.LoopRadius == 0 {
		spec.LoopRadius = s.LoopRadius
	}
	if spec.StartExclusion == 0 && spec.EndExclusion == 0 {
		spec.StartExclusion, spec.EndExclusion = s.ExclusionRadius, s.ExclusionRadius
	}
	return spec
}
