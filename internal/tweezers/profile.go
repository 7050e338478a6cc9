package tweezers

import (
	"fmt"
	"math"
)

// IntensityProfile gives the relative intensity at a point of the lens
// aperture. r is the normalized radius in [0,1], theta the polar angle.
// Implementations must not include the polar Jacobian r: the lens applies it.
type IntensityProfile interface {
	Intensity(r, theta Real) Real
}

// ProfileFunc adapts a plain function to IntensityProfile.
type ProfileFunc func(r, theta Real) Real

func (f ProfileFunc) Intensity(r, theta Real) Real { return f(r, theta) }

// UniformProfile fills the aperture evenly with unit total power.
type UniformProfile struct{}

func (UniformProfile) Intensity(r, theta Real) Real { return 1 / math.Pi }

// GaussianProfile is a TEM00 beam with the given waist (relative to the lens
// radius), normalized so the untruncated beam carries unit power.
// Part of the beam is clipped by the aperture.
type GaussianProfile struct {
	Waist Real
}

func (g GaussianProfile) Intensity(r, theta Real) Real {
	w2 := g.Waist * g.Waist
	return 2 / (math.Pi * w2) * math.Exp(-2*r*r/w2)
}

// GaussianCorrectedProfile is GaussianProfile rescaled so the power passing
// the aperture is exactly one.
type GaussianCorrectedProfile struct {
	Waist Real
}

func (g GaussianCorrectedProfile) Intensity(r, theta Real) Real {
	w2 := g.Waist * g.Waist
	p0 := 1 / (1 - math.Exp(-2/w2))
	return 2 * p0 / (math.Pi * w2) * math.Exp(-2*r*r/w2)
}

// ProfileNames lists the names accepted by ParseProfile.
var ProfileNames = []string{"uniform", "gaussian", "gaussian-corrected"}

// ParseProfile builds a named profile. waist is ignored by "uniform".
func ParseProfile(name string, waist Real) (IntensityProfile, error) {
	switch name {
	case "uniform":
		return UniformProfile{}, nil
	case "gaussian", "gaussian-corrected":
		if !(waist > 0) || !isFinite(waist) {
			return nil, fmt.Errorf("gaussian waist must be > 0, got %.6g", waist)
		}
		if name == "gaussian" {
			return GaussianProfile{Waist: waist}, nil
		}
		return GaussianCorrectedProfile{Waist: waist}, nil
	}
	return nil, fmt.Errorf("unknown intensity profile %q, expected one of %v", name, ProfileNames)
}
