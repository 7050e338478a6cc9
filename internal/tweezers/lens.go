package tweezers

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Lens is a thin focusing element (e.g. a microscope objective).
// The focal point is below the lens at Position - (0, 0, FocalDistance).
type Lens struct {
	Radius        Real
	FocalDistance Real
	Position      r3.Vec
	Profile       IntensityProfile

	// cached
	Focus r3.Vec
}

// NewLens constructs a lens centred at the origin.
func NewLens(radius, focalDistance Real, profile IntensityProfile) (*Lens, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("lens radius must be > 0, got %.6g", radius)
	}
	if !(focalDistance > 0) || !isFinite(focalDistance) {
		return nil, fmt.Errorf("focal distance must be > 0, got %.6g", focalDistance)
	}
	if profile == nil {
		return nil, errors.New("intensity profile must be set")
	}
	l := &Lens{Radius: radius, Profile: profile}
	l.SetFocalDistance(focalDistance)
	DebugLog("Created lens radius=%g focal=%g profile=%T", radius, focalDistance, profile)
	return l, nil
}

// SetPosition moves the lens centre and its focus with it.
func (l *Lens) SetPosition(p r3.Vec) {
	l.Position = p
	l.Focus = r3.Sub(p, r3.Vec{Z: l.FocalDistance})
}

func (l *Lens) SetFocalDistance(f Real) {
	l.FocalDistance = f
	l.Focus = r3.Sub(l.Position, r3.Vec{Z: f})
}

// Ray returns the ray leaving the aperture at normalized radius r and polar
// angle theta, aimed at the focus. Its power already carries the polar
// Jacobian r, so integrating callers only multiply by dr*dtheta.
func (l *Lens) Ray(r, theta Real) Ray {
	polar := r3.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
	origin := r3.Add(l.Position, r3.Scale(r*l.Radius, polar))
	return NewRay(origin, l.Focus, r*l.Profile.Intensity(r, theta))
}

// NA returns the numerical aperture of the lens in a medium of index n.
func (l *Lens) NA(n Real) Real {
	return n * math.Sin(math.Atan(l.Radius/l.FocalDistance))
}

// FocalDistanceFromNA returns the focal distance of a lens of the given
// radius reaching numerical aperture na in a medium of index n.
func FocalDistanceFromNA(na, n, radius Real) (Real, error) {
	if !(na > 0) || na >= n {
		return 0, fmt.Errorf("numerical aperture must be in (0, %.4g), got %.6g", n, na)
	}
	return radius * math.Sqrt(n*n-na*na) / na, nil
}

// RadiusFromNA returns the aperture radius of a lens with focal distance f
// reaching numerical aperture na in a medium of index n.
func RadiusFromNA(na, n, f Real) (Real, error) {
	if !(na > 0) || na >= n {
		return 0, fmt.Errorf("numerical aperture must be in (0, %.4g), got %.6g", n, na)
	}
	return f * math.Tan(math.Asin(na/n)), nil
}
