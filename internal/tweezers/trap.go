package tweezers

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// TrapMode selects how many beams form the trap.
type TrapMode uint8

const (
	SingleTrap TrapMode = iota
	DoubleTrap          // counter-propagating pair mirrored through the focal plane
)

func (m TrapMode) String() string {
	if m == DoubleTrap {
		return "double"
	}
	return "single"
}

func ParseTrapMode(s string) (TrapMode, error) {
	switch s {
	case "", "single":
		return SingleTrap, nil
	case "double":
		return DoubleTrap, nil
	}
	return SingleTrap, fmt.Errorf("unknown trap mode %q, expected single or double", s)
}

// System is a configured trap: lens, particle and integration rule.
// It is read-only once built and may be shared by goroutines.
type System struct {
	Lens       *Lens
	Sphere     *Sphere
	Integrator Integrator
	Mode       TrapMode
}

func NewSystem(l *Lens, s *Sphere, in Integrator, mode TrapMode) (*System, error) {
	if l == nil || s == nil || in == nil {
		return nil, errors.New("lens, sphere and integrator are required")
	}
	return &System{Lens: l, Sphere: s, Integrator: in, Mode: mode}, nil
}

// ForceAt returns the net force on the sphere when its centre sits at pos
// relative to the focus. The lens is moved instead of the sphere, so the lens
// centre ends up at (-x, -y, f - z). For a double trap the second beam is the
// mirror image through the focal plane: its axial component flips sign and
// both branches are weighted by one half.
func (sys *System) ForceAt(pos r3.Vec) r3.Vec {
	branches, weight := 1, 1.0
	if sys.Mode == DoubleTrap {
		branches, weight = 2, 0.5
	}
	var total r3.Vec
	sign := 1.0
	for i := 0; i < branches; i++ {
		l := *sys.Lens
		l.SetPosition(r3.Vec{X: -pos.X, Y: -pos.Y, Z: l.FocalDistance - sign*pos.Z})
		f := NetForce(sys.Integrator, &l, sys.Sphere)
		f = mulElem(f, r3.Vec{X: 1, Y: 1, Z: sign})
		total = r3.Add(total, r3.Scale(weight, f))
		sign = -sign
	}
	return total
}

// Efficiency returns ForceAt scaled to unit incident power and medium index:
// the dimensionless Q vector.
func (sys *System) Efficiency(pos r3.Vec) r3.Vec {
	return r3.Scale(SpeedOfLight/sys.Sphere.MediumIndex, sys.ForceAt(pos))
}
