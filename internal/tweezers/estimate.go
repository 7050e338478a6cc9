package tweezers

import "gonum.org/v1/gonum/spatial/r3"

// HitFraction returns the share of aperture power whose rays enter the
// sphere when its centre sits at pos relative to the focus. It uses the
// system integrator so numerator and denominator see the same samples.
func HitFraction(sys *System, pos r3.Vec) Real {
	l := *sys.Lens
	l.SetPosition(r3.Vec{X: -pos.X, Y: -pos.Y, Z: l.FocalDistance - pos.Z})
	sum := sys.Integrator.Sum(func(r, theta Real) r3.Vec {
		ray := l.Ray(r, theta)
		var hit Real
		if sys.Sphere.enters(ray) {
			hit = ray.Power
		}
		return r3.Vec{X: hit, Y: ray.Power}
	})
	if sum.Y == 0 {
		return 0
	}
	return sum.X / sum.Y
}
