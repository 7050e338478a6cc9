package tweezers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// QPoint is one sample of the single-ray efficiency curve.
type QPoint struct {
	ThetaDeg Real
	Q        Real
}

// QCurve sweeps a unit-power ray across the sphere for theta from 0 to 90
// degrees in steps steps. Each ray starts on the surface at polar angle theta
// and is aimed at the north pole (0, 0, a): a chord meeting the surface at
// incidence (180-theta)/2 degrees. The theta=0 ray has no direction and
// counts as a miss.
func QCurve(s *Sphere, steps int) ([]QPoint, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("q curve steps must be > 0, got %d", steps)
	}
	a := s.Radius
	pole := r3.Vec{Z: a}
	pts := make([]QPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		th := Real(i) * (math.Pi / 2) / Real(steps)
		origin := r3.Vec{Y: a * math.Sin(th), Z: a * math.Cos(th)}
		ray := NewRay(origin, pole, 1)
		pts = append(pts, QPoint{ThetaDeg: th * 180 / math.Pi, Q: s.Q(ray)})
	}
	return pts, nil
}
