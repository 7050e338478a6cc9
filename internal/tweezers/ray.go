package tweezers

import "gonum.org/v1/gonum/spatial/r3"

// Ray is a single beam of light carrying a finite power.
type Ray struct {
	Origin    r3.Vec
	Direction r3.Vec // unit, zero when the ray has no direction
	Power     Real
}

// NewRay builds a ray starting at origin and passing through the second point.
// The direction is normalized, except when both points coincide: the
// direction is then the zero vector and the sphere treats the ray as a miss.
func NewRay(origin, through r3.Vec, power Real) Ray {
	return Ray{Origin: origin, Direction: unit(r3.Sub(through, origin)), Power: power}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t Real) r3.Vec { return r3.Add(r.Origin, r3.Scale(t, r.Direction)) }
