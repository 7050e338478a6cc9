package tweezers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere is a dielectric particle of absolute index Index in a medium of
// index MediumIndex. It always sits at the origin of the lens-relative frame.
type Sphere struct {
	Radius      Real
	Index       Real
	MediumIndex Real

	// cached
	RelativeIndex Real
}

func NewSphere(radius, index, mediumIndex Real) (*Sphere, error) {
	if !(radius > 0) || !isFinite(radius) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %.6g", radius)
	}
	if !(index > 0) || !(mediumIndex > 0) || !isFinite(index) || !isFinite(mediumIndex) {
		return nil, fmt.Errorf("refractive indices must be > 0, got sphere=%.6g medium=%.6g", index, mediumIndex)
	}
	s := &Sphere{Radius: radius, Index: index, MediumIndex: mediumIndex}
	s.RelativeIndex = index / mediumIndex
	DebugLog("Created sphere: %+v", s)
	return s, nil
}

func (s *Sphere) SetIndex(n Real) {
	s.Index = n
	s.RelativeIndex = n / s.MediumIndex
}

func (s *Sphere) SetMediumIndex(n Real) {
	s.MediumIndex = n
	s.RelativeIndex = s.Index / n
}

// Force returns the radiation-pressure force a single ray exerts on the sphere.
func (s *Sphere) Force(ray Ray) r3.Vec {
	f, _ := s.Trace(ray)
	return f
}

// Trace computes the Ashkin ray-optics force of one ray, summing the infinite
// series of internal reflections in closed form, and reports which path was
// taken. Misses and numerically degenerate rays give a zero force.
func (s *Sphere) Trace(ray Ray) (r3.Vec, Outcome) {
	l := ray.Direction
	x0 := ray.Origin

	lx := r3.Dot(l, x0)
	discr := lx*lx - r3.Dot(x0, x0) + s.Radius*s.Radius

	// tangent or no intersection at all
	if discr <= 0 {
		if Debug {
			logRay(Miss, ray)
		}
		return r3.Vec{}, Miss
	}

	sq := math.Sqrt(discr)
	costh := sq / s.Radius

	// gradient axis; stays zero for a ray through the centre
	var lperp r3.Vec
	if costh < 1 {
		// nearer root: the entry point. The sphere is centred so the point is
		// also the outward normal.
		d := -lx - sq
		normal := unit(ray.At(d))
		// Gram-Schmidt against the ray direction
		lperp = unit(r3.Sub(normal, r3.Scale(r3.Dot(normal, l), l)))
	} else if costh > 1 {
		costh = 1
	}

	thi := math.Acos(costh)
	thr := Snell(thi, s.RelativeIndex)

	k := ray.Power * s.MediumIndex / SpeedOfLight

	R := FresnelReflectance(thi, s.RelativeIndex)
	T := 1 - R

	thi2 := thi * 2
	thr2 := thr * 2

	al := 1 + R*R + 2*R*math.Cos(thr2)

	fs := k * (1 + R*math.Cos(thi2) - T*T*(math.Cos(thi2-thr2)+R*math.Cos(thi2))/al)
	fg := -k * (R*math.Sin(thi2) - T*T*(math.Sin(thi2-thr2)+R*math.Sin(thi2))/al)

	f := r3.Add(r3.Scale(fs, l), r3.Scale(fg, lperp))
	if hasNaN(f) {
		if Debug {
			logRay(Degenerate, ray)
		}
		return r3.Vec{}, Degenerate
	}
	if Debug {
		logRay(Hit, ray)
	}
	return f, Hit
}

// Q returns the dimensionless trapping efficiency |F|*c/(n_medium*P) of a ray.
func (s *Sphere) Q(ray Ray) Real {
	if ray.Power == 0 {
		return 0
	}
	return r3.Norm(s.Force(ray)) * SpeedOfLight / (s.MediumIndex * ray.Power)
}

// enters reports whether the ray line crosses the sphere interior.
func (s *Sphere) enters(ray Ray) bool {
	lx := r3.Dot(ray.Direction, ray.Origin)
	return lx*lx-r3.Dot(ray.Origin, ray.Origin)+s.Radius*s.Radius > 0
}
