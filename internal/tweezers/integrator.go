package tweezers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

// ApertureFunc is a vector quantity sampled over the lens aperture at
// normalized radius r and polar angle theta.
type ApertureFunc func(r, theta Real) r3.Vec

// Integrator sums an ApertureFunc over r in [0,1] and theta in [0,2π].
// The polar Jacobian is not applied: lens rays already carry it.
// Implementations must be safe for concurrent use.
type Integrator interface {
	Sum(f ApertureFunc) r3.Vec
}

// RiemannIntegrator is a closed fixed-step rule: both ends of each range are
// sampled and every sample is weighted by dr*dtheta.
type RiemannIntegrator struct {
	RSteps  int
	ThSteps int
}

func NewRiemannIntegrator(rSteps, thSteps int) (RiemannIntegrator, error) {
	if rSteps <= 0 || thSteps <= 0 {
		return RiemannIntegrator{}, fmt.Errorf("integration steps must be > 0, got r=%d theta=%d", rSteps, thSteps)
	}
	return RiemannIntegrator{RSteps: rSteps, ThSteps: thSteps}, nil
}

func (ri RiemannIntegrator) Sum(f ApertureFunc) r3.Vec {
	dr := 1 / Real(ri.RSteps)
	dth := 2 * math.Pi / Real(ri.ThSteps)
	w := dr * dth
	var total r3.Vec
	for i := 0; i <= ri.RSteps; i++ {
		r := Real(i) * dr
		for j := 0; j <= ri.ThSteps; j++ {
			total = r3.Add(total, r3.Scale(w, f(r, Real(j)*dth)))
		}
	}
	return total
}

// GaussLegendreIntegrator is a tensor-product Gauss-Legendre rule over the
// aperture. Nodes are computed once by the constructor.
type GaussLegendreIntegrator struct {
	RNodes  int
	ThNodes int

	// cached
	r, wr   []Real
	th, wth []Real
}

func NewGaussLegendreIntegrator(rNodes, thNodes int) (*GaussLegendreIntegrator, error) {
	if rNodes <= 0 || thNodes <= 0 {
		return nil, fmt.Errorf("quadrature nodes must be > 0, got r=%d theta=%d", rNodes, thNodes)
	}
	g := &GaussLegendreIntegrator{
		RNodes:  rNodes,
		ThNodes: thNodes,
		r:       make([]Real, rNodes),
		wr:      make([]Real, rNodes),
		th:      make([]Real, thNodes),
		wth:     make([]Real, thNodes),
	}
	quad.Legendre{}.FixedLocations(g.r, g.wr, 0, 1)
	quad.Legendre{}.FixedLocations(g.th, g.wth, 0, 2*math.Pi)
	DebugLog("Created Gauss-Legendre rule with %dx%d nodes", rNodes, thNodes)
	return g, nil
}

func (g *GaussLegendreIntegrator) Sum(f ApertureFunc) r3.Vec {
	var total r3.Vec
	for i, r := range g.r {
		for j, th := range g.th {
			total = r3.Add(total, r3.Scale(g.wr[i]*g.wth[j], f(r, th)))
		}
	}
	return total
}

// NetForce integrates the force of every lens ray on the sphere.
func NetForce(in Integrator, l *Lens, s *Sphere) r3.Vec {
	return in.Sum(func(r, theta Real) r3.Vec {
		return s.Force(l.Ray(r, theta))
	})
}

// AperturePower integrates the ray power leaving the lens. With a profile
// normalized to the aperture it is one.
func AperturePower(in Integrator, l *Lens) Real {
	return in.Sum(func(r, theta Real) r3.Vec {
		return r3.Vec{X: l.Ray(r, theta).Power}
	}).X
}

// Integrand exposes the aperture force on the unit square (u -> r,
// v -> theta/2π), the shape external cubature routines integrate.
func Integrand(l *Lens, s *Sphere) func(u, v Real) r3.Vec {
	return func(u, v Real) r3.Vec {
		return r3.Scale(2*math.Pi, s.Force(l.Ray(u, 2*math.Pi*v)))
	}
}
