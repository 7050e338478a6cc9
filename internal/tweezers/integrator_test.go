package tweezers

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestIntegratorValidation(t *testing.T) {
	if _, err := NewRiemannIntegrator(0, 10); err == nil {
		t.Fatal("expected error for zero radial steps")
	}
	if _, err := NewGaussLegendreIntegrator(10, -1); err == nil {
		t.Fatal("expected error for negative angular nodes")
	}
}

func TestRiemannClosedGrid(t *testing.T) {
	ri, err := NewRiemannIntegrator(4, 8)
	if err != nil {
		t.Fatal(err)
	}
	calls := 0
	sawEnd := [2]bool{}
	got := ri.Sum(func(r, th Real) r3.Vec {
		calls++
		if r == 1 {
			sawEnd[0] = true
		}
		if approxEqual(th, 2*math.Pi, 1e-12) {
			sawEnd[1] = true
		}
		return r3.Vec{X: 1}
	})
	if calls != 5*9 {
		t.Fatalf("expected 45 samples, got %d", calls)
	}
	if !sawEnd[0] || !sawEnd[1] {
		t.Fatalf("closed grid must sample r=1 and theta=2π: %v", sawEnd)
	}
	want := 45 * (1.0 / 4) * (2 * math.Pi / 8)
	if !approxEqual(got.X, want, 1e-12) {
		t.Fatalf("sum=%.12g want %.12g", got.X, want)
	}
}

func TestGaussLegendrePolarArea(t *testing.T) {
	g, err := NewGaussLegendreIntegrator(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	// ∫∫ r dr dθ over the unit disc
	got := g.Sum(func(r, th Real) r3.Vec { return r3.Vec{Y: r} })
	if !approxEqual(got.Y, math.Pi, 1e-12) {
		t.Fatalf("disc area %.15g want π", got.Y)
	}
}

func TestAperturePowerNormalization(t *testing.T) {
	g, err := NewGaussLegendreIntegrator(40, 16)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name    string
		profile IntensityProfile
		want    Real
	}{
		{"uniform", UniformProfile{}, 1},
		{"gaussian", GaussianProfile{Waist: 1}, 1 - math.Exp(-2)},
		{"gaussian wide", GaussianProfile{Waist: 2}, 1 - math.Exp(-0.5)},
		{"gaussian-corrected", GaussianCorrectedProfile{Waist: 1}, 1},
		{"gaussian-corrected narrow", GaussianCorrectedProfile{Waist: 0.6}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLens(3, 10, tt.profile)
			if err != nil {
				t.Fatal(err)
			}
			if p := AperturePower(g, l); !approxEqual(p, tt.want, 1e-9) {
				t.Fatalf("aperture power %.12g want %.12g", p, tt.want)
			}
		})
	}

	// the closed Riemann grid overcounts by (1+dr)(1+dθ/2π)
	ri, _ := NewRiemannIntegrator(200, 200)
	l, _ := NewLens(1, 1, UniformProfile{})
	if p := AperturePower(ri, l); math.Abs(p-1) > 0.02 {
		t.Fatalf("riemann aperture power %.6g too far from 1", p)
	}
}

func TestIntegrandMatchesNetForce(t *testing.T) {
	s := newTestSphere(t, 1.2)
	l := newTestLens(t, GaussianProfile{Waist: 1})
	l.SetPosition(r3.Vec{X: -0.3, Z: l.FocalDistance - 0.4})

	const n = 24
	g, err := NewGaussLegendreIntegrator(n, n)
	if err != nil {
		t.Fatal(err)
	}
	want := NetForce(g, l, s)

	u := make([]Real, n)
	wu := make([]Real, n)
	quad.Legendre{}.FixedLocations(u, wu, 0, 1)
	f := Integrand(l, s)
	var got r3.Vec
	for i := range u {
		for j := range u {
			got = r3.Add(got, r3.Scale(wu[i]*wu[j], f(u[i], u[j])))
		}
	}
	if r3.Norm(r3.Sub(got, want)) > 1e-9*r3.Norm(want) {
		t.Fatalf("unit square integrand %+v differs from aperture integral %+v", got, want)
	}
}
