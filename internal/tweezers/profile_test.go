package tweezers

import (
	"math"
	"testing"
)

func TestParseProfile(t *testing.T) {
	for _, name := range ProfileNames {
		p, err := ParseProfile(name, 0.8)
		if err != nil || p == nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := ParseProfile("top-hat", 1); err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if _, err := ParseProfile("gaussian", 0); err == nil {
		t.Fatal("expected error for zero waist")
	}
	if _, err := ParseProfile("gaussian-corrected", math.Inf(1)); err == nil {
		t.Fatal("expected error for infinite waist")
	}
	if _, err := ParseProfile("uniform", 0); err != nil {
		t.Fatalf("uniform ignores the waist: %v", err)
	}
}

func TestGaussianProfiles(t *testing.T) {
	g := GaussianProfile{Waist: 1}
	if !approxEqual(g.Intensity(0, 0), 2/math.Pi, 1e-15) {
		t.Fatalf("peak %g", g.Intensity(0, 0))
	}
	if !approxEqual(g.Intensity(1, 0)/g.Intensity(0, 0), math.Exp(-2), 1e-15) {
		t.Fatal("edge falloff wrong")
	}
	c := GaussianCorrectedProfile{Waist: 1}
	ratio := c.Intensity(0.3, 1) / g.Intensity(0.3, 1)
	if !approxEqual(ratio, 1/(1-math.Exp(-2)), 1e-12) {
		t.Fatalf("correction factor %g", ratio)
	}
	if g.Intensity(0.5, 0) != g.Intensity(0.5, 2) {
		t.Fatal("gaussian must not depend on theta")
	}
	f := ProfileFunc(func(r, theta Real) Real { return r })
	if f.Intensity(0.25, 0) != 0.25 {
		t.Fatal("ProfileFunc adapter wrong")
	}
}
