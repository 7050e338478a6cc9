package tweezers

import "math"

// Snell returns the refraction angle for incidence angle thetaI and relative
// index nRel. Outside the domain of asin the result is NaN and is propagated.
func Snell(thetaI, nRel Real) Real {
	return math.Asin(math.Sin(thetaI) / nRel)
}

// FresnelReflectance is the reflection coefficient for circularly polarized
// light: the mean of the two orthogonal polarization terms.
func FresnelReflectance(thetaI, nRel Real) Real {
	if DisableReflection {
		DebugLogOnce("Reflection disabled, R=0")
		return 0
	}
	thetaR := Snell(thetaI, nRel)
	ci, cr := math.Cos(thetaI), math.Cos(thetaR)
	a := (ci - nRel*cr) / (ci + nRel*cr)
	b := (cr - nRel*ci) / (cr + nRel*ci)
	return (a*a + b*b) / 2
}
