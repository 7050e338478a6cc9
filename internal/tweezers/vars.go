package tweezers

var (
	Debug             = false // set to true for verbose debug output and per-ray outcome stats
	RAW               = false // set to true to also save the force grid as raw float64
	PLOT              = false // set to true to save a force plot along the longest swept axis
	DisableReflection = false // set to true to force R=0 (diagnostic mode)
	// Compile time checks
	_ IntensityProfile = UniformProfile{}
	_ IntensityProfile = GaussianProfile{}
	_ IntensityProfile = GaussianCorrectedProfile{}
	_ IntensityProfile = ProfileFunc(nil)
	_ Integrator       = RiemannIntegrator{}
	_ Integrator       = (*GaussLegendreIntegrator)(nil)
)
