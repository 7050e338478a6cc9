package tweezers

// Force component indices for readability.
const (
	ChX           = 0
	ChY           = 1
	ChZ           = 2
	SpeedOfLight  = 299792458.0 // m/s
	RSteps        = 200         // radial aperture samples
	ThSteps       = 200         // azimuthal aperture samples
	GLNodes       = 48          // gauss-legendre nodes per aperture dimension
	MediumIndex   = 1.33        // water
	RelIndex      = 1.2
	Waist         = 1.0 // gaussian waist relative to the lens radius
	FocalInRadii  = 1e5 // default focal distance in sphere radii, keeps the lens far from the particle
	QCurveSteps   = 180 // half-degree steps over [0, 90] degrees
	ResultsOut    = "results.tsv"
	RawOut        = "forces.raw"
	PlotOut       = "forces.png"
	QCurvePlotOut = "qcurve.png"
)
