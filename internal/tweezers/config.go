package tweezers

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LensCfg describes the objective. Lengths share the unit of the sphere
// radius. Either give radius and focalDistance, or na plus one of them.
type LensCfg struct {
	Radius        Real   `json:"radius,omitempty"`
	FocalDistance Real   `json:"focalDistance,omitempty"`
	NA            Real   `json:"na,omitempty"`
	Profile       string `json:"profile,omitempty"` // uniform|gaussian|gaussian-corrected
	Waist         Real   `json:"waist,omitempty"`   // relative to the lens radius
}

type SphereCfg struct {
	Radius        Real `json:"radius,omitempty"`
	Index         Real `json:"index,omitempty"`
	RelativeIndex Real `json:"relativeIndex,omitempty"` // used when index is not set
	MediumIndex   Real `json:"mediumIndex,omitempty"`
}

type IntegrationCfg struct {
	Method  string `json:"method,omitempty"` // riemann|gauss-legendre
	RSteps  int    `json:"rSteps,omitempty"`
	ThSteps int    `json:"thSteps,omitempty"`
}

// SweepCfg holds the particle positions in sphere radii relative to the focus.
type SweepCfg struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
	Z Axis `json:"z"`
}

type Config struct {
	Lens        LensCfg        `json:"lens"`
	Sphere      SphereCfg      `json:"sphere"`
	Integration IntegrationCfg `json:"integration"`
	Trap        string         `json:"trap,omitempty"` // single|double
	Sweep       SweepCfg       `json:"sweep"`
	Workers     int            `json:"workers,omitempty"`
	Out         string         `json:"out,omitempty"` // "-" writes the table to stdout
	RawOut      string         `json:"rawOut,omitempty"`
	PlotOut     string         `json:"plotOut,omitempty"`
}

func (c SphereCfg) Build() (*Sphere, error) {
	n := c.Index
	if n == 0 {
		n = c.RelativeIndex * c.MediumIndex
	}
	return NewSphere(c.Radius, n, c.MediumIndex)
}

// Build resolves the lens geometry for a particle of radius a in a medium of
// index n. With na set and a radius given, the focal distance follows from
// the aperture; otherwise the focal distance defaults to FocalInRadii sphere
// radii and na (if set) fixes the radius.
func (c LensCfg) Build(n, a Real) (*Lens, error) {
	prof, err := ParseProfile(c.Profile, c.Waist)
	if err != nil {
		return nil, err
	}
	radius, f := c.Radius, c.FocalDistance
	if c.NA > 0 && radius > 0 && f > 0 {
		return nil, fmt.Errorf("na %.4g together with radius and focalDistance over-determines the lens, drop one", c.NA)
	}
	switch {
	case c.NA > 0 && radius > 0 && f == 0:
		if f, err = FocalDistanceFromNA(c.NA, n, radius); err != nil {
			return nil, err
		}
	default:
		if f == 0 {
			f = FocalInRadii * a
		}
		if c.NA > 0 {
			if radius, err = RadiusFromNA(c.NA, n, f); err != nil {
				return nil, err
			}
		}
	}
	return NewLens(radius, f, prof)
}

func (c IntegrationCfg) Build() (Integrator, error) {
	switch strings.ToLower(c.Method) {
	case "", "riemann":
		return NewRiemannIntegrator(c.RSteps, c.ThSteps)
	case "gauss-legendre", "gl":
		return NewGaussLegendreIntegrator(c.RSteps, c.ThSteps)
	}
	return nil, fmt.Errorf("unknown integration method %q, expected riemann or gauss-legendre", c.Method)
}

func (c SweepCfg) Build() (*Grid, error) {
	for i, a := range []Axis{c.X, c.Y, c.Z} {
		if err := a.validate(string("xyz"[i])); err != nil {
			return nil, err
		}
	}
	return NewGrid(c.X.Values(), c.Y.Values(), c.Z.Values()), nil
}

// System builds the trap described by the config.
func (c *Config) System() (*System, error) {
	s, err := c.Sphere.Build()
	if err != nil {
		return nil, fmt.Errorf("sphere: %w", err)
	}
	l, err := c.Lens.Build(s.MediumIndex, s.Radius)
	if err != nil {
		return nil, fmt.Errorf("lens: %w", err)
	}
	in, err := c.Integration.Build()
	if err != nil {
		return nil, fmt.Errorf("integration: %w", err)
	}
	mode, err := ParseTrapMode(c.Trap)
	if err != nil {
		return nil, err
	}
	DebugLog("System: NA=%.4f f=%g lens radius=%g nRel=%.4f trap=%s", l.NA(s.MediumIndex), l.FocalDistance, l.Radius, s.RelativeIndex, mode)
	return NewSystem(l, s, in, mode)
}

// applyDefaults fills zero fields; loadConfig calls it after decoding.
func (c *Config) applyDefaults() {
	if c.Sphere.Radius == 0 {
		c.Sphere.Radius = 1
	}
	if c.Sphere.MediumIndex == 0 {
		c.Sphere.MediumIndex = MediumIndex
	}
	if c.Sphere.Index == 0 && c.Sphere.RelativeIndex == 0 {
		c.Sphere.RelativeIndex = RelIndex
	}
	if c.Lens.Profile == "" {
		c.Lens.Profile = "uniform"
	}
	if c.Lens.Waist == 0 {
		c.Lens.Waist = Waist
	}
	if c.Integration.RSteps <= 0 || c.Integration.ThSteps <= 0 {
		if strings.HasPrefix(strings.ToLower(c.Integration.Method), "g") {
			c.Integration.RSteps, c.Integration.ThSteps = GLNodes, GLNodes
		} else {
			c.Integration.RSteps, c.Integration.ThSteps = RSteps, ThSteps
		}
	}
	if c.Out == "" {
		c.Out = ResultsOut
	}
	if c.RawOut == "" {
		c.RawOut = RawOut
	}
	if c.PlotOut == "" {
		c.PlotOut = PlotOut
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	DebugLog("Loaded config from %s: lens=%+v sphere=%+v integration=%+v trap=%q", path, cfg.Lens, cfg.Sphere, cfg.Integration, cfg.Trap)
	return &cfg, nil
}
