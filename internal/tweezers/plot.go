package tweezers

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// longestAxis returns the index (ChX, ChY or ChZ) of the axis with the most
// samples, or -1 when every axis is a single point.
func (g *Grid) longestAxis() int {
	best, n := -1, 1
	for c, m := range []int{g.Nx, g.Ny, g.Nz} {
		if m > n {
			best, n = c, m
		}
	}
	return best
}

// SaveForcePlot draws the three efficiency components along the longest swept
// axis. The other two axes are held at their middle sample.
func (g *Grid) SaveForcePlot(path string) error {
	axis := g.longestAxis()
	if axis < 0 {
		return errors.New("nothing to plot: every swept axis is a single point")
	}
	i, j, k := g.Nx/2, g.Ny/2, g.Nz/2
	var xs []Real
	switch axis {
	case ChX:
		xs = g.X
	case ChY:
		xs = g.Y
	default:
		xs = g.Z
	}
	comps := [3]plotter.XYs{make(plotter.XYs, len(xs)), make(plotter.XYs, len(xs)), make(plotter.XYs, len(xs))}
	for n, x := range xs {
		switch axis {
		case ChX:
			i = n
		case ChY:
			j = n
		default:
			k = n
		}
		f := g.At(i, j, k)
		for c, v := range [3]Real{f.X, f.Y, f.Z} {
			comps[c][n].X = x
			comps[c][n].Y = v
		}
	}

	name := string("xyz"[axis])
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Trap efficiency along %s", name)
	p.X.Label.Text = name + " (sphere radii)"
	p.Y.Label.Text = "Q"
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLinePoints(p, "Qx", comps[ChX], "Qy", comps[ChY], "Qz", comps[ChZ]); err != nil {
		return fmt.Errorf("force plot: %w", err)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// SaveQCurvePlot draws single-ray Q against the incidence angle.
func SaveQCurvePlot(path string, pts []QPoint) error {
	if len(pts) == 0 {
		return errors.New("nothing to plot: empty Q curve")
	}
	xys := make(plotter.XYs, 0, len(pts))
	for _, q := range pts {
		if math.IsNaN(q.Q) {
			continue
		}
		xys = append(xys, plotter.XY{X: q.ThetaDeg, Y: q.Q})
	}
	p := plot.New()
	p.Title.Text = "Single-ray trapping efficiency"
	p.X.Label.Text = "incidence angle (deg)"
	p.Y.Label.Text = "Q"
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLines(p, "Q", xys); err != nil {
		return fmt.Errorf("q curve plot: %w", err)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
