package tweezers

import (
	"context"
	"fmt"
	"os"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Run loads the config at cfgPath, sweeps the particle grid and writes the
// results table, plus the raw dump and plot when RAW / PLOT are set.
func Run(ctx context.Context, cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	sys, err := cfg.System()
	if err != nil {
		return err
	}
	grid, err := cfg.Sweep.Build()
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	if Debug {
		DebugLog("Hit fraction at focus: %.6f", HitFraction(sys, r3.Vec{}))
	}

	start := time.Now()
	if err := Sweep(ctx, sys, grid, cfg.Workers); err != nil {
		return err
	}
	DebugLog("Points: %d, time: %s", grid.Len(), time.Since(start))

	if Debug {
		raysStats()
	}

	if err := writeTableTo(cfg.Out, grid); err != nil {
		return err
	}
	if RAW {
		if err := grid.SaveRawForces(cfg.RawOut); err != nil {
			return fmt.Errorf("raw output: %w", err)
		}
		DebugLog("Saved raw forces: %s", cfg.RawOut)
	}
	if PLOT {
		if err := grid.SaveForcePlot(cfg.PlotOut); err != nil {
			return fmt.Errorf("plot output: %w", err)
		}
		DebugLog("Saved force plot: %s", cfg.PlotOut)
	}
	return nil
}

func writeTableTo(path string, g *Grid) error {
	if path == "-" {
		return WriteTable(os.Stdout, g)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTable(f, g); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
