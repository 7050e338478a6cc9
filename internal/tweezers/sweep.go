package tweezers

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"
)

// ProgressOut receives [PROGRESS] lines during a sweep; nil silences them.
var ProgressOut io.Writer = os.Stderr

// Sweep evaluates the trap efficiency at every grid point. Grid positions are
// in sphere radii and are scaled to the sphere radius before evaluation.
// Points are split statically across workers (interleaved, so cheap miss
// regions are shared); each grid slot is written by exactly one worker.
// workers <= 0 means runtime.NumCPU().
func Sweep(ctx context.Context, sys *System, g *Grid, workers int) error {
	total := g.Len()
	if total == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = imax(1, workers)
	if workers > total {
		workers = total
	}

	var counter int64
	nextPrint := int64(1)
	if total >= 100 {
		nextPrint = int64(total / 100) // ~1%
	}

	scale := sys.Sphere.Radius
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(wid int) {
			defer wg.Done()
			for n := wid; n < total; n += workers {
				if ctx.Err() != nil {
					return
				}
				i, j, k := g.Coords(n)
				pos := r3.Scale(scale, g.Position(i, j, k))
				g.Set(i, j, k, sys.Efficiency(pos))
				done := atomic.AddInt64(&counter, 1)
				if ProgressOut != nil && done%nextPrint == 0 {
					fmt.Fprintf(ProgressOut, "[PROGRESS] %.2f%%\n", Real(done)*100/Real(total))
				}
			}
		}(w)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("sweep interrupted after %d/%d points: %w", atomic.LoadInt64(&counter), total, err)
	}
	DebugLog("Sweep done: %d points, %d workers", total, workers)
	return nil
}
