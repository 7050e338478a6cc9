package tweezers

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTable prints one "x y z Fx Fy Fz" row per grid point, z fastest, with a
// blank line after every z run and another after every y block so gnuplot's
// splot reads the file as a surface.
func WriteTable(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for i, x := range g.X {
		for j, y := range g.Y {
			for k, z := range g.Z {
				f := g.At(i, j, k)
				if _, err := fmt.Fprintf(bw, "%e\t%e\t%e\t%e\t%e\t%e\n", x, y, z, f.X, f.Y, f.Z); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
