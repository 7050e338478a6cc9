package tweezers

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRawForces dumps the grid as little-endian binary: int32 Nx, Ny, Nz,
// then the X, Y, Z axis samples and the force buffer as float64.
func (g *Grid) SaveRawForces(path string) error {
	if g.Nx != len(g.X) || g.Ny != len(g.Y) || g.Nz != len(g.Z) {
		return fmt.Errorf("axis length mismatch: Nx=%d/%d Ny=%d/%d Nz=%d/%d", g.Nx, len(g.X), g.Ny, len(g.Y), g.Nz, len(g.Z))
	}
	exp64 := int64(g.Nx) * int64(g.Ny) * int64(g.Nz) * 3
	if int64(len(g.Buf)) != exp64 {
		return fmt.Errorf("Buf length mismatch: got %d, expected %d (Nx*Ny*Nz*3)", len(g.Buf), exp64)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, v := range []int32{int32(g.Nx), int32(g.Ny), int32(g.Nz)} {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	for _, axis := range [][]Real{g.X, g.Y, g.Z, g.Buf} {
		if err := binary.Write(w, binary.LittleEndian, axis); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}
