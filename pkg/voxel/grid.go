// Package voxel reads the binary voxel-grid files produced by the power
// renderer. The format is a 24-byte header of three little-endian uint32
// dimensions (nx, ny, nz), each followed by 4 bytes of padding, then
// nx*ny*nz float32 samples with z varying slowest and x fastest.
package voxel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
)

// headerSize is the fixed size of the dimension header in bytes.
const headerSize = 24

// Grid errors.
var (
	ErrShortHeader  = errors.New("voxel file shorter than its header")
	ErrSizeMismatch = errors.New("voxel data size does not match header dimensions")
)

// Grid is a dense 3D block of float32 samples.
type Grid struct {
	Nx, Ny, Nz int
	// Data holds the samples in file order: index (z*Ny+y)*Nx+x.
	Data []float32
}

// Stats summarizes the sample distribution of a grid.
type Stats struct {
	Min, Max, Mean float32
}

// Load reads a voxel grid from a file.
func Load(filename string) (*Grid, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open voxel file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read reads a voxel grid from r. The only validation performed is that the
// sample count inferred from the remaining byte count matches the header
// dimensions.
func Read(r io.Reader) (*Grid, error) {
	var header struct {
		Nx uint32
		_  uint32
		Ny uint32
		_  uint32
		Nz uint32
		_  uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrShortHeader
		}
		return nil, fmt.Errorf("failed to read voxel header: %w", err)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read voxel data: %w", err)
	}

	// 64-bit multiply so huge headers cannot overflow the size check.
	want := int64(header.Nx) * int64(header.Ny) * int64(header.Nz)
	if int64(len(body)) != want*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%dx%d grid",
			ErrSizeMismatch, len(body), header.Nx, header.Ny, header.Nz)
	}

	data := make([]float32, want)
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(body[i*4:]))
	}
	return &Grid{
		Nx:   int(header.Nx),
		Ny:   int(header.Ny),
		Nz:   int(header.Nz),
		Data: data,
	}, nil
}

// Len returns the total number of samples.
func (g *Grid) Len() int {
	return len(g.Data)
}

// At returns the sample at voxel (x, y, z). Indices are not bounds-checked
// beyond the slice access itself.
func (g *Grid) At(x, y, z int) float32 {
	return g.Data[(z*g.Ny+y)*g.Nx+x]
}

// Stats computes the minimum, maximum and mean sample value. An empty grid
// yields the zero Stats.
func (g *Grid) Stats() Stats {
	if len(g.Data) == 0 {
		return Stats{}
	}
	st := Stats{Min: g.Data[0], Max: g.Data[0]}
	sum := 0.0
	for _, v := range g.Data {
		st.Min = math32.Min(st.Min, v)
		st.Max = math32.Max(st.Max, v)
		sum += float64(v)
	}
	st.Mean = float32(sum / float64(len(g.Data)))
	return st
}
