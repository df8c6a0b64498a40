package voxel

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeGrid writes a grid file image: three padded little-endian uint32
// dimensions followed by the samples.
func encodeGrid(t *testing.T, nx, ny, nz int, samples []float32) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	for _, dim := range []int{nx, ny, nz} {
		require.NoError(t, binary.Write(buf, binary.LittleEndian, uint32(dim)))
		require.NoError(t, binary.Write(buf, binary.LittleEndian, uint32(0))) // padding
	}
	require.NoError(t, binary.Write(buf, binary.LittleEndian, samples))
	return buf.Bytes()
}

// ascending returns n samples 0, 1, 2, ... so layout can be checked by value.
func ascending(n int) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(i)
	}
	return samples
}

func TestReadGrid(t *testing.T) {
	raw := encodeGrid(t, 2, 3, 4, ascending(24))

	grid, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, 2, grid.Nx)
	assert.Equal(t, 3, grid.Ny)
	assert.Equal(t, 4, grid.Nz)
	assert.Equal(t, 24, grid.Len())
}

func TestAtHonorsZYXOrder(t *testing.T) {
	nx, ny, nz := 2, 3, 4
	raw := encodeGrid(t, nx, ny, nz, ascending(nx*ny*nz))

	grid, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	// Samples are stored with z slowest and x fastest, so the value at
	// (x, y, z) is its flat file index.
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				want := float32((z*ny+y)*nx + x)
				assert.Equal(t, want, grid.At(x, y, z), "At(%d,%d,%d)", x, y, z)
			}
		}
	}
}

func TestReadSizeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr error
	}{
		{
			"truncated data",
			func(raw []byte) []byte { return raw[:len(raw)-4] },
			ErrSizeMismatch,
		},
		{
			"trailing garbage",
			func(raw []byte) []byte { return append(raw, 1, 2, 3, 4) },
			ErrSizeMismatch,
		},
		{
			"truncated header",
			func(raw []byte) []byte { return raw[:10] },
			ErrShortHeader,
		},
		{
			"empty file",
			func(raw []byte) []byte { return nil },
			ErrShortHeader,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := encodeGrid(t, 2, 2, 2, ascending(8))
			_, err := Read(bytes.NewReader(tt.mutate(raw)))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStats(t *testing.T) {
	raw := encodeGrid(t, 2, 2, 1, []float32{-1, 0, 3, 6})

	grid, err := Read(bytes.NewReader(raw))
	require.NoError(t, err)

	stats := grid.Stats()
	assert.Equal(t, float32(-1), stats.Min)
	assert.Equal(t, float32(6), stats.Max)
	assert.Equal(t, float32(2), stats.Mean)
}

func TestStatsEmptyGrid(t *testing.T) {
	grid := &Grid{}
	assert.Equal(t, Stats{}, grid.Stats())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.bin")
	require.NoError(t, os.WriteFile(path, encodeGrid(t, 2, 2, 2, ascending(8)), 0644))

	grid, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, grid.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
